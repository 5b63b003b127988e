package engine

import "sync/atomic"

// Coordinator carries resize notifications from whatever goroutine observes
// them to the render loop. Notify only flips a flag; all relayout work
// happens on the next Tick.
type Coordinator struct {
	pending atomic.Bool
}

// Notify marks a relayout as pending. Safe to call from any goroutine.
func (c *Coordinator) Notify() {
	c.pending.Store(true)
}

func (c *Coordinator) Pending() bool {
	return c.pending.Load()
}

func (c *Coordinator) consume() bool {
	return c.pending.Swap(false)
}
