package clock

import (
	"errors"
	"time"
)

// ErrClockUnavailable is returned when the system time source cannot be read.
// Nothing can be rendered without it, so callers treat it as fatal.
var ErrClockUnavailable = errors.New("system clock unavailable")

// Sample is a time-of-day snapshot taken once per frame.
//
// Hour, Minute and Second are fractional and carry over from the smaller unit,
// so hands derived from them move continuously instead of stepping.
// HH, MM and SS are the whole wall-clock values (HH is 0..23).
type Sample struct {
	Hour   float64 // 0 <= Hour < 12
	Minute float64 // 0 <= Minute < 60
	Second float64 // 0 <= Second < 60

	HH int
	MM int
	SS int
}

// SampleAt decomposes t (in t's own location) into a Sample.
func SampleAt(t time.Time) Sample {
	sec := float64(t.Second()) + float64(t.Nanosecond())/1e9
	minute := float64(t.Minute()) + sec/60.0
	hour := float64(t.Hour()%12) + minute/60.0
	return Sample{
		Hour:   hour,
		Minute: minute,
		Second: sec,
		HH:     t.Hour(),
		MM:     t.Minute(),
		SS:     t.Second(),
	}
}

// Sampler reads wall-clock time through Now.
type Sampler struct {
	Now func() time.Time
}

// New returns a Sampler on the system clock in the local time zone.
func New() *Sampler {
	return &Sampler{Now: func() time.Time { return time.Now().Local() }}
}

func (s *Sampler) Sample() (Sample, error) {
	if s == nil || s.Now == nil {
		return Sample{}, ErrClockUnavailable
	}
	t := s.Now()
	if t.IsZero() {
		return Sample{}, ErrClockUnavailable
	}
	return SampleAt(t), nil
}
