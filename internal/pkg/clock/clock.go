package clock

import "time"

// Clock abstracts wall-clock time so that quota windows, attendance dates,
// and payroll periods can be pinned in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by time.Now.
func System() Clock {
	return systemClock{}
}

// Fixed is a Clock that always reports the same instant.
type Fixed struct {
	Time time.Time
}

func (f Fixed) Now() time.Time {
	return f.Time
}

// FixedAt builds a Fixed clock from an RFC3339 timestamp. It panics on a
// malformed input, so it is only meant for tests.
func FixedAt(value string) Fixed {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("clock: invalid fixed time: " + value)
	}
	return Fixed{Time: t}
}
