package utils

import "time"

//go:generate mockgen -destination ../mocks/utils/mock_timeProvider.go -package mock_utils github.com/unicsmcr/hs_members/utils TimeProvider

// TimeProvider tells the current time. Console sessions use it to
// measure idle time so tests can control expiry.
type TimeProvider interface {
	Now() time.Time
}

// NewTimeProvider creates a TimeProvider backed by the system clock
func NewTimeProvider() TimeProvider {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
