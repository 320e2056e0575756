package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a clock that only moves when told to, for deterministic tests
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a mock clock reading startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// NewTestLoop creates a loop on a mock clock starting at start
func NewTestLoop(start time.Time) (*Loop, *MockTimeProvider) {
	clock := NewMockTimeProvider(start)
	return NewLoop(clock), clock
}

// AdvanceLoop moves virtual time forward by d, jumping the mock clock to each due
// callback in order and running it, then settles the clock at the target time
// Returns the number of callbacks executed
func AdvanceLoop(loop *Loop, clock *MockTimeProvider, d time.Duration) int {
	target := clock.Now().Add(d)
	n := 0

	for {
		due, ok := loop.NextDue()
		if !ok || due.After(target) {
			break
		}
		if due.After(clock.Now()) {
			clock.SetTime(due)
		}
		n += loop.RunDue()
	}

	clock.SetTime(target)
	return n
}
