package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)

	if now := mock.Now(); !now.Equal(testEpoch) {
		t.Errorf("Expected initial time %v, got %v", testEpoch, now)
	}

	mock.Advance(250 * time.Millisecond)
	if now := mock.Now(); !now.Equal(testEpoch.Add(250 * time.Millisecond)) {
		t.Errorf("Advance: got %v", now)
	}

	later := testEpoch.Add(time.Hour)
	mock.SetTime(later)
	if now := mock.Now(); !now.Equal(later) {
		t.Errorf("SetTime: got %v", now)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
	}
	wg.Wait()

	if now := mock.Now(); !now.Equal(testEpoch.Add(250 * time.Millisecond)) {
		t.Errorf("Expected 250ms advance, got %v", now.Sub(testEpoch))
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
	var _ Scheduler = &Loop{}
}
