package engine

import (
	"container/heap"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// ErrLoopRunning is returned when Run is called on a loop that is already running
var ErrLoopRunning = errors.New("loop already running")

// Scheduler posts callbacks onto a single cooperative timeline
// Callbacks never run concurrently with each other
type Scheduler interface {
	TimeProvider
	// AfterFunc queues fn to run on the timeline once d has elapsed
	AfterFunc(d time.Duration, fn func())
}

// pendingCall is a queued callback, ordered by due time then submission order
type pendingCall struct {
	due time.Time
	seq uint64
	fn  func()
}

// callQueue implements heap.Interface as a min-heap on (due, seq)
type callQueue []pendingCall

func (q callQueue) Len() int { return len(q) }

func (q callQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q callQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *callQueue) Push(x any) { *q = append(*q, x.(pendingCall)) }

func (q *callQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = pendingCall{} // Release closure reference
	*q = old[:n-1]
	return item
}

// Loop is the single logical task all animation state is confined to
// Submissions are safe from any goroutine; execution happens only inside Run or RunDue
type Loop struct {
	clock TimeProvider

	mu    sync.Mutex
	queue callQueue
	seq   uint64

	// Control channels
	wake     chan struct{}
	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	// Executed callback counter for diagnostics
	executed atomic.Uint64
}

// NewLoop creates a loop reading time from clock
func NewLoop(clock TimeProvider) *Loop {
	return &Loop{
		clock:    clock,
		queue:    make(callQueue, 0, 8),
		wake:     make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}
}

// Now returns the loop clock's current time
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// AfterFunc queues fn to run once d has elapsed; negative delays count as zero
func (l *Loop) AfterFunc(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if d < 0 {
		d = 0
	}

	l.mu.Lock()
	l.seq++
	heap.Push(&l.queue, pendingCall{due: l.clock.Now().Add(d), seq: l.seq, fn: fn})
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// NextDue returns the earliest due time among queued callbacks
func (l *Loop) NextDue() (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.queue) == 0 {
		return time.Time{}, false
	}
	return l.queue[0].due, true
}

// Pending returns the number of queued callbacks
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Executed returns the total number of callbacks run
func (l *Loop) Executed() uint64 {
	return l.executed.Load()
}

// RunDue executes, in order, every callback due at the current clock time
// Callbacks submitted during the pass wait for the next pass even when already due
// Returns the number of callbacks executed
func (l *Loop) RunDue() int {
	now := l.clock.Now()

	l.mu.Lock()
	limit := l.seq
	l.mu.Unlock()

	n := 0
	for {
		l.mu.Lock()
		if len(l.queue) == 0 || l.queue[0].due.After(now) || l.queue[0].seq > limit {
			l.mu.Unlock()
			return n
		}
		call := heap.Pop(&l.queue).(pendingCall)
		l.mu.Unlock()

		// Lock is released so the callback can resubmit
		call.fn()
		n++
		l.executed.Add(1)
	}
}

// Run drives the loop on the calling goroutine until ctx is done or Stop is called
// Sleeps until the earliest due callback without busy-wait
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.running.Store(false)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-l.stopChan:
			return nil
		default:
		}

		l.RunDue()

		var timerC <-chan time.Time
		if due, ok := l.NextDue(); ok {
			sleepDuration := due.Sub(l.clock.Now())
			if sleepDuration <= 0 {
				continue
			}
			timer.Reset(sleepDuration)
			timerC = timer.C
		}

		select {
		case <-timerC:
		case <-l.wake:
			if timerC != nil && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		case <-ctx.Done():
			return nil
		case <-l.stopChan:
			return nil
		}
	}
}

// Stop halts Run; queued callbacks are dropped with the loop
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}
