package drops

import "time"

// Task is a cancellable repeating job.
type Task interface {
	// Stop cancels the task. Calling Stop more than once is harmless.
	Stop()
}

// Scheduler starts repeating tasks.
type Scheduler interface {
	// Every runs fn once per interval until the returned Task is stopped.
	Every(interval time.Duration, fn func()) Task
}

const minTaskInterval = time.Millisecond

// ManualClock is a Scheduler driven by explicit Advance calls. Tasks only
// fire inside Advance, on the caller's goroutine, which keeps the session
// single-threaded and makes every run reproducible.
type ManualClock struct {
	now   time.Duration
	seq   uint64
	tasks []*clockTask
}

type clockTask struct {
	interval time.Duration
	next     time.Duration
	seq      uint64
	fn       func()
	stopped  bool
}

func (t *clockTask) Stop() {
	t.stopped = true
}

// NewManualClock creates a clock at virtual time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Now returns the elapsed virtual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Every schedules fn to run every interval, first at now+interval.
// Intervals below one millisecond are raised to one millisecond.
func (c *ManualClock) Every(interval time.Duration, fn func()) Task {
	if interval < minTaskInterval {
		interval = minTaskInterval
	}
	c.seq++
	t := &clockTask{
		interval: interval,
		next:     c.now + interval,
		seq:      c.seq,
		fn:       fn,
	}
	c.tasks = append(c.tasks, t)
	return t
}

// Pending returns the number of tasks that have not been stopped.
func (c *ManualClock) Pending() int {
	n := 0
	for _, t := range c.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves virtual time forward by d, firing due tasks in time order.
// Ties fire in creation order. A task stopped by an earlier callback in the
// same Advance does not fire; a task created by a callback counts from the
// moment it was created.
func (c *ManualClock) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := c.now + d

	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.now = t.next
		t.next += t.interval
		t.fn()
	}

	c.now = target
	c.compact()
}

func (c *ManualClock) nextDue(target time.Duration) *clockTask {
	var best *clockTask
	for _, t := range c.tasks {
		if t.stopped || t.next > target {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (c *ManualClock) compact() {
	live := c.tasks[:0]
	for _, t := range c.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(c.tasks); i++ {
		c.tasks[i] = nil
	}
	c.tasks = live
}
