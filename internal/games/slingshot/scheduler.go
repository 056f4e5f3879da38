package slingshot

import "sort"

// Scheduler runs deferred tasks on simulation ticks. Every task is tagged
// with the epoch that was current when it was scheduled; Invalidate bumps
// the epoch so tasks from an earlier session are dropped instead of run.
type Scheduler struct {
	now   uint64
	epoch uint64
	seq   uint64
	tasks []task
}

type task struct {
	due   uint64
	epoch uint64
	seq   uint64
	fn    func()
}

// NewScheduler creates an empty scheduler at tick 0, epoch 0.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current tick.
func (s *Scheduler) Now() uint64 { return s.now }

// Epoch returns the current epoch.
func (s *Scheduler) Epoch() uint64 { return s.epoch }

// Pending returns the number of queued tasks, stale ones included.
func (s *Scheduler) Pending() int { return len(s.tasks) }

// Invalidate starts a new epoch and returns it.
func (s *Scheduler) Invalidate() uint64 {
	s.epoch++
	return s.epoch
}

// After schedules fn to run ticks ticks from now. Values below 1 run on
// the next tick.
func (s *Scheduler) After(ticks int, fn func()) {
	if ticks < 1 {
		ticks = 1
	}
	s.seq++
	s.tasks = append(s.tasks, task{
		due:   s.now + uint64(ticks), //#nosec G115 -- ticks is positive
		epoch: s.epoch,
		seq:   s.seq,
		fn:    fn,
	})
}

// Advance moves to the next tick and runs due tasks in scheduling order.
// It returns the number of tasks that ran.
func (s *Scheduler) Advance() int {
	s.now++

	var due, rest []task
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	s.tasks = rest

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})

	ran := 0
	for _, t := range due {
		if t.epoch != s.epoch {
			continue
		}
		t.fn()
		ran++
	}
	return ran
}
