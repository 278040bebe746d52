package engine

import (
	"container/heap"
	"sync/atomic"

	"github.com/lixenwraith/hitscan/status"
)

// TaskHandle identifies a scheduled task; zero is never issued
type TaskHandle uint64

// Owner is the liveness capability a task is keyed by
// Tasks whose owner reports !Alive() at due time are skipped, not run
type Owner interface {
	Alive() bool
}

type task struct {
	handle TaskHandle
	owner  Owner
	due    float64
	seq    uint64
	fn     func()
	index  int
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}
func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Scheduler runs deferred single-shot callbacks against simulation time
// Single-threaded: Schedule, Cancel and Advance run on the simulation thread
type Scheduler struct {
	now     float64
	seq     uint64
	nextID  TaskHandle
	queue   taskHeap
	byID    map[TaskHandle]*task
	byOwner map[Owner]map[TaskHandle]struct{}

	statRun       *atomic.Int64
	statCancelled *atomic.Int64
	statSkipped   *atomic.Int64
}

// NewScheduler creates a scheduler publishing counters into reg (nil allowed)
func NewScheduler(reg *status.Registry) *Scheduler {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Scheduler{
		byID:          make(map[TaskHandle]*task),
		byOwner:       make(map[Owner]map[TaskHandle]struct{}),
		statRun:       reg.Ints.Get("scheduler.run"),
		statCancelled: reg.Ints.Get("scheduler.cancelled"),
		statSkipped:   reg.Ints.Get("scheduler.skipped_dead_owner"),
	}
}

// Now returns the time of the last Advance
func (s *Scheduler) Now() float64 {
	return s.now
}

// ScheduleAt registers fn to run once when simulation time reaches at
func (s *Scheduler) ScheduleAt(owner Owner, at float64, fn func()) TaskHandle {
	s.nextID++
	s.seq++
	t := &task{
		handle: s.nextID,
		owner:  owner,
		due:    at,
		seq:    s.seq,
		fn:     fn,
	}
	heap.Push(&s.queue, t)
	s.byID[t.handle] = t
	if owner != nil {
		set, ok := s.byOwner[owner]
		if !ok {
			set = make(map[TaskHandle]struct{})
			s.byOwner[owner] = set
		}
		set[t.handle] = struct{}{}
	}
	return t.handle
}

// Schedule registers fn to run once after delay seconds from the last Advance
func (s *Scheduler) Schedule(owner Owner, delay float64, fn func()) TaskHandle {
	return s.ScheduleAt(owner, s.now+delay, fn)
}

// Cancel removes a pending task; returns false if it already ran or was cancelled
func (s *Scheduler) Cancel(h TaskHandle) bool {
	t, ok := s.byID[h]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, t.index)
	s.forget(t)
	s.statCancelled.Add(1)
	return true
}

// CancelOwner removes every pending task keyed by owner and returns the count
func (s *Scheduler) CancelOwner(owner Owner) int {
	set, ok := s.byOwner[owner]
	if !ok {
		return 0
	}
	n := 0
	for h := range set {
		if s.Cancel(h) {
			n++
		}
	}
	return n
}

// Pending returns the number of tasks not yet run
func (s *Scheduler) Pending() int {
	return len(s.byID)
}

// Advance sets simulation time to now and runs due tasks in due order
// Tasks scheduled by callbacks run in the same call if already due
func (s *Scheduler) Advance(now float64) int {
	if now > s.now {
		s.now = now
	}
	ran := 0
	for s.queue.Len() > 0 && s.queue[0].due <= s.now {
		t := heap.Pop(&s.queue).(*task)
		s.forget(t)

		if t.owner != nil && !t.owner.Alive() {
			s.statSkipped.Add(1)
			continue
		}
		t.fn()
		s.statRun.Add(1)
		ran++
	}
	return ran
}

func (s *Scheduler) forget(t *task) {
	delete(s.byID, t.handle)
	if t.owner == nil {
		return
	}
	if set, ok := s.byOwner[t.owner]; ok {
		delete(set, t.handle)
		if len(set) == 0 {
			delete(s.byOwner, t.owner)
		}
	}
}
