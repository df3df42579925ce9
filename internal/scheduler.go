package internal

type Scheduler struct {
	scheduled bool
	running   bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		scheduled: false,
		running:   false,
	}
}

// Run calls fn if work was scheduled and no run is already in progress.
// Work scheduled during fn is picked up by the ongoing run.
func (s *Scheduler) Run(fn func()) {
	if s.running || !s.scheduled {
		return
	}

	s.scheduled = false
	s.running = true
	defer func() { s.running = false }()

	fn()
}

func (s *Scheduler) Schedule() {
	s.scheduled = true
}
