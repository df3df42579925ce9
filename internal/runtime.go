package internal

type Runtime struct {
	tracker   *Tracker
	batcher   *Batcher
	scheduler *Scheduler
	queue     *NotificationQueue
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker:   NewTracker(),
		batcher:   NewBatcher(),
		scheduler: NewScheduler(),
		queue:     NewNotificationQueue(),
	}
}

// Emit queues a delivery and flushes unless a batch is open.
func (r *Runtime) Emit(d delivery) {
	r.queue.Enqueue(d)
	r.Schedule()
}

func (r *Runtime) Schedule() {
	r.scheduler.Schedule()

	if !r.batcher.IsBatching() {
		r.Flush()
	}
}

func (r *Runtime) Flush() {
	defer func() {
		// an uncaught observer panic drops whatever was still pending
		if rec := recover(); rec != nil {
			r.queue.Reset()
			panic(rec)
		}
	}()

	r.scheduler.Run(func() {
		r.queue.Drain(r.dispatch)
	})
}

func (r *Runtime) CurrentOwner() *Owner {
	return r.tracker.CurrentOwner()
}

func (r *Runtime) OnCleanup(fn func()) {
	owner := r.CurrentOwner()
	if owner != nil {
		owner.OnCleanup(fn)
	}
}

func (r *Runtime) dispatch(d delivery) {
	if d.sub != nil {
		d.sub.deliver(r, d.n)
		return
	}

	d.subject.deliver(r, d.n)
}
