package internal

type Tracker struct {
	currentOwner *Owner // for lifecycle/cleanup tracking
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) RunWithOwner(owner *Owner, fn func()) {
	defer owner.recover()

	prev := t.currentOwner
	t.currentOwner = owner
	defer func() { t.currentOwner = prev }()

	fn()
}

func (t *Tracker) CurrentOwner() *Owner {
	return t.currentOwner
}
