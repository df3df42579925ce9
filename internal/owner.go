package internal

import (
	"iter"
)

type Owner struct {
	// cleanup functions called once, on the next dispose
	cleanups []func()

	// functions called on every dispose
	disposers []func()

	// panic error handlers
	catchers []func(any)

	disposed bool

	parent       *Owner
	prevSibling  *Owner
	nextSibling  *Owner
	childrenHead *Owner
}

// NewOwner creates an owner, attached as a child of the current owner if there is one.
func (r *Runtime) NewOwner() *Owner {
	o := &Owner{
		cleanups: make([]func(), 0),
	}

	if parent := r.CurrentOwner(); parent != nil {
		parent.AddChild(o)
	}

	return o
}

func (o *Owner) Run(fn func()) {
	r := GetRuntime()
	r.tracker.RunWithOwner(o, fn)
}

func (parent *Owner) AddChild(child *Owner) {
	child.parent = parent
	child.prevSibling = nil
	child.nextSibling = parent.childrenHead

	if parent.childrenHead != nil {
		parent.childrenHead.prevSibling = child
	}

	parent.childrenHead = child
}

func (n *Owner) Children() iter.Seq[*Owner] {
	return func(yield func(*Owner) bool) {
		child := n.childrenHead

		for child != nil {
			next := child.nextSibling
			if !yield(child) {
				return
			}

			child = next
		}
	}
}

// Dispose disposes the children, runs pending cleanups then the dispose hooks,
// and detaches the owner from its parent.
func (n *Owner) Dispose() {
	n.DisposeChildren()

	cleanups := n.cleanups
	n.cleanups = nil
	for i := 0; i < len(cleanups); i++ {
		cleanups[i]()
	}

	for _, fn := range n.disposers {
		fn()
	}

	n.disposed = true
	n.detach()
}

func (n *Owner) DisposeChildren() {
	for child := range n.Children() {
		child.Dispose()
	}
	n.childrenHead = nil
}

func (n *Owner) Disposed() bool {
	return n.disposed
}

func (n *Owner) OnCleanup(fn func()) {
	n.cleanups = append(n.cleanups, fn)
}

func (n *Owner) OnDispose(fn func()) {
	n.disposers = append(n.disposers, fn)
}

func (n *Owner) OnError(fn func(any)) {
	n.catchers = append(n.catchers, fn)
}

func (n *Owner) detach() {
	parent := n.parent
	if parent == nil {
		return
	}

	if n.prevSibling != nil {
		n.prevSibling.nextSibling = n.nextSibling
	} else if parent.childrenHead == n {
		parent.childrenHead = n.nextSibling
	}

	if n.nextSibling != nil {
		n.nextSibling.prevSibling = n.prevSibling
	}

	n.parent = nil
	n.prevSibling = nil
	n.nextSibling = nil
}

// recover must be deferred directly.
func (n *Owner) recover() {
	if r := recover(); r != nil {
		n.handle(r)
	}
}

// handle hands a panic to the closest owner with error handlers,
// re-panicking if there is none.
func (n *Owner) handle(r any) {
	for o := n; o != nil; o = o.parent {
		if len(o.catchers) == 0 {
			continue
		}

		for _, catcher := range o.catchers {
			catcher(r)
		}
		return
	}

	panic(r)
}
