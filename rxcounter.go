package rxcounter

import "github.com/AnatoleLucet/rxcounter/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Observer receives the signals of an observable. Nil handlers are ignored.
type Observer[T any] struct {
	Next     func(T)
	Error    func(error)
	Complete func()
}

func (o Observer[T]) notify(n internal.Notification) {
	switch n.Kind {
	case internal.KindNext:
		if o.Next != nil {
			o.Next(as[T](n.Value))
		}
	case internal.KindError:
		if o.Error != nil {
			o.Error(n.Err)
		}
	case internal.KindComplete:
		if o.Complete != nil {
			o.Complete()
		}
	}
}

// Observable is anything observers can subscribe to.
type Observable[T any] interface {
	Subscribe(o Observer[T]) *Subscription
}

// Subscription is the link between an observable and one observer.
type Subscription struct {
	sub *internal.Subscription
}

// Unsubscribe stops the delivery of further signals. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	s.sub.Unsubscribe()
}

// Closed reports whether the subscription was unsubscribed or received a terminal signal.
func (s *Subscription) Closed() bool {
	return s.sub.Closed()
}

// Subject is a multicast source of values that ends with an error or a completion.
type Subject[T any] struct {
	subject *internal.Subject
}

// NewSubject creates a hot subject: subscribers only see what is emitted after they subscribe.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{
		internal.GetRuntime().NewSubject(),
	}
}

// Next emits a value to every subscriber. It's a no-op once the subject terminated.
func (s *Subject[T]) Next(v T) {
	s.subject.Next(v)
}

// Error terminates the subject with err. Only the first terminal signal counts.
func (s *Subject[T]) Error(err error) {
	s.subject.Error(err)
}

// Complete terminates the subject normally. Only the first terminal signal counts.
func (s *Subject[T]) Complete() {
	s.subject.Complete()
}

// Closed reports whether the subject received a terminal signal.
func (s *Subject[T]) Closed() bool {
	return s.subject.Closed()
}

// Err returns the error the subject terminated with, or nil.
func (s *Subject[T]) Err() error {
	return s.subject.Err()
}

// Subscribe registers o. Subscribing to a terminated subject delivers the terminal signal right away.
// A subscription made while an owner runs is closed when that owner is disposed.
func (s *Subject[T]) Subscribe(o Observer[T]) *Subscription {
	return &Subscription{
		s.subject.Subscribe(o.notify),
	}
}

type filtered[T any] struct {
	source    Observable[T]
	predicate func(T) bool
}

// Filter derives an observable that only forwards values matching predicate.
// Terminal signals are always forwarded.
func Filter[T any](source Observable[T], predicate func(T) bool) Observable[T] {
	return &filtered[T]{source, predicate}
}

func (f *filtered[T]) Subscribe(o Observer[T]) *Subscription {
	return f.source.Subscribe(Observer[T]{
		Next: func(v T) {
			if f.predicate(v) && o.Next != nil {
				o.Next(v)
			}
		},
		Error:    o.Error,
		Complete: o.Complete,
	})
}

// NewBatch delays every delivery emitted inside fn until the outermost batch returns.
// Deliveries keep their emission order.
func NewBatch(fn func()) {
	internal.GetRuntime().NewBatch(fn)
}

// OnCleanup registers a function to be called when the current owner is disposed.
func OnCleanup(fn func()) {
	internal.GetRuntime().OnCleanup(fn)
}

// Owner ties the lifetime of subscriptions and child owners to a single Dispose call.
type Owner struct {
	owner *internal.Owner
}

// NewOwner creates a new owner.
// An owner manages the lifecycle of the subscriptions made within its context.
func NewOwner() *Owner {
	return &Owner{
		internal.GetRuntime().NewOwner(),
	}
}

// Run a function within the context of this owner.
// Each subscription and owner created within the function will be a child of this owner,
// and will be disposed when owner.Dispose() is called on this owner.
func (o *Owner) Run(fn func() error) error {
	var err error
	o.owner.Run(func() { err = fn() })
	return err
}

// Dispose this owner and all its children.
func (o *Owner) Dispose() { o.owner.Dispose() }

// Disposed reports whether Dispose was called.
func (o *Owner) Disposed() bool { return o.owner.Disposed() }

// Add a cleanup function to be called ONCE when the owner is disposed.
func (o *Owner) OnCleanup(fn func()) { o.owner.OnCleanup(fn) }

// Add a function to be called when the owner is disposed (each time Dispose is called).
func (o *Owner) OnDispose(fn func()) { o.owner.OnDispose(fn) }

// Add a function to be called when a panic occurs within this owner, or within an observer subscribed under it.
// If no error listener is registered up the owner chain, the panic will propagate as usual.
func (o *Owner) OnError(fn func(any)) { o.owner.OnError(fn) }
