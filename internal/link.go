package internal

// Subscription links an observer to a subject.
// A subject's subscriptions form a doubly linked list kept in subscription order.
type Subscription struct {
	subject  *Subject
	observer func(Notification)

	// the owner that was current when the subscription was made,
	// observer callbacks run under it
	owner *Owner

	closed bool

	prevSub *Subscription
	nextSub *Subscription
}

func (sub *Subscription) Unsubscribe() {
	if sub.closed {
		return
	}
	sub.closed = true

	if sub.subject != nil {
		sub.subject.removeSubLink(sub)
	}
}

func (sub *Subscription) Closed() bool {
	return sub.closed
}

func (sub *Subscription) deliver(r *Runtime, n Notification) {
	if n.IsTerminal() {
		// terminal signals unsubscribe before the observer sees them
		sub.closed = true
	}

	if sub.owner == nil {
		sub.observer(n)
		return
	}

	r.tracker.RunWithOwner(sub.owner, func() { sub.observer(n) })
}
