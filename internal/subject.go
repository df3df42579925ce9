package internal

import "iter"

// Subject is a hot, multicast source of notifications.
// It is not safe for concurrent use.
type Subject struct {
	subsHead *Subscription

	// set by the first terminal signal, nil while the subject is live
	terminal *Notification
}

func (r *Runtime) NewSubject() *Subject {
	return &Subject{}
}

func (s *Subject) Subscribe(observer func(Notification)) *Subscription {
	r := GetRuntime()

	sub := &Subscription{
		subject:  s,
		observer: observer,
		owner:    r.CurrentOwner(),
	}

	if s.terminal != nil {
		// late subscribers only get the terminal signal
		sub.subject = nil
		r.Emit(delivery{sub: sub, n: *s.terminal})
		return sub
	}

	s.addSubLink(sub)

	if sub.owner != nil {
		sub.owner.OnCleanup(sub.Unsubscribe)
	}

	return sub
}

func (s *Subject) Next(v any) {
	if s.terminal != nil {
		return
	}

	GetRuntime().Emit(delivery{subject: s, n: Notification{Kind: KindNext, Value: v}})
}

func (s *Subject) Error(err error) {
	s.terminate(Notification{Kind: KindError, Err: err})
}

func (s *Subject) Complete() {
	s.terminate(Notification{Kind: KindComplete})
}

func (s *Subject) Closed() bool {
	return s.terminal != nil
}

// Err returns the error the subject terminated with, if any.
func (s *Subject) Err() error {
	if s.terminal == nil {
		return nil
	}

	return s.terminal.Err
}

func (s *Subject) terminate(n Notification) {
	if s.terminal != nil {
		return
	}
	s.terminal = &n

	GetRuntime().Emit(delivery{subject: s, n: n})
}

// deliver pushes n to every subscription that is live when delivery starts.
func (s *Subject) deliver(r *Runtime, n Notification) {
	subs := make([]*Subscription, 0)
	for sub := range s.Subs() {
		subs = append(subs, sub)
	}

	for _, sub := range subs {
		if !sub.closed {
			sub.deliver(r, n)
		}
	}

	if n.IsTerminal() {
		s.clearSubs()
	}
}

// Subs returns an iterator over the live subscriptions in subscription order.
func (s *Subject) Subs() iter.Seq[*Subscription] {
	return func(yield func(*Subscription) bool) {
		link := s.subsHead
		for link != nil {
			next := link.nextSub
			if !yield(link) {
				return
			}

			link = next
		}
	}
}

func (s *Subject) addSubLink(link *Subscription) {
	if s.subsHead == nil {
		s.subsHead = link
		link.prevSub = link // loop to self
		link.nextSub = nil
	} else {
		tail := s.subsHead.prevSub
		tail.nextSub = link
		link.prevSub = tail
		link.nextSub = nil
		s.subsHead.prevSub = link
	}
}

func (s *Subject) removeSubLink(link *Subscription) {
	if s.subsHead == nil || link.prevSub == nil {
		return
	}

	if link == s.subsHead {
		s.subsHead = link.nextSub
		if s.subsHead != nil {
			s.subsHead.prevSub = link.prevSub
		}
	} else {
		link.prevSub.nextSub = link.nextSub
		if link.nextSub != nil {
			link.nextSub.prevSub = link.prevSub
		} else {
			s.subsHead.prevSub = link.prevSub
		}
	}

	link.prevSub = nil
	link.nextSub = nil
	link.subject = nil
}

func (s *Subject) clearSubs() {
	for link := s.subsHead; link != nil; {
		next := link.nextSub
		link.closed = true
		link.prevSub = nil
		link.nextSub = nil
		link.subject = nil
		link = next
	}

	s.subsHead = nil
}
