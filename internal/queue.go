package internal

// delivery is a notification waiting to be pushed, either to every
// subscription of a subject or to a single subscription.
type delivery struct {
	subject *Subject
	sub     *Subscription
	n       Notification
}

// NotificationQueue holds pending deliveries in issuance order.
type NotificationQueue struct {
	deliveries []delivery
}

func NewNotificationQueue() *NotificationQueue {
	return &NotificationQueue{
		deliveries: make([]delivery, 0),
	}
}

func (q *NotificationQueue) Enqueue(d delivery) {
	q.deliveries = append(q.deliveries, d)
}

func (q *NotificationQueue) Len() int {
	return len(q.deliveries)
}

// Drain pops deliveries until the queue is empty,
// including those enqueued while draining.
func (q *NotificationQueue) Drain(fn func(delivery)) {
	for len(q.deliveries) > 0 {
		d := q.deliveries[0]
		q.deliveries[0] = delivery{}
		q.deliveries = q.deliveries[1:]

		fn(d)
	}

	q.deliveries = q.deliveries[:0]
}

func (q *NotificationQueue) Reset() {
	clear(q.deliveries)
	q.deliveries = q.deliveries[:0]
}
