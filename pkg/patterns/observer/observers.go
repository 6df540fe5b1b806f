// Package observer provides the per-notification observer list and the
// embeddable Notifier base used by commands, mediators and proxies.
package observer

import "puremvc/pkg/mvc"

// Observers holds every observer registered for one notification name, in
// registration order.
type Observers struct {
	observers        []*mvc.Observer
	notificationName string
}

// NewObservers creates the list for name seeded with o.
func NewObservers(name string, o *mvc.Observer) (*Observers, error) {
	if name == "" {
		return nil, mvc.ErrNilArgument("notification name")
	}
	if err := checkObserver(o); err != nil {
		return nil, err
	}
	return &Observers{observers: []*mvc.Observer{o}, notificationName: name}, nil
}

// AddObserver appends o. The same observer may be added more than once.
func (l *Observers) AddObserver(o *mvc.Observer) error {
	if err := checkObserver(o); err != nil {
		return err
	}
	l.observers = append(l.observers, o)
	return nil
}

func checkObserver(o *mvc.Observer) error {
	if o == nil {
		return mvc.ErrNilArgument("observer")
	}
	if o.Callback() == nil {
		return mvc.ErrNilArgument("observer callback")
	}
	return nil
}

// DeleteObserver removes the first occurrence of o. Deleting an observer that
// is not in the list is a no-op.
func (l *Observers) DeleteObserver(o *mvc.Observer) error {
	if o == nil {
		return mvc.ErrNilArgument("observer")
	}
	for i, cur := range l.observers {
		if cur == o {
			l.observers = append(l.observers[:i:i], l.observers[i+1:]...)
			return nil
		}
	}
	return nil
}

// NotifyObservers calls every observer with n, in the order they were added.
// The first error aborts the fan-out: later observers are not called and the
// error is returned unchanged.
func (l *Observers) NotifyObservers(n mvc.Notification) error {
	if n.IsZero() {
		return mvc.ErrNilArgument("notification")
	}
	// iterate a snapshot; callbacks may register or remove observers
	for _, o := range l.Observers() {
		if err := o.NotifyObserver(n); err != nil {
			return err
		}
	}
	return nil
}

// Observers returns a copy of the current observers.
func (l *Observers) Observers() []*mvc.Observer {
	out := make([]*mvc.Observer, len(l.observers))
	copy(out, l.observers)
	return out
}

// Len returns the number of registered observers.
func (l *Observers) Len() int { return len(l.observers) }

// Notification returns the notification name this list belongs to.
func (l *Observers) Notification() string { return l.notificationName }
