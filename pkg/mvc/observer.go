package mvc

import "reflect"

// NotifyFunc is the callback an Observer invokes.
type NotifyFunc func(Notification) error

// Observer pairs a callback with the object that registered it. The context
// is only compared for identity during removal; it is never dereferenced, so
// it does not need to be the receiver of notify. An uncomparable context
// never matches.
type Observer struct {
	notify  NotifyFunc
	context any
}

// NewObserver builds an Observer for notify owned by context.
func NewObserver(notify NotifyFunc, context any) *Observer {
	return &Observer{notify: notify, context: context}
}

// NotifyObserver hands n to the callback and returns its error.
func (o *Observer) NotifyObserver(n Notification) error {
	if o.notify == nil {
		return nil
	}
	return o.notify(n)
}

// CompareNotifyContext reports whether ctx is the observer's context.
func (o *Observer) CompareNotifyContext(ctx any) bool {
	if !isComparable(o.context) || !isComparable(ctx) {
		return false
	}
	return o.context == ctx
}

func isComparable(v any) bool {
	return v == nil || reflect.TypeOf(v).Comparable()
}

// Callback returns the function the observer invokes.
func (o *Observer) Callback() NotifyFunc { return o.notify }

// Context returns the owning object handle.
func (o *Observer) Context() any { return o.context }
