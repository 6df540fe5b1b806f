// Package view implements the View: the registry that maps notification names
// to observer lists and mediator names to mediators, and routes notifications
// to observers.
package view

import (
	"github.com/rs/zerolog"

	"puremvc/pkg/mvc"
	"puremvc/pkg/patterns/observer"
)

var _ mvc.View = (*View)(nil)

// View is not safe for concurrent use.
type View struct {
	observerMap map[string]*observer.Observers
	mediatorMap map[string]mvc.Mediator
	// observers created for each mediator, removed by identity
	mediatorObservers map[string][]subscription
	log               zerolog.Logger
}

type subscription struct {
	name     string
	observer *mvc.Observer
}

// New returns an empty View.
func New() *View {
	return &View{
		observerMap:       make(map[string]*observer.Observers),
		mediatorMap:       make(map[string]mvc.Mediator),
		mediatorObservers: make(map[string][]subscription),
		log:               zerolog.Nop(),
	}
}

// SetLogger installs a structured logger.
func (v *View) SetLogger(l zerolog.Logger) { v.log = l }

// RegisterObserver appends o to the observers of name, creating the list on
// first use.
func (v *View) RegisterObserver(name string, o *mvc.Observer) error {
	if list, ok := v.observerMap[name]; ok {
		return list.AddObserver(o)
	}
	list, err := observer.NewObservers(name, o)
	if err != nil {
		return err
	}
	v.observerMap[name] = list
	v.log.Debug().Str("notification", name).Msg("observer list created")
	return nil
}

// RemoveObserver drops every observer of name owned by context. An emptied
// list is removed from the registry.
func (v *View) RemoveObserver(name string, context any) {
	list, ok := v.observerMap[name]
	if !ok {
		return
	}
	for _, o := range list.Observers() {
		if o.CompareNotifyContext(context) {
			v.deleteObserver(name, o)
		}
	}
}

// deleteObserver removes o from the list for name, dropping the list once
// it is empty.
func (v *View) deleteObserver(name string, o *mvc.Observer) {
	list, ok := v.observerMap[name]
	if !ok {
		return
	}
	_ = list.DeleteObserver(o)
	if list.Len() == 0 {
		delete(v.observerMap, name)
		v.log.Debug().Str("notification", name).Msg("observer list removed")
	}
}

// NotifyObservers fans n out to its observers in registration order. A name
// nobody observes is not an error.
func (v *View) NotifyObservers(n mvc.Notification) error {
	if n.IsZero() {
		return mvc.ErrNilArgument("notification")
	}
	notificationsTotal.WithLabelValues(n.Name()).Inc()
	list, ok := v.observerMap[n.Name()]
	if !ok {
		return nil
	}
	observersNotified.WithLabelValues(n.Name()).Add(float64(list.Len()))
	v.log.Debug().Str("notification", n.Name()).Int("observers", list.Len()).Msg("notify")
	return list.NotifyObservers(n)
}

// RegisterMediator stores m under its name and subscribes it to each of its
// notification interests, then calls OnRegister. A mediator already stored
// under the same name is removed first.
func (v *View) RegisterMediator(m mvc.Mediator) error {
	if m == nil {
		return mvc.ErrNilArgument("mediator")
	}
	name := m.Name()
	if name == "" {
		return mvc.ErrNilArgument("mediator name")
	}
	interests := m.ListNotificationInterests()
	for _, interest := range interests {
		if interest == "" {
			return mvc.ErrNilArgument("mediator interest")
		}
	}
	if _, ok := v.mediatorMap[name]; ok {
		v.RemoveMediator(name)
	}
	v.mediatorMap[name] = m
	subs := make([]subscription, 0, len(interests))
	for _, interest := range interests {
		o := mvc.NewObserver(m.HandleNotification, m)
		_ = v.RegisterObserver(interest, o)
		subs = append(subs, subscription{name: interest, observer: o})
	}
	v.mediatorObservers[name] = subs
	v.log.Debug().Str("mediator", name).Strs("interests", interests).Msg("mediator registered")
	m.OnRegister()
	return nil
}

// RetrieveMediator returns the mediator registered as name, or nil.
func (v *View) RetrieveMediator(name string) mvc.Mediator {
	return v.mediatorMap[name]
}

// HasMediator reports whether a mediator is registered as name.
func (v *View) HasMediator(name string) bool {
	_, ok := v.mediatorMap[name]
	return ok
}

// RemoveMediator unsubscribes the observers created when the mediator was
// registered, drops it and calls OnRemove. It returns the removed mediator, or nil.
func (v *View) RemoveMediator(name string) mvc.Mediator {
	m, ok := v.mediatorMap[name]
	if !ok {
		return nil
	}
	for _, sub := range v.mediatorObservers[name] {
		v.deleteObserver(sub.name, sub.observer)
	}
	delete(v.mediatorObservers, name)
	delete(v.mediatorMap, name)
	v.log.Debug().Str("mediator", name).Msg("mediator removed")
	m.OnRemove()
	return m
}
