// Package mediator provides a base Mediator to embed.
package mediator

import (
	"puremvc/pkg/mvc"
	"puremvc/pkg/patterns/observer"
)

// Name is used when a Mediator is created without one.
const Name = "Mediator"

// Mediator implements mvc.Mediator with no interests and no-op hooks.
// Embedding types override ListNotificationInterests and HandleNotification.
type Mediator struct {
	observer.Notifier
	name          string
	viewComponent any
}

// New returns a Mediator named name (Name if empty) holding viewComponent.
func New(name string, viewComponent any) *Mediator {
	if name == "" {
		name = Name
	}
	return &Mediator{name: name, viewComponent: viewComponent}
}

func (m *Mediator) Name() string                              { return m.name }
func (m *Mediator) ViewComponent() any                        { return m.viewComponent }
func (m *Mediator) SetViewComponent(c any)                    { m.viewComponent = c }
func (m *Mediator) ListNotificationInterests() []string       { return nil }
func (m *Mediator) HandleNotification(mvc.Notification) error { return nil }
func (m *Mediator) OnRegister()                               {}
func (m *Mediator) OnRemove()                                 {}
