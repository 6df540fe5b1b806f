// Package facade provides the Facade: the composition root that holds the
// Model, View and Controller and exposes their registration and notification
// APIs to application code through a single value.
//
// A typical application builds one Facade at start-up, registers its startup
// command, and sends the first notification:
//
//	f := facade.NewWithConfig(facade.Config{})
//	_, _ = f.RegisterCommand("APP_START", NewStartupCommand)
//	err := f.SendNotification("APP_START", app, "")
package facade

import (
	"github.com/rs/zerolog"

	"puremvc/pkg/mvc"
)

var _ mvc.Facade = (*Facade)(nil)

// Facade is not safe for concurrent use.
type Facade struct {
	model      mvc.Model
	view       mvc.View
	controller mvc.Controller
	log        zerolog.Logger
}

// New wires m, v and c together: the Controller observes notifications
// through v and injects the returned Facade into the commands it builds.
func New(m mvc.Model, v mvc.View, c mvc.Controller) *Facade {
	f := &Facade{model: m, view: v, controller: c, log: zerolog.Nop()}
	c.SetObserverRegistry(v)
	c.SetFacade(f)
	return f
}

// RegisterCommand maps name to ctor on the Controller and returns the constructor it replaced.
func (f *Facade) RegisterCommand(name string, ctor mvc.CommandConstructor) (mvc.CommandConstructor, error) {
	return f.controller.RegisterCommand(name, ctor)
}

// RemoveCommand drops the mapping for name and returns its constructor, or nil.
func (f *Facade) RemoveCommand(name string) mvc.CommandConstructor {
	return f.controller.RemoveCommand(name)
}

// HasCommand reports whether a command is mapped to name.
func (f *Facade) HasCommand(name string) bool { return f.controller.HasCommand(name) }

// RegisterProxy injects the Facade into p when it is a Notifier, then
// registers it with the Model.
func (f *Facade) RegisterProxy(p mvc.Proxy) error {
	if p == nil {
		return mvc.ErrNilArgument("proxy")
	}
	if n, ok := p.(mvc.Notifier); ok {
		n.SetFacade(f)
	}
	return f.model.RegisterProxy(p)
}

// RetrieveProxy returns the proxy registered as name, or nil.
func (f *Facade) RetrieveProxy(name string) mvc.Proxy { return f.model.RetrieveProxy(name) }

// RemoveProxy removes the proxy registered as name and returns it, or nil.
func (f *Facade) RemoveProxy(name string) mvc.Proxy { return f.model.RemoveProxy(name) }

// HasProxy reports whether a proxy is registered as name.
func (f *Facade) HasProxy(name string) bool { return f.model.HasProxy(name) }

// RegisterMediator injects the Facade into m when it is a Notifier, then
// registers it with the View.
func (f *Facade) RegisterMediator(m mvc.Mediator) error {
	if m == nil {
		return mvc.ErrNilArgument("mediator")
	}
	if n, ok := m.(mvc.Notifier); ok {
		n.SetFacade(f)
	}
	return f.view.RegisterMediator(m)
}

// RetrieveMediator returns the mediator registered as name, or nil.
func (f *Facade) RetrieveMediator(name string) mvc.Mediator { return f.view.RetrieveMediator(name) }

// RemoveMediator removes the mediator registered as name and returns it, or nil.
func (f *Facade) RemoveMediator(name string) mvc.Mediator { return f.view.RemoveMediator(name) }

// HasMediator reports whether a mediator is registered as name.
func (f *Facade) HasMediator(name string) bool { return f.view.HasMediator(name) }

// SendNotification builds a Notification and notifies its observers. It
// returns once every observer, including any command, has run, or with the
// first error one of them returned.
func (f *Facade) SendNotification(name string, body any, typ string) error {
	f.log.Debug().Str("notification", name).Str("type", typ).Msg("send")
	return f.NotifyObservers(mvc.NewNotification(name, body, typ))
}

// NotifyObservers hands an already built notification to the View.
func (f *Facade) NotifyObservers(n mvc.Notification) error {
	return f.view.NotifyObservers(n)
}
