package observer

import "puremvc/pkg/mvc"

// Notifier is embedded by commands, mediators and proxies that send
// notifications. The Facade is injected when the collaborator is registered
// (mediators, proxies) or instantiated (commands).
type Notifier struct {
	facade mvc.Facade
}

// SetFacade installs the Facade used by SendNotification.
func (n *Notifier) SetFacade(f mvc.Facade) { n.facade = f }

// Facade returns the injected Facade, or nil before injection.
func (n *Notifier) Facade() mvc.Facade { return n.facade }

// SendNotification builds and dispatches a notification through the Facade.
func (n *Notifier) SendNotification(name string, body any, typ string) error {
	if n.facade == nil {
		return mvc.ErrNotWired("notifier facade")
	}
	return n.facade.SendNotification(name, body, typ)
}
