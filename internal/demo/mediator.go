package demo

import (
	"puremvc/pkg/mvc"
	"puremvc/pkg/patterns/mediator"
)

// RecorderMediator journals every notification it is interested in.
type RecorderMediator struct {
	*mediator.Mediator
	interests []string
}

func NewRecorderMediator(name string, interests []string) *RecorderMediator {
	return &RecorderMediator{Mediator: mediator.New(name, nil), interests: interests}
}

func (m *RecorderMediator) ListNotificationInterests() []string { return m.interests }

func (m *RecorderMediator) HandleNotification(n mvc.Notification) error {
	j, err := journal(m.Facade())
	if err != nil {
		return err
	}
	j.Append("mediator %s: %s", m.Name(), describe(n))
	return nil
}

func (m *RecorderMediator) OnRegister() {
	if j, err := journal(m.Facade()); err == nil {
		j.Append("mediator %s registered", m.Name())
	}
}

func (m *RecorderMediator) OnRemove() {
	if j, err := journal(m.Facade()); err == nil {
		j.Append("mediator %s removed", m.Name())
	}
}
