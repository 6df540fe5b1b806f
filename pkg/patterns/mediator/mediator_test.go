package mediator

import (
	"testing"

	"puremvc/pkg/mvc"
)

func TestNew_Defaults(t *testing.T) {
	m := New("", nil)
	if m.Name() != Name {
		t.Fatalf("Name()=%q want %q", m.Name(), Name)
	}
	if m.ListNotificationInterests() != nil {
		t.Fatalf("base mediator should have no interests")
	}
	if err := m.HandleNotification(mvc.NewNotification("X", nil, "")); err != nil {
		t.Fatalf("HandleNotification: %v", err)
	}
	m.OnRegister()
	m.OnRemove()
}

func TestViewComponent(t *testing.T) {
	m := New("Form", "widget")
	if m.ViewComponent() != "widget" {
		t.Fatalf("ViewComponent()=%v", m.ViewComponent())
	}
	m.SetViewComponent("other")
	if m.ViewComponent() != "other" {
		t.Fatalf("SetViewComponent did not stick")
	}
	var _ mvc.Mediator = m
	var _ mvc.Notifier = m
}
