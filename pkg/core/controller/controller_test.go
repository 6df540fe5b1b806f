package controller

import (
	"errors"
	"testing"

	"puremvc/pkg/core/view"
	"puremvc/pkg/mvc"
	"puremvc/pkg/patterns/command"
)

// tally counts constructions and executions of the commands built by ctor.
type tally struct {
	built    int
	executed []mvc.Notification
	err      error
}

type tallyCommand struct {
	command.SimpleCommand
	p *tally
}

func (c *tallyCommand) Execute(n mvc.Notification) error {
	c.p.executed = append(c.p.executed, n)
	return c.p.err
}

func (p *tally) ctor() mvc.CommandConstructor {
	return func() mvc.Command {
		p.built++
		return &tallyCommand{p: p}
	}
}

func newWired() (*Controller, *view.View) {
	v := view.New()
	c := New(nil)
	c.SetObserverRegistry(v)
	return c, v
}

func TestRegisterCommand_ExecutesOncePerNotification(t *testing.T) {
	c, v := newWired()
	p := &tally{}
	prev, err := c.RegisterCommand("APP_START", p.ctor())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if prev != nil {
		t.Fatalf("first registration must not return a previous constructor")
	}
	if err := v.NotifyObservers(mvc.NewNotification("APP_START", map[string]int{"config": 1}, "")); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if p.built != 1 || len(p.executed) != 1 {
		t.Fatalf("built=%d executed=%d want 1/1", p.built, len(p.executed))
	}
	if p.executed[0].Name() != "APP_START" {
		t.Fatalf("executed with %q", p.executed[0].Name())
	}
	if body := p.executed[0].Body().(map[string]int); body["config"] != 1 {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestRegisterCommand_ReplaceDoesNotDuplicateObserver(t *testing.T) {
	c, v := newWired()
	p1, p2 := &tally{}, &tally{}
	_, _ = c.RegisterCommand("N", p1.ctor())
	prev, err := c.RegisterCommand("N", p2.ctor())
	if err != nil {
		t.Fatalf("re-register: %v", err)
	}
	if prev == nil {
		t.Fatalf("re-registration must return the replaced constructor")
	}
	_ = v.NotifyObservers(mvc.NewNotification("N", nil, ""))
	if p1.built != 0 {
		t.Fatalf("replaced command still built %d times", p1.built)
	}
	if p2.built != 1 || len(p2.executed) != 1 {
		t.Fatalf("replacement built=%d executed=%d want 1/1", p2.built, len(p2.executed))
	}
}

func TestRemoveCommand(t *testing.T) {
	c, v := newWired()
	p := &tally{}
	_, _ = c.RegisterCommand("N", p.ctor())
	if !c.HasCommand("N") {
		t.Fatalf("expected HasCommand true")
	}
	if removed := c.RemoveCommand("N"); removed == nil {
		t.Fatalf("RemoveCommand must return the removed constructor")
	}
	if c.HasCommand("N") {
		t.Fatalf("expected HasCommand false after removal")
	}
	if err := v.NotifyObservers(mvc.NewNotification("N", nil, "")); err != nil {
		t.Fatalf("notify after removal: %v", err)
	}
	if p.built != 0 {
		t.Fatalf("removed command executed")
	}
	if c.RemoveCommand("N") != nil {
		t.Fatalf("removing an absent command must return nil")
	}
}

func TestRegisterAfterRemove_ReusesObserver(t *testing.T) {
	c, v := newWired()
	p := &tally{}
	_, _ = c.RegisterCommand("N", p.ctor())
	c.RemoveCommand("N")
	if prev, err := c.RegisterCommand("N", p.ctor()); err != nil || prev != nil {
		t.Fatalf("re-register after removal: prev=%v err=%v", prev, err)
	}
	_ = v.NotifyObservers(mvc.NewNotification("N", nil, ""))
	if p.built != 1 {
		t.Fatalf("expected exactly one execution, got %d", p.built)
	}
}

func TestRegisterCommand_Errors(t *testing.T) {
	p := &tally{}
	unwired := New(nil)
	if _, err := unwired.RegisterCommand("N", p.ctor()); !mvc.IsNotWired(err) {
		t.Fatalf("expected not-wired error, got %v", err)
	}
	c, _ := newWired()
	if _, err := c.RegisterCommand("", p.ctor()); !mvc.IsNilArgument(err) {
		t.Fatalf("expected nil-argument error for empty name, got %v", err)
	}
	if _, err := c.RegisterCommand("N", nil); !mvc.IsNilArgument(err) {
		t.Fatalf("expected nil-argument error for nil constructor, got %v", err)
	}
	if c.HasCommand("N") {
		t.Fatalf("failed registration must not bind a command")
	}
}

func TestExecuteCommand_ErrorPropagates(t *testing.T) {
	c, v := newWired()
	boom := errors.New("boom")
	p := &tally{err: boom}
	_, _ = c.RegisterCommand("N", p.ctor())
	if err := v.NotifyObservers(mvc.NewNotification("N", nil, "")); err != boom {
		t.Fatalf("expected command error unchanged, got %v", err)
	}
}

func TestExecuteCommand_InstantiationError(t *testing.T) {
	c, v := newWired()
	_, _ = c.RegisterCommand("N", func() mvc.Command { panic("no default constructor") })
	err := v.NotifyObservers(mvc.NewNotification("N", nil, ""))
	if !mvc.IsInstantiation(err) {
		t.Fatalf("expected instantiation error, got %v", err)
	}
	// fatal for that dispatch only
	p := &tally{}
	_, _ = c.RegisterCommand("N", p.ctor())
	if err := v.NotifyObservers(mvc.NewNotification("N", nil, "")); err != nil {
		t.Fatalf("later dispatch failed: %v", err)
	}
}

func TestExecuteCommand_LookupMiss(t *testing.T) {
	c := New(nil)
	if err := c.ExecuteCommand(mvc.NewNotification("UNMAPPED", nil, "")); err != nil {
		t.Fatalf("lookup miss should be a no-op: %v", err)
	}
}

// facadeStub stands in for the Facade injected into notifier commands.
type facadeStub struct{ mvc.Facade }

func TestDefaultFactory_InjectsFacade(t *testing.T) {
	c, v := newWired()
	f := &facadeStub{}
	c.SetFacade(f)
	var injected mvc.Facade
	_, _ = c.RegisterCommand("N", func() mvc.Command {
		return &facadeCapture{got: &injected}
	})
	_ = v.NotifyObservers(mvc.NewNotification("N", nil, ""))
	if injected != mvc.Facade(f) {
		t.Fatalf("facade not injected: %v", injected)
	}
}

type facadeCapture struct {
	command.SimpleCommand
	got *mvc.Facade
}

func (c *facadeCapture) Execute(mvc.Notification) error {
	*c.got = c.Facade()
	return nil
}

func TestCustomFactory(t *testing.T) {
	var created int
	factory := mvc.CommandFactoryFunc(func(ctor mvc.CommandConstructor) (mvc.Command, error) {
		created++
		return ctor(), nil
	})
	v := view.New()
	c := New(factory)
	c.SetObserverRegistry(v)
	p := &tally{}
	_, _ = c.RegisterCommand("N", p.ctor())
	_ = v.NotifyObservers(mvc.NewNotification("N", nil, ""))
	if created != 1 || p.built != 1 {
		t.Fatalf("custom factory not used: created=%d built=%d", created, p.built)
	}
}
