// Package controller implements the Controller: it remembers which command
// handles which notification, observes those notifications on the View, and
// runs a fresh command instance for each one.
package controller

import (
	"github.com/rs/zerolog"

	"puremvc/pkg/mvc"
)

var _ mvc.Controller = (*Controller)(nil)

// Controller is not safe for concurrent use.
type Controller struct {
	commandMap       map[string]mvc.CommandConstructor
	observed         map[string]bool // names the Controller has subscribed to
	observerRegistry mvc.ObserverRegistry
	facade           mvc.Facade
	commandFactory   mvc.CommandFactory
	log              zerolog.Logger
}

// New returns a Controller using factory to build commands. A nil factory
// selects the default one (see Instantiate in package mvc).
func New(factory mvc.CommandFactory) *Controller {
	c := &Controller{
		commandMap: make(map[string]mvc.CommandConstructor),
		observed:   make(map[string]bool),
		log:        zerolog.Nop(),
	}
	if factory == nil {
		factory = defaultCommandFactory{c: c}
	}
	c.commandFactory = factory
	return c
}

// SetLogger installs a structured logger.
func (c *Controller) SetLogger(l zerolog.Logger) { c.log = l }

// SetObserverRegistry wires the View the Controller subscribes through.
func (c *Controller) SetObserverRegistry(r mvc.ObserverRegistry) { c.observerRegistry = r }

// SetFacade sets the Facade injected into Notifier commands.
func (c *Controller) SetFacade(f mvc.Facade) { c.facade = f }

// Facade returns the Facade injected into Notifier commands.
func (c *Controller) Facade() mvc.Facade { return c.facade }

// ExecuteCommand runs the command registered for n's name, if any. Errors
// from instantiation or from Execute are returned unchanged.
func (c *Controller) ExecuteCommand(n mvc.Notification) error {
	ctor, ok := c.commandMap[n.Name()]
	if !ok {
		return nil
	}
	cmd, err := c.commandFactory.Create(ctor)
	if err != nil {
		commandErrors.WithLabelValues(n.Name(), "instantiation").Inc()
		c.log.Error().Err(err).Str("notification", n.Name()).Msg("command instantiation failed")
		return err
	}
	commandsExecuted.WithLabelValues(n.Name()).Inc()
	if err := cmd.Execute(n); err != nil {
		commandErrors.WithLabelValues(n.Name(), "execute").Inc()
		c.log.Error().Err(err).Str("notification", n.Name()).Msg("command failed")
		return err
	}
	return nil
}

// RegisterCommand binds ctor to notifications named name and returns the
// constructor it replaced, if any.
//
// The Controller only subscribes to name the first time it is ever
// registered; a later registration, including one after RemoveCommand, swaps
// the constructor behind the existing observer.
func (c *Controller) RegisterCommand(name string, ctor mvc.CommandConstructor) (mvc.CommandConstructor, error) {
	if name == "" {
		return nil, mvc.ErrNilArgument("notification name")
	}
	if ctor == nil {
		return nil, mvc.ErrNilArgument("command constructor")
	}
	if c.observerRegistry == nil {
		return nil, mvc.ErrNotWired("controller observer registry")
	}
	if !c.observed[name] {
		if err := c.observerRegistry.RegisterObserver(name, mvc.NewObserver(c.ExecuteCommand, c)); err != nil {
			return nil, err
		}
		c.observed[name] = true
	}
	prev, existed := c.commandMap[name]
	c.commandMap[name] = ctor
	c.log.Debug().Str("notification", name).Bool("replaced", existed).Msg("command registered")
	return prev, nil
}

// RemoveCommand drops the constructor bound to name and returns it, or nil.
//
// The observer registered for name stays in place: a later notification is a
// lookup miss, and a later RegisterCommand reuses that observer.
func (c *Controller) RemoveCommand(name string) mvc.CommandConstructor {
	ctor, ok := c.commandMap[name]
	if !ok {
		return nil
	}
	delete(c.commandMap, name)
	c.log.Debug().Str("notification", name).Msg("command removed")
	return ctor
}

// HasCommand reports whether a command is currently bound to name.
func (c *Controller) HasCommand(name string) bool {
	_, ok := c.commandMap[name]
	return ok
}

type defaultCommandFactory struct{ c *Controller }

func (f defaultCommandFactory) Create(ctor mvc.CommandConstructor) (mvc.Command, error) {
	return mvc.Instantiate(ctor, f.c.Facade())
}
