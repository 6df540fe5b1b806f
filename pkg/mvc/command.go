package mvc

import "fmt"

// CommandConstructor produces a fresh Command for one dispatch.
type CommandConstructor func() Command

// CommandFactory turns a constructor into a ready-to-run Command. Hosts plug
// in their own to customize instantiation or dependency injection.
type CommandFactory interface {
	Create(CommandConstructor) (Command, error)
}

// CommandFactoryFunc adapts a function to CommandFactory.
type CommandFactoryFunc func(CommandConstructor) (Command, error)

func (f CommandFactoryFunc) Create(ctor CommandConstructor) (Command, error) { return f(ctor) }

// Instantiate runs ctor and, if the command is a Notifier, injects facade.
// A nil constructor, a nil result, or a panicking constructor all yield an
// instantiation error carrying the cause.
func Instantiate(ctor CommandConstructor, facade Facade) (cmd Command, err error) {
	if ctor == nil {
		return nil, ErrInstantiation(ErrNilArgument("command constructor"))
	}
	defer func() {
		if r := recover(); r != nil {
			cmd = nil
			if e, ok := r.(error); ok {
				err = ErrInstantiation(e)
				return
			}
			err = ErrInstantiation(fmt.Errorf("constructor panic: %v", r))
		}
	}()
	cmd = ctor()
	if cmd == nil {
		return nil, ErrInstantiation(errNilCommand)
	}
	if n, ok := cmd.(Notifier); ok {
		n.SetFacade(facade)
	}
	return cmd, nil
}
