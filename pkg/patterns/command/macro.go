package command

import (
	"puremvc/pkg/mvc"
	"puremvc/pkg/patterns/observer"
)

// MacroCommand runs a fixed list of sub-commands, first added first run.
// Each sub-command is built fresh through mvc.Instantiate and receives the
// MacroCommand's own Facade.
type MacroCommand struct {
	observer.Notifier
	subCommands []mvc.CommandConstructor
}

// NewMacroCommand returns a MacroCommand running ctors in order.
func NewMacroCommand(ctors ...mvc.CommandConstructor) *MacroCommand {
	return &MacroCommand{subCommands: ctors}
}

// AddSubCommand appends ctor to the run list.
func (c *MacroCommand) AddSubCommand(ctor mvc.CommandConstructor) {
	c.subCommands = append(c.subCommands, ctor)
}

// Execute runs the sub-commands in order with n. It stops at the first
// instantiation or execution error and returns it.
func (c *MacroCommand) Execute(n mvc.Notification) error {
	for _, ctor := range c.subCommands {
		cmd, err := mvc.Instantiate(ctor, c.Facade())
		if err != nil {
			return err
		}
		if err := cmd.Execute(n); err != nil {
			return err
		}
	}
	return nil
}
