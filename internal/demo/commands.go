package demo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"puremvc/pkg/mvc"
	"puremvc/pkg/patterns/command"
)

// ErrCommandFailed is returned by the fail builtin.
var ErrCommandFailed = errors.New("command failed")

// RecordCommand writes the notification into the journal.
type RecordCommand struct {
	command.SimpleCommand
}

func (c *RecordCommand) Execute(n mvc.Notification) error {
	j, err := journal(c.Facade())
	if err != nil {
		return err
	}
	j.Append("command record: %s", describe(n))
	return nil
}

// LogCommand writes the notification to the structured log.
type LogCommand struct {
	command.SimpleCommand
	log zerolog.Logger
}

func (c *LogCommand) Execute(n mvc.Notification) error {
	c.log.Info().Str("notification", n.Name()).Interface("body", n.Body()).Str("type", n.Type()).Msg("log command")
	return nil
}

// FailCommand always fails with ErrCommandFailed.
type FailCommand struct {
	command.SimpleCommand
}

func (c *FailCommand) Execute(n mvc.Notification) error {
	return fmt.Errorf("%s: %w", n.Name(), ErrCommandFailed)
}

// Builtins returns the constructors selectable from a script by name.
// macro runs log then record.
func Builtins(l zerolog.Logger) map[string]mvc.CommandConstructor {
	logCtor := func() mvc.Command { return &LogCommand{log: l} }
	recordCtor := func() mvc.Command { return &RecordCommand{} }
	return map[string]mvc.CommandConstructor{
		"log":    logCtor,
		"record": recordCtor,
		"fail":   func() mvc.Command { return &FailCommand{} },
		"macro": func() mvc.Command {
			return command.NewMacroCommand(logCtor, recordCtor)
		},
	}
}

// BuiltinNames lists the builtin command names, sorted.
func BuiltinNames() []string {
	var names []string
	for name := range Builtins(zerolog.Nop()) {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
