package demo

import (
	"fmt"

	"github.com/rs/zerolog"

	"puremvc/internal/config"
	"puremvc/pkg/mvc"
	"puremvc/pkg/patterns/facade"
)

// App runs a config.Script against its own Facade.
type App struct {
	facade  *facade.Facade
	journal *JournalProxy
	script  config.Script
	log     zerolog.Logger
}

// New builds the Facade, registers the journal, the script's commands and
// its mediators, in that order.
func New(script config.Script, l zerolog.Logger) (*App, error) {
	f := facade.NewWithConfig(facade.Config{Logger: &l})
	a := &App{facade: f, journal: NewJournalProxy(), script: script, log: l}
	if err := f.RegisterProxy(a.journal); err != nil {
		return nil, err
	}
	builtins := Builtins(l)
	for _, b := range script.Commands {
		ctor, ok := builtins[b.Command]
		if !ok {
			return nil, fmt.Errorf("unknown command %q for %s (builtins: %v)", b.Command, b.Notification, BuiltinNames())
		}
		if _, err := f.RegisterCommand(b.Notification, ctor); err != nil {
			return nil, fmt.Errorf("register command %s: %w", b.Notification, err)
		}
	}
	for _, m := range script.Mediators {
		if err := f.RegisterMediator(NewRecorderMediator(m.Name, m.Interests)); err != nil {
			return nil, fmt.Errorf("register mediator %s: %w", m.Name, err)
		}
	}
	return a, nil
}

// Facade exposes the application's Facade.
func (a *App) Facade() mvc.Facade { return a.facade }

// Run performs the script steps in order. A failing notification stops the
// run unless ContinueOnError is set; failures are journaled either way. The
// returned error is the first failure.
func (a *App) Run() error {
	var first error
	for i, st := range a.script.Steps {
		switch {
		case st.RemoveCommand != "":
			if a.facade.RemoveCommand(st.RemoveCommand) == nil {
				a.journal.Append("remove command %s: not registered", st.RemoveCommand)
			} else {
				a.journal.Append("remove command %s", st.RemoveCommand)
			}
		case st.RemoveMediator != "":
			if a.facade.RemoveMediator(st.RemoveMediator) == nil {
				a.journal.Append("remove mediator %s: not registered", st.RemoveMediator)
			}
		default:
			if err := a.facade.SendNotification(st.Notification, st.Body, st.Type); err != nil {
				a.journal.Append("error: %s: %v", st.Notification, err)
				a.log.Warn().Err(err).Int("step", i).Str("notification", st.Notification).Msg("step failed")
				if first == nil {
					first = err
				}
				if !a.script.ContinueOnError {
					return first
				}
			}
		}
	}
	return first
}

// Journal returns everything recorded so far.
func (a *App) Journal() []string { return a.journal.Lines() }
