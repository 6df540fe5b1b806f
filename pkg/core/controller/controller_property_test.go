package controller

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"puremvc/pkg/mvc"
)

func TestControllerProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: one registration, one notification, exactly one command built and run
	properties.Property("one command per notification", prop.ForAll(
		func(name string) bool {
			c, v := newWired()
			p := &tally{}
			if _, err := c.RegisterCommand(name, p.ctor()); err != nil {
				return false
			}
			if err := v.NotifyObservers(mvc.NewNotification(name, nil, "")); err != nil {
				return false
			}
			return p.built == 1 && len(p.executed) == 1 && p.executed[0].Name() == name
		},
		gen.Identifier(),
	))

	// Property: after any number of re-registrations only the last binding runs, once
	properties.Property("re-registration replaces without duplicating", prop.ForAll(
		func(name string, times int) bool {
			c, v := newWired()
			tallies := make([]*tally, times)
			for i := range tallies {
				tallies[i] = &tally{}
				if _, err := c.RegisterCommand(name, tallies[i].ctor()); err != nil {
					return false
				}
			}
			if err := v.NotifyObservers(mvc.NewNotification(name, nil, "")); err != nil {
				return false
			}
			for i, p := range tallies {
				want := 0
				if i == len(tallies)-1 {
					want = 1
				}
				if p.built != want {
					return false
				}
			}
			return true
		},
		gen.Identifier(),
		gen.IntRange(1, 10),
	))

	// Property: remove returns the binding and silences the name
	properties.Property("remove silences the name", prop.ForAll(
		func(name string) bool {
			c, v := newWired()
			p := &tally{}
			_, _ = c.RegisterCommand(name, p.ctor())
			if c.RemoveCommand(name) == nil {
				return false
			}
			if err := v.NotifyObservers(mvc.NewNotification(name, nil, "")); err != nil {
				return false
			}
			return p.built == 0
		},
		gen.Identifier(),
	))

	properties.TestingRun(t)
}
