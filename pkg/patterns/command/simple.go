// Package command provides base command implementations.
package command

import (
	"puremvc/pkg/mvc"
	"puremvc/pkg/patterns/observer"
)

// SimpleCommand is embedded by commands that need to send notifications.
// The embedding type supplies its own Execute.
type SimpleCommand struct {
	observer.Notifier
}

// Execute does nothing; embedding types override it.
func (c *SimpleCommand) Execute(mvc.Notification) error { return nil }
