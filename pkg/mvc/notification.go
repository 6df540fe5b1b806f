package mvc

import "fmt"

// Notification is a named event value broadcast through the framework.
// Fields are unexported so a Notification cannot change after construction.
type Notification struct {
	name string
	body any
	typ  string
}

// NewNotification builds a Notification. body and typ are optional.
func NewNotification(name string, body any, typ string) Notification {
	return Notification{name: name, body: body, typ: typ}
}

func (n Notification) Name() string { return n.name }
func (n Notification) Body() any    { return n.body }
func (n Notification) Type() string { return n.typ }

// IsZero reports whether n is the zero Notification (no name).
func (n Notification) IsZero() bool { return n.name == "" }

func (n Notification) String() string {
	body := "null"
	if n.body != nil {
		body = fmt.Sprintf("%v", n.body)
	}
	typ := n.typ
	if typ == "" {
		typ = "null"
	}
	return "Notification Name: " + n.name + "\nBody:" + body + "\nType:" + typ
}
