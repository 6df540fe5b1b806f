// Package demo is a small application built on the framework. It wires a
// config.Script into a Facade: builtin commands, recorder mediators and a
// journal proxy that collects what happened.
package demo

import (
	"fmt"

	"puremvc/pkg/mvc"
	"puremvc/pkg/patterns/proxy"
)

// JournalProxyName is the Model key of the journal.
const JournalProxyName = "JournalProxy"

// JournalProxy keeps an ordered list of journal lines.
type JournalProxy struct {
	*proxy.Proxy
}

func NewJournalProxy() *JournalProxy {
	return &JournalProxy{Proxy: proxy.New(JournalProxyName, []string{})}
}

// Append adds one line.
func (p *JournalProxy) Append(format string, a ...any) {
	p.SetData(append(p.Lines(), fmt.Sprintf(format, a...)))
}

// Lines returns the journal contents.
func (p *JournalProxy) Lines() []string {
	lines, _ := p.Data().([]string)
	return lines
}

// journal fetches the journal from f's Model.
func journal(f mvc.Facade) (*JournalProxy, error) {
	if f == nil {
		return nil, mvc.ErrNotWired("facade")
	}
	p, ok := f.RetrieveProxy(JournalProxyName).(*JournalProxy)
	if !ok {
		return nil, fmt.Errorf("%s not registered", JournalProxyName)
	}
	return p, nil
}

func describe(n mvc.Notification) string {
	s := n.Name()
	if n.Body() != nil {
		s += fmt.Sprintf(" body=%v", n.Body())
	}
	if n.Type() != "" {
		s += " type=" + n.Type()
	}
	return s
}
