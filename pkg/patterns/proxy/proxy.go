// Package proxy provides a base Proxy to embed.
package proxy

import "puremvc/pkg/patterns/observer"

// Name is used when a Proxy is created without one.
const Name = "Proxy"

// Proxy implements mvc.Proxy around an arbitrary data object.
type Proxy struct {
	observer.Notifier
	name string
	data any
}

// New returns a Proxy named name (Name if empty) holding data.
func New(name string, data any) *Proxy {
	if name == "" {
		name = Name
	}
	return &Proxy{name: name, data: data}
}

func (p *Proxy) Name() string  { return p.name }
func (p *Proxy) Data() any     { return p.data }
func (p *Proxy) SetData(d any) { p.data = d }
func (p *Proxy) OnRegister()   {}
func (p *Proxy) OnRemove()     {}
