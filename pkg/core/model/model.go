// Package model implements the Model: a registry of named proxies.
package model

import (
	"github.com/rs/zerolog"

	"puremvc/pkg/mvc"
)

var _ mvc.Model = (*Model)(nil)

// Model is not safe for concurrent use.
type Model struct {
	proxyMap map[string]mvc.Proxy
	log      zerolog.Logger
}

func New() *Model {
	return &Model{proxyMap: make(map[string]mvc.Proxy), log: zerolog.Nop()}
}

// SetLogger installs a structured logger.
func (m *Model) SetLogger(l zerolog.Logger) { m.log = l }

// RegisterProxy stores p under its name, replacing any previous proxy with
// that name, and calls OnRegister.
func (m *Model) RegisterProxy(p mvc.Proxy) error {
	if p == nil {
		return mvc.ErrNilArgument("proxy")
	}
	if p.Name() == "" {
		return mvc.ErrNilArgument("proxy name")
	}
	m.proxyMap[p.Name()] = p
	m.log.Debug().Str("proxy", p.Name()).Msg("proxy registered")
	p.OnRegister()
	return nil
}

func (m *Model) RetrieveProxy(name string) mvc.Proxy { return m.proxyMap[name] }

func (m *Model) HasProxy(name string) bool {
	_, ok := m.proxyMap[name]
	return ok
}

// RemoveProxy drops the proxy registered as name, calls OnRemove and returns
// it, or nil when absent.
func (m *Model) RemoveProxy(name string) mvc.Proxy {
	p, ok := m.proxyMap[name]
	if !ok {
		return nil
	}
	delete(m.proxyMap, name)
	m.log.Debug().Str("proxy", name).Msg("proxy removed")
	p.OnRemove()
	return p
}
