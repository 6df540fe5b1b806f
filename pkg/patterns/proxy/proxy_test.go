package proxy

import (
	"testing"

	"puremvc/pkg/mvc"
)

func TestProxy(t *testing.T) {
	p := New("", nil)
	if p.Name() != Name {
		t.Fatalf("Name()=%q want %q", p.Name(), Name)
	}
	p.SetData([]int{1, 2})
	if d, ok := p.Data().([]int); !ok || len(d) != 2 {
		t.Fatalf("Data()=%v", p.Data())
	}
	p.OnRegister()
	p.OnRemove()
	var _ mvc.Proxy = p
	var _ mvc.Notifier = p
}
