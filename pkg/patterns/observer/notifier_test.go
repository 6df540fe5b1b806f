package observer

import (
	"testing"

	"puremvc/pkg/mvc"
)

// sendRecorder is a Facade that only records SendNotification calls.
type sendRecorder struct {
	mvc.Facade
	sent []string
}

func (f *sendRecorder) SendNotification(name string, body any, typ string) error {
	f.sent = append(f.sent, name)
	return nil
}

func TestNotifier_SendWithoutFacade(t *testing.T) {
	var n Notifier
	if err := n.SendNotification("PING", nil, ""); !mvc.IsNotWired(err) {
		t.Fatalf("expected not-wired error, got %v", err)
	}
}

func TestNotifier_SendDelegatesToFacade(t *testing.T) {
	f := &sendRecorder{}
	var n Notifier
	n.SetFacade(f)
	if n.Facade() != mvc.Facade(f) {
		t.Fatalf("Facade() did not return injected facade")
	}
	if err := n.SendNotification("PING", 1, "t"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(f.sent) != 1 || f.sent[0] != "PING" {
		t.Fatalf("sent=%v", f.sent)
	}
}
