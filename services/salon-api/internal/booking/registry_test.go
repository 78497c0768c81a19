package booking

import (
	"testing"
	"time"
)

func TestRegistryGetReusesLiveSession(t *testing.T) {
	reg := NewRegistry(time.Minute)
	token, composer := reg.Get("")
	if token == "" {
		t.Fatal("empty token issued")
	}
	composer.ToggleService(testCatalog()[0])

	again, c := reg.Get(token)
	if again != token || c != composer {
		t.Fatalf("known token did not return the same session")
	}
}

func TestRegistryDropRetiresSession(t *testing.T) {
	reg := NewRegistry(time.Minute)
	token, composer := reg.Get("")
	composer.ToggleService(testCatalog()[0])
	composer.AdvanceToCheckout()

	reg.Drop(token)

	fresh, c := reg.Get(token)
	if fresh == token {
		t.Fatalf("dropped token was reused")
	}
	if len(c.Cart()) != 0 || c.Step() != StepSelection {
		t.Fatalf("session after drop is not fresh: step=%v cart=%v", c.Step(), c.Cart())
	}
}
