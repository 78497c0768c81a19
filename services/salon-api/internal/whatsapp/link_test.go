package whatsapp

import (
	"strings"
	"testing"
)

func TestDeepLinkStripsNonDigits(t *testing.T) {
	link := DeepLink("(11) 99999-9999", "oi")
	if link != "https://wa.me/11999999999?text=oi" {
		t.Fatalf("unexpected link: %s", link)
	}
}

func TestDeepLinkEncodesMessage(t *testing.T) {
	link := DeepLink("5511999999999", "Olá! Tudo bem?")
	if !strings.HasPrefix(link, "https://wa.me/5511999999999?text=") {
		t.Fatalf("unexpected prefix: %s", link)
	}
	if strings.ContainsAny(link, " á!") {
		t.Fatalf("message not encoded: %s", link)
	}
	if strings.Count(link, "?") != 1 {
		t.Fatalf("query separator not the only ? in %s", link)
	}
}

func TestReminderMessageSubstitution(t *testing.T) {
	msg := ReminderMessage("Maria", "2025-03-15", "14:30", "Corte Feminino", "Glow Beauty Studio")
	for _, want := range []string{"Maria", "2025-03-15", "14:30", "Corte Feminino", "Glow Beauty Studio"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q: %s", want, msg)
		}
	}
	if strings.Contains(msg, "{") {
		t.Fatalf("unfilled placeholder in %s", msg)
	}
}
