package whatsapp

import (
	"net/url"
	"strings"
)

// DeepLink builds a https://wa.me/<phone>?text=<message> link. All non-digit
// characters are stripped from the destination number before the link is
// composed; the message is percent-encoded.
func DeepLink(phone, message string) string {
	return "https://wa.me/" + DigitsOnly(phone) + "?text=" + url.QueryEscape(message)
}

func DigitsOnly(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
