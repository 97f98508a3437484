// Package whatsapp builds the order handoff link. The service's
// responsibility ends at producing the URL; nothing is ever dispatched
// from here.
package whatsapp

import (
	"fmt"
	"net/url"
)

// Link builds a wa.me chat link that opens a conversation with the
// given number and the message pre-filled.
func Link(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}
