// Package sanitize is the single chokepoint every chat/log message passes
// through before it reaches the history. Server-originated rich text is
// reduced to a small inline-formatting allow-list; plain text is stored
// verbatim, never escaped.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"

	"mythosclient/internal/game/state"
)

// policy permits inline formatting only. No attributes survive, which rules
// out style, on* handlers, and javascript: URLs wholesale; anchors, scripts,
// and iframes are stripped entirely.
var policy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "em", "strong", "u", "s", "br", "p", "span", "code")
	return p
}()

// Message normalizes a handler-built message into its canonical, safe shape.
// Re-sanitizing an already-sanitized message is a no-op.
func Message(msg state.ChatMessage) state.ChatMessage {
	raw := msg.RawText
	if raw == "" {
		raw = msg.Text
	}
	msg.RawText = raw

	if msg.IsHTML {
		msg.Text = policy.Sanitize(raw)
	} else {
		msg.Text = raw
	}

	if msg.Type == "" {
		msg.Type = "system"
	}
	if msg.Channel == "" {
		msg.Channel = "system"
	}
	if msg.MessageType == "" {
		msg.MessageType = msg.Type
	}

	return msg
}
