package sanitize

import (
	"strings"
	"testing"

	"mythosclient/internal/game/state"
)

func TestMessageStripsScripts(t *testing.T) {
	msg := Message(state.ChatMessage{
		Text:   "<script>alert(1)</script><p>ok</p>",
		IsHTML: true,
	})

	if strings.Contains(msg.Text, "<script") {
		t.Fatalf("script element survived: %q", msg.Text)
	}
	if strings.Contains(msg.Text, "alert(1)") {
		t.Fatalf("script body survived: %q", msg.Text)
	}
	if !strings.Contains(msg.Text, "ok") {
		t.Fatalf("benign content lost: %q", msg.Text)
	}
	if msg.RawText != "<script>alert(1)</script><p>ok</p>" {
		t.Fatalf("raw text not preserved: %q", msg.RawText)
	}
}

func TestMessageStripsAttributesAndAnchors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		deny []string
	}{
		{"onclick handler", `<b onclick="steal()">bold</b>`, []string{"onclick", "steal"}},
		{"style attribute", `<span style="position:fixed">x</span>`, []string{"style", "position:fixed"}},
		{"javascript url", `<a href="javascript:alert(1)">click</a>`, []string{"href", "javascript:", "<a"}},
		{"iframe", `<iframe src="https://evil.example"></iframe>ok`, []string{"<iframe", "evil.example"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Message(state.ChatMessage{Text: tt.in, IsHTML: true})
			for _, fragment := range tt.deny {
				if strings.Contains(msg.Text, fragment) {
					t.Fatalf("%q survived sanitizing: %q", fragment, msg.Text)
				}
			}
		})
	}
}

func TestMessagePlainTextIsVerbatim(t *testing.T) {
	raw := `You whisper: "wait & see" <grins>`
	msg := Message(state.ChatMessage{Text: raw, IsHTML: false})

	if msg.Text != raw {
		t.Fatalf("plain text must never be escaped: %q", msg.Text)
	}
	if msg.RawText != raw {
		t.Fatalf("raw text = %q", msg.RawText)
	}
}

func TestMessageIdempotent(t *testing.T) {
	inputs := []state.ChatMessage{
		{Text: "<script>alert(1)</script><b>bold</b>", IsHTML: true},
		{Text: "plain & simple", IsHTML: false},
		{Text: "hello", RawText: "<i>hello</i>", IsHTML: true, Type: "chat"},
	}

	for _, in := range inputs {
		once := Message(in)
		twice := Message(once)
		if once.Text != twice.Text || once.RawText != twice.RawText {
			t.Fatalf("not idempotent: once=%+v twice=%+v", once, twice)
		}
	}
}

func TestMessageDefaults(t *testing.T) {
	msg := Message(state.ChatMessage{Text: "hi"})
	if msg.Type != "system" || msg.Channel != "system" || msg.MessageType != "system" {
		t.Fatalf("defaults not applied: %+v", msg)
	}

	msg = Message(state.ChatMessage{Text: "hi", Type: "chat"})
	if msg.MessageType != "chat" {
		t.Fatalf("messageType should default to type, got %q", msg.MessageType)
	}
	if msg.Channel != "system" {
		t.Fatalf("channel should default independently, got %q", msg.Channel)
	}
}

func TestMessageUsesRawTextWhenGiven(t *testing.T) {
	msg := Message(state.ChatMessage{Text: "already rendered", RawText: "<b>source</b>", IsHTML: true})
	if msg.Text != "<b>source</b>" {
		t.Fatalf("sanitizer must re-render from rawText, got %q", msg.Text)
	}
}
