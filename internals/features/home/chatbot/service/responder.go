// file: internals/features/home/chatbot/service/responder.go
package service

import (
	"context"
	"strings"
)

// Reply: bentuk jawaban seragam semua provider.
type Reply struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
	Type        string   `json:"type"` // "session" | "faq" | "fallback"
}

// Session: konteks percakapan satu session_id.
type Session struct {
	ID    string
	Topic string // topik terakhir yang dibicarakan, "" kalau belum ada
}

// Responder: satu penyedia jawaban. ok=false → dispatcher lanjut ke provider
// berikutnya. Provider terakhir dalam rantai TIDAK BOLEH mengembalikan false.
type Responder interface {
	Respond(ctx context.Context, sess Session, message string) (reply *Reply, ok bool)
}

// Dispatcher: rantai provider terurut dengan satu loop dispatch.
type Dispatcher struct {
	providers []Responder
}

func NewDispatcher(providers ...Responder) *Dispatcher {
	return &Dispatcher{providers: providers}
}

// Dispatch menanyakan provider satu per satu sampai ada yang menjawab.
// Rantai selalu diakhiri fallback, jadi hasilnya tidak pernah nil.
func (d *Dispatcher) Dispatch(ctx context.Context, sess Session, message string) *Reply {
	msg := normalizeMessage(message)
	for _, p := range d.providers {
		if reply, ok := p.Respond(ctx, sess, msg); ok {
			return reply
		}
	}
	// defensive default kalau rantai dikonfigurasi tanpa fallback
	return fallbackReply()
}

func normalizeMessage(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
