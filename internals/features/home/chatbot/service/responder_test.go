package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/features/home/chatbot/model"
)

type stubResponder struct {
	reply *Reply
	ok    bool
	calls int
}

func (s *stubResponder) Respond(ctx context.Context, sess Session, message string) (*Reply, bool) {
	s.calls++
	return s.reply, s.ok
}

func TestDispatchStopsAtFirstAnswer(t *testing.T) {
	first := &stubResponder{reply: &Reply{Message: "jawaban pertama", Type: "faq"}, ok: true}
	second := &stubResponder{reply: &Reply{Message: "tidak boleh sampai sini"}, ok: true}

	d := NewDispatcher(first, second)
	reply := d.Dispatch(context.Background(), Session{}, "berapa yuran")

	assert.Equal(t, "jawaban pertama", reply.Message)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestDispatchFallsThroughToNextProvider(t *testing.T) {
	first := &stubResponder{ok: false}
	second := &stubResponder{reply: &Reply{Message: "jawaban kedua"}, ok: true}

	d := NewDispatcher(first, second)
	reply := d.Dispatch(context.Background(), Session{}, "berapa yuran")

	assert.Equal(t, "jawaban kedua", reply.Message)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestFallbackAlwaysAnswers(t *testing.T) {
	reply, ok := FallbackResponder{}.Respond(context.Background(), Session{}, "xyzzy tidak dikenal")

	assert.True(t, ok)
	assert.NotEmpty(t, reply.Message)
	assert.NotEmpty(t, reply.Suggestions)
	assert.Equal(t, "fallback", reply.Type)
}

func TestDispatchWithoutFallbackStillReplies(t *testing.T) {
	// rantai salah konfigurasi: semua provider menolak
	d := NewDispatcher(&stubResponder{ok: false}, &stubResponder{ok: false})
	reply := d.Dispatch(context.Background(), Session{}, "apa saja")

	assert.NotNil(t, reply)
	assert.Equal(t, "fallback", reply.Type)
}

func TestBestKeywordMatchPicksHighestScore(t *testing.T) {
	entries := []model.ChatbotEntryModel{
		{ChatbotEntryAnswer: "tentang derma", ChatbotEntryKeywords: []string{"derma"}},
		{ChatbotEntryAnswer: "tentang yuran tertunggak", ChatbotEntryKeywords: []string{"yuran", "tertunggak"}},
		{ChatbotEntryAnswer: "tentang yuran", ChatbotEntryKeywords: []string{"yuran"}},
	}

	got := bestKeywordMatch(entries, "berapa yuran tertunggak saya")
	assert.NotNil(t, got)
	assert.Equal(t, "tentang yuran tertunggak", got.ChatbotEntryAnswer)
}

func TestBestKeywordMatchNoHit(t *testing.T) {
	entries := []model.ChatbotEntryModel{
		{ChatbotEntryAnswer: "tentang yuran", ChatbotEntryKeywords: []string{"yuran"}},
	}

	assert.Nil(t, bestKeywordMatch(entries, "cuaca hari ini"))
}

func TestNormalizeMessage(t *testing.T) {
	assert.Equal(t, "berapa yuran", normalizeMessage("  Berapa YURAN "))
}
