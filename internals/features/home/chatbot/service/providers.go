// file: internals/features/home/chatbot/service/providers.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/home/chatbot/model"
)

const sessionTTL = 30 * time.Minute

/* =========================================================
   1) SessionResponder — jawaban lanjutan berdasarkan topik
      yang tersimpan di redis untuk session_id tersebut.
========================================================= */

type SessionResponder struct {
	DB  *gorm.DB
	RDB *redis.Client
}

// Kata sambung yang menandakan user melanjutkan topik sebelumnya.
var continuations = []string{"lalu", "terus", "kemudian", "bagaimana", "berapa", "itu", "lagi"}

func (p *SessionResponder) Respond(ctx context.Context, sess Session, message string) (*Reply, bool) {
	if p.RDB == nil || sess.Topic == "" {
		return nil, false
	}

	continuing := false
	for _, w := range continuations {
		if strings.Contains(message, w) {
			continuing = true
			break
		}
	}
	if !continuing {
		return nil, false
	}

	// Cari entri topik yang sama yang cocok dengan pesan lanjutan
	var entries []model.ChatbotEntryModel
	if err := p.DB.
		Where("chatbot_entry_topic = ? AND chatbot_entry_is_active = TRUE", sess.Topic).
		Find(&entries).Error; err != nil {
		return nil, false
	}
	if entry := bestKeywordMatch(entries, message); entry != nil {
		return &Reply{
			Message:     entry.ChatbotEntryAnswer,
			Suggestions: entry.ChatbotEntrySuggestions,
			Type:        "session",
		}, true
	}
	return nil, false
}

/* =========================================================
   2) KeywordResponder — pencocokan kata kunci atas tabel
      chatbot_entries (data, bukan kode).
========================================================= */

type KeywordResponder struct {
	DB       *gorm.DB
	RDB      *redis.Client
	SchoolID uuid.UUID
}

func (p *KeywordResponder) Respond(ctx context.Context, sess Session, message string) (*Reply, bool) {
	var entries []model.ChatbotEntryModel
	if err := p.DB.
		Where("chatbot_entry_school_id = ? AND chatbot_entry_is_active = TRUE", p.SchoolID).
		Find(&entries).Error; err != nil {
		return nil, false
	}

	entry := bestKeywordMatch(entries, message)
	if entry == nil {
		return nil, false
	}

	// Simpan topik untuk pertanyaan lanjutan
	if p.RDB != nil && sess.ID != "" {
		_ = p.RDB.Set(ctx, sessionKey(sess.ID), entry.ChatbotEntryTopic, sessionTTL).Err()
	}

	return &Reply{
		Message:     entry.ChatbotEntryAnswer,
		Suggestions: entry.ChatbotEntrySuggestions,
		Type:        "faq",
	}, true
}

// bestKeywordMatch: entri dengan jumlah keyword cocok terbanyak.
func bestKeywordMatch(entries []model.ChatbotEntryModel, message string) *model.ChatbotEntryModel {
	var best *model.ChatbotEntryModel
	bestScore := 0
	for i := range entries {
		score := 0
		for _, kw := range entries[i].ChatbotEntryKeywords {
			if strings.Contains(message, strings.ToLower(kw)) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = &entries[i]
		}
	}
	return best
}

/* =========================================================
   3) FallbackResponder — jawaban terakhir yang PASTI ada.
========================================================= */

type FallbackResponder struct{}

func (FallbackResponder) Respond(ctx context.Context, sess Session, message string) (*Reply, bool) {
	return fallbackReply(), true
}

func fallbackReply() *Reply {
	return &Reply{
		Message: "Maaf, saya belum faham soalan itu. Cuba tanya tentang yuran, derma, atau waqaf sekolah.",
		Suggestions: []string{
			"Berapa yuran semasa saya?",
			"Bagaimana cara membayar yuran?",
			"Bagaimana cara menderma?",
		},
		Type: "fallback",
	}
}

/* =========================================================
   Sesi redis
========================================================= */

func sessionKey(id string) string { return "chatbot:session:" + id }

// LoadSession membaca topik sesi dari redis; redis mati = sesi kosong.
func LoadSession(ctx context.Context, rdb *redis.Client, id string) Session {
	sess := Session{ID: id}
	if rdb == nil || id == "" {
		return sess
	}
	if topic, err := rdb.Get(ctx, sessionKey(id)).Result(); err == nil {
		sess.Topic = topic
	}
	return sess
}
