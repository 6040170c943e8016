// file: internals/features/home/chatbot/dto/chatbot_dto.go
package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	m "sekolahku_backend/internals/features/home/chatbot/model"
)

type ChatMessageRequest struct {
	SchoolID  uuid.UUID `json:"school_id" validate:"required"`
	Message   string    `json:"message" validate:"required,min=1,max=500"`
	SessionID string    `json:"session_id" validate:"omitempty,max=64"`
}

type CreateChatbotEntryRequest struct {
	ChatbotEntryTopic       string   `json:"chatbot_entry_topic" validate:"required,min=2,max=50"`
	ChatbotEntryKeywords    []string `json:"chatbot_entry_keywords" validate:"required,min=1,dive,min=2"`
	ChatbotEntryAnswer      string   `json:"chatbot_entry_answer" validate:"required,min=2"`
	ChatbotEntrySuggestions []string `json:"chatbot_entry_suggestions" validate:"omitempty,dive,min=2"`
}

func (r CreateChatbotEntryRequest) ToModel(schoolID uuid.UUID) *m.ChatbotEntryModel {
	return &m.ChatbotEntryModel{
		ChatbotEntrySchoolID:    schoolID,
		ChatbotEntryTopic:       r.ChatbotEntryTopic,
		ChatbotEntryKeywords:    pq.StringArray(r.ChatbotEntryKeywords),
		ChatbotEntryAnswer:      r.ChatbotEntryAnswer,
		ChatbotEntrySuggestions: pq.StringArray(r.ChatbotEntrySuggestions),
		ChatbotEntryIsActive:    true,
	}
}

type UpdateChatbotEntryRequest struct {
	ChatbotEntryTopic       *string  `json:"chatbot_entry_topic" validate:"omitempty,min=2,max=50"`
	ChatbotEntryKeywords    []string `json:"chatbot_entry_keywords" validate:"omitempty,min=1,dive,min=2"`
	ChatbotEntryAnswer      *string  `json:"chatbot_entry_answer" validate:"omitempty,min=2"`
	ChatbotEntrySuggestions []string `json:"chatbot_entry_suggestions" validate:"omitempty,dive,min=2"`
	ChatbotEntryIsActive    *bool    `json:"chatbot_entry_is_active" validate:"omitempty"`
}

func (r UpdateChatbotEntryRequest) ApplyTo(mo *m.ChatbotEntryModel) {
	if r.ChatbotEntryTopic != nil {
		mo.ChatbotEntryTopic = *r.ChatbotEntryTopic
	}
	if r.ChatbotEntryKeywords != nil {
		mo.ChatbotEntryKeywords = pq.StringArray(r.ChatbotEntryKeywords)
	}
	if r.ChatbotEntryAnswer != nil {
		mo.ChatbotEntryAnswer = *r.ChatbotEntryAnswer
	}
	if r.ChatbotEntrySuggestions != nil {
		mo.ChatbotEntrySuggestions = pq.StringArray(r.ChatbotEntrySuggestions)
	}
	if r.ChatbotEntryIsActive != nil {
		mo.ChatbotEntryIsActive = *r.ChatbotEntryIsActive
	}
}
