package models

import "time"

type ChatMessage struct {
	ID          string    `json:"id" gorm:"primaryKey;type:char(36)"`
	UserID      string    `json:"user_id" gorm:"type:char(36);not null;index"`
	UserMessage string    `json:"user_message" gorm:"not null"`
	BotReply    string    `json:"bot_reply" gorm:"not null"`
	Language    string    `json:"language" gorm:"not null;default:en"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null"`
}

func (ChatMessage) TableName() string { return "chat_messages" }
