package models

import "time"

type Prediction struct {
	ID        string    `json:"id" gorm:"primaryKey;type:char(36)"`
	UserID    string    `json:"user_id" gorm:"type:char(36);not null;index"`
	Disease   string    `json:"disease" gorm:"not null"`
	ImageKey  string    `json:"image_key,omitempty" gorm:"not null;default:''"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}
