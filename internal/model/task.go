package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task represents a text task owned by a single user. Every read and write
// filters by (id, user_id) so a task is invisible to anyone but its owner.
type Task struct {
	ID        uuid.UUID `json:"task_id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);index;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
