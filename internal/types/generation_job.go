package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GenerationJob is the audit row behind the persisted generation operations.
// It is written with status=running before the completion call goes out and
// mutated exactly once more, to done or failed.
type GenerationJob struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User       *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Kind       string         `gorm:"column:kind;not null;index" json:"kind"`
	Status     string         `gorm:"column:status;not null;index" json:"status"` // running|done|failed
	Inputs     datatypes.JSON `gorm:"column:inputs;type:jsonb" json:"inputs"`
	ResultID   *uuid.UUID     `gorm:"type:uuid;column:result_id;index" json:"result_id,omitempty"`
	Error      string         `gorm:"column:error" json:"error,omitempty"`
	StartedAt  time.Time      `gorm:"column:started_at;not null" json:"started_at"`
	FinishedAt *time.Time     `gorm:"column:finished_at" json:"finished_at,omitempty"`
	CreatedAt  time.Time      `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (GenerationJob) TableName() string { return "generation_job" }
