package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CourseModule struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"course_id"`
	Course        *Course        `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"course,omitempty"`
	Position      int            `gorm:"column:position;not null" json:"position"`
	Title         string         `gorm:"column:title;not null" json:"title"`
	Summary       string         `gorm:"column:summary" json:"summary"`
	KeyConcepts   datatypes.JSON `gorm:"column:key_concepts;type:jsonb" json:"key_concepts"`
	Topics        datatypes.JSON `gorm:"column:topics;type:jsonb" json:"topics"`
	Flashcards    datatypes.JSON `gorm:"column:flashcards;type:jsonb" json:"flashcards"`
	PracticeTasks datatypes.JSON `gorm:"column:practice_tasks;type:jsonb" json:"practice_tasks"`
	QuizQuestions datatypes.JSON `gorm:"column:quiz_questions;type:jsonb" json:"quiz_questions"`
	Resources     datatypes.JSON `gorm:"column:resources;type:jsonb" json:"resources"`
	IDESetup      datatypes.JSON `gorm:"column:ide_setup;type:jsonb" json:"ide_setup,omitempty"`
	CreatedAt     time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (CourseModule) TableName() string { return "course_module" }
