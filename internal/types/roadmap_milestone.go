package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RoadmapMilestone stores both simple-roadmap milestones and detailed-roadmap
// stages; the parent roadmap's kind discriminates. RefID is the sequential
// string identifier from the generated payload, distinct from the row id.
type RoadmapMilestone struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	RoadmapID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"roadmap_id"`
	Roadmap        *Roadmap       `gorm:"constraint:OnDelete:CASCADE;foreignKey:RoadmapID;references:ID" json:"roadmap,omitempty"`
	Position       int            `gorm:"column:position;not null" json:"position"`
	RefID          string         `gorm:"column:ref_id" json:"ref_id"`
	Title          string         `gorm:"column:title;not null" json:"title"`
	Description    string         `gorm:"column:description" json:"description"`
	Difficulty     string         `gorm:"column:difficulty;not null" json:"difficulty"`
	EstimatedHours float64        `gorm:"column:estimated_hours;not null" json:"estimated_hours"`
	Completed      bool           `gorm:"column:completed;not null;default:false" json:"completed"`
	Topics         datatypes.JSON `gorm:"column:topics;type:jsonb" json:"topics"`
	Exercises      datatypes.JSON `gorm:"column:exercises;type:jsonb" json:"exercises"`
	Projects       datatypes.JSON `gorm:"column:projects;type:jsonb" json:"projects"`
	Resources      datatypes.JSON `gorm:"column:resources;type:jsonb" json:"resources"`
	CreatedAt      time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (RoadmapMilestone) TableName() string { return "roadmap_milestone" }
