package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Roadmap kinds stored in the kind column.
const (
	RoadmapKindSimple   = "simple"
	RoadmapKindDetailed = "detailed"
)

type Roadmap struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	User          *User              `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Kind          string             `gorm:"column:kind;not null" json:"kind"` // simple|detailed
	Topic         string             `gorm:"column:topic;not null" json:"topic"`
	Title         string             `gorm:"column:title" json:"title"`
	UserSummary   string             `gorm:"column:user_summary" json:"user_summary"`
	FinalProject  string             `gorm:"column:final_project" json:"final_project"`
	ResourceList  datatypes.JSON     `gorm:"column:resource_list;type:jsonb" json:"resource_list"`
	DurationWeeks int                `gorm:"column:duration_weeks;not null" json:"duration_weeks"`
	HoursPerWeek  int                `gorm:"column:hours_per_week" json:"hours_per_week"`
	Milestones    []RoadmapMilestone `gorm:"constraint:OnDelete:CASCADE;foreignKey:RoadmapID;references:ID" json:"milestones,omitempty"`
	CreatedAt     time.Time          `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time          `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"deleted_at,omitempty"`
}

func (Roadmap) TableName() string { return "roadmap" }
