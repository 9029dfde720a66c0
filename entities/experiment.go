package entities

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ExperimentStatusPlanned   = "planned"
	ExperimentStatusRunning   = "running"
	ExperimentStatusDone      = "done"
	ExperimentStatusAbandoned = "abandoned"
)

type Experiment struct {
	ExperimentID uint              `gorm:"primaryKey" json:"experiment_id"`
	IdeaID       *uint             `gorm:"index" json:"idea_id"`
	Name         string            `json:"name"`
	Hypothesis   string            `gorm:"type:text" json:"hypothesis"`
	Change       string            `gorm:"type:text" json:"change"`
	StartDate    time.Time         `json:"start_date"`
	EndDate      *time.Time        `json:"end_date"`
	Status       string            `gorm:"index" json:"status"` // planned|running|done|abandoned
	Outcome      datatypes.JSONMap `json:"outcome"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
