package repository

import (
	"time"

	"tubeplan/entities"
)

// ExperimentPatch changes only the non-nil fields.
type ExperimentPatch struct {
	Status  *string
	EndDate *time.Time
	Outcome map[string]any
}

type ExperimentRepository interface {
	BulkCreate(xs []entities.Experiment) error
	List(status string) ([]entities.Experiment, error)
	FindByID(id uint) (*entities.Experiment, error)
	Patch(id uint, p ExperimentPatch) (*entities.Experiment, error)
}
