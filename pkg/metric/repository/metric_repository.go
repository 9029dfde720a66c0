package repository

import "tubeplan/entities"

type MetricRepository interface {
	Create(m *entities.MetricSnapshot) error
	BulkCreate(ms []entities.MetricSnapshot) error
	// Recent orders by snapshot_date DESC, snapshot_id DESC.
	Recent(n int) ([]entities.MetricSnapshot, error)
	List(limit int) ([]entities.MetricSnapshot, error)
}
