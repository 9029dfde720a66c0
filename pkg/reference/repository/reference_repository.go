package repository

import "tubeplan/entities"

type ReferenceRepository interface {
	CreateDoc(*entities.ReferenceDoc) error
	BulkInsertChunks([]entities.ReferenceChunk) error
	ListDocs() ([]entities.ReferenceDoc, error)
	AllChunks() ([]entities.ReferenceChunk, error)
	DocsByIDs(ids []uint) (map[uint]entities.ReferenceDoc, error)
}
