package repositoryImp

import (
	"gorm.io/gorm"

	"tubeplan/entities"
	"tubeplan/pkg/reference/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReferenceRepository { return &repo{db} }

func (r *repo) CreateDoc(d *entities.ReferenceDoc) error { return r.db.Create(d).Error }

func (r *repo) BulkInsertChunks(cs []entities.ReferenceChunk) error {
	if len(cs) == 0 {
		return nil
	}
	return r.db.Create(&cs).Error
}

func (r *repo) ListDocs() ([]entities.ReferenceDoc, error) {
	var ds []entities.ReferenceDoc
	err := r.db.Order("doc_id DESC").Find(&ds).Error
	return ds, err
}

func (r *repo) AllChunks() ([]entities.ReferenceChunk, error) {
	var cs []entities.ReferenceChunk
	err := r.db.Order("chunk_id ASC").Find(&cs).Error
	return cs, err
}

func (r *repo) DocsByIDs(ids []uint) (map[uint]entities.ReferenceDoc, error) {
	if len(ids) == 0 {
		return map[uint]entities.ReferenceDoc{}, nil
	}
	var ds []entities.ReferenceDoc
	if err := r.db.Where("doc_id IN ?", ids).Find(&ds).Error; err != nil {
		return nil, err
	}
	m := make(map[uint]entities.ReferenceDoc, len(ds))
	for i := range ds {
		m[ds[i].DocID] = ds[i]
	}
	return m, nil
}
