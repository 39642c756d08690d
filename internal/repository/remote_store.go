package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RemoteStore runs the CRUD contract against one table of the remote backend.
type RemoteStore[T any] struct {
	db *gorm.DB
}

func NewRemoteStore[T any](db *gorm.DB) *RemoteStore[T] {
	return &RemoteStore[T]{db: db}
}

func (s *RemoteStore[T]) List(ctx context.Context, q Query[T]) ([]T, error) {
	tx := s.db.WithContext(ctx).Model(new(T))
	if len(q.Filters) > 0 {
		tx = tx.Where(q.Filters)
	}
	if q.OrderBy != "" {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: q.OrderBy}, Desc: q.Descending})
	}

	var rows []T
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *RemoteStore[T]) Get(ctx context.Context, id string) (*T, error) {
	var row T
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *RemoteStore[T]) Insert(ctx context.Context, row *T) error {
	return s.db.WithContext(ctx).Create(row).Error
}

func (s *RemoteStore[T]) Update(ctx context.Context, id string, mutate func(*T) error) (*T, error) {
	var row T
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&row).Error; err != nil {
			return err
		}
		if err := mutate(&row); err != nil {
			return err
		}
		return tx.Save(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *RemoteStore[T]) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
