package result

import (
	"context"

	"gorm.io/gorm"
)

type ResultRepository interface {
	Insert(ctx context.Context, name, gender, email string, score int) error
	ListAll(ctx context.Context) ([]*Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Insert(ctx context.Context, name, gender, email string, score int) error {
	return r.db.WithContext(ctx).Create(&Result{
		Username: name,
		Gender:   gender,
		Email:    email,
		Score:    score,
	}).Error
}

func (r *resultRepository) ListAll(ctx context.Context) ([]*Result, error) {
	var results []*Result
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
