package result

import "gorm.io/gorm"

type ResultContainer struct {
	Handler *Handler
	Repo    ResultRepository
}

func NewResultContainer(db *gorm.DB) *ResultContainer {
	repo := NewRepository(db)

	return &ResultContainer{
		Handler: NewHandler(repo),
		Repo:    repo,
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Result{})
}
