package result

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Result is one graded attempt. Rows are only ever inserted.
type Result struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(255);not null" json:"username"`
	Gender    string    `gorm:"type:varchar(32);not null" json:"gender"`
	Email     string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Score     int       `gorm:"not null" json:"score"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Result) TableName() string {
	return "results"
}

func (r *Result) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
