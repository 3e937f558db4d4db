package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/saulo-duarte/devops-exam/internal/config"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Record struct {
	Scope     string         `gorm:"type:varchar(64);primaryKey"`
	Data      datatypes.JSON `gorm:"not null"`
	Encrypted bool           `gorm:"not null;default:false"`
	ExpiresAt *time.Time     `gorm:"index"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Record) TableName() string {
	return "exam_sessions"
}

type repository struct {
	db  *gorm.DB
	ttl time.Duration
}

// NewRepository stores sessions in the database so several instances can
// serve the same participant.
func NewRepository(db *gorm.DB, ttl time.Duration) Store {
	return &repository{db: db, ttl: ttl}
}

func (r *repository) Get(ctx context.Context, scope string) (*Session, error) {
	var rec Record
	if err := r.db.WithContext(ctx).First(&rec, "scope = ?", scope).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	if rec.ExpiresAt != nil && time.Now().After(*rec.ExpiresAt) {
		if err := r.Clear(ctx, scope); err != nil {
			config.WithContext(ctx).WithError(err).Warn("Failed to clear expired session")
		}
		return nil, ErrNoSession
	}
	return decode(rec)
}

func (r *repository) Set(ctx context.Context, scope string, s *Session) error {
	rec, err := encode(scope, s)
	if err != nil {
		return err
	}
	if r.ttl > 0 {
		exp := time.Now().Add(r.ttl)
		rec.ExpiresAt = &exp
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
}

func (r *repository) Clear(ctx context.Context, scope string) error {
	return r.db.WithContext(ctx).Delete(&Record{}, "scope = ?", scope).Error
}

func encode(scope string, s *Session) (Record, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return Record{}, fmt.Errorf("encode session: %w", err)
	}
	rec := Record{Scope: scope, Data: datatypes.JSON(raw)}
	if !config.CryptoEnabled() {
		return rec, nil
	}

	sealed, err := config.Encrypt(string(raw))
	if err != nil {
		return Record{}, fmt.Errorf("encrypt session: %w", err)
	}
	wrapped, err := json.Marshal(sealed)
	if err != nil {
		return Record{}, err
	}
	rec.Data = datatypes.JSON(wrapped)
	rec.Encrypted = true
	return rec, nil
}

func decode(rec Record) (*Session, error) {
	raw := []byte(rec.Data)
	if rec.Encrypted {
		var sealed string
		if err := json.Unmarshal(raw, &sealed); err != nil {
			return nil, fmt.Errorf("decode sealed session: %w", err)
		}
		plain, err := config.Decrypt(sealed)
		if err != nil {
			return nil, fmt.Errorf("decrypt session: %w", err)
		}
		raw = []byte(plain)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}
