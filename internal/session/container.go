package session

import (
	"time"

	"gorm.io/gorm"
)

type SessionContainer struct {
	Store   Store
	Manager *Manager
}

// NewSessionContainer uses the database store when db is non-nil.
func NewSessionContainer(db *gorm.DB, ttl time.Duration) *SessionContainer {
	var store Store
	if db != nil {
		store = NewRepository(db, ttl)
	} else {
		store = NewMemoryStore(ttl)
	}

	return &SessionContainer{
		Store:   store,
		Manager: NewManager(store),
	}
}
