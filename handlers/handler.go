package handlers

import (
	"time"

	"gorm.io/gorm"
)

// Handler carries the injected database handle and token settings.
// Handlers are methods on it so the service layer is testable with a
// substitute database.
type Handler struct {
	DB        *gorm.DB
	JWTSecret []byte
	TokenTTL  time.Duration
}

func New(db *gorm.DB, jwtSecret []byte, tokenTTL time.Duration) *Handler {
	return &Handler{DB: db, JWTSecret: jwtSecret, TokenTTL: tokenTTL}
}
