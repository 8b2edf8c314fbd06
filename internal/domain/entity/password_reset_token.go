package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetTokenTTL bounds how long a reset link stays redeemable.
const PasswordResetTokenTTL = time.Hour

// PasswordResetToken is the single-use credential behind the emailed
// reset link. At most one live token exists per email; issuing a new one
// purges its predecessors.
type PasswordResetToken struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	Email string    `gorm:"size:255;not null;index" json:"-"`
	// Token is 32 random bytes hex-encoded, so exactly 64 characters.
	Token     string    `gorm:"size:64;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"-"`
	Used      bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

// TableName returns the table name for PasswordResetToken
func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

// NewPasswordResetToken issues a fresh unused token for the email with
// the standard lifetime.
func NewPasswordResetToken(email, token string) *PasswordResetToken {
	return &PasswordResetToken{
		Email:     email,
		Token:     token,
		ExpiresAt: time.Now().Add(PasswordResetTokenTTL),
	}
}

// Usable reports whether the token can still redeem a reset: never
// consumed and inside its lifetime.
func (t *PasswordResetToken) Usable() bool {
	return !t.Used && time.Now().Before(t.ExpiresAt)
}
