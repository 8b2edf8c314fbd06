package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/domain/entity"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PasswordResetTokenRepository defines the interface for the single-use
// reset tokens behind the emailed reset links
type PasswordResetTokenRepository interface {
	Create(ctx context.Context, token *entity.PasswordResetToken) error
	GetByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error)
	// Consume marks the token used so it cannot redeem a second reset.
	Consume(ctx context.Context, token string) error
	// DeleteForEmail clears every token issued to the email, live or not.
	DeleteForEmail(ctx context.Context, email string) error
	DeleteExpired(ctx context.Context) error
}
