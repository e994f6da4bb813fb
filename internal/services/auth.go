package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"

	"github.com/abertanha/movie-diary/internal/logger"
	"github.com/abertanha/movie-diary/internal/models"
	"github.com/abertanha/movie-diary/internal/repositories"
)

// Error variables
var (
	ErrEmailAlreadyExists        = errors.New("email already in use")
	ErrUserNotFound              = errors.New("user does not exist")
	ErrInvalidCredentials        = errors.New("invalid email or password")
	ErrVerificationTokenNotFound = errors.New("verification token not found")
)

// verificationTokenBytes is the entropy of an email-verification token.
const verificationTokenBytes = 32

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByVerificationToken(ctx context.Context, token string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, password, verificationToken string) (*models.UserDB, error)
	MarkVerified(ctx context.Context, userID uuid.UUID) error
}

// PasswordHasher derives and verifies salted password hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, stored string) (bool, error)
}

// JWTGenerator defines an interface for generating access tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// ConfirmationSender delivers the verification mail.
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, email, token string) error
}

// AuthService handles registration, login and email verification.
type AuthService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
	jwt    JWTGenerator
	mailer ConfirmationSender // nil when SMTP is not configured
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, hasher PasswordHasher, jwt JWTGenerator, mailer ConfirmationSender) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		jwt:    jwt,
		mailer: mailer,
	}
}

// Register creates a new user with a fresh verification token and tries to
// deliver the confirmation mail. Delivery failure is logged but never rolls
// back the created account.
func (svc *AuthService) Register(ctx context.Context, email, pass string) (*models.UserDB, error) {
	hashed, err := svc.hasher.Hash(pass)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	tokenBytes := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(tokenBytes); err != nil {
		logger.Log.Errorw("failed to generate verification token", "err", err)
		return nil, err
	}
	token := hex.EncodeToString(tokenBytes)

	user, err := svc.writer.Save(ctx, email, hashed, token)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		logger.Log.Errorw("email already in use", "email", email)
		return nil, ErrEmailAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	if svc.mailer != nil {
		if err := svc.mailer.SendConfirmation(ctx, email, token); err != nil {
			logger.Log.Errorw("failed to send confirmation mail, account kept", "email", email, "err", err)
		}
	}

	return user, nil
}

// Login authenticates a user and returns an access token.
func (svc *AuthService) Login(ctx context.Context, email, pass string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", ErrUserNotFound
	}

	ok, err := svc.hasher.Verify(pass, user.Password)
	if err != nil {
		logger.Log.Errorw("failed to verify password", "err", err)
		return "", err
	}
	if !ok {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", err
	}

	return token, nil
}

// VerifyEmail consumes a verification token: the matching user is flagged
// verified and the token cleared, so a second attempt fails with not-found.
func (svc *AuthService) VerifyEmail(ctx context.Context, token string) (*models.UserDB, error) {
	user, err := svc.reader.GetByVerificationToken(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to look up verification token", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("verification token unknown or already consumed")
		return nil, ErrVerificationTokenNotFound
	}

	if err := svc.writer.MarkVerified(ctx, user.ID); err != nil {
		logger.Log.Errorw("failed to mark user verified", "user_id", user.ID, "err", err)
		return nil, err
	}

	user.IsEmailVerified = true
	empty := ""
	user.EmailVerificationToken = &empty

	return user, nil
}
