package services

import (
	"context"
	"errors"
	"sync"

	"github.com/sbilibin2017/course-platform/internal/logger"
	"github.com/sbilibin2017/course-platform/internal/models"
	"github.com/sbilibin2017/course-platform/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth_test.go -package=services

// PasswordHashCost is the bcrypt cost used for stored passwords.
const PasswordHashCost = 10

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmailOrPhone(ctx context.Context, email, phone string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, fullName, email, phone, passwordHash string) (*models.RegisteredUser, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration, login and profile lookup.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
	events EventPublisher
}

// NewAuthService creates a new AuthService instance. events may be nil.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, events EventPublisher) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		events: events,
	}
}

// Register registers a new unverified user.
func (svc *AuthService) Register(ctx context.Context, fullName, email, phone, password string) (*models.RegisteredUser, error) {
	if len(password) > MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	user, err := svc.reader.GetByEmailOrPhone(ctx, email, phone)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if user != nil {
		logger.Log.Infow("user already exists", "email", email, "phone", phone)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	created, err := svc.writer.Save(ctx, fullName, email, phone, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Infow("user already exists", "email", email, "phone", phone)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	publish(ctx, svc.events, models.EventUserRegistered, created.ID, created.ID)
	return created, nil
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// burnCompare spends the same bcrypt work as a real comparison so that
// unknown emails and wrong passwords take comparable time.
func burnCompare(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), PasswordHashCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// Login authenticates a user and returns a JWT token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		burnCompare(password)
		logger.Log.Infow("login rejected", "email", email, "reason", "unknown email")
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login rejected", "email", email, "reason", "password mismatch")
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Me returns the profile of the authenticated user.
func (svc *AuthService) Me(ctx context.Context, userID int64) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
