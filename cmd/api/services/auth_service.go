package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/Abaneee/social-pulse/cmd/api/auth"
	"github.com/Abaneee/social-pulse/models"
	"github.com/Abaneee/social-pulse/repositories"
)

var (
	ErrMissingFields      = errors.New("username, email and password are required")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

const minPasswordLength = 6

// RegisterInput carries the fields accepted at signup. CompanyName and
// Role are optional.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	CompanyName string
	Role        string
}

// AuthService handles signup, login and token verification.
type AuthService struct {
	users *repositories.UserRepository
	jwt   *auth.JWTManager
}

func NewAuthService(database *mongo.Database, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		users: repositories.NewUserRepository(database),
		jwt:   jwtManager,
	}
}

// Register creates the user and signs an initial token pair.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, auth.TokenPair, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, auth.TokenPair{}, ErrMissingFields
	}
	if len(in.Password) < minPasswordLength {
		return nil, auth.TokenPair{}, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, auth.TokenPair{}, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		CompanyName:  in.CompanyName,
		Role:         in.Role,
		DateJoined:   time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, auth.TokenPair{}, ErrEmailTaken
		}
		return nil, auth.TokenPair{}, fmt.Errorf("insert user: %w", err)
	}

	pair, err := s.jwt.IssuePair(user.ID, user.Role)
	if err != nil {
		return nil, auth.TokenPair{}, fmt.Errorf("issue tokens: %w", err)
	}
	return user, pair, nil
}

// Login verifies the password and signs a token pair. It deliberately
// returns the same error for unknown emails and wrong passwords.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, auth.TokenPair, error) {
	if email == "" || password == "" {
		return nil, auth.TokenPair{}, ErrMissingCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.TokenPair{}, ErrInvalidCredentials
		}
		return nil, auth.TokenPair{}, fmt.Errorf("lookup user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, auth.TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.jwt.IssuePair(user.ID, user.Role)
	if err != nil {
		return nil, auth.TokenPair{}, fmt.Errorf("issue tokens: %w", err)
	}
	return user, pair, nil
}

// Refresh rotates a refresh token into a fresh pair. The user must
// still exist.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	userID, err := s.jwt.ParseRefresh(refreshToken)
	if err != nil {
		return auth.TokenPair{}, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return auth.TokenPair{}, ErrUserNotFound
		}
		return auth.TokenPair{}, fmt.Errorf("lookup user: %w", err)
	}
	return s.jwt.IssuePair(user.ID, user.Role)
}

// Profile loads the user behind an authenticated request.
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ParseAccessToken verifies an access token and returns the user ID.
func (s *AuthService) ParseAccessToken(token string) (string, error) {
	return s.jwt.ParseAccess(token)
}
