package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"hridsync/cmd/api/auth"
	"hridsync/models"
	"hridsync/repositories"
)

var (
	ErrEmailTaken         = errors.New("email_already_registered")
	ErrWeakPassword       = errors.New("password_too_short")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUserNotFound       = errors.New("user_not_found")
)

const minPasswordLength = 8

// UserStore is the account persistence surface the auth service needs.
type UserStore interface {
	Insert(ctx context.Context, u *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type AuthService struct {
	users UserStore
	jwt   *auth.JWTManager
}

func NewAuthService(users UserStore, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{users: users, jwt: jwtManager}
}

// Signup registers an account and returns a signed access token with the
// created user. The unique email index backstops the duplicate check.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (string, *models.User, error) {
	if len(password) < minPasswordLength {
		return "", nil, ErrWeakPassword
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user, err := s.users.Insert(ctx, &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         auth.RoleUser,
	})
	if err != nil {
		if repositories.IsDuplicateEmail(err) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, err
	}

	token, err := s.jwt.Sign(user.ID.Hex(), user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login verifies credentials and returns a signed access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.Sign(user.ID.Hex(), user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Profile loads the account behind an authenticated user id (hex).
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ParseAccessToken validates a bearer token and returns (userID, role).
func (s *AuthService) ParseAccessToken(token string) (string, string, error) {
	return s.jwt.Parse(token)
}
