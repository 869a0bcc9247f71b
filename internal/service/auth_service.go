package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tasker/internal/auth"
	"tasker/internal/errors"
	"tasker/internal/model"
	"tasker/internal/repository"
	"tasker/internal/validation"
)

// AuthService handles registration and the session lifecycle.
type AuthService interface {
	Register(ctx context.Context, name, surname, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, err error)
	Authenticate(ctx context.Context, token string) (*model.User, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	sessions   auth.SessionStoreInterface
	tokenTTL   time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, sessions auth.SessionStoreInterface, tokenTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		sessions:   sessions,
		tokenTTL:   tokenTTL,
	}
}

// Register validates the submitted fields, hashes the password and creates
// the user inside a single transaction.
func (s *authService) Register(ctx context.Context, name, surname, email, password string) (*model.User, error) {
	if err := validation.Name(name); err != nil {
		return nil, err
	}
	if err := validation.Name(surname); err != nil {
		return nil, err
	}
	if err := validation.Email(email); err != nil {
		return nil, err
	}
	if err := validation.Password(password); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Surname:      surname,
		Email:        email,
		IsActive:     true,
		PasswordHash: hashed,
	}

	err = s.userRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.UserRepository) error {
		existing, err := repo.FindByEmail(ctx, email)
		if err == nil && existing != nil {
			return errors.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrStorageUnavailable
		}
		return repo.Create(ctx, user)
	})
	if err != nil {
		// The unique index is the real guard; the pre-check only narrows the race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrEmailTaken
		}
		if errors.Is(err, errors.ErrEmailTaken) || errors.Is(err, errors.ErrStorageUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates credentials and returns a session token. A live cached
// token is returned unchanged instead of minting a new one, so two quick
// logins yield the identical token string.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if err := validation.Email(email); err != nil {
		return "", err
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same answer as a wrong password, to avoid user enumeration
			return "", errors.ErrInvalidCredentials
		}
		return "", errors.ErrStorageUnavailable
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", errors.ErrInvalidCredentials
	}

	for _, cached := range s.sessions.Emails(ctx) {
		if cached != email {
			continue
		}
		if token := s.sessions.Token(ctx, email); token != "" {
			return token, nil
		}
	}

	token, err := s.jwtService.Issue(user.Email, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	if err := s.sessions.SaveToken(ctx, email, token, s.tokenTTL); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

// Authenticate resolves a bearer token to the full user record. Every failure
// mode collapses into ErrUnauthenticated so the response never reveals why a
// token was rejected.
func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwtService.Decode(token)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}

	if s.sessions.IsRevoked(ctx, claims.ID) {
		return nil, errors.ErrUnauthenticated
	}

	if err := validation.Email(claims.Subject); err != nil {
		return nil, errors.ErrUnauthenticated
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}

	return user, nil
}

// Logout drops the cached session token and denylists the token's ID for its
// remaining lifetime. The returned flag reports whether a cache entry existed;
// logging out twice is success, not an error.
func (s *authService) Logout(ctx context.Context, token string) (bool, error) {
	claims, err := s.jwtService.Decode(token)
	if err != nil {
		return false, errors.ErrUnauthenticated
	}

	if claims.ExpiresAt != nil {
		if ttl := time.Until(claims.ExpiresAt.Time); ttl > 0 {
			_ = s.sessions.RevokeID(ctx, claims.ID, ttl)
		}
	}

	return s.sessions.DeleteToken(ctx, claims.Subject), nil
}
