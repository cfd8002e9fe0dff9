package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"go-blog-api/internal/model"
)

const bcryptCost = 12

// AuthService owns credential handling. It is the only component that ever
// sees a plaintext password; the plaintext is dropped as soon as it is hashed.
type AuthService struct {
	store  UserStore
	tokens *TokenService
}

func NewAuthService(store UserStore, tokens *TokenService) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResult, error) {
	req.Email = model.NormalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	if err := checkStruct(req); err != nil {
		return model.AuthResult{}, err
	}
	if utf8.RuneCountInString(req.Name) < 2 {
		return model.AuthResult{}, validationError("name must be at least 2 characters", "name")
	}

	exists, err := s.store.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return model.AuthResult{}, err
	}
	if exists {
		return model.AuthResult{}, model.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return model.AuthResult{}, err
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Bio:          strings.TrimSpace(req.Bio),
		Avatar:       strings.TrimSpace(req.Avatar),
		Role:         model.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The pre-check above can race; the store's uniqueness constraint is the
	// final arbiter and surfaces as ErrDuplicateEmail for the loser.
	if err := s.store.Create(ctx, user); err != nil {
		return model.AuthResult{}, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return model.AuthResult{}, err
	}

	return model.AuthResult{User: user, AccessToken: token}, nil
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResult, error) {
	req.Email = model.NormalizeEmail(req.Email)

	if err := checkStruct(req); err != nil {
		return model.AuthResult{}, err
	}

	user, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		// Unknown email and wrong password report the same failure so the
		// endpoint cannot be used to enumerate accounts.
		if errors.Is(err, model.ErrUserNotFound) {
			return model.AuthResult{}, model.ErrInvalidCredentials
		}
		return model.AuthResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.AuthResult{}, model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return model.AuthResult{}, err
	}

	return model.AuthResult{User: user, AccessToken: token}, nil
}

type seedUser struct {
	email    string
	password string
	name     string
	bio      string
	avatar   string
	role     string
}

// SeedDefaults creates the default admin and test accounts when they do not
// exist yet. Seeding is best-effort: failures are logged, never fatal.
func (s *AuthService) SeedDefaults(ctx context.Context) {
	seeds := []seedUser{
		{
			email:    "admin@blog.com",
			password: "admin123",
			name:     "Administrator",
			bio:      "Default administrator account",
			avatar:   "https://ui-avatars.com/api/?name=Admin&background=dc2626&color=fff",
			role:     model.RoleAdmin,
		},
		{
			email:    "test@blog.com",
			password: "test123",
			name:     "Test User",
			bio:      "Default test user account",
			avatar:   "https://ui-avatars.com/api/?name=Test&background=2563eb&color=fff",
			role:     model.RoleUser,
		},
	}

	for _, seed := range seeds {
		exists, err := s.store.ExistsByEmail(ctx, seed.email)
		if err != nil {
			slog.Error("seed: email lookup failed", "email", seed.email, "error", err)
			continue
		}
		if exists {
			slog.Info("seed: user already exists", "email", seed.email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcryptCost)
		if err != nil {
			slog.Error("seed: hash password failed", "email", seed.email, "error", err)
			continue
		}

		now := time.Now().UTC()
		user := model.User{
			ID:           uuid.NewString(),
			Email:        seed.email,
			Name:         seed.name,
			PasswordHash: string(hash),
			Bio:          seed.bio,
			Avatar:       seed.avatar,
			Role:         seed.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		if err := s.store.Create(ctx, user); err != nil {
			slog.Error("seed: create user failed", "email", seed.email, "error", err)
			continue
		}

		slog.Info("seed: user created", "email", seed.email, "role", seed.role)
	}
}
