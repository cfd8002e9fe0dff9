package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"go-blog-api/internal/model"
)

const maxBioLength = 500

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (model.User, error) {
	return s.store.FindByID(ctx, userID)
}

func (s *UserService) GetPublicUser(ctx context.Context, userID string) (model.PublicUser, error) {
	// The id arrives as a raw path segment. A malformed id can never match a
	// record, so reject it before it reaches the UUID column.
	if _, err := uuid.Parse(userID); err != nil {
		return model.PublicUser{}, model.ErrUserNotFound
	}

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return model.PublicUser{}, err
	}
	return user.Public(), nil
}

// UpdateProfile mutates only the supplied fields. A nil field is left
// untouched; an empty-string bio or avatar clears the stored value. Email,
// role and password are not reachable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (model.User, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return model.User{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if utf8.RuneCountInString(name) < 2 {
			return model.User{}, validationError("name must be at least 2 characters", "name")
		}
		user.Name = name
	}

	if req.Bio != nil {
		bio := strings.TrimSpace(*req.Bio)
		if utf8.RuneCountInString(bio) > maxBioLength {
			return model.User{}, validationError("bio must not exceed 500 characters", "bio")
		}
		user.Bio = bio
	}

	if req.Avatar != nil {
		avatar := strings.TrimSpace(*req.Avatar)
		if avatar != "" {
			if err := validate.Var(avatar, "url"); err != nil {
				return model.User{}, validationError("avatar must be a valid URL", "avatar")
			}
		}
		user.Avatar = avatar
	}

	user.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateProfile(ctx, user); err != nil {
		return model.User{}, err
	}

	return user, nil
}

// DeleteAccount removes the record permanently. Tokens issued to the account
// stay valid until expiry since there is no server-side session state.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	return s.store.Delete(ctx, userID)
}
