package application

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/croshet/storefront-api/internal/domain/entity"
	"github.com/croshet/storefront-api/internal/domain/repository"
	"github.com/croshet/storefront-api/internal/infrastructure/storage"
	"github.com/croshet/storefront-api/pkg/helpers"
	"github.com/croshet/storefront-api/pkg/mailer"
)

// UserService owns registration, login and profile maintenance.
type UserService struct {
	Repo             repository.UserRepository
	JWT              *helpers.JWTManager
	Avatars          storage.AvatarStore
	Redis            *redis.Client
	Logger           *logrus.Logger
	Mail             *helpers.RabbitPublisher // nil disables email side effects
	MaxAvatarBytes   int64
	UsernameCooldown time.Duration
}

// RegisterInput carries the registration form. All fields are required;
// the handler validates presence before calling.
type RegisterInput struct {
	FullName string
	Username string
	Email    string
	Password string
}

func keyResetToken(t string) string { return "pwd:reset:token:" + t }

// Register creates an account and returns it together with a session token
// (auto-login). The username/email pre-checks produce field-specific errors;
// the database unique indexes remain the actual guarantee, and a losing
// race surfaces as the same conflict errors.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, string, time.Time, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)

	if u, err := s.Repo.GetByUsername(ctx, in.Username); err == nil && u != nil {
		return nil, "", time.Time{}, ErrUsernameTaken
	}
	if u, err := s.Repo.GetByEmail(ctx, in.Email); err == nil && u != nil {
		return nil, "", time.Time{}, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	u := &entity.User{
		FullName: in.FullName,
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
		Role:     entity.RoleUser,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// the pre-check lost the race; report against the username
			// first, matching the check order above
			if again, gErr := s.Repo.GetByUsername(ctx, in.Username); gErr == nil && again != nil {
				return nil, "", time.Time{}, ErrUsernameTaken
			}
			return nil, "", time.Time{}, ErrEmailTaken
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.enqueueMail(ctx, u.Email, "Welcome to Croshet",
		fmt.Sprintf("Hi %s, your account %q is ready. Happy browsing!", u.FullName, u.Username))

	return u, token, exp, nil
}

// Login authenticates by email or username. Identifiers containing '@' are
// treated as emails and matched case-insensitively; usernames are matched
// exactly. All failures collapse into ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, identifier, password string) (*entity.User, string, time.Time, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	var (
		u   *entity.User
		err error
	)
	if strings.Contains(identifier, "@") {
		u, err = s.Repo.GetByEmail(ctx, strings.ToLower(identifier))
	} else {
		u, err = s.Repo.GetByUsername(ctx, identifier)
	}
	if err != nil || u == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// GetProfile loads the account for the given id.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateProfileInput carries a profile mutation. Password is the current
// account password and is always required as a confirmation factor.
type UpdateProfileInput struct {
	Username string // new username; empty or unchanged = no change
	Avatar   string // image data URL; empty = no change
	Password string
}

// UpdateProfile applies a username change (uniqueness + cooldown) and/or an
// avatar upload. The avatar file write happens before the row update and is
// not transactional with it; a crash in between orphans a file, never a URL.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	if !helpers.CompareHashAndPassword(u.Password, in.Password) {
		return nil, ErrInvalidPassword
	}

	newUsername := strings.TrimSpace(in.Username)
	if newUsername != "" && newUsername != u.Username {
		if existing, err := s.Repo.GetByUsername(ctx, newUsername); err == nil && existing != nil && existing.ID != u.ID {
			return nil, ErrUsernameTaken
		}
		if u.LastUsernameChangeAt != nil {
			elapsed := time.Since(*u.LastUsernameChangeAt)
			if elapsed < s.UsernameCooldown {
				left := int(math.Ceil((s.UsernameCooldown - elapsed).Hours() / 24))
				if left < 1 {
					left = 1
				}
				return nil, &CooldownError{DaysLeft: left}
			}
		}
		now := time.Now()
		u.Username = newUsername
		u.LastUsernameChangeAt = &now
	}

	var oldAvatar string
	if in.Avatar != "" {
		img, err := helpers.ParseImageDataURL(in.Avatar, s.MaxAvatarBytes)
		if err != nil {
			if errors.Is(err, helpers.ErrImageTooLarge) {
				return nil, ErrAvatarTooLarge
			}
			return nil, ErrAvatarInvalid
		}
		url, err := s.Avatars.Save(ctx, u.ID, img.Ext, img.MIME, img.Data)
		if err != nil {
			return nil, err
		}
		oldAvatar = u.AvatarURL
		u.AvatarURL = url
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	// best-effort cleanup of the replaced file
	if oldAvatar != "" {
		if err := s.Avatars.Delete(ctx, oldAvatar); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("avatar_url", oldAvatar).Warn("old avatar delete failed")
		}
	}
	return u, nil
}

// ResetInit issues a password-reset token. The caller always gets a 200
// regardless of whether the email exists, to avoid account enumeration.
func (s *UserService) ResetInit(ctx context.Context, email string) error {
	u, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil || u == nil || s.Redis == nil {
		return nil
	}
	tok, err := genToken(32)
	if err != nil {
		return err
	}
	if err := s.Redis.Set(ctx, keyResetToken(tok), u.ID, 30*time.Minute).Err(); err != nil {
		return err
	}
	s.enqueueMail(ctx, u.Email, "Reset your password",
		fmt.Sprintf("Hi %s, use this code to reset your password within 30 minutes: %s", u.FullName, tok))
	return nil
}

// ResetConfirm consumes a reset token and stores the new password hash.
func (s *UserService) ResetConfirm(ctx context.Context, token, newPassword string) error {
	if s.Redis == nil {
		return ErrResetTokenInvalid
	}
	uid, err := s.Redis.Get(ctx, keyResetToken(token)).Result()
	if err != nil || uid == "" {
		return ErrResetTokenInvalid
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePassword(ctx, uid, hash); err != nil {
		return err
	}
	s.Redis.Del(ctx, keyResetToken(token))
	return nil
}

func (s *UserService) enqueueMail(ctx context.Context, to, subject, text string) {
	if s.Mail == nil {
		return
	}
	job := mailer.EmailJob{To: to, Subject: subject, Text: text}
	if err := s.Mail.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("to", to).Warn("failed to enqueue email")
	}
}

func genToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
