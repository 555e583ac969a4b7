package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"citylegends/backend/internal/lobby"
	"citylegends/backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns accounts: registration, login, password reset requests and
// nickname changes.
type AuthService struct {
	db       *gorm.DB
	now      func() time.Time
	hashCost int
}

// NewAuthService creates an AuthService backed by db.
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db, now: utcNow, hashCost: bcrypt.DefaultCost}
}

// Register validates and stores a new account. Field format problems and
// uniqueness conflicts are reported together in one validation error.
func (s *AuthService) Register(ctx context.Context, nickname, email, password string) (*models.User, error) {
	reg := lobby.NewRegistration(nickname, email, password)
	details := reg.Check()

	if err := s.checkTaken(ctx, reg.Nickname, reg.Email, "", details); err != nil {
		return nil, err
	}
	if err := lobby.Validation(lobby.MsgRegisterInvalid, details); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.NewUser(reg.Nickname, reg.Email, string(hash), s.now())
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.conflict(ctx, lobby.MsgRegisterInvalid, reg.Nickname, reg.Email, "", err)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Login checks an email and password pair. Unknown emails and wrong passwords
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = lobby.NormalizeEmail(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, &lobby.Error{
			Code:    lobby.CodeValidation,
			Message: lobby.MsgLoginRequired,
			Details: lobby.Details{"email": lobby.FieldRequired, "password": lobby.FieldRequired},
		}
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, lobby.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, lobby.ErrInvalidCredentials
	}
	return &user, nil
}

// RequestReset accepts a password reset request. No token is issued and no
// mail is sent.
func (s *AuthService) RequestReset(_ context.Context, email string) error {
	if lobby.NormalizeEmail(email) == "" {
		return lobby.Validation(lobby.MsgEmailRequired, lobby.Details{"email": lobby.FieldRequired})
	}
	return nil
}

// UpdateNickname renames the user behind userID. An empty userID, or one
// whose account no longer exists, yields lobby.ErrUnauthorized.
func (s *AuthService) UpdateNickname(ctx context.Context, userID, nickname string) (*models.User, error) {
	if userID == "" {
		return nil, lobby.ErrUnauthorized
	}

	nickname = strings.TrimSpace(nickname)
	details := lobby.Details{}
	lobby.CheckNickname(nickname, details)
	if len(details) == 0 {
		if err := s.checkTaken(ctx, nickname, "", userID, details); err != nil {
			return nil, err
		}
	}
	if err := lobby.Validation(lobby.MsgNicknameInvalid, details); err != nil {
		return nil, err
	}

	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Rename(nickname, s.now())
	err = s.db.WithContext(ctx).Model(user).
		Updates(map[string]any{"nickname": user.Nickname, "updated_at": user.UpdatedAt}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.conflict(ctx, lobby.MsgNicknameInvalid, nickname, "", userID, err)
		}
		return nil, fmt.Errorf("update nickname: %w", err)
	}
	return user, nil
}

// CurrentUser loads the account a session points at.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, lobby.ErrUnauthorized
	}
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, lobby.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", userID, err)
	}
	return &user, nil
}

// checkTaken records already_in_use for a non-empty nickname or email owned by
// an account other than excludeID. Earlier problems on the same field win.
func (s *AuthService) checkTaken(ctx context.Context, nickname, email, excludeID string, details lobby.Details) error {
	taken := func(column, value string) (bool, error) {
		q := s.db.WithContext(ctx).Model(&models.User{}).Where(column+" = ?", value)
		if excludeID != "" {
			q = q.Where("id <> ?", excludeID)
		}
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return false, fmt.Errorf("check %s uniqueness: %w", column, err)
		}
		return n > 0, nil
	}

	if email != "" {
		ok, err := taken("email", email)
		if err != nil {
			return err
		}
		if ok {
			details.Set("email", lobby.FieldAlreadyInUse)
		}
	}
	if nickname != "" {
		ok, err := taken("nickname", nickname)
		if err != nil {
			return err
		}
		if ok {
			details.Set("nickname", lobby.FieldAlreadyInUse)
		}
	}
	return nil
}

// conflict turns a unique violation that slipped past checkTaken into the
// usual validation error. If the owner of the value cannot be found again the
// original error is returned.
func (s *AuthService) conflict(ctx context.Context, message, nickname, email, excludeID string, cause error) error {
	details := lobby.Details{}
	if err := s.checkTaken(ctx, nickname, email, excludeID, details); err != nil {
		return err
	}
	if err := lobby.Validation(message, details); err != nil {
		return err
	}
	return fmt.Errorf("unique violation: %w", cause)
}
