package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"medmatch/entity"
	"medmatch/pkg/apperr"
	"medmatch/repository"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login and logout.
type AuthService struct {
	DB        *gorm.DB
	Users     *repository.UserRepository
	Redis     *redis.Client
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(db *gorm.DB, users *repository.UserRepository, rdb *redis.Client, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, Users: users, Redis: rdb, JWTSecret: secret, JWTTTL: ttl}
}

// Register creates the user and its blank role profile in one transaction.
// Only doctor and hospital may self-register; admins are seeded.
func (s *AuthService) Register(username, email, password, confirmPassword, role string) (*entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return nil, apperr.Validation("username, email and password are required")
	}
	if password != confirmPassword {
		return nil, apperr.Validation("passwords do not match")
	}
	if role != entity.RoleDoctor && role != entity.RoleHospital {
		return nil, apperr.Validation("role must be doctor or hospital")
	}

	// Friendly pre-check; the unique indexes still decide under races.
	if count, err := s.Users.CountByUsername(username); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, apperr.Conflict("username already taken")
	}
	if count, err := s.Users.CountByEmail(email); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, apperr.Conflict("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:   username,
		Email:      email,
		Password:   string(hashed),
		Role:       role,
		IsVerified: false,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		switch role {
		case entity.RoleDoctor:
			return tx.Create(&entity.Doctor{UserID: user.ID}).Error
		default:
			return tx.Create(&entity.Hospital{UserID: user.ID}).Error
		}
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.duplicateError(username)
		}
		return nil, err
	}
	return user, nil
}

// duplicateError picks the field-specific conflict message after the unique
// index rejected a racing insert.
func (s *AuthService) duplicateError(username string) error {
	if count, err := s.Users.CountByUsername(username); err == nil && count > 0 {
		return apperr.Conflict("username already taken")
	}
	return apperr.Conflict("email already registered")
}

// Login verifies credentials. The error is identical for an unknown username
// and a wrong password.
func (s *AuthService) Login(username, password string) (*entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	user, err := s.Users.FindByUsername(username)
	if err != nil {
		return nil, apperr.Unauthorized("invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("invalid username or password")
	}
	return user, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}

// Logout denylists the token fingerprint until the token would have expired.
// A no-op when Redis is not configured.
func (s *AuthService) Logout(ctx context.Context, token string, expiresAt time.Time) error {
	if s.Redis == nil {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.Redis.Set(ctx, DenylistKey(token), "1", ttl).Err()
}

// DenylistKey is shared with the auth middleware so both sides agree on the
// fingerprint format.
func DenylistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "denylist:" + hex.EncodeToString(sum[:])
}
