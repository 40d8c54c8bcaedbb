package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/entity"
	"github.com/A3K3SH/Catering/repository"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords, so login failures are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	users      *repository.UserRepository
	sessions   *repository.SessionRepository
	sessionTTL time.Duration
}

func NewAuthService(users *repository.UserRepository, sessions *repository.SessionRepository, ttl time.Duration) *AuthService {
	return &AuthService{users: users, sessions: sessions, sessionTTL: ttl}
}

// Register creates a user with a bcrypt-hashed password.
func (s *AuthService) Register(username, password string, isAdmin bool) (*entity.User, error) {
	username = strings.TrimSpace(username)

	count, err := s.users.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		IsAdmin:  isAdmin,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a fresh session.
func (s *AuthService) Login(username, password string) (*entity.User, *entity.Session, error) {
	username = strings.TrimSpace(username)

	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	// opportunistic cleanup of stale sessions
	_ = s.sessions.DeleteExpired()

	session := &entity.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Logout revokes the session. Unknown tokens are not an error; logout is
// idempotent from the caller's perspective.
func (s *AuthService) Logout(token string) error {
	return s.sessions.DeleteByToken(token)
}
