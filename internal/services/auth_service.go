package services

import (
	"errors"
	"time"

	"crestview/internal/domain"
	"crestview/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("invalid email or password")

// AuthService issues and resolves server-side admin sessions. There is
// no client-trusted login flag: every privileged request resolves the
// sid cookie against the session table.
type AuthService struct {
	Admins     *repos.AdminRepo
	SessionTTL time.Duration
}

func NewAuthService(admins *repos.AdminRepo, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AuthService{Admins: admins, SessionTTL: ttl}
}

func (s *AuthService) Login(sid, email, password string) (*domain.Admin, error) {
	a, err := s.Admins.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Admins.BindSession(sid, a.ID, s.SessionTTL); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Admins.UnbindSession(sid)
}

// CurrentAdmin resolves the sid cookie to a live admin session, or an
// error when the session is absent or expired.
func (s *AuthService) CurrentAdmin(sid string) (*domain.Admin, error) {
	return s.Admins.SessionAdmin(sid)
}
