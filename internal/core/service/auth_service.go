package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/complaintdesk/portal/internal/core/domain"
	"github.com/complaintdesk/portal/internal/core/ports"
)

// bcryptCost matches the portal's original hashing cost.
const bcryptCost = 10

// dummyHash is compared against when the username does not exist, so the
// unknown-user and wrong-password paths share the same timing class.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("portal-timing-pad"), bcryptCost)

// AuthService implements registration, credential verification and the
// session lifecycle. Sessions are opaque server-side records; the token
// handed to the client is an HS256-signed wrapper carrying only the session
// id and expiry.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	secret     []byte
	sessionTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, secret string, sessionTTL time.Duration, log zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		log:        log,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn a comparison anyway; see dummyHash.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Debug().Str("username", username).Msg("password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) IssueSession(ctx context.Context, user *domain.User) (string, error) {
	sid, err := newSessionID()
	if err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}

	if err := s.sessions.Put(ctx, sid, user.ID, s.sessionTTL); err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}

	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(s.sessionTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("session issued")
	return token, nil
}

func (s *AuthService) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	sid, err := s.sessionID(token)
	if err != nil {
		return nil, domain.ErrSessionInvalid
	}

	userID, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrSessionInvalid
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) RevokeSession(ctx context.Context, token string) error {
	sid, err := s.sessionID(token)
	if err != nil {
		// A token we cannot verify holds no session worth revoking.
		return nil
	}
	return s.sessions.Delete(ctx, sid)
}

// sessionID verifies the token signature and expiry and extracts the sid.
func (s *AuthService) sessionID(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrSessionInvalid
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", domain.ErrSessionInvalid
	}
	return sid, nil
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
