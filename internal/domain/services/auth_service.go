package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ridehub/internal/domain/models"
	"ridehub/internal/store"
)

// AuthGateway is what the session service needs from the remote boundary.
type AuthGateway interface {
	Authenticate(ctx context.Context, email, password string) (models.Identity, error)
	SignOut(ctx context.Context) error
}

type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*models.AuthResponse, error)
	SignOut(ctx context.Context) error
	Profile(ctx context.Context) (*models.Identity, error)
}

type AuthConfig struct {
	JWTSecret   string
	JWTExpiry   time.Duration
	SessionFile string
}

type authService struct {
	gw     AuthGateway
	store  *store.Store
	cfg    AuthConfig
	logger *slog.Logger
}

func NewAuthService(gw AuthGateway, st *store.Store, cfg AuthConfig, logger *slog.Logger) AuthService {
	return &authService{gw: gw, store: st, cfg: cfg, logger: logger}
}

// SignIn runs the full action cycle: the auth slice goes loading, the mocked
// backend settles, and the identity plus a signed token are committed on
// success. The role committed here is immutable until sign-out.
func (s *authService) SignIn(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	s.store.Auth.Begin()

	identity, err := s.gw.Authenticate(ctx, email, password)
	if err != nil {
		s.store.Auth.Fail(err)
		return nil, err
	}

	token, err := s.generateToken(identity)
	if err != nil {
		err = models.WrapAction("sign in", err)
		s.store.Auth.Fail(err)
		return nil, err
	}

	s.store.Auth.CommitSignIn(identity, token)
	s.persist()

	s.logger.Info("signed in", "user_id", identity.ID, "role", identity.Role)
	return &models.AuthResponse{Token: token, User: identity}, nil
}

// SignOut always succeeds after the simulated delay. Identity and token are
// cleared and every volatile slice is dropped with them.
func (s *authService) SignOut(ctx context.Context) error {
	if err := s.gw.SignOut(ctx); err != nil {
		return err
	}
	s.store.Reset()
	s.persist()
	s.logger.Info("signed out")
	return nil
}

func (s *authService) Profile(ctx context.Context) (*models.Identity, error) {
	user, ok := s.store.Auth.User()
	if !ok {
		return nil, models.ErrNotAuthenticated
	}
	return &user, nil
}

func (s *authService) generateToken(user models.Identity) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.cfg.JWTExpiry).Unix(),
		"iat":     time.Now().Unix(),
		"iss":     "ridehub",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *authService) persist() {
	if s.cfg.SessionFile == "" {
		return
	}
	if err := s.store.SaveAuth(s.cfg.SessionFile); err != nil {
		s.logger.Warn("failed to persist session", "err", err)
	}
}
