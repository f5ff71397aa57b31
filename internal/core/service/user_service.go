package service

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookmyshoot/booking-api/internal/api/metrics"
	"github.com/bookmyshoot/booking-api/internal/core/auth"
	"github.com/bookmyshoot/booking-api/internal/core/domain"
	"github.com/bookmyshoot/booking-api/internal/core/ports"
)

// UserService implements signup, login, current-user lookup and profile
// updates. It composes the password hasher, the token manager and the user
// repository; the login throttle is optional.
type UserService struct {
	repo     ports.UserRepository
	hasher   *auth.Hasher
	tokens   *auth.TokenManager
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher *auth.Hasher, tokens *auth.TokenManager, throttle ports.LoginThrottle, logger zerolog.Logger) *UserService {
	return &UserService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		throttle: throttle,
		logger:   logger,
	}
}

// Signup creates a new account. The email is lowercased before storage so
// lookups are case-insensitive; the unique index on the collection arbitrates
// concurrent signups racing on the same address. No token is issued — the
// client logs in as a separate step.
func (s *UserService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidSignup
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidSignup
	}
	if input.ProfilePicture != "" && !validImageURL(input.ProfilePicture) {
		return nil, domain.ErrInvalidProfileURL
	}

	start := time.Now()
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())

	now := time.Now().UTC()
	user := &domain.User{
		Email:          strings.ToLower(input.Email),
		FullName:       input.FullName,
		Phone:          input.Phone,
		PasswordHash:   hash,
		Role:           input.Role,
		ProfilePicture: input.ProfilePicture,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues(created.Role).Inc()
	s.logger.Info().Str("email", created.Email).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues an access token. An unknown email and
// a wrong password return the same domain.ErrInvalidCredentials so callers
// cannot enumerate registered addresses.
func (s *UserService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	email = strings.ToLower(email)

	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, email)
		if err != nil {
			// Best-effort: an unreachable throttle backend must not lock users out.
			s.logger.Warn().Err(err).Msg("login throttle unavailable")
		} else if !allowed {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateLastLogin(ctx, user.Email); err != nil {
		s.logger.Warn().Err(err).Str("email", user.Email).Msg("failed to record last login")
	}
	if s.throttle != nil {
		_ = s.throttle.Reset(ctx, email)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("email", user.Email).Str("role", user.Role).Msg("user logged in")

	return &ports.LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.tokens.TTL(),
		User:        user,
	}, nil
}

// Me returns the account for the given email.
func (s *UserService) Me(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, strings.ToLower(email))
}

// UpdateProfileImage validates and persists a new profile picture URL. Only
// the URL string is stored; image bytes never touch this service.
func (s *UserService) UpdateProfileImage(ctx context.Context, email, pictureURL string) (*domain.User, error) {
	if !validImageURL(pictureURL) {
		return nil, domain.ErrInvalidProfileURL
	}

	updated, err := s.repo.UpdateProfilePicture(ctx, strings.ToLower(email), pictureURL)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", updated.Email).Msg("profile picture updated")
	return updated, nil
}

// validImageURL accepts absolute http(s) URLs with a host.
func validImageURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
