package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bookmyshoot/booking-api/internal/core/auth"
	"github.com/bookmyshoot/booking-api/internal/core/domain"
	"github.com/bookmyshoot/booking-api/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) UpdateProfilePicture(context.Context, string, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateLastLogin(context.Context, string) error { return nil }

func (r *stubUserRepo) ListPhotographers(context.Context) ([]ports.PhotographerListing, error) {
	return nil, nil
}

func guardFixture(users map[string]*domain.User) (*auth.TokenManager, echo.MiddlewareFunc) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	return tokens, Auth(tokens, &stubUserRepo{users: users})
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	tokens, mw := guardFixture(map[string]*domain.User{
		"alice@x.com": {Email: "alice@x.com", Role: domain.RoleCustomer, IsActive: true},
	})

	signed, err := tokens.Issue("alice@x.com", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		user, ok := c.Get(ContextUserKey).(*domain.User)
		if !ok || user.Email != "alice@x.com" {
			t.Fatalf("user not resolved into context")
		}
		if c.Get(ContextRoleKey) != domain.RoleCustomer {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func assertUnauthenticated(t *testing.T, mw echo.MiddlewareFunc, authorize func(*http.Request)) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorize != nil {
		authorize(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, mw := guardFixture(nil)
	assertUnauthenticated(t, mw, nil)
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	_, mw := guardFixture(nil)
	assertUnauthenticated(t, mw, func(req *http.Request) {
		req.Header.Set("Authorization", "Token abc")
	})
}

func TestAuth_InvalidToken(t *testing.T) {
	_, mw := guardFixture(nil)
	assertUnauthenticated(t, mw, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer not-a-token")
	})
}

func TestAuth_WrongSecret(t *testing.T) {
	_, mw := guardFixture(nil)
	other := auth.NewTokenManager("other-secret", time.Hour)
	signed, err := other.Issue("alice@x.com", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	assertUnauthenticated(t, mw, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+signed)
	})
}

func TestAuth_UserGone(t *testing.T) {
	// A structurally valid token whose account has been deleted must be
	// rejected exactly like an invalid one.
	tokens, mw := guardFixture(map[string]*domain.User{})
	signed, err := tokens.Issue("ghost@x.com", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	assertUnauthenticated(t, mw, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+signed)
	})
}

// failingUserRepo simulates a storage outage behind the guard.
type failingUserRepo struct {
	stubUserRepo
	err error
}

func (r *failingUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, r.err
}

func TestAuth_StorageFailureIsNot401(t *testing.T) {
	// A repository outage must not tell the client its token is invalid.
	errStorage := errors.New("storage unavailable")
	tokens := auth.NewTokenManager("secret", time.Hour)
	mw := Auth(tokens, &failingUserRepo{err: errStorage})

	signed, err := tokens.Issue("alice@x.com", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err = handler(c)
	if !errors.Is(err, errStorage) {
		t.Fatalf("expected repository error to propagate, got %v", err)
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		t.Fatalf("storage failure mapped to HTTP %d, want unmapped error", he.Code)
	}

	e.HTTPErrorHandler(err, c)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestAuth_InactiveUser(t *testing.T) {
	tokens, mw := guardFixture(map[string]*domain.User{
		"bob@x.com": {Email: "bob@x.com", Role: domain.RoleCustomer, IsActive: false},
	})
	signed, err := tokens.Issue("bob@x.com", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	assertUnauthenticated(t, mw, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+signed)
	})
}
