package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookmyshoot/booking-api/internal/api"
	"github.com/bookmyshoot/booking-api/internal/api/handler"
	"github.com/bookmyshoot/booking-api/internal/api/middleware"
	"github.com/bookmyshoot/booking-api/internal/core/auth"
	"github.com/bookmyshoot/booking-api/internal/core/domain"
	"github.com/bookmyshoot/booking-api/internal/core/ports"
)

type stubOrgService struct {
	createFn func(ctx context.Context, input ports.CreateOrganizationInput) (*domain.Organization, error)
	getFn    func(ctx context.Context, id string) (*domain.Organization, error)
}

func (s *stubOrgService) Create(ctx context.Context, input ports.CreateOrganizationInput) (*domain.Organization, error) {
	return s.createFn(ctx, input)
}

func (s *stubOrgService) Get(ctx context.Context, id string) (*domain.Organization, error) {
	if s.getFn == nil {
		return nil, domain.ErrOrganizationNotFound
	}
	return s.getFn(ctx, id)
}

// newOrgApp wires the organization routes exactly like the router: creation
// sits behind the guard and a photographer/admin role gate, fetch is public.
func newOrgApp(stub *stubOrgService) (*echo.Echo, *auth.TokenManager, *memUserRepo) {
	repo := newMemUserRepo()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	guard := middleware.Auth(tokens, repo)

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	orgHandler := handler.NewOrganizationHandler(stub)
	e.GET("/api/organizations/:id", orgHandler.Get)
	e.POST("/api/organizations", orgHandler.Create, guard,
		middleware.RBAC(domain.RolePhotographer, domain.RoleAdmin))
	return e, tokens, repo
}

func orgToken(t *testing.T, tokens *auth.TokenManager, repo *memUserRepo, email, role string) string {
	t.Helper()
	if _, err := repo.Create(context.Background(), &domain.User{Email: email, Role: role, IsActive: true}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	signed, err := tokens.Issue(email, role)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return signed
}

func postOrg(e *echo.Echo, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/organizations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrganization_Created(t *testing.T) {
	stub := &stubOrgService{
		createFn: func(_ context.Context, input ports.CreateOrganizationInput) (*domain.Organization, error) {
			if input.Name != "Shutter Studio" {
				t.Fatalf("unexpected name: %q", input.Name)
			}
			return &domain.Organization{ID: "org_1", Name: input.Name}, nil
		},
	}
	e, tokens, repo := newOrgApp(stub)
	token := orgToken(t, tokens, repo, "pro@x.com", domain.RolePhotographer)

	rec := postOrg(e, `{"name":"Shutter Studio"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateOrganization_RequiresAuth(t *testing.T) {
	stub := &stubOrgService{
		createFn: func(context.Context, ports.CreateOrganizationInput) (*domain.Organization, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	e, _, _ := newOrgApp(stub)

	if rec := postOrg(e, `{"name":"Shutter Studio"}`, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCreateOrganization_CustomerForbidden(t *testing.T) {
	stub := &stubOrgService{
		createFn: func(context.Context, ports.CreateOrganizationInput) (*domain.Organization, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	e, tokens, repo := newOrgApp(stub)
	token := orgToken(t, tokens, repo, "cust@x.com", domain.RoleCustomer)

	rec := postOrg(e, `{"name":"Shutter Studio"}`, token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateOrganization_MissingName(t *testing.T) {
	stub := &stubOrgService{
		createFn: func(context.Context, ports.CreateOrganizationInput) (*domain.Organization, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	e, tokens, repo := newOrgApp(stub)
	token := orgToken(t, tokens, repo, "pro@x.com", domain.RolePhotographer)

	if rec := postOrg(e, `{"location":"nowhere"}`, token); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetOrganization(t *testing.T) {
	stub := &stubOrgService{
		getFn: func(_ context.Context, id string) (*domain.Organization, error) {
			if id == "org_1" {
				return &domain.Organization{ID: "org_1", Name: "Shutter Studio"}, nil
			}
			return nil, domain.ErrOrganizationNotFound
		},
	}
	e, _, _ := newOrgApp(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/organizations/org_1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/organizations/missing", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
