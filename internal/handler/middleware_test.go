package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jtng3/taskade/internal/domain"
	"github.com/jtng3/taskade/internal/graph"
	"github.com/jtng3/taskade/internal/handler"
	"github.com/jtng3/taskade/internal/repository/memory"
	"github.com/jtng3/taskade/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

func newTestAuth(t *testing.T) (*service.AuthService, *memory.UserRepository) {
	t.Helper()
	users := memory.NewUserRepository()
	return service.NewAuthService(users, testJWTSecret, 4), users
}

// spyHandler records the caller identity the middleware resolved.
type spyHandler struct {
	called bool
	user   *domain.User
}

func (s *spyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.called = true
	s.user = graph.UserFromContext(r.Context())
	w.WriteHeader(http.StatusOK)
}

func doRequest(t *testing.T, auth *service.AuthService, authorization string) (*spyHandler, *httptest.ResponseRecorder) {
	t.Helper()
	spy := &spyHandler{}
	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler.Authenticate(auth, spy).ServeHTTP(rec, req)
	return spy, rec
}

func TestAuthenticate_NoHeaderIsAnonymous(t *testing.T) {
	auth, _ := newTestAuth(t)

	spy, rec := doRequest(t, auth, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !spy.called {
		t.Fatal("expected request to proceed")
	}
	if spy.user != nil {
		t.Fatalf("expected anonymous context, got user %v", spy.user)
	}
}

func TestAuthenticate_InvalidTokenAbortsRequest(t *testing.T) {
	auth, _ := newTestAuth(t)

	spy, rec := doRequest(t, auth, "Bearer not-a-valid-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if spy.called {
		t.Fatal("expected request to be aborted")
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	authUser, err := auth.SignUp(ctx, "mw@example.com", "password123", "MW User", "")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	for _, header := range []string{"Bearer " + authUser.Token, authUser.Token} {
		spy, rec := doRequest(t, auth, header)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if spy.user == nil || spy.user.ID != authUser.User.ID {
			t.Fatalf("expected user %s in context, got %v", authUser.User.ID, spy.user)
		}
	}
}

func TestAuthenticate_UnknownSubjectIsAnonymous(t *testing.T) {
	auth, _ := newTestAuth(t)

	// A validly signed token whose subject matches no persisted user.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "000000000000000000000000",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	spy, rec := doRequest(t, auth, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !spy.called {
		t.Fatal("expected request to proceed")
	}
	if spy.user != nil {
		t.Fatalf("expected anonymous context, got user %v", spy.user)
	}
}
