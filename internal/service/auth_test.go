package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jtng3/taskade/internal/domain"
	"github.com/jtng3/taskade/internal/repository/memory"
	"github.com/jtng3/taskade/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

// Cost 4 keeps bcrypt fast in tests.
func newTestAuthService(t *testing.T) (*service.AuthService, *memory.UserRepository) {
	t.Helper()
	users := memory.NewUserRepository()
	return service.NewAuthService(users, testJWTSecret, 4), users
}

func TestAuthService_SignUp_Success(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	authUser, err := auth.SignUp(ctx, "new@example.com", "password123", "New User", "")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if authUser.User.ID == "" {
		t.Fatal("expected user ID to be set")
	}
	if authUser.Token == "" {
		t.Fatal("expected non-empty token")
	}
	if authUser.User.Email != "new@example.com" {
		t.Fatalf("expected email new@example.com, got %s", authUser.User.Email)
	}
}

func TestAuthService_SignUp_PasswordNeverStoredPlaintext(t *testing.T) {
	auth, users := newTestAuthService(t)
	ctx := context.Background()

	authUser, err := auth.SignUp(ctx, "hash@example.com", "password123", "Hash User", "")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if authUser.User.PasswordHash == "password123" {
		t.Fatal("password stored as plaintext")
	}

	stored, err := users.GetByID(ctx, authUser.User.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.PasswordHash == "password123" {
		t.Fatal("persisted password is plaintext")
	}
}

func TestAuthService_SignUp_DuplicateEmailAccepted(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	first, err := auth.SignUp(ctx, "dup@example.com", "password123", "User 1", "")
	if err != nil {
		t.Fatalf("first SignUp: %v", err)
	}

	// Email uniqueness is not enforced: the second sign-up succeeds and
	// creates a distinct user.
	second, err := auth.SignUp(ctx, "dup@example.com", "password456", "User 2", "")
	if err != nil {
		t.Fatalf("second SignUp: %v", err)
	}
	if first.User.ID == second.User.ID {
		t.Fatal("expected distinct users for duplicate sign-ups")
	}
}

func TestAuthService_SignUp_EmptyFields(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		userName string
	}{
		{"empty email", "", "password123", "Name"},
		{"empty password", "a@b.com", "", "Name"},
		{"empty name", "a@b.com", "password123", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.SignUp(ctx, tc.email, tc.password, tc.userName, "")
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_SignIn_Success(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	signedUp, err := auth.SignUp(ctx, "login@example.com", "password123", "Login User", "")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	authUser, err := auth.SignIn(ctx, "login@example.com", "password123")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if authUser.User.ID != signedUp.User.ID {
		t.Fatalf("expected user %s, got %s", signedUp.User.ID, authUser.User.ID)
	}
	if authUser.Token == "" {
		t.Fatal("expected non-empty token")
	}
}

func TestAuthService_SignIn_FailuresIndistinguishable(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.SignUp(ctx, "known@example.com", "password123", "User", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	_, wrongPassword := auth.SignIn(ctx, "known@example.com", "wrongpassword")
	_, unknownEmail := auth.SignIn(ctx, "nobody@example.com", "password123")

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownEmail)
	}
	// No distinguishing signal, not even in the message.
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPassword.Error(), unknownEmail.Error())
	}
}

func TestAuthService_Token_RoundTrip(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	authUser, err := auth.SignUp(ctx, "jwt@example.com", "password123", "JWT User", "")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	userID, err := auth.ValidateToken(authUser.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if userID != authUser.User.ID {
		t.Fatalf("expected user ID %s, got %s", authUser.User.ID, userID)
	}
}

func TestAuthService_Token_Invalid(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	authUser, err := auth.SignUp(ctx, "invalid@example.com", "password123", "User", "")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	expired := signTestToken(t, jwt.MapClaims{
		"sub": authUser.User.ID,
		"iat": time.Now().Add(-48 * time.Hour).Unix(),
		"exp": time.Now().Add(-24 * time.Hour).Unix(),
	}, testJWTSecret)
	noSubject := signTestToken(t, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testJWTSecret)
	wrongSecret := signTestToken(t, jwt.MapClaims{
		"sub": authUser.User.ID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "a-different-secret")

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "not-a-valid-jwt"},
		{"tampered signature", authUser.Token[:len(authUser.Token)-5] + "XXXXX"},
		{"expired", expired},
		{"missing subject", noSubject},
		{"wrong secret", wrongSecret},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := auth.ValidateToken(tc.token); !errors.Is(err, domain.ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func signTestToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return token
}
