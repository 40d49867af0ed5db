package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
	"github.com/quickhirelabor/quickhire/internal/security/jwt"
)

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	tm := jwt.NewTokenManager("test-secret-key")
	return NewAuthService(users, tm, 15*time.Minute, logger.StdLogger()), users
}

func registerReq() *RegisterRequest {
	return &RegisterRequest{
		Name:     "Asha Patil",
		Email:    "asha@example.com",
		Password: "s3cret-pass",
		Role:     "customer",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	result, err := svc.Register(ctx, registerReq())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.User.Role != domain.RoleCustomer || !result.User.Active {
		t.Errorf("user = %+v", result.User)
	}
	if result.User.PasswordHash == "s3cret-pass" {
		t.Error("password stored in clear")
	}
	if result.Tokens.AccessToken == "" || result.Tokens.RefreshToken == "" {
		t.Error("missing tokens")
	}

	login, err := svc.Login(ctx, &LoginRequest{Email: "asha@example.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != result.User.ID {
		t.Errorf("login user = %s, want %s", login.User.ID, result.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerReq()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(ctx, registerReq()); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("got %v, want ErrEmailTaken", err)
	}
}

func TestLoginFailures(t *testing.T) {
	svc, users := newAuthFixture()
	ctx := context.Background()

	result, err := svc.Register(ctx, registerReq())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, &LoginRequest{Email: "asha@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}

	if err := users.SetActive(ctx, result.User.ID, false); err != nil {
		t.Fatalf("suspend: %v", err)
	}
	if _, err := svc.Login(ctx, &LoginRequest{Email: "asha@example.com", Password: "s3cret-pass"}); !errors.Is(err, ErrUserDisabled) {
		t.Errorf("suspended login: got %v, want ErrUserDisabled", err)
	}
}

func TestRefresh(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	result, err := svc.Register(ctx, registerReq())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	refreshed, err := svc.Refresh(ctx, &RefreshRequest{RefreshToken: result.Tokens.RefreshToken})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.User.ID != result.User.ID {
		t.Errorf("refreshed user = %s", refreshed.User.ID)
	}

	// An access token is not accepted for refresh.
	if _, err := svc.Refresh(ctx, &RefreshRequest{RefreshToken: result.Tokens.AccessToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("access token accepted for refresh: %v", err)
	}
	if _, err := svc.Refresh(ctx, &RefreshRequest{RefreshToken: "garbage"}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token: got %v, want ErrInvalidToken", err)
	}
}
