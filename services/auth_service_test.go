package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sohryuu101/web-wedding-sub000/database/testdb"
	"github.com/sohryuu101/web-wedding-sub000/models"
	"github.com/sohryuu101/web-wedding-sub000/pkg/token"
	"github.com/sohryuu101/web-wedding-sub000/repositories"

	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) IAuthService {
	t.Helper()
	tokens, err := token.NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	return NewAuthServiceWithCost(repositories.NewUserRepository(testdb.Open(t)), tokens, bcrypt.MinCost)
}

func TestRegisterLoginVerify(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, models.RegisterInput{Email: " Ann@Example.com", Name: "Ann", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.User.Email != "ann@example.com" || reg.Token == "" {
		t.Fatalf("register result = %+v", reg)
	}

	login, err := svc.Login(ctx, models.LoginInput{Email: "ann@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	id, err := svc.Verify(login.Token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.UserID != reg.User.ID || id.Email != "ann@example.com" || id.Name != "Ann" {
		t.Fatalf("identity = %+v", id)
	}

	me, err := svc.Me(ctx, id.UserID)
	if err != nil || me.ID != reg.User.ID {
		t.Fatalf("me = %+v, %v", me, err)
	}
}

func TestRegisterRejects(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	if _, err := svc.Register(ctx, models.RegisterInput{Email: "ann@example.com", Name: "Ann", Password: "correct-horse"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Register(ctx, models.RegisterInput{Email: "ANN@example.com", Name: "Other", Password: "another-pass"}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("taken email: got %v", err)
	}
	if _, err := svc.Register(ctx, models.RegisterInput{Email: "bob@example.com", Name: "Bob", Password: "short"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("short password: got %v", err)
	}
	if _, err := svc.Register(ctx, models.RegisterInput{Email: "nope", Name: "Bob", Password: "long-enough"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("bad email: got %v", err)
	}
}

func TestLoginFailuresLookAlike(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	if _, err := svc.Register(ctx, models.RegisterInput{Email: "ann@example.com", Name: "Ann", Password: "correct-horse"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, models.LoginInput{Email: "ann@example.com", Password: "wrong-horse"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v", err)
	}
	if _, err := svc.Login(ctx, models.LoginInput{Email: "ghost@example.com", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v", err)
	}
	if _, err := svc.Verify("garbage"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("garbage token: got %v", err)
	}
}
