package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/greenloop/reports-service/internal/model"
	"github.com/greenloop/reports-service/internal/store"
)

const testSecret = "test-secret"

type fakeAccounts struct {
	accounts map[string]*model.Account
	err      error
}

func (f *fakeAccounts) FetchUser(_ context.Context, id string) (*model.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	account, ok := f.accounts[id]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	return account, nil
}

func signToken(t *testing.T, subject string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newTestGate(accounts *fakeAccounts) *Gate {
	return NewGate(NewParser(testSecret), accounts, "admin")
}

func TestAuthorize_AdminPasses(t *testing.T) {
	gate := newTestGate(&fakeAccounts{accounts: map[string]*model.Account{
		"u1": {ID: "u1", Name: "Ada", Role: "admin"},
	}})

	account, err := gate.Authorize(context.Background(), signToken(t, "u1", time.Hour))
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if account.ID != "u1" {
		t.Fatalf("account = %+v", account)
	}
}

func TestAuthorize_MissingToken(t *testing.T) {
	gate := newTestGate(&fakeAccounts{})
	if _, err := gate.Authorize(context.Background(), ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthorize_ExpiredToken(t *testing.T) {
	gate := newTestGate(&fakeAccounts{})
	if _, err := gate.Authorize(context.Background(), signToken(t, "u1", -time.Minute)); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthorize_WrongSignature(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	gate := newTestGate(&fakeAccounts{})
	if _, err := gate.Authorize(context.Background(), signed); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthorize_NonAdminForbidden(t *testing.T) {
	gate := newTestGate(&fakeAccounts{accounts: map[string]*model.Account{
		"u2": {ID: "u2", Role: "customer"},
	}})

	if _, err := gate.Authorize(context.Background(), signToken(t, "u2", time.Hour)); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAuthorize_AccountMissing(t *testing.T) {
	gate := newTestGate(&fakeAccounts{accounts: map[string]*model.Account{}})

	if _, err := gate.Authorize(context.Background(), signToken(t, "ghost", time.Hour)); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAuthorize_StoreErrorPassesThrough(t *testing.T) {
	gate := newTestGate(&fakeAccounts{err: store.ErrUnavailable})

	_, err := gate.Authorize(context.Background(), signToken(t, "u1", time.Hour))
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("expected store error, got %v", err)
	}
}
