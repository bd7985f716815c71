package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/greenloop/reports-service/internal/model"
	"github.com/greenloop/reports-service/internal/store"
)

var (
	ErrUnauthenticated = errors.New("not signed in")
	ErrForbidden       = errors.New("administrative role required")
	ErrAccountNotFound = errors.New("account not found")
)

// AccountReader is the single read the gate performs.
type AccountReader interface {
	FetchUser(ctx context.Context, id string) (*model.Account, error)
}

// Gate is the sole entry guard of the reporting pipeline: it verifies the
// caller is signed in and holds the administrative role before anything else
// runs. No side effects beyond the one account read.
type Gate struct {
	parser    *Parser
	accounts  AccountReader
	adminRole string
}

func NewGate(parser *Parser, accounts AccountReader, adminRole string) *Gate {
	return &Gate{parser: parser, accounts: accounts, adminRole: adminRole}
}

// Authorize resolves the bearer token to an account and checks its role.
func (g *Gate) Authorize(ctx context.Context, token string) (*model.Account, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	session, err := g.parser.Parse(token)
	if err != nil {
		return nil, err
	}

	account, err := g.accounts.FetchUser(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, session.AccountID)
		}
		return nil, err
	}

	if account.Role != g.adminRole {
		return nil, ErrForbidden
	}
	return account, nil
}
