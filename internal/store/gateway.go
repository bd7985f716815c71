package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/greenloop/reports-service/internal/model"
)

// ErrUnavailable wraps any I/O failure talking to the document store. Callers
// degrade to empty result sets; a partial fetch must never pass for a
// complete one, so cursor errors surface here too.
var ErrUnavailable = errors.New("record store unavailable")

// ErrAccountNotFound is returned when an account lookup matches nothing.
var ErrAccountNotFound = errors.New("account not found")

const (
	colCollections = "collections"
	colSchedules   = "schedules"
	colUsers       = "users"
)

// Gateway reads whole record sets from the document store. No filtering or
// pagination is pushed to the store; all narrowing happens in-process.
type Gateway struct {
	db      *mongo.Database
	timeout time.Duration
}

func NewGateway(db *mongo.Database, timeout time.Duration) *Gateway {
	return &Gateway{db: db, timeout: timeout}
}

func (g *Gateway) FetchCollections(ctx context.Context) ([]model.CollectionRecord, error) {
	var records []model.CollectionRecord
	if err := g.fetchAll(ctx, colCollections, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (g *Gateway) FetchSchedules(ctx context.Context) ([]model.ScheduleRecord, error) {
	var records []model.ScheduleRecord
	if err := g.fetchAll(ctx, colSchedules, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (g *Gateway) FetchUsers(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := g.fetchAll(ctx, colUsers, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// FetchUser reads a single account by identifier. The authorization gate
// consults only its role.
func (g *Gateway) FetchUser(ctx context.Context, id string) (*model.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var account model.Account
	err := g.db.Collection(colUsers).FindOne(ctx, bson.M{"_id": id}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
		}
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	return &account, nil
}

func (g *Gateway) fetchAll(ctx context.Context, name string, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cursor, err := g.db.Collection(name).Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrUnavailable, name, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrUnavailable, name, err)
	}
	return nil
}
