package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUnavailable is returned by writes when no store connection exists.
// Reads never return it; an absent store reads as empty.
var ErrUnavailable = errors.New("document store unavailable")

// Store is a minimal collection-oriented interface over the document
// store. The process holds exactly one Store, established at startup and
// read-only thereafter; it is passed explicitly into the access layer so
// tests can substitute a fake.
type Store interface {
	// Available reports whether a store connection was successfully
	// established at startup.
	Available() bool

	// Insert writes one record into the named collection. Returns
	// ErrUnavailable when no connection exists.
	Insert(ctx context.Context, collection string, doc any) error

	// FindAll returns every record in the collection in insertion order,
	// or an empty slice when the store is unavailable.
	FindAll(ctx context.Context, collection string) ([]bson.M, error)

	// Count returns the number of records matching filter (nil matches
	// all), or 0 when the store is unavailable.
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)
}

// unavailable is the degraded adapter used when no connection could be
// established. Reads behave as an empty store.
type unavailable struct{}

// Unavailable returns the no-op adapter.
func Unavailable() Store { return unavailable{} }

func (unavailable) Available() bool { return false }

func (unavailable) Insert(context.Context, string, any) error {
	return ErrUnavailable
}

func (unavailable) FindAll(context.Context, string) ([]bson.M, error) {
	return []bson.M{}, nil
}

func (unavailable) Count(context.Context, string, bson.M) (int64, error) {
	return 0, nil
}
