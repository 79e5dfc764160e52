// Package storage mirrors the book collection to durable storage.
//
// A Store only knows how to read the whole collection and how to replace it. Callers
// keep the collection in memory and call Save after every change.
package storage

import (
	"context"

	"github.com/supakorn-kn/books-api/objects"
)

type Store interface {
	// Load returns the persisted collection. A store with nothing persisted yet
	// returns an empty collection.
	Load(ctx context.Context) (objects.Collection, error)

	// Save replaces the persisted collection with c.
	Save(ctx context.Context, c objects.Collection) error
}
