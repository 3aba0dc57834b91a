// Package store keeps the last generation result for a short time so a
// second page can pick it up by id instead of through browser state.
package store

import (
	"context"
	"errors"
	"time"

	"sitegen_server/internal/types"
)

// DefaultTTL is how long a result stays readable after it is saved.
const DefaultTTL = 30 * time.Minute

// ErrNotFound is returned for unknown, deleted and expired ids.
var ErrNotFound = errors.New("result not found")

// ResultStore is the hand-off slot between generating a site and viewing it.
type ResultStore interface {
	Save(ctx context.Context, result types.GenerateResult) (string, error)
	Load(ctx context.Context, id string) (*types.GenerateResult, error)
	Delete(ctx context.Context, id string) error
}
