package storage

import (
	"context"

	"github.com/MikhailRaia/link-shortener/internal/model"
)

// LinkStore loads and persists the whole code to URL mapping.
// Implementations do no locking of their own; callers serialise load/save pairs.
type LinkStore interface {
	Load(ctx context.Context) (model.LinkMapping, error)

	Save(ctx context.Context, links model.LinkMapping) error
}
