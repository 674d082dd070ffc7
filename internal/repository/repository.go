package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"venue-booking/internal/database"
)

var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrArtistNotFound = errors.New("artist not found")
)

type baseRepository struct {
	db      *database.Database
	timeout time.Duration
}

func newBaseRepository(db *database.Database) baseRepository {
	return baseRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *baseRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term literally anywhere in
// the column. PostgreSQL uses backslash as the default LIKE escape.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
