package store

import (
	"context"
	"fmt"

	"github.com/vparshin/go-note-keeper/internal/logger"
	"github.com/vparshin/go-note-keeper/models"
)

// userRepository is the SQL-backed implementation of [UserRepository]. It
// owns the "users" table and performs the lazy owner bootstrap.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureUser implements [UserRepository]. The upsert is a single
// ON CONFLICT DO NOTHING insert, so calling it for an owner that already
// exists is a no-op and never overwrites stored fields.
func (r *userRepository) EnsureUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.ensureUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.EnsureUser").Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// insert owner if absent
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*userRepository.EnsureUser").
			Int("classification", int(r.db.errorClassificator.Classify(err))).
			Msg("error executing owner upsert")
		return fmt.Errorf("%w: %w", ErrOwnerNotSaved, err)
	}

	return nil
}
