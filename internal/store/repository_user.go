package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and deletion against the "users" table.
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

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account. The unique indexes on
// username and email guarantee that a duplicate INSERT fails without
// mutating state.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// GetUser retrieves a single user by id.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, getUserByID, id)

	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// GetAllUsers retrieves every user record ordered by id. An empty table
// yields an empty (non-nil) slice.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllUsers)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.GetAllUsers").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error: scanning error")
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return users, nil
}

// DeleteUser removes a user by id.
//
// Returns [ErrUserNotFound] when no row was affected, which callers rely on
// for the idempotent-on-miss delete semantics of the HTTP layer.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.DeleteUser").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// CountUsers reports the current number of user rows.
func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countUsers).Scan(&count); err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsers").Msg("error: count failed")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}
