package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "fitness-club/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB is a Querier that can open a transaction.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Mapping describes how one entity type is stored.
type Mapping[T any] struct {
	// Table is the table written by Save and DeleteByID.
	Table string
	// Columns are the writable columns, id excluded, in Values order.
	Columns []string
	// Select reads the entity, joins included. It must not end with WHERE or ORDER BY.
	Select string
	// IDColumn is the qualified id column of Select, e.g. "c.id".
	IDColumn string
	ID       func(e *T) *int
	Values   func(e *T) []any
	Scan     func(row pgx.Row) (*T, error)
}

type CrudRepository[T any] interface {
	FindAll(ctx context.Context) ([]*T, error)
	// FindByID returns apperrors.ErrNotFound when no row has the id.
	FindByID(ctx context.Context, id int) (*T, error)
	// Save inserts when the id is zero and overwrites every column otherwise.
	Save(ctx context.Context, entity *T) (*T, error)
	// DeleteByID is a no-op for an unknown id.
	DeleteByID(ctx context.Context, id int) error
}

type CrudRepositoryImpl[T any] struct {
	db      DB
	mapping Mapping[T]
}

func NewCrudRepository[T any](db DB, mapping Mapping[T]) *CrudRepositoryImpl[T] {
	return &CrudRepositoryImpl[T]{
		db:      db,
		mapping: mapping,
	}
}

func (r *CrudRepositoryImpl[T]) FindAll(ctx context.Context) ([]*T, error) {
	return r.findAll(ctx, r.db)
}

func (r *CrudRepositoryImpl[T]) findAll(ctx context.Context, q Querier) ([]*T, error) {
	query := fmt.Sprintf("%s ORDER BY %s", r.mapping.Select, r.mapping.IDColumn)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.mapping.Table, err)
	}
	defer rows.Close()

	entities := make([]*T, 0)
	for rows.Next() {
		entity, err := r.mapping.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.mapping.Table, err)
		}
		entities = append(entities, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.mapping.Table, err)
	}

	return entities, nil
}

func (r *CrudRepositoryImpl[T]) FindByID(ctx context.Context, id int) (*T, error) {
	return r.findByID(ctx, r.db, id)
}

func (r *CrudRepositoryImpl[T]) findByID(ctx context.Context, q Querier, id int) (*T, error) {
	query := fmt.Sprintf("%s WHERE %s = $1", r.mapping.Select, r.mapping.IDColumn)

	entity, err := r.mapping.Scan(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find %s %d: %w", r.mapping.Table, id, err)
	}
	return entity, nil
}

func (r *CrudRepositoryImpl[T]) Save(ctx context.Context, entity *T) (*T, error) {
	return r.save(ctx, r.db, entity)
}

// SaveTx is Save inside the caller's transaction.
func (r *CrudRepositoryImpl[T]) SaveTx(ctx context.Context, tx pgx.Tx, entity *T) (*T, error) {
	return r.save(ctx, tx, entity)
}

func (r *CrudRepositoryImpl[T]) save(ctx context.Context, q Querier, entity *T) (*T, error) {
	id := r.mapping.ID(entity)
	values := r.mapping.Values(entity)

	if *id == 0 {
		placeholders := make([]string, len(r.mapping.Columns))
		for i := range placeholders {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		}
		query := fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
			r.mapping.Table,
			strings.Join(r.mapping.Columns, ", "),
			strings.Join(placeholders, ", "),
		)
		if err := q.QueryRow(ctx, query, values...).Scan(id); err != nil {
			return nil, translateError(fmt.Errorf("insert %s: %w", r.mapping.Table, err))
		}
		return entity, nil
	}

	sets := make([]string, len(r.mapping.Columns))
	for i, column := range r.mapping.Columns {
		sets[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d",
		r.mapping.Table,
		strings.Join(sets, ", "),
		len(r.mapping.Columns)+1,
	)
	tag, err := q.Exec(ctx, query, append(values, *id)...)
	if err != nil {
		return nil, translateError(fmt.Errorf("update %s %d: %w", r.mapping.Table, *id, err))
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return entity, nil
}

func (r *CrudRepositoryImpl[T]) DeleteByID(ctx context.Context, id int) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.mapping.Table)
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return translateError(fmt.Errorf("delete %s %d: %w", r.mapping.Table, id, err))
	}
	return nil
}

// translateError maps constraint violations onto application errors, keeping the cause in the chain.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23503": // foreign_key_violation
		return fmt.Errorf("%w (%s): %w", apperrors.ErrReferenceViolation, pgErr.ConstraintName, err)
	case "23502", "23514": // not_null_violation, check_violation
		return fmt.Errorf("%w (%s): %w", apperrors.ErrInvalidInput, pgErr.ConstraintName, err)
	}
	return err
}
