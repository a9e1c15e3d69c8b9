// Package postgres persists records through a single generic store
// parameterized by a per-kind table mapping. No reflection: each record kind
// supplies its column list and scan/args functions at compile time.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fleetbay/fleetbay-server/internal/model"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint breach.
const pgUniqueViolation = "23505"

// Mapping binds a record kind to its table. Columns holds every persisted
// column with the identity first; Args returns values in the same order;
// Scan reads one row in that order.
type Mapping[T model.Entity] struct {
	Table   string
	Columns []string
	Args    func(T) []any
	Scan    func(row pgx.Row) (T, error)
}

// Store implements model.Store[T] against PostgreSQL. Enumeration is ordered
// by identity so consecutive pages are disjoint and together exhaustive.
type Store[T model.Entity] struct {
	db *Connection
	m  Mapping[T]

	insertSQL     string
	selectByIDSQL string
	selectAllSQL  string
	selectPageSQL string
	countSQL      string
	updateSQL     string
	deleteSQL     string
}

// NewStore builds a store for the mapping's table. The SQL text is assembled
// once here; every method reuses it.
func NewStore[T model.Entity](db *Connection, m Mapping[T]) *Store[T] {
	cols := strings.Join(m.Columns, ", ")

	placeholders := make([]string, len(m.Columns))
	for i := range m.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	// Identity is immutable; SET covers every column but the first.
	assignments := make([]string, len(m.Columns)-1)
	for i, col := range m.Columns[1:] {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+2)
	}

	return &Store[T]{
		db: db,
		m:  m,
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			m.Table, cols, strings.Join(placeholders, ", "), cols),
		selectByIDSQL: fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", cols, m.Table, m.Columns[0]),
		selectAllSQL:  fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", cols, m.Table, m.Columns[0]),
		selectPageSQL: fmt.Sprintf("SELECT %s FROM %s ORDER BY %s LIMIT $1 OFFSET $2", cols, m.Table, m.Columns[0]),
		countSQL:      fmt.Sprintf("SELECT count(*) FROM %s", m.Table),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1",
			m.Table, strings.Join(assignments, ", "), m.Columns[0]),
		deleteSQL: fmt.Sprintf("DELETE FROM %s WHERE %s = $1", m.Table, m.Columns[0]),
	}
}

func (s *Store[T]) Create(ctx context.Context, entity T) (T, error) {
	var zero T

	saved, err := s.m.Scan(s.db.QueryRow(ctx, s.insertSQL, s.m.Args(entity)...))
	if err != nil {
		if isUniqueViolation(err) {
			return zero, model.ErrConflict
		}
		return zero, fmt.Errorf("failed to create %s record: %w", s.m.Table, err)
	}

	return saved, nil
}

func (s *Store[T]) GetByID(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T

	entity, err := s.m.Scan(s.db.QueryRow(ctx, s.selectByIDSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, model.ErrNotFound
		}
		return zero, fmt.Errorf("failed to get %s record by id: %w", s.m.Table, err)
	}

	return entity, nil
}

func (s *Store[T]) GetAll(ctx context.Context) ([]T, error) {
	rows, err := s.db.Query(ctx, s.selectAllSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s records: %w", s.m.Table, err)
	}
	defer rows.Close()

	return s.collect(rows)
}

func (s *Store[T]) GetPage(ctx context.Context, req model.PageRequest) (model.Page[T], error) {
	req = req.Normalize()

	var totalCount int64
	if err := s.db.QueryRow(ctx, s.countSQL).Scan(&totalCount); err != nil {
		return model.Page[T]{}, fmt.Errorf("failed to count %s records: %w", s.m.Table, err)
	}

	rows, err := s.db.Query(ctx, s.selectPageSQL, req.Size, req.Offset())
	if err != nil {
		return model.Page[T]{}, fmt.Errorf("failed to page %s records: %w", s.m.Table, err)
	}
	defer rows.Close()

	items, err := s.collect(rows)
	if err != nil {
		return model.Page[T]{}, err
	}

	return model.NewPage(items, totalCount, req), nil
}

func (s *Store[T]) Update(ctx context.Context, entity T) error {
	if _, err := s.db.Exec(ctx, s.updateSQL, s.m.Args(entity)...); err != nil {
		if isUniqueViolation(err) {
			return model.ErrConflict
		}
		return fmt.Errorf("failed to update %s record: %w", s.m.Table, err)
	}
	return nil
}

func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.Exec(ctx, s.deleteSQL, id); err != nil {
		return fmt.Errorf("failed to delete %s record: %w", s.m.Table, err)
	}
	return nil
}

func (s *Store[T]) collect(rows pgx.Rows) ([]T, error) {
	items := []T{}
	for rows.Next() {
		item, err := s.m.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s record: %w", s.m.Table, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s records: %w", s.m.Table, err)
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
