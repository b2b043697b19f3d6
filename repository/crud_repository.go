package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ListOptions carries the sort/filter/pagination directives built from a list
// request's query string. Filters holds one column per query parameter that
// was actually present; absent parameters never become predicates.
type ListOptions struct {
	SortBy    string
	SortOrder string // "asc" or "desc"
	Amount    int
	Page      int // 1-indexed
	Filters   map[string]any
}

// CRUD implements the entity-scoped persistence operations shared by every
// resource. Per-entity repositories embed it and add their uniqueness finders.
//
// SortBy and the Filters keys must come from a handler-side whitelist; they
// are interpolated into the query as column names.
type CRUD[T any] struct {
	DB       *gorm.DB
	preloads []string
}

// NewCRUD creates a CRUD repository for T. The given preloads are applied on
// every GetByID and List call.
func NewCRUD[T any](db *gorm.DB, preloads ...string) *CRUD[T] {
	return &CRUD[T]{DB: db, preloads: preloads}
}

func (r *CRUD[T]) withPreloads() *gorm.DB {
	tx := r.DB
	for _, p := range r.preloads {
		tx = tx.Preload(p)
	}
	return tx
}

// Create inserts a new record.
func (r *CRUD[T]) Create(entity *T) error {
	if err := r.DB.Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// GetByID retrieves a record by primary key with the configured preloads.
// gorm.ErrRecordNotFound passes through untouched so callers can branch on it.
func (r *CRUD[T]) GetByID(id uint) (*T, error) {
	var entity T
	err := r.withPreloads().First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get record by ID %d: %w", id, err)
	}
	return &entity, nil
}

// List fetches one page of records plus the exact total row count for the
// same filters, so the handler can compute the next page without the
// len(page) == amount false positive.
func (r *CRUD[T]) List(opts ListOptions) ([]T, int64, error) {
	// columns are quoted so stat names like "end" and "int" stay valid SQL
	filtered := r.DB.Model(new(T))
	for column, value := range opts.Filters {
		filtered = filtered.Where(fmt.Sprintf("%q = ?", column), value)
	}

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count records: %w", err)
	}

	tx := r.withPreloads()
	for column, value := range opts.Filters {
		tx = tx.Where(fmt.Sprintf("%q = ?", column), value)
	}

	var entities []T
	err := tx.Order(fmt.Sprintf("%q %s", opts.SortBy, strings.ToUpper(opts.SortOrder))).
		Limit(opts.Amount).
		Offset((opts.Page - 1) * opts.Amount).
		Find(&entities).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list records: %w", err)
	}
	return entities, total, nil
}

// Update performs a full-row replace of the record with the given id. Every
// column is written from the incoming entity, zero values included; there is
// no partial-patch semantics.
func (r *CRUD[T]) Update(id uint, entity *T) error {
	result := r.DB.Model(new(T)).Where("id = ?", id).
		Select("*").Omit("id").
		Updates(entity)
	if result.Error != nil {
		return fmt.Errorf("failed to update record ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a record by primary key.
func (r *CRUD[T]) Delete(id uint) error {
	result := r.DB.Delete(new(T), id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete record ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
