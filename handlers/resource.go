package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/arcanum-games/chardb-backend/repository"
	"github.com/arcanum-games/chardb-backend/validation"
)

// Resource implements the five-operation contract every entity type follows:
// get-one, list, create, update, delete. It is instantiated once per resource
// with that entity's repository, payload schema P and semantic checks.
//
// Absence is modeled as a successful response carrying a message, never a
// 404; the envelope is always {data, msg, nextPage}.
type Resource[T any, P any] struct {
	Name   string // singular, capitalised, e.g. "Character"
	Plural string // lowercase plural for list messages, e.g. "characters"

	Repo repository.Repository[T]

	DefaultSortBy string
	SortFields    []FieldMap
	FilterFields  []FieldMap

	PageSize    int
	PageSizeMax int

	// Semantic runs the allow-list checks after schema validation succeeds.
	Semantic func(payload *P) *validation.Error

	// CheckConflict runs the scoped-uniqueness pre-checks. It reports a 409
	// when a duplicate already exists, or a store fault. The database unique
	// indexes remain the authoritative guard behind it.
	CheckConflict func(payload *P) (*validation.Error, error)

	// ToModel converts a validated payload into the entity row.
	ToModel func(payload *P) *T
}

// Routes mounts the five operations on a chi subrouter.
func (rs *Resource[T, P]) Routes(r chi.Router) {
	r.Get("/", rs.List)
	r.Post("/", rs.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", rs.GetOne)
		r.Put("/", rs.Update)
		r.Delete("/", rs.Delete)
	})
}

// DefaultSortColumn resolves the default sort field to its column.
func (rs *Resource[T, P]) DefaultSortColumn() string {
	if column, ok := lookupField(rs.SortFields, rs.DefaultSortBy); ok {
		return column
	}
	return rs.DefaultSortBy
}

func (rs *Resource[T, P]) notFoundMsg(id uint) string {
	return fmt.Sprintf("No %s with the id: %d found", rs.Name, id)
}

func (rs *Resource[T, P]) parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"msg": "Invalid id format"})
		return 0, false
	}
	return uint(id), true
}

func (rs *Resource[T, P]) decodeAndValidate(r *http.Request) (*P, *validation.Error) {
	var payload P
	if verr := validation.Decode(r.Body, &payload); verr != nil {
		return nil, verr
	}
	if verr := validation.Struct(&payload); verr != nil {
		return nil, verr
	}
	if rs.Semantic != nil {
		if verr := rs.Semantic(&payload); verr != nil {
			return nil, verr
		}
	}
	return &payload, nil
}

// conflictFor produces the 409 for a unique-index violation. The pre-check is
// re-run to recover the scope-specific message; if the conflicting row is
// gone again the generic message is used.
func (rs *Resource[T, P]) conflictFor(payload *P) *validation.Error {
	if rs.CheckConflict != nil {
		if verr, err := rs.CheckConflict(payload); err == nil && verr != nil {
			return verr
		}
	}
	return validation.Conflict(fmt.Sprintf("%s with the supplied unique values already exists", rs.Name))
}

// GetOne responds with the entity and its configured relations, or a
// 200-with-message when the id does not exist.
func (rs *Resource[T, P]) GetOne(w http.ResponseWriter, r *http.Request) {
	id, ok := rs.parseID(w, r)
	if !ok {
		return
	}

	entity, err := rs.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusOK, map[string]any{"msg": rs.notFoundMsg(id)})
			return
		}
		respondFault(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": entity})
}

// List responds with one page of entities plus the next page number, or a
// 200-with-message when the page is empty. nextPage is exact: it is non-null
// only when more rows remain past this page.
func (rs *Resource[T, P]) List(w http.ResponseWriter, r *http.Request) {
	opts, verr := rs.buildListOptions(r.URL.Query())
	if verr != nil {
		respondError(w, verr)
		return
	}

	entities, total, err := rs.Repo.List(opts)
	if err != nil {
		respondFault(w, err)
		return
	}

	if len(entities) == 0 {
		writeJSON(w, http.StatusOK, map[string]any{"msg": fmt.Sprintf("No %s found", rs.Plural)})
		return
	}

	var nextPage any
	if int64(opts.Page)*int64(opts.Amount) < total {
		nextPage = opts.Page + 1
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": entities, "nextPage": nextPage})
}

// Create validates the payload, runs the uniqueness pre-checks and persists a
// new row, responding 201 with the created record.
func (rs *Resource[T, P]) Create(w http.ResponseWriter, r *http.Request) {
	payload, verr := rs.decodeAndValidate(r)
	if verr != nil {
		respondError(w, verr)
		return
	}

	if rs.CheckConflict != nil {
		verr, err := rs.CheckConflict(payload)
		if err != nil {
			respondFault(w, err)
			return
		}
		if verr != nil {
			respondError(w, verr)
			return
		}
	}

	entity := rs.ToModel(payload)
	if err := rs.Repo.Create(entity); err != nil {
		if isUniqueViolation(err) {
			respondError(w, rs.conflictFor(payload))
			return
		}
		respondFault(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"msg":  fmt.Sprintf("%s successfully created", rs.Name),
		"data": entity,
	})
}

// Update validates the full replacement payload and overwrites every column
// of the row. A missing id gets the same 200-with-message treatment as
// get-one and delete.
func (rs *Resource[T, P]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := rs.parseID(w, r)
	if !ok {
		return
	}

	payload, verr := rs.decodeAndValidate(r)
	if verr != nil {
		respondError(w, verr)
		return
	}

	entity := rs.ToModel(payload)
	if err := rs.Repo.Update(id, entity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusOK, map[string]any{"msg": rs.notFoundMsg(id)})
			return
		}
		if isUniqueViolation(err) {
			respondError(w, rs.conflictFor(payload))
			return
		}
		respondFault(w, err)
		return
	}

	updated, err := rs.Repo.GetByID(id)
	if err != nil {
		respondFault(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"msg":  fmt.Sprintf("%s with the id: %d successfully updated", rs.Name, id),
		"data": updated,
	})
}

// Delete removes the row and responds with a snapshot of what was deleted,
// or a 200-with-message when the id does not exist.
func (rs *Resource[T, P]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := rs.parseID(w, r)
	if !ok {
		return
	}

	entity, err := rs.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusOK, map[string]any{"msg": rs.notFoundMsg(id)})
			return
		}
		respondFault(w, err)
		return
	}

	if err := rs.Repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusOK, map[string]any{"msg": rs.notFoundMsg(id)})
			return
		}
		respondFault(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"msg":  fmt.Sprintf("%s with the id: %d successfully deleted", rs.Name, id),
		"data": entity,
	})
}
