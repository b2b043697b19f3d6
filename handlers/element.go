package handlers

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/arcanum-games/chardb-backend/config"
	"github.com/arcanum-games/chardb-backend/models"
	"github.com/arcanum-games/chardb-backend/repository"
	"github.com/arcanum-games/chardb-backend/validation"
)

// elementPayload is the declarative schema for element bodies.
type elementPayload struct {
	Element     *string `json:"element" validate:"required"`
	CharacterID *uint   `json:"characterId" validate:"required"`
}

// ElementHandler exposes the element resource.
type ElementHandler struct {
	*Resource[models.Element, elementPayload]
}

// NewElementHandler wires the element resource to its repository.
func NewElementHandler(repo *repository.ElementRepository, cfg config.Config) *ElementHandler {
	return &ElementHandler{Resource: &Resource[models.Element, elementPayload]{
		Name:   "Element",
		Plural: "elements",
		Repo:   repo,

		DefaultSortBy: "element",
		SortFields: []FieldMap{
			{"id", "id"},
			{"element", "element"},
			{"characterId", "character_id"},
		},
		FilterFields: []FieldMap{
			{"element", "element"},
			{"characterId", "character_id"},
		},
		PageSize:    cfg.ListPageSize,
		PageSizeMax: cfg.ListPageSizeMax,

		Semantic: func(p *elementPayload) *validation.Error {
			return validation.CheckElement(*p.Element)
		},
		CheckConflict: func(p *elementPayload) (*validation.Error, error) {
			_, err := repo.FindByValue(*p.Element, *p.CharacterID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, nil
				}
				return nil, err
			}
			return validation.Conflict(fmt.Sprintf(
				"Element with the value %s already exists for the character with the id %d",
				*p.Element, *p.CharacterID)), nil
		},
		ToModel: func(p *elementPayload) *models.Element {
			return &models.Element{
				Element:     *p.Element,
				CharacterID: *p.CharacterID,
			}
		},
	}}
}
