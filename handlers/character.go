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

// characterPayload is the declarative schema for character create and update
// bodies. Pointer fields keep "missing" distinguishable from zero values so
// every field can be required.
type characterPayload struct {
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Affinity    *string `json:"affinity" validate:"required"`
}

// CharacterHandler exposes the character resource.
type CharacterHandler struct {
	*Resource[models.Character, characterPayload]
}

// NewCharacterHandler wires the character resource to its repository.
func NewCharacterHandler(repo *repository.CharacterRepository, cfg config.Config) *CharacterHandler {
	return &CharacterHandler{Resource: &Resource[models.Character, characterPayload]{
		Name:   "Character",
		Plural: "characters",
		Repo:   repo,

		DefaultSortBy: "name",
		SortFields: []FieldMap{
			{"id", "id"},
			{"name", "name"},
			{"affinity", "affinity"},
		},
		FilterFields: []FieldMap{
			{"name", "name"},
			{"affinity", "affinity"},
		},
		PageSize:    cfg.ListPageSize,
		PageSizeMax: cfg.ListPageSizeMax,

		Semantic: func(p *characterPayload) *validation.Error {
			return validation.CheckAffinity(*p.Affinity)
		},
		CheckConflict: func(p *characterPayload) (*validation.Error, error) {
			_, err := repo.FindByName(*p.Name)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, nil
				}
				return nil, err
			}
			return validation.Conflict(fmt.Sprintf(
				"Character with the name %s already exists in the database", *p.Name)), nil
		},
		ToModel: func(p *characterPayload) *models.Character {
			return &models.Character{
				Name:        *p.Name,
				Description: *p.Description,
				Affinity:    *p.Affinity,
			}
		},
	}}
}
