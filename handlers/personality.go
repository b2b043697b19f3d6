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

// personalityPayload is the declarative schema for personality bodies.
type personalityPayload struct {
	Personality *string `json:"personality" validate:"required"`
	CharacterID *uint   `json:"characterId" validate:"required"`
}

// PersonalityHandler exposes the personality resource.
type PersonalityHandler struct {
	*Resource[models.Personality, personalityPayload]
}

// NewPersonalityHandler wires the personality resource to its repository.
func NewPersonalityHandler(repo *repository.PersonalityRepository, cfg config.Config) *PersonalityHandler {
	return &PersonalityHandler{Resource: &Resource[models.Personality, personalityPayload]{
		Name:   "Personality",
		Plural: "personalities",
		Repo:   repo,

		DefaultSortBy: "personality",
		SortFields: []FieldMap{
			{"id", "id"},
			{"personality", "personality"},
			{"characterId", "character_id"},
		},
		FilterFields: []FieldMap{
			{"personality", "personality"},
			{"characterId", "character_id"},
		},
		PageSize:    cfg.ListPageSize,
		PageSizeMax: cfg.ListPageSizeMax,

		Semantic: func(p *personalityPayload) *validation.Error {
			return validation.CheckPersonality(*p.Personality)
		},
		CheckConflict: func(p *personalityPayload) (*validation.Error, error) {
			_, err := repo.FindByValue(*p.Personality, *p.CharacterID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, nil
				}
				return nil, err
			}
			return validation.Conflict(fmt.Sprintf(
				"Personality with the value %s already exists for the character with the id %d",
				*p.Personality, *p.CharacterID)), nil
		},
		ToModel: func(p *personalityPayload) *models.Personality {
			return &models.Personality{
				Personality: *p.Personality,
				CharacterID: *p.CharacterID,
			}
		},
	}}
}
