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

// rarityPayload is the declarative schema for rarity bodies.
type rarityPayload struct {
	Rarity      *int    `json:"rarity" validate:"required"`
	ClassName   *string `json:"className" validate:"required"`
	CharacterID *uint   `json:"characterId" validate:"required"`
}

// RarityHandler exposes the rarity resource.
type RarityHandler struct {
	*Resource[models.Rarity, rarityPayload]
}

// NewRarityHandler wires the rarity resource to its repository. Two
// independent uniqueness predicates are checked sequentially: the tier value
// and the class name, each scoped to one character.
func NewRarityHandler(repo *repository.RarityRepository, cfg config.Config) *RarityHandler {
	return &RarityHandler{Resource: &Resource[models.Rarity, rarityPayload]{
		Name:   "Rarity",
		Plural: "rarities",
		Repo:   repo,

		DefaultSortBy: "rarity",
		SortFields: []FieldMap{
			{"id", "id"},
			{"rarity", "rarity"},
			{"className", "class_name"},
			{"characterId", "character_id"},
		},
		FilterFields: []FieldMap{
			{"rarity", "rarity"},
			{"characterId", "character_id"},
		},
		PageSize:    cfg.ListPageSize,
		PageSizeMax: cfg.ListPageSizeMax,

		Semantic: func(p *rarityPayload) *validation.Error {
			return validation.CheckRarity(*p.Rarity)
		},
		CheckConflict: func(p *rarityPayload) (*validation.Error, error) {
			_, err := repo.FindByRarity(*p.Rarity, *p.CharacterID)
			if err == nil {
				return validation.Conflict(fmt.Sprintf(
					"Rarity of %d already exists for the character with the id %d",
					*p.Rarity, *p.CharacterID)), nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}

			_, err = repo.FindByClassName(*p.ClassName, *p.CharacterID)
			if err == nil {
				return validation.Conflict(fmt.Sprintf(
					"Rarity with the class name %s already exists for the character with the id %d",
					*p.ClassName, *p.CharacterID)), nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			return nil, nil
		},
		ToModel: func(p *rarityPayload) *models.Rarity {
			return &models.Rarity{
				Rarity:      *p.Rarity,
				ClassName:   *p.ClassName,
				CharacterID: *p.CharacterID,
			}
		},
	}}
}
