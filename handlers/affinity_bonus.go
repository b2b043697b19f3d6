package handlers

import (
	"github.com/arcanum-games/chardb-backend/config"
	"github.com/arcanum-games/chardb-backend/models"
	"github.com/arcanum-games/chardb-backend/repository"
)

// affinityBonusPayload is the declarative schema for affinity bonus bodies;
// all fourteen tiers must be submitted on every create and update.
type affinityBonusPayload struct {
	Bonus5      *string `json:"bonus5" validate:"required"`
	Bonus15     *string `json:"bonus15" validate:"required"`
	Bonus30     *string `json:"bonus30" validate:"required"`
	Bonus50     *string `json:"bonus50" validate:"required"`
	Bonus75     *string `json:"bonus75" validate:"required"`
	Bonus80     *string `json:"bonus80" validate:"required"`
	Bonus105    *string `json:"bonus105" validate:"required"`
	Bonus120    *string `json:"bonus120" validate:"required"`
	Bonus140    *string `json:"bonus140" validate:"required"`
	Bonus175    *string `json:"bonus175" validate:"required"`
	Bonus200    *string `json:"bonus200" validate:"required"`
	Bonus215    *string `json:"bonus215" validate:"required"`
	Bonus225    *string `json:"bonus225" validate:"required"`
	Bonus255    *string `json:"bonus255" validate:"required"`
	CharacterID *uint   `json:"characterId" validate:"required"`
}

// AffinityBonusHandler exposes the affinity bonus resource.
type AffinityBonusHandler struct {
	*Resource[models.AffinityBonus, affinityBonusPayload]
}

// NewAffinityBonusHandler wires the affinity bonus resource to its repository.
func NewAffinityBonusHandler(repo *repository.AffinityBonusRepository, cfg config.Config) *AffinityBonusHandler {
	return &AffinityBonusHandler{Resource: &Resource[models.AffinityBonus, affinityBonusPayload]{
		Name:   "Affinity",
		Plural: "affinities",
		Repo:   repo,

		DefaultSortBy: "characterId",
		SortFields: []FieldMap{
			{"id", "id"},
			{"characterId", "character_id"},
		},
		FilterFields: []FieldMap{
			{"characterId", "character_id"},
		},
		PageSize:    cfg.ListPageSize,
		PageSizeMax: cfg.ListPageSizeMax,

		ToModel: func(p *affinityBonusPayload) *models.AffinityBonus {
			return &models.AffinityBonus{
				Bonus5:      *p.Bonus5,
				Bonus15:     *p.Bonus15,
				Bonus30:     *p.Bonus30,
				Bonus50:     *p.Bonus50,
				Bonus75:     *p.Bonus75,
				Bonus80:     *p.Bonus80,
				Bonus105:    *p.Bonus105,
				Bonus120:    *p.Bonus120,
				Bonus140:    *p.Bonus140,
				Bonus175:    *p.Bonus175,
				Bonus200:    *p.Bonus200,
				Bonus215:    *p.Bonus215,
				Bonus225:    *p.Bonus225,
				Bonus255:    *p.Bonus255,
				CharacterID: *p.CharacterID,
			}
		},
	}}
}
