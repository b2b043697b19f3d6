package handlers

import (
	"github.com/arcanum-games/chardb-backend/config"
	"github.com/arcanum-games/chardb-backend/models"
	"github.com/arcanum-games/chardb-backend/repository"
)

// attributePayload is the declarative schema for attribute bodies. Stats are
// required even when zero, hence the pointers.
type attributePayload struct {
	HP          *int  `json:"hp" validate:"required"`
	MP          *int  `json:"mp" validate:"required"`
	Pwr         *int  `json:"pwr" validate:"required"`
	Int         *int  `json:"int" validate:"required"`
	Spd         *int  `json:"spd" validate:"required"`
	End         *int  `json:"end" validate:"required"`
	Spr         *int  `json:"spr" validate:"required"`
	Lck         *int  `json:"lck" validate:"required"`
	CharacterID *uint `json:"characterId" validate:"required"`
}

// AttributeHandler exposes the attribute resource.
type AttributeHandler struct {
	*Resource[models.Attribute, attributePayload]
}

// NewAttributeHandler wires the attribute resource to its repository.
func NewAttributeHandler(repo *repository.AttributeRepository, cfg config.Config) *AttributeHandler {
	return &AttributeHandler{Resource: &Resource[models.Attribute, attributePayload]{
		Name:   "Attribute",
		Plural: "attributes",
		Repo:   repo,

		DefaultSortBy: "characterId",
		SortFields: []FieldMap{
			{"id", "id"},
			{"characterId", "character_id"},
			{"hp", "hp"},
			{"mp", "mp"},
			{"pwr", "pwr"},
			{"int", "int"},
			{"spd", "spd"},
			{"end", "end"},
			{"spr", "spr"},
			{"lck", "lck"},
		},
		FilterFields: []FieldMap{
			{"characterId", "character_id"},
		},
		PageSize:    cfg.ListPageSize,
		PageSizeMax: cfg.ListPageSizeMax,

		ToModel: func(p *attributePayload) *models.Attribute {
			return &models.Attribute{
				HP:          *p.HP,
				MP:          *p.MP,
				Pwr:         *p.Pwr,
				Int:         *p.Int,
				Spd:         *p.Spd,
				End:         *p.End,
				Spr:         *p.Spr,
				Lck:         *p.Lck,
				CharacterID: *p.CharacterID,
			}
		},
	}}
}
