package repository

import (
	"github.com/arcanum-games/chardb-backend/models"
)

// Repository defines the entity-scoped persistence operations every resource
// handler depends on.
type Repository[T any] interface {
	Create(entity *T) error
	GetByID(id uint) (*T, error)
	List(opts ListOptions) ([]T, int64, error)
	Update(id uint, entity *T) error
	Delete(id uint) error
}

// CharacterFinder defines the uniqueness lookups for characters.
type CharacterFinder interface {
	FindByName(name string) (*models.Character, error)
}

// RarityFinder defines the per-character uniqueness lookups for rarities.
type RarityFinder interface {
	FindByRarity(rarity int, characterID uint) (*models.Rarity, error)
	FindByClassName(className string, characterID uint) (*models.Rarity, error)
}

// ScopedValueFinder defines the (value, characterId) uniqueness lookup shared
// by elements and personalities.
type ScopedValueFinder[T any] interface {
	FindByValue(value string, characterID uint) (*T, error)
}
