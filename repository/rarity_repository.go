package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/arcanum-games/chardb-backend/models"
)

// RarityRepository handles database operations for Rarity entities
type RarityRepository struct {
	*CRUD[models.Rarity]
}

// NewRarityRepository creates a new instance of RarityRepository
func NewRarityRepository(db *gorm.DB) *RarityRepository {
	return &RarityRepository{CRUD: NewCRUD[models.Rarity](db, "Character")}
}

// FindByRarity retrieves the rarity row with the given tier for one
// character, if any.
func (r *RarityRepository) FindByRarity(rarity int, characterID uint) (*models.Rarity, error) {
	var row models.Rarity
	err := r.DB.Where("rarity = ? AND character_id = ?", rarity, characterID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find rarity %d for character %d: %w", rarity, characterID, err)
	}
	return &row, nil
}

// FindByClassName retrieves the rarity row with the given class name for one
// character, if any.
func (r *RarityRepository) FindByClassName(className string, characterID uint) (*models.Rarity, error) {
	var row models.Rarity
	err := r.DB.Where("class_name = ? AND character_id = ?", className, characterID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find class name %s for character %d: %w", className, characterID, err)
	}
	return &row, nil
}
