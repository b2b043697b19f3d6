package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/arcanum-games/chardb-backend/models"
)

// CharacterRepository handles database operations for Character entities
type CharacterRepository struct {
	*CRUD[models.Character]
}

// NewCharacterRepository creates a new instance of CharacterRepository
func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{
		CRUD: NewCRUD[models.Character](db,
			"Attributes", "Rarities", "AffinityBonuses", "Elements", "Personalities"),
	}
}

// FindByName retrieves a character by name, ignoring case. Used as the fast
// pre-check before create; the unique index on characters.name stays the
// authoritative guard against the check-then-insert race.
func (r *CharacterRepository) FindByName(name string) (*models.Character, error) {
	var character models.Character
	err := r.DB.Where("name = ? COLLATE NOCASE", name).First(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find character by name %s: %w", name, err)
	}
	return &character, nil
}

// Delete removes a character and all of its child rows in one transaction.
func (r *CharacterRepository) Delete(id uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		children := []any{
			&models.Attribute{},
			&models.Rarity{},
			&models.AffinityBonus{},
			&models.Element{},
			&models.Personality{},
		}
		for _, child := range children {
			if err := tx.Where("character_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.Character{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete character ID %d: %w", id, err)
	}
	return nil
}
