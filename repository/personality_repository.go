package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/arcanum-games/chardb-backend/models"
)

// PersonalityRepository handles database operations for Personality entities
type PersonalityRepository struct {
	*CRUD[models.Personality]
}

// NewPersonalityRepository creates a new instance of PersonalityRepository
func NewPersonalityRepository(db *gorm.DB) *PersonalityRepository {
	return &PersonalityRepository{CRUD: NewCRUD[models.Personality](db, "Character")}
}

// FindByValue retrieves the personality row with the given value for one
// character, if any.
func (r *PersonalityRepository) FindByValue(personality string, characterID uint) (*models.Personality, error) {
	var row models.Personality
	err := r.DB.Where("personality = ? AND character_id = ?", personality, characterID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find personality %s for character %d: %w", personality, characterID, err)
	}
	return &row, nil
}
