package models

// Personality represents one personality tag attached to a character.
// It corresponds to the 'personalities' table.
type Personality struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Personality string `gorm:"not null;index:idx_personality_per_character,unique" json:"personality"`
	CharacterID uint   `gorm:"not null;index:idx_personality_per_character,unique" json:"characterId"`

	Character *Character `gorm:"foreignKey:CharacterID" json:"character,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Personality) TableName() string {
	return "personalities"
}
