package models

// Character represents a playable character in the catalog.
// It corresponds to the 'characters' table.
//
// Name carries a case-insensitive unique index; "Hismena" and "hismena"
// are the same character as far as the database is concerned.
type Character struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:TEXT COLLATE NOCASE;not null;uniqueIndex" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Affinity    string `gorm:"not null" json:"affinity"`

	// Relationships
	// omitempty will hide these if they are not preloaded or are empty
	Attributes      []Attribute     `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"attributes,omitempty"`
	Rarities        []Rarity        `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"rarities,omitempty"`
	AffinityBonuses []AffinityBonus `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"affinityBonuses,omitempty"`
	Elements        []Element       `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"elements,omitempty"`
	Personalities   []Personality   `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"personalities,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Character) TableName() string {
	return "characters"
}
