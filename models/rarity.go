package models

// Rarity represents one rarity tier a character can be pulled at, together
// with the class name the character takes on at that tier.
// It corresponds to the 'rarities' table.
//
// Both the tier value and the class name are unique per character, enforced
// by two independent composite unique indexes.
type Rarity struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Rarity      int    `gorm:"not null;index:idx_rarity_per_character,unique" json:"rarity"`
	ClassName   string `gorm:"not null;index:idx_class_name_per_character,unique" json:"className"`
	CharacterID uint   `gorm:"not null;index:idx_rarity_per_character,unique;index:idx_class_name_per_character,unique" json:"characterId"`

	Character *Character `gorm:"foreignKey:CharacterID" json:"character,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Rarity) TableName() string {
	return "rarities"
}
