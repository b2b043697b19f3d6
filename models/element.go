package models

// Element represents one element a character can attack with.
// It corresponds to the 'elements' table.
//
// A character may hold several elements but never the same one twice.
type Element struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Element     string `gorm:"not null;index:idx_element_per_character,unique" json:"element"`
	CharacterID uint   `gorm:"not null;index:idx_element_per_character,unique" json:"characterId"`

	Character *Character `gorm:"foreignKey:CharacterID" json:"character,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Element) TableName() string {
	return "elements"
}
