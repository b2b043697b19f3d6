package models

// Attribute represents one set of base stats belonging to a character.
// It corresponds to the 'attributes' table.
type Attribute struct {
	ID          uint `gorm:"primaryKey;autoIncrement" json:"id"`
	HP          int  `gorm:"column:hp;not null" json:"hp"`
	MP          int  `gorm:"column:mp;not null" json:"mp"`
	Pwr         int  `gorm:"column:pwr;not null" json:"pwr"`
	Int         int  `gorm:"column:int;not null" json:"int"`
	Spd         int  `gorm:"column:spd;not null" json:"spd"`
	End         int  `gorm:"column:end;not null" json:"end"`
	Spr         int  `gorm:"column:spr;not null" json:"spr"`
	Lck         int  `gorm:"column:lck;not null" json:"lck"`
	CharacterID uint `gorm:"not null;index" json:"characterId"`

	Character *Character `gorm:"foreignKey:CharacterID" json:"character,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Attribute) TableName() string {
	return "attributes"
}
