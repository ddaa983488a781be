package model

type Menu struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"size:25;not null"`
	CafeID uint   `json:"cafe_id" gorm:"not null;index"`

	Cafe     *Cafe     `json:"-" gorm:"foreignKey:CafeID"`
	Products []Product `json:"-" gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE;"`
}

func (Menu) TableName() string {
	return "menu"
}
