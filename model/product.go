package model

// Product carries both MenuID and CafeID; the cafe is not derived from the menu.
type Product struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:25;not null"`
	Description string `json:"description" gorm:"size:150"`
	Price       int    `json:"price" gorm:"not null"`
	MenuID      uint   `json:"menu_id" gorm:"not null;index"`
	CafeID      uint   `json:"cafe_id" gorm:"not null;index"`
	ImageURL    string `json:"image_url"`
	Ingredients string `json:"ingredients"`

	Cafe *Cafe `json:"-" gorm:"foreignKey:CafeID"`
	Menu *Menu `json:"-" gorm:"foreignKey:MenuID"`
}

func (Product) TableName() string {
	return "products"
}
