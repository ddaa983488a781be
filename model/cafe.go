package model

// Cafe is owned by exactly one User. The one-cafe-per-user rule is checked by
// the handlers, not by a constraint.
type Cafe struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:25;uniqueIndex;not null"`
	OwnerID     uint   `json:"owner_id" gorm:"not null;index"`
	Location    string `json:"location" gorm:"not null"`
	Description string `json:"description"`
	PhoneNumber string `json:"phonenumber" gorm:"column:phonenumber;not null"`
	WifiPass    string `json:"wifipass" gorm:"column:wifipass"`
	LogoURL     string `json:"logo_url"`
	ImageURL    string `json:"image_url"`

	Owner    *User     `json:"-" gorm:"foreignKey:OwnerID"`
	Menus    []Menu    `json:"-" gorm:"foreignKey:CafeID"`
	Products []Product `json:"-" gorm:"foreignKey:CafeID"`
}

func (Cafe) TableName() string {
	return "cafes"
}
