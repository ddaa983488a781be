package model

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"size:25;uniqueIndex;not null"`
	Email    string `json:"email" gorm:"size:70;uniqueIndex;not null"`
	Password string `json:"-" gorm:"type:text;not null"`

	Cafes []Cafe `json:"-" gorm:"foreignKey:OwnerID"`
}

func (User) TableName() string {
	return "user"
}
