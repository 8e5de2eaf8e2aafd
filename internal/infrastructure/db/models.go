package db

import "time"

type UserModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	Email     string `gorm:"uniqueIndex;not null"`
	Phone     string `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type ProductModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	Name      string  `gorm:"not null"`
	Category  string  `gorm:"not null"`
	Price     float64 `gorm:"not null"`
	Rating    float64 `gorm:"default:0"`
}

func (ProductModel) TableName() string {
	return "products"
}
