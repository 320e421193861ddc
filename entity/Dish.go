package entity

type Dish struct {
	ID          uint    `gorm:"primaryKey" json:"dishId"`
	Name        string  `gorm:"not null" json:"name"`
	Description *string `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
}
