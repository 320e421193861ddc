package repository

import (
	"tiechef/entity"

	"gorm.io/gorm"
)

type DishRepository struct {
	*Repository[entity.Dish]
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{Repository: New[entity.Dish](db)}
}
