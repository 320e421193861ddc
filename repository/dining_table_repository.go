package repository

import (
	"tiechef/entity"

	"gorm.io/gorm"
)

type DiningTableRepository struct {
	*Repository[entity.DiningTable]
}

func NewDiningTableRepository(db *gorm.DB) *DiningTableRepository {
	return &DiningTableRepository{Repository: New[entity.DiningTable](db)}
}

func (r *DiningTableRepository) FindByStaff(staffID uint) ([]entity.DiningTable, error) {
	return r.Find("staff_id = ?", staffID)
}
