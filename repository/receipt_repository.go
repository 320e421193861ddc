package repository

import (
	"tiechef/entity"

	"gorm.io/gorm"
)

type ReceiptRepository struct {
	*Repository[entity.Receipt]
}

func NewReceiptRepository(db *gorm.DB) *ReceiptRepository {
	return &ReceiptRepository{Repository: New[entity.Receipt](db)}
}

func (r *ReceiptRepository) FindByPayment(wasPaid bool) ([]entity.Receipt, error) {
	return r.Find("was_paid = ?", wasPaid)
}

func (r *ReceiptRepository) FindByStaff(staffID uint) ([]entity.Receipt, error) {
	return r.Find("staff_id = ?", staffID)
}
