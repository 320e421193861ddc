package entity

import (
	"time"

	"gorm.io/datatypes"
)

type Receipt struct {
	ID          uint                       `gorm:"primaryKey" json:"receiptId"`
	TableID     uint                       `gorm:"not null" json:"tableId"`
	StaffID     *uint                      `json:"staffId"`
	CheckID     *uint                      `json:"checkId"`
	WasPaid     bool                       `gorm:"default:false" json:"wasPaid"`
	DishIDs     datatypes.JSONSlice[int64] `json:"dishIds"`
	Sum         *float64                   `json:"sum"`
	PaymentDate *time.Time                 `json:"paymentDate"`
}

// HasDish reports whether the dish id is already on the receipt.
func (r *Receipt) HasDish(dishID int64) bool {
	for _, id := range r.DishIDs {
		if id == dishID {
			return true
		}
	}
	return false
}
