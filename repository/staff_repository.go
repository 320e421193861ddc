package repository

import (
	"tiechef/entity"

	"gorm.io/gorm"
)

type StaffRepository struct {
	*Repository[entity.Staff]
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{Repository: New[entity.Staff](db)}
}

func (r *StaffRepository) FindByType(t entity.StaffType) ([]entity.Staff, error) {
	return r.Find("type = ?", t)
}

func (r *StaffRepository) FindByRole(role entity.StaffRole) ([]entity.Staff, error) {
	return r.Find("role = ?", role)
}

// EmailTaken reports whether a staff row other than excludeID already uses
// the email. Pass excludeID 0 on create.
func (r *StaffRepository) EmailTaken(email string, excludeID uint) (bool, error) {
	if excludeID == 0 {
		return r.Exists("email = ?", email)
	}
	return r.Exists("email = ? AND id <> ?", email, excludeID)
}
