package entity

import "time"

type StaffType string

const (
	StaffTypeManager      StaffType = "manager"
	StaffTypeTrainer      StaffType = "trainer"
	StaffTypeNutritionist StaffType = "nutritionist"
	StaffTypeCleaner      StaffType = "cleaner"
)

type StaffRole string

const (
	StaffRoleManager      StaffRole = "manager"
	StaffRoleTrainer      StaffRole = "trainer"
	StaffRoleNutritionist StaffRole = "nutritionist"
	StaffRoleWaiter       StaffRole = "waiter"
	StaffRoleChef         StaffRole = "chef"
)

type Staff struct {
	ID          uint      `gorm:"primaryKey" json:"staffId"`
	Type        StaffType `gorm:"not null" json:"type"`
	Role        StaffRole `gorm:"not null" json:"role"`
	FullName    string    `json:"fullName"`
	PhoneNumber int       `json:"phoneNumber"`
	// Uniqueness is enforced by an exists check at write time, not by the DB.
	Email         string    `gorm:"index" json:"email"`
	StartWorkDate time.Time `json:"startWorkDate"`
	ScheduleID    *uint     `json:"scheduleId"`
	Salary        float64   `json:"salary"`
	KPI           *string   `gorm:"column:kpi" json:"kpi"`
}
