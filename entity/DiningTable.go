package entity

type DiningTable struct {
	ID          uint  `gorm:"primaryKey" json:"diningTableId"`
	TableNumber int   `gorm:"not null" json:"tableNumber"`
	Seats       int   `gorm:"not null" json:"seats"`
	X           *int  `json:"x"`
	Y           *int  `json:"y"`
	StaffID     *uint `json:"staffId"`
	Width       int   `gorm:"default:100" json:"width"`
	Height      int   `gorm:"default:100" json:"height"`
}
