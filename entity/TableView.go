package entity

import "time"

type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
	TableStatusPaid      TableStatus = "paid"
)

// TableView is the floor-status row shown to the host stand. It is not
// persisted; rows live in a process-local store keyed by table id.
type TableView struct {
	TableID     uint        `json:"tableId"`
	StaffName   *string     `json:"staffName"`
	WasPaid     bool        `json:"wasPaid"`
	DishCount   int         `json:"dishCount"`
	Sum         *float64    `json:"sum"`
	PaymentDate *time.Time  `json:"paymentDate"`
	Status      TableStatus `json:"status"`
	DisplayText string      `json:"displayText"`
}
