package services

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tiechef/entity"
	"tiechef/pkg/memstore"
)

type TableViewDTO struct {
	TableID     uint               `json:"tableId"`
	StaffName   *string            `json:"staffName"`
	WasPaid     bool               `json:"wasPaid"`
	DishCount   int                `json:"dishCount"`
	Sum         *float64           `json:"sum"`
	PaymentDate *time.Time         `json:"paymentDate"`
	Status      entity.TableStatus `json:"status"`
	DisplayText string             `json:"displayText"`
}

func (d TableViewDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.TableID,
			validation.Required.Error("Table ID must be greater than 0"),
		),
		validation.Field(&d.Status,
			validation.In(entity.TableStatusAvailable, entity.TableStatusOccupied,
				entity.TableStatusPaid).Error("invalid table status"),
		),
		validation.Field(&d.DishCount,
			validation.Min(0).Error("Dish Count cannot be negative"),
		),
		validation.Field(&d.Sum,
			validation.Min(0.0).Error("Sum cannot be negative"),
			maxTwoDecimals("Sum cannot have more than 2 decimal places"),
		),
	)
}

// TableViewService keeps the floor-status rows in a process-local store.
// Ids are the table ids chosen by the caller, not store-assigned.
type TableViewService struct {
	store *memstore.Store[entity.TableView]
}

func NewTableViewService() *TableViewService {
	return &TableViewService{store: memstore.New[entity.TableView]()}
}

func (s *TableViewService) List() []TableViewDTO {
	return viewToDTOs(s.store.GetAll())
}

func (s *TableViewService) Get(id uint) (*TableViewDTO, error) {
	view, ok := s.store.Get(id)
	if !ok {
		return nil, &NotFoundError{Resource: "table view", ID: id}
	}
	dto := viewToDTO(view)
	return &dto, nil
}

func (s *TableViewService) Create(dto TableViewDTO) (*TableViewDTO, error) {
	if err := dto.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	if dto.Status == "" {
		dto.Status = entity.TableStatusAvailable
	}

	view := dto.toEntity()
	view.DisplayText = displayText(view)
	if _, ok := s.store.Insert(view.TableID, view); !ok {
		return nil, &ConflictError{Message: "table view with this table id already exists"}
	}

	created := viewToDTO(view)
	return &created, nil
}

func (s *TableViewService) Update(id uint, dto TableViewDTO) (*TableViewDTO, error) {
	view, ok := s.store.Get(id)
	if !ok {
		return nil, &NotFoundError{Resource: "table view", ID: id}
	}
	if err := dto.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	view.StaffName = dto.StaffName
	view.WasPaid = dto.WasPaid
	view.DishCount = dto.DishCount
	view.Sum = dto.Sum
	view.PaymentDate = dto.PaymentDate
	view.Status = dto.Status
	view.DisplayText = displayText(view)
	s.store.Put(id, view)

	updated := viewToDTO(view)
	return &updated, nil
}

func (s *TableViewService) Delete(id uint) error {
	if !s.store.Delete(id) {
		return &NotFoundError{Resource: "table view", ID: id}
	}
	return nil
}

func (s *TableViewService) ListByStatus(status entity.TableStatus) []TableViewDTO {
	return viewToDTOs(s.store.Find(func(v entity.TableView) bool {
		return v.Status == status
	}))
}

// ListByStaff matches the staff name case-insensitively.
func (s *TableViewService) ListByStaff(staffName string) []TableViewDTO {
	return viewToDTOs(s.store.Find(func(v entity.TableView) bool {
		return v.StaffName != nil && strings.EqualFold(*v.StaffName, staffName)
	}))
}

// SetStatus updates the status and recomputes the display text.
func (s *TableViewService) SetStatus(id uint, status entity.TableStatus) (*TableViewDTO, error) {
	if err := validation.Validate(status,
		validation.Required.Error("Status is required"),
		validation.In(entity.TableStatusAvailable, entity.TableStatusOccupied,
			entity.TableStatusPaid).Error("invalid table status"),
	); err != nil {
		return nil, &ValidationError{Fields: validation.Errors{"status": err}}
	}
	view, ok := s.store.Get(id)
	if !ok {
		return nil, &NotFoundError{Resource: "table view", ID: id}
	}

	view.Status = status
	view.DisplayText = displayText(view)
	s.store.Put(id, view)

	dto := viewToDTO(view)
	return &dto, nil
}

// SeedTestData inserts a few rows for manual testing; no-op when rows exist.
func (s *TableViewService) SeedTestData() (int, error) {
	if s.store.Len() > 0 {
		return 0, nil
	}

	name1, name2 := "Ivan Petrov", "Maria Sydorova"
	sum1, sum2 := 150.50, 89.99
	now := time.Now()
	paidAt := now.Add(-2 * time.Hour)

	seed := []entity.TableView{
		{
			TableID: 1, StaffName: &name1, WasPaid: false, DishCount: 3,
			Sum: &sum1, PaymentDate: &now, Status: entity.TableStatusOccupied,
		},
		{
			TableID: 2, StaffName: &name2, WasPaid: true, DishCount: 2,
			Sum: &sum2, PaymentDate: &paidAt, Status: entity.TableStatusPaid,
		},
		{
			TableID: 3, Status: entity.TableStatusAvailable,
		},
	}

	for _, view := range seed {
		view.DisplayText = displayText(view)
		s.store.Insert(view.TableID, view)
	}
	return len(seed), nil
}

// displayText builds the human-readable summary shown next to each table.
func displayText(v entity.TableView) string {
	staffInfo := "Free"
	if v.StaffName != nil && *v.StaffName != "" {
		staffInfo = "Staff: " + *v.StaffName
	}
	dishInfo := "No orders"
	if v.DishCount > 0 {
		dishInfo = fmt.Sprintf("%d dishes", v.DishCount)
	}
	paymentInfo := "Not paid"
	if v.WasPaid {
		paymentInfo = "Paid"
	}
	sumInfo := "Sum not specified"
	if v.Sum != nil {
		sumInfo = fmt.Sprintf("Sum: %.2f", *v.Sum)
	}
	return fmt.Sprintf("Table %d - %s, %s, %s, %s", v.TableID, staffInfo, dishInfo, paymentInfo, sumInfo)
}

func (d TableViewDTO) toEntity() entity.TableView {
	return entity.TableView{
		TableID:     d.TableID,
		StaffName:   d.StaffName,
		WasPaid:     d.WasPaid,
		DishCount:   d.DishCount,
		Sum:         d.Sum,
		PaymentDate: d.PaymentDate,
		Status:      d.Status,
	}
}

func viewToDTO(v entity.TableView) TableViewDTO {
	return TableViewDTO{
		TableID:     v.TableID,
		StaffName:   v.StaffName,
		WasPaid:     v.WasPaid,
		DishCount:   v.DishCount,
		Sum:         v.Sum,
		PaymentDate: v.PaymentDate,
		Status:      v.Status,
		DisplayText: v.DisplayText,
	}
}

func viewToDTOs(views []entity.TableView) []TableViewDTO {
	dtos := make([]TableViewDTO, 0, len(views))
	for _, v := range views {
		dtos = append(dtos, viewToDTO(v))
	}
	return dtos
}
