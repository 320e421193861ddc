package services

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/datatypes"

	"tiechef/entity"
	"tiechef/repository"
)

type ReceiptDTO struct {
	ReceiptID   uint       `json:"receiptId"`
	TableID     uint       `json:"tableId"`
	StaffID     *uint      `json:"staffId"`
	CheckID     *uint      `json:"checkId"`
	WasPaid     bool       `json:"wasPaid"`
	DishIDs     []int64    `json:"dishIds"`
	Sum         *float64   `json:"sum"`
	PaymentDate *time.Time `json:"paymentDate"`
}

func (d ReceiptDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.TableID,
			validation.Required.Error("Table ID must be greater than 0"),
		),
		validation.Field(&d.StaffID,
			positiveID("Staff ID must be greater than 0"),
		),
		validation.Field(&d.Sum,
			validation.Min(0.0).Error("Sum cannot be negative"),
			maxTwoDecimals("Sum cannot have more than 2 decimal places"),
		),
		validation.Field(&d.DishIDs,
			validation.When(d.WasPaid,
				validation.Required.Error("Paid receipt must contain dishes"),
			),
		),
	)
}

type ReceiptService struct {
	Repo *repository.ReceiptRepository
}

func NewReceiptService(repo *repository.ReceiptRepository) *ReceiptService {
	return &ReceiptService{Repo: repo}
}

func (s *ReceiptService) List() ([]ReceiptDTO, error) {
	receipts, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return receiptToDTOs(receipts), nil
}

func (s *ReceiptService) Get(id uint) (*ReceiptDTO, error) {
	receipt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, &NotFoundError{Resource: "receipt", ID: id}
	}
	dto := receiptToDTO(*receipt)
	return &dto, nil
}

func (s *ReceiptService) Create(dto ReceiptDTO) (*ReceiptDTO, error) {
	if err := dto.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	receipt := dto.toEntity()
	unit := s.Repo.Begin()
	unit.Add(&receipt)
	if err := unit.Commit(); err != nil {
		return nil, err
	}

	created := receiptToDTO(receipt)
	return &created, nil
}

func (s *ReceiptService) Update(id uint, dto ReceiptDTO) (*ReceiptDTO, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{Resource: "receipt", ID: id}
	}
	if err := dto.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	existing.TableID = dto.TableID
	existing.StaffID = dto.StaffID
	existing.CheckID = dto.CheckID
	existing.WasPaid = dto.WasPaid
	existing.DishIDs = datatypes.NewJSONSlice(dto.DishIDs)
	existing.Sum = dto.Sum
	existing.PaymentDate = dto.PaymentDate

	unit := s.Repo.Begin()
	unit.Update(existing)
	if err := unit.Commit(); err != nil {
		return nil, err
	}

	updated := receiptToDTO(*existing)
	return &updated, nil
}

func (s *ReceiptService) Delete(id uint) error {
	receipt, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return &NotFoundError{Resource: "receipt", ID: id}
	}
	unit := s.Repo.Begin()
	unit.Delete(receipt)
	return unit.Commit()
}

func (s *ReceiptService) ListByPayment(wasPaid bool) ([]ReceiptDTO, error) {
	receipts, err := s.Repo.FindByPayment(wasPaid)
	if err != nil {
		return nil, err
	}
	return receiptToDTOs(receipts), nil
}

func (s *ReceiptService) ListByStaff(staffID uint) ([]ReceiptDTO, error) {
	receipts, err := s.Repo.FindByStaff(staffID)
	if err != nil {
		return nil, err
	}
	return receiptToDTOs(receipts), nil
}

// SetPayment flips the paid flag. The payment date is stamped only on the
// transition to paid and is kept as-is when a receipt is un-paid.
func (s *ReceiptService) SetPayment(id uint, wasPaid bool) (*ReceiptDTO, error) {
	receipt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, &NotFoundError{Resource: "receipt", ID: id}
	}

	if wasPaid && !receipt.WasPaid {
		now := time.Now()
		receipt.PaymentDate = &now
	}
	receipt.WasPaid = wasPaid

	unit := s.Repo.Begin()
	unit.Update(receipt)
	if err := unit.Commit(); err != nil {
		return nil, err
	}

	dto := receiptToDTO(*receipt)
	return &dto, nil
}

// AddDish puts a dish id on the receipt. Adding an id that is already there
// changes nothing and skips the commit.
func (s *ReceiptService) AddDish(id uint, dishID int64) (*ReceiptDTO, error) {
	receipt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, &NotFoundError{Resource: "receipt", ID: id}
	}

	if !receipt.HasDish(dishID) {
		receipt.DishIDs = append(receipt.DishIDs, dishID)
		unit := s.Repo.Begin()
		unit.Update(receipt)
		if err := unit.Commit(); err != nil {
			return nil, err
		}
	}

	dto := receiptToDTO(*receipt)
	return &dto, nil
}

// RemoveDish takes a dish id off the receipt. Removing an absent id changes
// nothing and skips the commit.
func (s *ReceiptService) RemoveDish(id uint, dishID int64) (*ReceiptDTO, error) {
	receipt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, &NotFoundError{Resource: "receipt", ID: id}
	}

	if receipt.HasDish(dishID) {
		kept := make([]int64, 0, len(receipt.DishIDs))
		for _, d := range receipt.DishIDs {
			if d != dishID {
				kept = append(kept, d)
			}
		}
		receipt.DishIDs = datatypes.NewJSONSlice(kept)
		unit := s.Repo.Begin()
		unit.Update(receipt)
		if err := unit.Commit(); err != nil {
			return nil, err
		}
	}

	dto := receiptToDTO(*receipt)
	return &dto, nil
}

// SeedTestData inserts a few receipts for manual testing; no-op when rows
// already exist.
func (s *ReceiptService) SeedTestData() (int, error) {
	existing, err := s.Repo.GetAll()
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	staff1, staff2 := uint(1), uint(2)
	check1, check2 := uint(101), uint(102)
	sum1, sum2 := 150.50, 89.99
	now := time.Now()
	paidAt := now.Add(-2 * time.Hour)

	seed := []*entity.Receipt{
		{
			TableID: 1, StaffID: &staff1, CheckID: &check1, WasPaid: false,
			DishIDs: datatypes.NewJSONSlice([]int64{1, 2, 3}),
			Sum:     &sum1, PaymentDate: &now,
		},
		{
			TableID: 2, StaffID: &staff2, CheckID: &check2, WasPaid: true,
			DishIDs: datatypes.NewJSONSlice([]int64{4, 5}),
			Sum:     &sum2, PaymentDate: &paidAt,
		},
		{
			TableID: 3, DishIDs: datatypes.NewJSONSlice([]int64{}),
		},
	}

	unit := s.Repo.Begin()
	unit.AddRange(seed)
	if err := unit.Commit(); err != nil {
		return 0, err
	}
	return len(seed), nil
}

func (d ReceiptDTO) toEntity() entity.Receipt {
	return entity.Receipt{
		TableID:     d.TableID,
		StaffID:     d.StaffID,
		CheckID:     d.CheckID,
		WasPaid:     d.WasPaid,
		DishIDs:     datatypes.NewJSONSlice(d.DishIDs),
		Sum:         d.Sum,
		PaymentDate: d.PaymentDate,
	}
}

func receiptToDTO(r entity.Receipt) ReceiptDTO {
	dishIDs := make([]int64, len(r.DishIDs))
	copy(dishIDs, r.DishIDs)
	return ReceiptDTO{
		ReceiptID:   r.ID,
		TableID:     r.TableID,
		StaffID:     r.StaffID,
		CheckID:     r.CheckID,
		WasPaid:     r.WasPaid,
		DishIDs:     dishIDs,
		Sum:         r.Sum,
		PaymentDate: r.PaymentDate,
	}
}

func receiptToDTOs(receipts []entity.Receipt) []ReceiptDTO {
	dtos := make([]ReceiptDTO, 0, len(receipts))
	for _, r := range receipts {
		dtos = append(dtos, receiptToDTO(r))
	}
	return dtos
}
