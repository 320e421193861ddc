package services

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tiechef/entity"
	"tiechef/repository"
)

type DiningTableDTO struct {
	DiningTableID uint  `json:"diningTableId"`
	TableNumber   int   `json:"tableNumber"`
	Seats         int   `json:"seats"`
	X             *int  `json:"x"`
	Y             *int  `json:"y"`
	StaffID       *uint `json:"staffId"`
	Width         int   `json:"width"`
	Height        int   `json:"height"`
}

func (d DiningTableDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.TableNumber,
			validation.Required.Error("Table Number must be greater than 0"),
			validation.Min(1).Error("Table Number must be greater than 0"),
		),
		validation.Field(&d.Seats,
			validation.Required.Error("Seats must be greater than 0"),
			validation.Min(1).Error("Seats must be greater than 0"),
		),
	)
}

type DiningTableService struct {
	Repo *repository.DiningTableRepository
}

func NewDiningTableService(repo *repository.DiningTableRepository) *DiningTableService {
	return &DiningTableService{Repo: repo}
}

func (s *DiningTableService) List() ([]DiningTableDTO, error) {
	tables, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return tableToDTOs(tables), nil
}

func (s *DiningTableService) Get(id uint) (*DiningTableDTO, error) {
	table, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, &NotFoundError{Resource: "dining table", ID: id}
	}
	dto := tableToDTO(*table)
	return &dto, nil
}

func (s *DiningTableService) Create(dto DiningTableDTO) (*DiningTableDTO, error) {
	if err := dto.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	table := dto.toEntity()
	if table.Width == 0 {
		table.Width = 100
	}
	if table.Height == 0 {
		table.Height = 100
	}

	unit := s.Repo.Begin()
	unit.Add(&table)
	if err := unit.Commit(); err != nil {
		return nil, err
	}

	created := tableToDTO(table)
	return &created, nil
}

func (s *DiningTableService) Update(id uint, dto DiningTableDTO) (*DiningTableDTO, error) {
	if dto.DiningTableID != id {
		return nil, ErrIDMismatch
	}
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{Resource: "dining table", ID: id}
	}
	if err := dto.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	existing.TableNumber = dto.TableNumber
	existing.Seats = dto.Seats
	existing.X = dto.X
	existing.Y = dto.Y
	existing.StaffID = dto.StaffID
	existing.Width = dto.Width
	existing.Height = dto.Height

	unit := s.Repo.Begin()
	unit.Update(existing)
	if err := unit.Commit(); err != nil {
		return nil, err
	}

	updated := tableToDTO(*existing)
	return &updated, nil
}

func (s *DiningTableService) Delete(id uint) error {
	table, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if table == nil {
		return &NotFoundError{Resource: "dining table", ID: id}
	}
	unit := s.Repo.Begin()
	unit.Delete(table)
	return unit.Commit()
}

// ResetLayout clears the x/y position of every table in one unit of work;
// all other fields stay untouched.
func (s *DiningTableService) ResetLayout() error {
	tables, err := s.Repo.GetAll()
	if err != nil {
		return err
	}
	unit := s.Repo.Begin()
	for i := range tables {
		tables[i].X = nil
		tables[i].Y = nil
		unit.Update(&tables[i])
	}
	return unit.Commit()
}

func (d DiningTableDTO) toEntity() entity.DiningTable {
	return entity.DiningTable{
		TableNumber: d.TableNumber,
		Seats:       d.Seats,
		X:           d.X,
		Y:           d.Y,
		StaffID:     d.StaffID,
		Width:       d.Width,
		Height:      d.Height,
	}
}

func tableToDTO(t entity.DiningTable) DiningTableDTO {
	return DiningTableDTO{
		DiningTableID: t.ID,
		TableNumber:   t.TableNumber,
		Seats:         t.Seats,
		X:             t.X,
		Y:             t.Y,
		StaffID:       t.StaffID,
		Width:         t.Width,
		Height:        t.Height,
	}
}

func tableToDTOs(tables []entity.DiningTable) []DiningTableDTO {
	dtos := make([]DiningTableDTO, 0, len(tables))
	for _, t := range tables {
		dtos = append(dtos, tableToDTO(t))
	}
	return dtos
}
