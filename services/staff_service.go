package services

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"tiechef/entity"
	"tiechef/repository"
)

type StaffDTO struct {
	StaffID       uint             `json:"staffId"`
	Type          entity.StaffType `json:"type"`
	Role          entity.StaffRole `json:"role"`
	FullName      string           `json:"fullName"`
	PhoneNumber   int              `json:"phoneNumber"`
	Email         string           `json:"email"`
	StartWorkDate time.Time        `json:"startWorkDate"`
	ScheduleID    *uint            `json:"scheduleId"`
	Salary        float64          `json:"salary"`
	KPI           *string          `json:"kpi"`
}

func (d StaffDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Type,
			validation.Required.Error("Type is required"),
			validation.In(entity.StaffTypeManager, entity.StaffTypeTrainer,
				entity.StaffTypeNutritionist, entity.StaffTypeCleaner).
				Error("invalid staff type"),
		),
		validation.Field(&d.Role,
			validation.Required.Error("Role is required"),
			validation.In(entity.StaffRoleManager, entity.StaffRoleTrainer,
				entity.StaffRoleNutritionist, entity.StaffRoleWaiter, entity.StaffRoleChef).
				Error("invalid staff role"),
		),
		validation.Field(&d.FullName,
			validation.Required.Error("Full Name is required"),
			validation.Length(2, 100).Error("Full Name must be between 2 and 100 characters"),
			validation.Match(fullNamePattern).Error("Full Name must contain only letters and spaces"),
		),
		validation.Field(&d.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Invalid Email format"),
			validation.Length(0, 100).Error("Email must not exceed 100 characters"),
		),
		validation.Field(&d.PhoneNumber,
			validation.Required.Error("Phone Number is required"),
			validation.Min(100001).Error("Phone Number must be valid"),
		),
		validation.Field(&d.Salary,
			validation.Required.Error("Salary must be greater than 0"),
			validation.Min(0.0).Exclusive().Error("Salary must be greater than 0"),
			maxTwoDecimals("Salary cannot have more than 2 decimal places"),
		),
		validation.Field(&d.KPI,
			validation.Length(0, 500).Error("KPI must not exceed 500 characters"),
		),
	)
}

type StaffService struct {
	Repo *repository.StaffRepository
}

func NewStaffService(repo *repository.StaffRepository) *StaffService {
	return &StaffService{Repo: repo}
}

func (s *StaffService) List() ([]StaffDTO, error) {
	staff, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return staffToDTOs(staff), nil
}

func (s *StaffService) Get(id uint) (*StaffDTO, error) {
	staff, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, &NotFoundError{Resource: "staff", ID: id}
	}
	dto := staffToDTO(*staff)
	return &dto, nil
}

func (s *StaffService) Create(dto StaffDTO) (*StaffDTO, error) {
	if err := dto.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	taken, err := s.Repo.EmailTaken(dto.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &ConflictError{Message: "staff with this email already exists"}
	}

	staff := dto.toEntity()
	unit := s.Repo.Begin()
	unit.Add(&staff)
	if err := unit.Commit(); err != nil {
		return nil, err
	}

	created := staffToDTO(staff)
	return &created, nil
}

func (s *StaffService) Update(id uint, dto StaffDTO) (*StaffDTO, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{Resource: "staff", ID: id}
	}
	if err := dto.Validate(); err != nil {
		return nil, asValidationError(err)
	}
	// Updating a staff member to their own unchanged email is fine.
	taken, err := s.Repo.EmailTaken(dto.Email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &ConflictError{Message: "staff with this email already exists"}
	}

	existing.Type = dto.Type
	existing.Role = dto.Role
	existing.FullName = dto.FullName
	existing.PhoneNumber = dto.PhoneNumber
	existing.Email = dto.Email
	existing.StartWorkDate = dto.StartWorkDate
	existing.ScheduleID = dto.ScheduleID
	existing.Salary = dto.Salary
	existing.KPI = dto.KPI

	unit := s.Repo.Begin()
	unit.Update(existing)
	if err := unit.Commit(); err != nil {
		return nil, err
	}

	updated := staffToDTO(*existing)
	return &updated, nil
}

func (s *StaffService) Delete(id uint) error {
	staff, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if staff == nil {
		return &NotFoundError{Resource: "staff", ID: id}
	}
	unit := s.Repo.Begin()
	unit.Delete(staff)
	return unit.Commit()
}

func (s *StaffService) ListByType(t entity.StaffType) ([]StaffDTO, error) {
	staff, err := s.Repo.FindByType(t)
	if err != nil {
		return nil, err
	}
	return staffToDTOs(staff), nil
}

func (s *StaffService) ListByRole(role entity.StaffRole) ([]StaffDTO, error) {
	staff, err := s.Repo.FindByRole(role)
	if err != nil {
		return nil, err
	}
	return staffToDTOs(staff), nil
}

// SeedTestData inserts a few staff rows for manual testing. It is a no-op
// when the table already has data; the returned count is 0 in that case.
func (s *StaffService) SeedTestData() (int, error) {
	existing, err := s.Repo.GetAll()
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	kpi1, kpi2, kpi3 := "95%", "88%", "92%"
	seed := []*entity.Staff{
		{
			Type: entity.StaffTypeManager, Role: entity.StaffRoleManager,
			FullName: "Ivan Petrov", PhoneNumber: 123456789,
			Email:         "ivan.petrov@tiechef.com",
			StartWorkDate: time.Now().AddDate(-2, 0, 0),
			Salary:        50000, KPI: &kpi1,
		},
		{
			Type: entity.StaffTypeTrainer, Role: entity.StaffRoleTrainer,
			FullName: "Maria Sydorova", PhoneNumber: 987654321,
			Email:         "maria.sydorova@tiechef.com",
			StartWorkDate: time.Now().AddDate(-1, 0, 0),
			Salary:        35000, KPI: &kpi2,
		},
		{
			Type: entity.StaffTypeNutritionist, Role: entity.StaffRoleNutritionist,
			FullName: "Oleksii Kozlov", PhoneNumber: 555555555,
			Email:         "oleksii.kozlov@tiechef.com",
			StartWorkDate: time.Now().AddDate(0, -6, 0),
			Salary:        40000, KPI: &kpi3,
		},
	}

	unit := s.Repo.Begin()
	unit.AddRange(seed)
	if err := unit.Commit(); err != nil {
		return 0, err
	}
	return len(seed), nil
}

func (d StaffDTO) toEntity() entity.Staff {
	return entity.Staff{
		Type:          d.Type,
		Role:          d.Role,
		FullName:      d.FullName,
		PhoneNumber:   d.PhoneNumber,
		Email:         d.Email,
		StartWorkDate: d.StartWorkDate,
		ScheduleID:    d.ScheduleID,
		Salary:        d.Salary,
		KPI:           d.KPI,
	}
}

func staffToDTO(s entity.Staff) StaffDTO {
	return StaffDTO{
		StaffID:       s.ID,
		Type:          s.Type,
		Role:          s.Role,
		FullName:      s.FullName,
		PhoneNumber:   s.PhoneNumber,
		Email:         s.Email,
		StartWorkDate: s.StartWorkDate,
		ScheduleID:    s.ScheduleID,
		Salary:        s.Salary,
		KPI:           s.KPI,
	}
}

func staffToDTOs(staff []entity.Staff) []StaffDTO {
	dtos := make([]StaffDTO, 0, len(staff))
	for _, s := range staff {
		dtos = append(dtos, staffToDTO(s))
	}
	return dtos
}
