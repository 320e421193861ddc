package services

import (
	"context"
	"encoding/json"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"

	"tiechef/entity"
	"tiechef/pkg/cache"
	"tiechef/repository"
)

// dishListCacheKey holds the serialized dish listing; it is invalidated on
// every dish mutation so the next listing reflects the latest state.
const dishListCacheKey = "dishes_list"

type DishDTO struct {
	DishID      uint    `json:"dishId"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
}

func (d DishDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name,
			validation.Required.Error("Dish Name is required"),
			validation.Length(2, 100).Error("Dish Name must be between 2 and 100 characters"),
		),
		validation.Field(&d.Price,
			validation.Required.Error("Price must be greater than 0"),
			validation.Min(0.0).Exclusive().Error("Price must be greater than 0"),
			maxTwoDecimals("Price cannot have more than 2 decimal places"),
		),
		validation.Field(&d.Description,
			validation.Length(0, 500).Error("Description must not exceed 500 characters"),
		),
	)
}

type DishService struct {
	Repo     *repository.DishRepository
	Cache    cache.Store
	CacheTTL time.Duration
	Log      *zap.SugaredLogger
}

func NewDishService(repo *repository.DishRepository, store cache.Store, ttl time.Duration, log *zap.SugaredLogger) *DishService {
	return &DishService{Repo: repo, Cache: store, CacheTTL: ttl, Log: log}
}

// List serves the dish listing through the cache: a fresh entry is written
// on every miss and any cache failure falls through to the database.
func (s *DishService) List(ctx context.Context) ([]DishDTO, error) {
	if data, ok, err := s.Cache.Get(ctx, dishListCacheKey); err != nil {
		s.Log.Warnw("dish list cache read failed", "error", err)
	} else if ok {
		var dtos []DishDTO
		if err := json.Unmarshal(data, &dtos); err != nil {
			s.Log.Warnw("dropping undecodable dish list cache entry", "error", err)
		} else {
			s.Log.Infow("serving dishes from cache")
			return dtos, nil
		}
	}

	s.Log.Infow("loading dishes from database")
	dishes, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	dtos := dishToDTOs(dishes)

	if data, err := json.Marshal(dtos); err == nil {
		if err := s.Cache.Set(ctx, dishListCacheKey, data, s.CacheTTL); err != nil {
			s.Log.Warnw("dish list cache write failed", "error", err)
		}
	}
	return dtos, nil
}

func (s *DishService) Get(id uint) (*DishDTO, error) {
	dish, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, &NotFoundError{Resource: "dish", ID: id}
	}
	dto := dishToDTO(*dish)
	return &dto, nil
}

func (s *DishService) Create(ctx context.Context, dto DishDTO) (*DishDTO, error) {
	if err := dto.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	dish := dto.toEntity()
	unit := s.Repo.Begin()
	unit.Add(&dish)
	if err := unit.Commit(); err != nil {
		return nil, err
	}
	s.invalidateList(ctx)

	created := dishToDTO(dish)
	return &created, nil
}

func (s *DishService) Update(ctx context.Context, id uint, dto DishDTO) (*DishDTO, error) {
	if dto.DishID != id {
		return nil, ErrIDMismatch
	}
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{Resource: "dish", ID: id}
	}
	if err := dto.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	existing.Name = dto.Name
	existing.Description = dto.Description
	existing.Price = dto.Price

	unit := s.Repo.Begin()
	unit.Update(existing)
	if err := unit.Commit(); err != nil {
		return nil, err
	}
	s.invalidateList(ctx)

	updated := dishToDTO(*existing)
	return &updated, nil
}

func (s *DishService) Delete(ctx context.Context, id uint) error {
	dish, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if dish == nil {
		return &NotFoundError{Resource: "dish", ID: id}
	}
	unit := s.Repo.Begin()
	unit.Delete(dish)
	if err := unit.Commit(); err != nil {
		return err
	}
	s.invalidateList(ctx)
	return nil
}

func (s *DishService) invalidateList(ctx context.Context) {
	if err := s.Cache.Delete(ctx, dishListCacheKey); err != nil {
		s.Log.Warnw("dish list cache invalidation failed", "error", err)
	}
}

func (d DishDTO) toEntity() entity.Dish {
	return entity.Dish{
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
	}
}

func dishToDTO(d entity.Dish) DishDTO {
	return DishDTO{
		DishID:      d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
	}
}

func dishToDTOs(dishes []entity.Dish) []DishDTO {
	dtos := make([]DishDTO, 0, len(dishes))
	for _, d := range dishes {
		dtos = append(dtos, dishToDTO(d))
	}
	return dtos
}
