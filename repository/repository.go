package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Repository gives every entity table the same read surface and hands out
// units of work for writes. Reads go straight to the database; mutations are
// staged on a Unit and applied together by its Commit, so one request can
// batch several changes behind a single durability boundary. Repositories
// are shared and stateless; each request begins its own unit.
type Repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

func (r *Repository[T]) GetAll() ([]T, error) {
	var items []T
	if err := r.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns (nil, nil) when no row matches; absence is not an error.
func (r *Repository[T]) GetByID(id uint) (*T, error) {
	var item T
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Find runs a fixed WHERE clause against the entity table. Callers expose a
// closed set of named filters (by-type, by-staff, ...) so every filter
// compiles to a store-native query.
func (r *Repository[T]) Find(query string, args ...any) ([]T, error) {
	var items []T
	if err := r.db.Where(query, args...).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository[T]) Exists(query string, args ...any) (bool, error) {
	var model T
	var count int64
	if err := r.db.Model(&model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Begin opens a fresh unit of work.
func (r *Repository[T]) Begin() *Unit[T] {
	return &Unit[T]{db: r.db}
}

// Unit collects staged mutations for one caller. It belongs to a single
// request and is not safe for concurrent use; writes staged here can only
// become durable through this unit's own Commit.
type Unit[T any] struct {
	db      *gorm.DB
	pending []func(tx *gorm.DB) error
}

// Add stages an insert. The store assigns the id when Commit runs.
func (u *Unit[T]) Add(item *T) {
	u.pending = append(u.pending, func(tx *gorm.DB) error {
		return tx.Create(item).Error
	})
}

// AddRange stages a batch of inserts that land in the same commit.
func (u *Unit[T]) AddRange(items []*T) {
	u.pending = append(u.pending, func(tx *gorm.DB) error {
		for _, item := range items {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update stages a full replacement of the row matching the item's id.
func (u *Unit[T]) Update(item *T) {
	u.pending = append(u.pending, func(tx *gorm.DB) error {
		return tx.Save(item).Error
	})
}

func (u *Unit[T]) Delete(item *T) {
	u.pending = append(u.pending, func(tx *gorm.DB) error {
		return tx.Delete(item).Error
	})
}

// DeleteByID stages a removal; a missing row makes the commit a no-op.
func (u *Unit[T]) DeleteByID(id uint) {
	u.pending = append(u.pending, func(tx *gorm.DB) error {
		var model T
		return tx.Delete(&model, id).Error
	})
}

// Commit applies every staged mutation inside one transaction. The staging
// buffer is cleared either way: a failed commit means none of the staged
// writes happened and they are not replayed.
func (u *Unit[T]) Commit() error {
	ops := u.pending
	u.pending = nil

	if len(ops) == 0 {
		return nil
	}
	return u.db.Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			if err := op(tx); err != nil {
				return err
			}
		}
		return nil
	})
}
