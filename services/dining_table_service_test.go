package services

import (
	"errors"
	"testing"

	"tiechef/repository"
)

func newDiningTableService(t *testing.T) *DiningTableService {
	t.Helper()
	return NewDiningTableService(repository.NewDiningTableRepository(newTestDB(t)))
}

func TestDiningTableService(t *testing.T) {
	t.Run("create defaults width and height", func(t *testing.T) {
		svc := newDiningTableService(t)
		created, err := svc.Create(DiningTableDTO{TableNumber: 1, Seats: 4})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.Width != 100 || created.Height != 100 {
			t.Fatalf("expected 100x100 default, got %dx%d", created.Width, created.Height)
		}
	})

	t.Run("create keeps explicit dimensions", func(t *testing.T) {
		svc := newDiningTableService(t)
		created, err := svc.Create(DiningTableDTO{TableNumber: 1, Seats: 4, Width: 80, Height: 120})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.Width != 80 || created.Height != 120 {
			t.Fatalf("expected 80x120, got %dx%d", created.Width, created.Height)
		}
	})

	t.Run("rejects zero seats", func(t *testing.T) {
		svc := newDiningTableService(t)
		_, err := svc.Create(DiningTableDTO{TableNumber: 1})
		if msg := fieldMessage(t, err, "seats"); msg != "Seats must be greater than 0" {
			t.Fatalf("unexpected message: %q", msg)
		}
	})

	t.Run("update requires the body id to match the path", func(t *testing.T) {
		svc := newDiningTableService(t)
		created, err := svc.Create(DiningTableDTO{TableNumber: 1, Seats: 4})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		dto := DiningTableDTO{DiningTableID: created.DiningTableID + 1, TableNumber: 1, Seats: 4}
		if _, err := svc.Update(created.DiningTableID, dto); !errors.Is(err, ErrIDMismatch) {
			t.Fatalf("expected ErrIDMismatch, got %v", err)
		}

		dto.DiningTableID = 0
		if _, err := svc.Update(created.DiningTableID, dto); !errors.Is(err, ErrIDMismatch) {
			t.Fatalf("expected ErrIDMismatch for a missing body id, got %v", err)
		}

		dto.DiningTableID = created.DiningTableID
		if _, err := svc.Update(created.DiningTableID, dto); err != nil {
			t.Fatalf("update with matching id: %v", err)
		}
	})

	t.Run("reset clears only positions", func(t *testing.T) {
		svc := newDiningTableService(t)

		x, y := 10, 20
		staff := uint(3)
		created, err := svc.Create(DiningTableDTO{
			TableNumber: 1, Seats: 4, X: &x, Y: &y, StaffID: &staff, Width: 80, Height: 90,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		if err := svc.ResetLayout(); err != nil {
			t.Fatalf("reset: %v", err)
		}

		got, err := svc.Get(created.DiningTableID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.X != nil || got.Y != nil {
			t.Fatalf("expected cleared positions, got x=%v y=%v", got.X, got.Y)
		}
		if got.StaffID == nil || *got.StaffID != staff {
			t.Fatalf("staff assignment must survive a reset: %+v", got)
		}
		if got.Width != 80 || got.Height != 90 {
			t.Fatalf("dimensions must survive a reset: %dx%d", got.Width, got.Height)
		}
	})

	t.Run("reset on an empty table set", func(t *testing.T) {
		svc := newDiningTableService(t)
		if err := svc.ResetLayout(); err != nil {
			t.Fatalf("reset: %v", err)
		}
	})

	t.Run("delete missing table", func(t *testing.T) {
		svc := newDiningTableService(t)
		err := svc.Delete(42)
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}
