package services

import (
	"errors"
	"testing"

	"tiechef/entity"
)

func TestDisplayText(t *testing.T) {
	staff := "Ivan Petrov"
	sum := 150.5

	cases := []struct {
		name string
		view entity.TableView
		want string
	}{
		{
			name: "empty table",
			view: entity.TableView{TableID: 3},
			want: "Table 3 - Free, No orders, Not paid, Sum not specified",
		},
		{
			name: "occupied table",
			view: entity.TableView{TableID: 1, StaffName: &staff, DishCount: 3, Sum: &sum},
			want: "Table 1 - Staff: Ivan Petrov, 3 dishes, Not paid, Sum: 150.50",
		},
		{
			name: "paid table",
			view: entity.TableView{TableID: 2, StaffName: &staff, DishCount: 2, WasPaid: true, Sum: &sum},
			want: "Table 2 - Staff: Ivan Petrov, 2 dishes, Paid, Sum: 150.50",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := displayText(tc.view); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTableViewService(t *testing.T) {
	t.Run("create defaults the status", func(t *testing.T) {
		svc := NewTableViewService()
		created, err := svc.Create(TableViewDTO{TableID: 1})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.Status != entity.TableStatusAvailable {
			t.Fatalf("expected available, got %q", created.Status)
		}
		if created.DisplayText == "" {
			t.Fatal("expected a derived display text")
		}
	})

	t.Run("duplicate table id conflicts", func(t *testing.T) {
		svc := NewTableViewService()
		if _, err := svc.Create(TableViewDTO{TableID: 1}); err != nil {
			t.Fatalf("create: %v", err)
		}
		_, err := svc.Create(TableViewDTO{TableID: 1})
		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})

	t.Run("update recomputes the display text", func(t *testing.T) {
		svc := NewTableViewService()
		if _, err := svc.Create(TableViewDTO{TableID: 1}); err != nil {
			t.Fatalf("create: %v", err)
		}

		staff := "Maria Sydorova"
		updated, err := svc.Update(1, TableViewDTO{
			TableID: 1, StaffName: &staff, DishCount: 2, Status: entity.TableStatusOccupied,
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		want := "Table 1 - Staff: Maria Sydorova, 2 dishes, Not paid, Sum not specified"
		if updated.DisplayText != want {
			t.Fatalf("got %q, want %q", updated.DisplayText, want)
		}
	})

	t.Run("set status validates the value", func(t *testing.T) {
		svc := NewTableViewService()
		if _, err := svc.Create(TableViewDTO{TableID: 1}); err != nil {
			t.Fatalf("create: %v", err)
		}

		_, err := svc.SetStatus(1, "closed")
		if msg := fieldMessage(t, err, "status"); msg != "invalid table status" {
			t.Fatalf("unexpected message: %q", msg)
		}

		dto, err := svc.SetStatus(1, entity.TableStatusOccupied)
		if err != nil {
			t.Fatalf("set status: %v", err)
		}
		if dto.Status != entity.TableStatusOccupied {
			t.Fatalf("expected occupied, got %q", dto.Status)
		}
	})

	t.Run("filters by status", func(t *testing.T) {
		svc := NewTableViewService()
		if _, err := svc.Create(TableViewDTO{TableID: 1, Status: entity.TableStatusOccupied}); err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := svc.Create(TableViewDTO{TableID: 2}); err != nil {
			t.Fatalf("create: %v", err)
		}

		occupied := svc.ListByStatus(entity.TableStatusOccupied)
		if len(occupied) != 1 || occupied[0].TableID != 1 {
			t.Fatalf("unexpected occupied views: %+v", occupied)
		}
		available := svc.ListByStatus(entity.TableStatusAvailable)
		if len(available) != 1 || available[0].TableID != 2 {
			t.Fatalf("unexpected available views: %+v", available)
		}
	})

	t.Run("staff filter is case-insensitive", func(t *testing.T) {
		svc := NewTableViewService()
		staff := "Ivan Petrov"
		if _, err := svc.Create(TableViewDTO{TableID: 1, StaffName: &staff}); err != nil {
			t.Fatalf("create: %v", err)
		}

		views := svc.ListByStaff("ivan petrov")
		if len(views) != 1 || views[0].TableID != 1 {
			t.Fatalf("unexpected views: %+v", views)
		}
		if len(svc.ListByStaff("someone else")) != 0 {
			t.Fatal("expected no match")
		}
	})

	t.Run("delete missing view", func(t *testing.T) {
		svc := NewTableViewService()
		err := svc.Delete(42)
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("seed is a one-shot", func(t *testing.T) {
		svc := NewTableViewService()
		n, err := svc.SeedTestData()
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		if n != 3 {
			t.Fatalf("expected 3 seeded views, got %d", n)
		}
		n, err = svc.SeedTestData()
		if err != nil {
			t.Fatalf("second seed: %v", err)
		}
		if n != 0 {
			t.Fatalf("expected no-op, got %d", n)
		}
	})
}
