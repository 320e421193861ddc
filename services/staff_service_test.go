package services

import (
	"errors"
	"testing"
	"time"

	"tiechef/entity"
	"tiechef/repository"
)

func newStaffService(t *testing.T) *StaffService {
	t.Helper()
	return NewStaffService(repository.NewStaffRepository(newTestDB(t)))
}

func validStaff(email string) StaffDTO {
	kpi := "90%"
	return StaffDTO{
		Type:          entity.StaffTypeManager,
		Role:          entity.StaffRoleManager,
		FullName:      "Anna Kovach",
		PhoneNumber:   123456789,
		Email:         email,
		StartWorkDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Salary:        42000.50,
		KPI:           &kpi,
	}
}

func TestStaffService(t *testing.T) {
	t.Run("create and get roundtrip", func(t *testing.T) {
		svc := newStaffService(t)

		created, err := svc.Create(validStaff("anna@tiechef.com"))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.StaffID == 0 {
			t.Fatal("expected an assigned id")
		}

		got, err := svc.Get(created.StaffID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.FullName != "Anna Kovach" || got.Salary != 42000.50 {
			t.Fatalf("unexpected staff: %+v", got)
		}
	})

	t.Run("get missing staff", func(t *testing.T) {
		svc := newStaffService(t)
		_, err := svc.Get(99)
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if notFound.Error() != "staff with id 99 not found" {
			t.Fatalf("unexpected message: %q", notFound.Error())
		}
	})

	t.Run("rejects missing full name", func(t *testing.T) {
		svc := newStaffService(t)
		dto := validStaff("a@b.com")
		dto.FullName = ""
		_, err := svc.Create(dto)
		if msg := fieldMessage(t, err, "fullName"); msg != "Full Name is required" {
			t.Fatalf("unexpected message: %q", msg)
		}
	})

	t.Run("rejects digits in full name", func(t *testing.T) {
		svc := newStaffService(t)
		dto := validStaff("a@b.com")
		dto.FullName = "Anna K0vach"
		_, err := svc.Create(dto)
		if msg := fieldMessage(t, err, "fullName"); msg != "Full Name must contain only letters and spaces" {
			t.Fatalf("unexpected message: %q", msg)
		}
	})

	t.Run("rejects zero salary", func(t *testing.T) {
		svc := newStaffService(t)
		dto := validStaff("a@b.com")
		dto.Salary = 0
		_, err := svc.Create(dto)
		if msg := fieldMessage(t, err, "salary"); msg != "Salary must be greater than 0" {
			t.Fatalf("unexpected message: %q", msg)
		}
	})

	t.Run("rejects salary with sub-cent precision", func(t *testing.T) {
		svc := newStaffService(t)
		dto := validStaff("a@b.com")
		dto.Salary = 100.999
		_, err := svc.Create(dto)
		if msg := fieldMessage(t, err, "salary"); msg != "Salary cannot have more than 2 decimal places" {
			t.Fatalf("unexpected message: %q", msg)
		}
	})

	t.Run("rejects bad email", func(t *testing.T) {
		svc := newStaffService(t)
		dto := validStaff("not-an-email")
		_, err := svc.Create(dto)
		if msg := fieldMessage(t, err, "email"); msg != "Invalid Email format" {
			t.Fatalf("unexpected message: %q", msg)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc := newStaffService(t)
		if _, err := svc.Create(validStaff("shared@tiechef.com")); err != nil {
			t.Fatalf("first create: %v", err)
		}
		_, err := svc.Create(validStaff("shared@tiechef.com"))
		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})

	t.Run("update keeps own email", func(t *testing.T) {
		svc := newStaffService(t)
		created, err := svc.Create(validStaff("own@tiechef.com"))
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		dto := validStaff("own@tiechef.com")
		dto.FullName = "Anna Kovalenko"
		updated, err := svc.Update(created.StaffID, dto)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.FullName != "Anna Kovalenko" {
			t.Fatalf("unexpected name: %q", updated.FullName)
		}
	})

	t.Run("update to another staff's email conflicts", func(t *testing.T) {
		svc := newStaffService(t)
		if _, err := svc.Create(validStaff("first@tiechef.com")); err != nil {
			t.Fatalf("create first: %v", err)
		}
		second, err := svc.Create(validStaff("second@tiechef.com"))
		if err != nil {
			t.Fatalf("create second: %v", err)
		}

		_, err = svc.Update(second.StaffID, validStaff("first@tiechef.com"))
		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})

	t.Run("filters by type and role", func(t *testing.T) {
		svc := newStaffService(t)
		if _, err := svc.Create(validStaff("m@tiechef.com")); err != nil {
			t.Fatalf("create manager: %v", err)
		}
		trainer := validStaff("t@tiechef.com")
		trainer.Type = entity.StaffTypeTrainer
		trainer.Role = entity.StaffRoleTrainer
		if _, err := svc.Create(trainer); err != nil {
			t.Fatalf("create trainer: %v", err)
		}

		byType, err := svc.ListByType(entity.StaffTypeTrainer)
		if err != nil {
			t.Fatalf("list by type: %v", err)
		}
		if len(byType) != 1 || byType[0].Email != "t@tiechef.com" {
			t.Fatalf("unexpected result: %+v", byType)
		}

		byRole, err := svc.ListByRole(entity.StaffRoleManager)
		if err != nil {
			t.Fatalf("list by role: %v", err)
		}
		if len(byRole) != 1 || byRole[0].Email != "m@tiechef.com" {
			t.Fatalf("unexpected result: %+v", byRole)
		}
	})

	t.Run("seed is a one-shot", func(t *testing.T) {
		svc := newStaffService(t)
		n, err := svc.SeedTestData()
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		if n != 3 {
			t.Fatalf("expected 3 seeded rows, got %d", n)
		}
		n, err = svc.SeedTestData()
		if err != nil {
			t.Fatalf("second seed: %v", err)
		}
		if n != 0 {
			t.Fatalf("expected second seed to be a no-op, got %d", n)
		}
	})

	t.Run("delete removes the row", func(t *testing.T) {
		svc := newStaffService(t)
		created, err := svc.Create(validStaff("gone@tiechef.com"))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := svc.Delete(created.StaffID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		_, err = svc.Get(created.StaffID)
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}
