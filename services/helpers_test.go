package services

import (
	"os"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tiechef/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dir, err := os.MkdirTemp("", "tiechef-svc-test")
	if err != nil {
		t.Fatalf("temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Staff{},
		&entity.Dish{},
		&entity.Receipt{},
		&entity.DiningTable{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// fieldMessage digs the message for one field out of a validation failure.
func fieldMessage(t *testing.T, err error, field string) string {
	t.Helper()
	invalid, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	fieldErr, ok := invalid.Fields[field]
	if !ok {
		t.Fatalf("no error for field %q in %v", field, invalid.Fields)
	}
	return fieldErr.Error()
}
