package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shubhang/portfolio-api/internal/model"
)

// TestDB_Connect_InvalidConnString verifies a bad DATABASE_URL surfaces as a
// connect error rather than a panic or a startup failure.
func TestDB_Connect_InvalidConnString(t *testing.T) {
	db := NewDB("this is not a connection string")

	if _, err := db.Connect(context.Background()); err == nil {
		t.Fatal("expected error for invalid connection string")
	}
}

// TestDB_Connect_FailureNotLatched verifies a failed attempt does not poison
// later calls: each retry runs the full connect again.
func TestDB_Connect_FailureNotLatched(t *testing.T) {
	db := NewDB("this is not a connection string")

	if _, err := db.Connect(context.Background()); err == nil {
		t.Fatal("expected error on first attempt")
	}
	if _, err := db.Connect(context.Background()); err == nil {
		t.Fatal("expected error on retry as well")
	}
}

func TestDB_Ping_InvalidConnString(t *testing.T) {
	db := NewDB("%%%")

	if err := db.Ping(context.Background()); err == nil {
		t.Fatal("expected ping to fail without a reachable database")
	}
}

// TestSave_ConnectErrorWrapped verifies the repository reports connection
// failures through the normal error return.
func TestSave_ConnectErrorWrapped(t *testing.T) {
	repo := NewPgContactRepository(NewDB("this is not a connection string"))

	sub := &model.ContactSubmission{
		Name:       "Jane",
		Email:      "jane@example.com",
		Message:    "Hello",
		ReceivedAt: time.Now().UTC(),
	}
	if err := repo.Save(context.Background(), sub); err == nil {
		t.Fatal("expected Save to fail when the store is unreachable")
	}
	if sub.ID != "" {
		t.Errorf("expected no ID assigned on failure, got %q", sub.ID)
	}
}

// TestDB_Close_WithoutConnect verifies Close is safe on a never-connected handle.
func TestDB_Close_WithoutConnect(t *testing.T) {
	NewDB("postgres://localhost/none").Close()
}
