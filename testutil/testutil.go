package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/jacintha05/ElectoVote/models"
	"github.com/jacintha05/ElectoVote/storage"
)

// OpenTestDB opens a fresh in-memory sqlite database named after the test,
// migrated with the full schema. One connection only, so the shared-cache
// memory database behaves under concurrent test traffic.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := storage.Migrate(db); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}

// NewTestStore returns a Storage backed by a fresh in-memory database.
func NewTestStore(t *testing.T) storage.Storage {
	t.Helper()
	return storage.New(OpenTestDB(t))
}

// CreateTestVoter registers a voter and returns it.
func CreateTestVoter(t *testing.T, store storage.Storage, name, votingID string) *models.Voter {
	t.Helper()
	voter := &models.Voter{Name: name, VotingID: votingID}
	if err := store.CreateVoter(context.Background(), voter); err != nil {
		t.Fatalf("failed to create test voter: %v", err)
	}
	return voter
}

// CreateTestCandidate registers a candidate with sensible defaults.
func CreateTestCandidate(t *testing.T, store storage.Storage, name, email string) *models.Candidate {
	t.Helper()
	candidate := &models.Candidate{
		Name:      name,
		Age:       35,
		Email:     email,
		Phone:     "555-0100",
		Symbol:    models.SymbolStar,
		PartyName: "Test Party",
		Motto:     "For the tests",
	}
	if err := store.CreateCandidate(context.Background(), candidate); err != nil {
		t.Fatalf("failed to create test candidate: %v", err)
	}
	return candidate
}
