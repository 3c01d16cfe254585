package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// dryRunDB builds statements without a database connection and hands
// each finished query statement to capture.
func dryRunDB(t *testing.T, capture *string) *gorm.DB {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	assert.NoError(t, err)

	err = db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		*capture = tx.Statement.SQL.String()
	})
	assert.NoError(t, err)
	return db
}

func TestTimelineRepository_FindByOwnerOrdering(t *testing.T) {
	var sql string
	repo := NewTimelineRepository(dryRunDB(t, &sql))

	_, err := repo.FindByOwner(context.Background(), uuid.New())
	assert.NoError(t, err)

	// ascending by date, with created_at then id breaking ties so equal
	// dates keep a deterministic order
	assert.Contains(t, sql, "timeline_events")
	assert.Contains(t, sql, "created_by = ?")
	assert.Contains(t, sql, "ORDER BY date ASC, created_at ASC, id ASC")
}

func TestTimelineRepository_FindByIDScopesById(t *testing.T) {
	var sql string
	repo := NewTimelineRepository(dryRunDB(t, &sql))

	_, _ = repo.FindByID(context.Background(), uuid.New())

	assert.Contains(t, sql, "id = ?")
}
