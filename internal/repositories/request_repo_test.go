package repositories

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/petrescue/backend/internal/models"
)

// execRecorder captures the statement an Exec-only repo method issues and
// answers with a canned command tag.
type execRecorder struct {
	sql  string
	args []any
	tag  pgconn.CommandTag
}

func (f *execRecorder) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql = sql
	f.args = args
	return f.tag, nil
}

func (f *execRecorder) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (f *execRecorder) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func TestUpdateStatusFromGuardsOldStatus(t *testing.T) {
	rec := &execRecorder{tag: pgconn.NewCommandTag("UPDATE 1")}
	repo := &RequestRepo{db: rec}

	id := uuid.New()
	changed, err := repo.UpdateStatusFrom(context.Background(), id, models.RequestStatusPending, models.RequestStatusAccepted)
	if err != nil {
		t.Fatalf("UpdateStatusFrom: %v", err)
	}
	if !changed {
		t.Error("changed = false, want true for UPDATE 1")
	}

	// The WHERE clause must pin the current status so a concurrent
	// moderation makes the update a no-op instead of a silent overwrite.
	if !strings.Contains(rec.sql, "status = $3") {
		t.Errorf("statement does not guard on the old status:\n%s", rec.sql)
	}
	want := []any{models.RequestStatusAccepted, id, models.RequestStatusPending}
	if len(rec.args) != len(want) {
		t.Fatalf("args = %v, want %v", rec.args, want)
	}
	for i := range want {
		if rec.args[i] != want[i] {
			t.Errorf("arg[%d] = %v, want %v", i, rec.args[i], want[i])
		}
	}
}

func TestUpdateStatusFromLostRace(t *testing.T) {
	rec := &execRecorder{tag: pgconn.NewCommandTag("UPDATE 0")}
	repo := &RequestRepo{db: rec}

	changed, err := repo.UpdateStatusFrom(context.Background(), uuid.New(), models.RequestStatusPending, models.RequestStatusRejected)
	if err != nil {
		t.Fatalf("UpdateStatusFrom: %v", err)
	}
	if changed {
		t.Error("changed = true, want false when no row matched")
	}
}
