package services

import (
	"context"
	"testing"

	"github.com/arzan03/ArtistryCamp/internal/db"
	"github.com/arzan03/ArtistryCamp/internal/models"
)

func TestSelectionLedger(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("duplicates are kept and listed for the owner", func(t *testing.T) {
		t.Parallel()

		ledger := NewSelectionLedger(db.NewMemory().Selections())
		sel := models.Selection{Email: "a@x.com", ClassID: "c1", ClassName: "Oil"}
		for i := 0; i < 2; i++ {
			if _, err := ledger.Select(ctx, sel); err != nil {
				t.Fatalf("Select() error: %v", err)
			}
		}
		_, _ = ledger.Select(ctx, models.Selection{Email: "b@x.com", ClassID: "c1"})

		got, err := ledger.ListByEmail(ctx, "a@x.com", "a@x.com")
		if err != nil {
			t.Fatalf("ListByEmail() error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("ListByEmail() len = %d, want 2", len(got))
		}
	})

	t.Run("another principal's selections are forbidden", func(t *testing.T) {
		t.Parallel()

		ledger := NewSelectionLedger(db.NewMemory().Selections())
		_, err := ledger.ListByEmail(ctx, "b@x.com", "a@x.com")
		if models.KindOf(err) != models.KindForbidden {
			t.Errorf("ListByEmail() error = %v, want Forbidden", err)
		}
	})

	t.Run("no requester email yields an empty list", func(t *testing.T) {
		t.Parallel()

		ledger := NewSelectionLedger(db.NewMemory().Selections())
		got, err := ledger.ListByEmail(ctx, "", "a@x.com")
		if err != nil {
			t.Fatalf("ListByEmail() error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("ListByEmail() = %#v, want empty non-nil slice", got)
		}
	})

	t.Run("missing class id is a bad request", func(t *testing.T) {
		t.Parallel()

		ledger := NewSelectionLedger(db.NewMemory().Selections())
		_, err := ledger.Select(ctx, models.Selection{Email: "a@x.com"})
		if models.KindOf(err) != models.KindBadRequest {
			t.Errorf("Select() error = %v, want BadRequest", err)
		}
	})
}
