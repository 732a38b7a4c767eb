package services

import (
	"context"

	"github.com/arzan03/ArtistryCamp/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SelectionStore is the document collection behind the selection ledger.
type SelectionStore interface {
	Insert(ctx context.Context, sel models.Selection) (models.InsertResult, error)
	ListByEmail(ctx context.Context, email string) ([]models.Selection, error)
}

type SelectionLedger struct {
	store SelectionStore
}

func NewSelectionLedger(store SelectionStore) *SelectionLedger {
	return &SelectionLedger{store: store}
}

// Select records a selection. Selecting the same class twice stores two
// entries.
func (l *SelectionLedger) Select(ctx context.Context, sel models.Selection) (models.InsertResult, error) {
	if err := checkPresence(sel); err != nil {
		return models.InsertResult{}, err
	}
	sel.ID = primitive.NilObjectID
	res, err := l.store.Insert(ctx, sel)
	if err != nil {
		return models.InsertResult{}, models.NewInternal(err)
	}
	return res, nil
}

// ListByEmail returns the selections of requesterEmail. An empty requester
// yields an empty list; asking for someone else's selections is Forbidden.
func (l *SelectionLedger) ListByEmail(ctx context.Context, requesterEmail, callerEmail string) ([]models.Selection, error) {
	if requesterEmail == "" {
		return []models.Selection{}, nil
	}
	if requesterEmail != callerEmail {
		return nil, models.NewForbidden("forbidden access")
	}
	selections, err := l.store.ListByEmail(ctx, requesterEmail)
	if err != nil {
		return nil, models.NewInternal(err)
	}
	return selections, nil
}
