package services

import (
	"context"
	"log/slog"

	"github.com/arzan03/ArtistryCamp/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassStore is the document collection behind the class registry.
type ClassStore interface {
	Insert(ctx context.Context, class models.Class) (models.InsertResult, error)
	List(ctx context.Context) ([]models.Class, error)
	ListByStatus(ctx context.Context, status string) ([]models.Class, error)
	ListByInstructor(ctx context.Context, email string) ([]models.Class, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error)
	SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (models.UpdateResult, error)
}

// ClassRegistry runs the approval workflow: a submitted class is pending
// until an admin approves or denies it. Approve and Deny overwrite whatever
// status is stored, so an admin can reverse an earlier decision.
type ClassRegistry struct {
	store ClassStore
}

func NewClassRegistry(store ClassStore) *ClassRegistry {
	return &ClassRegistry{store: store}
}

// Submit stores a new class. Status and feedback from the client are
// dropped so every submission starts out pending.
func (r *ClassRegistry) Submit(ctx context.Context, class models.Class) (models.InsertResult, error) {
	if err := checkPresence(class); err != nil {
		return models.InsertResult{}, err
	}
	class.ID = primitive.NilObjectID
	class.Status = ""
	class.Feedback = ""

	res, err := r.store.Insert(ctx, class)
	if err != nil {
		return models.InsertResult{}, models.NewInternal(err)
	}
	slog.Info("class submitted",
		slog.String("id", res.InsertedID.Hex()),
		slog.String("instructor", class.InstructorEmail),
	)
	return res, nil
}

func (r *ClassRegistry) List(ctx context.Context) ([]models.Class, error) {
	classes, err := r.store.List(ctx)
	if err != nil {
		return nil, models.NewInternal(err)
	}
	return classes, nil
}

// ListApproved returns classes whose status is exactly "approved".
func (r *ClassRegistry) ListApproved(ctx context.Context) ([]models.Class, error) {
	classes, err := r.store.ListByStatus(ctx, models.StatusApproved)
	if err != nil {
		return nil, models.NewInternal(err)
	}
	return classes, nil
}

// ListByInstructor returns the classes owned by instructorEmail. Only the
// instructor may list their own classes.
func (r *ClassRegistry) ListByInstructor(ctx context.Context, instructorEmail, callerEmail string) ([]models.Class, error) {
	if instructorEmail != callerEmail {
		return nil, models.NewForbidden("forbidden access")
	}
	classes, err := r.store.ListByInstructor(ctx, instructorEmail)
	if err != nil {
		return nil, models.NewInternal(err)
	}
	return classes, nil
}

func (r *ClassRegistry) Approve(ctx context.Context, rawID string) (models.UpdateResult, error) {
	return r.setStatus(ctx, rawID, models.StatusApproved)
}

func (r *ClassRegistry) Deny(ctx context.Context, rawID string) (models.UpdateResult, error) {
	return r.setStatus(ctx, rawID, models.StatusDenied)
}

// setStatus is a silent no-op when no class matches the id.
func (r *ClassRegistry) setStatus(ctx context.Context, rawID, status string) (models.UpdateResult, error) {
	id, err := models.ParseID(rawID)
	if err != nil {
		return models.UpdateResult{}, err
	}
	res, err := r.store.SetStatus(ctx, id, status)
	if err != nil {
		return models.UpdateResult{}, models.NewInternal(err)
	}
	slog.Info("class status set",
		slog.String("id", rawID),
		slog.String("status", status),
		slog.Int64("matched", res.MatchedCount),
	)
	return res, nil
}

// AttachFeedback sets the feedback text of a class in any state. Unlike the
// status updates, a missing class is reported as NotFound.
func (r *ClassRegistry) AttachFeedback(ctx context.Context, rawID, feedback string) (models.UpdateResult, error) {
	id, err := models.ParseID(rawID)
	if err != nil {
		return models.UpdateResult{}, err
	}
	res, err := r.store.SetFeedback(ctx, id, feedback)
	if err != nil {
		return models.UpdateResult{}, models.NewInternal(err)
	}
	if res.MatchedCount == 0 {
		return models.UpdateResult{}, models.NewNotFound("class not found")
	}
	return res, nil
}
