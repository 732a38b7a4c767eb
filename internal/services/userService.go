package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/arzan03/ArtistryCamp/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the document collection behind the user directory.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Insert(ctx context.Context, user models.User) (models.InsertResult, error)
	UpsertProfile(ctx context.Context, email string, profile models.Profile) (models.UpdateResult, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (models.UpdateResult, error)
	List(ctx context.Context) ([]models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
}

// RegisterResult reports the outcome of RegisterIfAbsent. Exists is set when
// the email was already taken, in which case Inserted is zero.
type RegisterResult struct {
	Exists   bool
	Inserted models.InsertResult
}

type UserDirectory struct {
	store UserStore
}

func NewUserDirectory(store UserStore) *UserDirectory {
	return &UserDirectory{store: store}
}

// RegisterIfAbsent inserts user unless a user with the same email exists.
// Uniqueness is find-before-insert; two racing registrations may both insert.
func (d *UserDirectory) RegisterIfAbsent(ctx context.Context, user models.User) (RegisterResult, error) {
	if err := checkPresence(user); err != nil {
		return RegisterResult{}, err
	}

	_, err := d.store.FindByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return RegisterResult{Exists: true}, nil
	case !errors.Is(err, models.ErrNotFound):
		return RegisterResult{}, models.NewInternal(err)
	}

	// Self-registration may claim the student role; anything above it is
	// only granted through SetRole.
	user.ID = primitive.NilObjectID
	if user.Role != models.RoleStudent {
		user.Role = ""
	}
	res, err := d.store.Insert(ctx, user)
	if err != nil {
		return RegisterResult{}, models.NewInternal(err)
	}
	slog.Info("user registered", slog.String("email", user.Email), slog.String("id", res.InsertedID.Hex()))
	return RegisterResult{Inserted: res}, nil
}

// UpsertByEmail creates or updates the profile of the user keyed by email.
func (d *UserDirectory) UpsertByEmail(ctx context.Context, email string, profile models.Profile) (models.UpdateResult, error) {
	if email == "" {
		return models.UpdateResult{}, models.NewBadRequest("email is required")
	}
	res, err := d.store.UpsertProfile(ctx, email, profile)
	if err != nil {
		return models.UpdateResult{}, models.NewInternal(err)
	}
	return res, nil
}

// SetRole overwrites the role of the user with the given id. The role is not
// checked against the known roles and a missing user is a silent no-op.
func (d *UserDirectory) SetRole(ctx context.Context, rawID, role string) (models.UpdateResult, error) {
	id, err := models.ParseID(rawID)
	if err != nil {
		return models.UpdateResult{}, err
	}
	res, err := d.store.SetRole(ctx, id, role)
	if err != nil {
		return models.UpdateResult{}, models.NewInternal(err)
	}
	slog.Info("user role set",
		slog.String("id", rawID),
		slog.String("role", role),
		slog.Int64("matched", res.MatchedCount),
	)
	return res, nil
}

func (d *UserDirectory) List(ctx context.Context) ([]models.User, error) {
	users, err := d.store.List(ctx)
	if err != nil {
		return nil, models.NewInternal(err)
	}
	return users, nil
}

func (d *UserDirectory) ListInstructors(ctx context.Context) ([]models.User, error) {
	users, err := d.store.ListByRole(ctx, models.RoleInstructor)
	if err != nil {
		return nil, models.NewInternal(err)
	}
	return users, nil
}

func (d *UserDirectory) IsAdmin(ctx context.Context, email string) (bool, error) {
	return d.hasRole(ctx, email, models.RoleAdmin)
}

func (d *UserDirectory) IsInstructor(ctx context.Context, email string) (bool, error) {
	return d.hasRole(ctx, email, models.RoleInstructor)
}

// hasRole answers false for an unknown email rather than NotFound.
func (d *UserDirectory) hasRole(ctx context.Context, email, role string) (bool, error) {
	if email == "" {
		return false, nil
	}
	user, err := d.store.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, models.NewInternal(err)
	}
	return user.Role == role, nil
}
