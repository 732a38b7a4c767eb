package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/arzan03/ArtistryCamp/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// newTestMongo connects to MONGO_URI with a throwaway database that is
// dropped when the test ends. Tests are skipped when MONGO_URI is unset.
func newTestMongo(t *testing.T) *Mongo {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	ctx := context.Background()
	dbName := fmt.Sprintf("artistry_test_%s", primitive.NewObjectID().Hex())
	m, err := ConnectMongoDB(ctx, uri, dbName, 10*time.Second)
	if err != nil {
		t.Fatalf("ConnectMongoDB() error: %v", err)
	}
	if err := m.Ping(ctx); err != nil {
		t.Fatalf("Ping() error: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Database.Drop(context.Background()); err != nil {
			t.Logf("drop %s: %v", dbName, err)
		}
		_ = m.Disconnect(context.Background())
	})
	return m
}

func TestMongoUsers(t *testing.T) {
	m := newTestMongo(t)
	ctx := context.Background()
	users := m.Users()

	t.Run("FindByEmail on unknown email", func(t *testing.T) {
		_, err := users.FindByEmail(ctx, "ghost@x.com")
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("FindByEmail() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("upsert creates then updates profile fields", func(t *testing.T) {
		res, err := users.UpsertProfile(ctx, "bob", models.Profile{Name: "Bob"})
		if err != nil {
			t.Fatalf("UpsertProfile() error: %v", err)
		}
		if res.UpsertedCount != 1 || res.UpsertedID == nil {
			t.Fatalf("first UpsertProfile() = %+v, want an upsert", res)
		}

		user, err := users.FindByEmail(ctx, "bob")
		if err != nil {
			t.Fatalf("FindByEmail() error: %v", err)
		}
		if user.ID != *res.UpsertedID || user.Name != "Bob" || user.Role != "" {
			t.Errorf("user = %+v", user)
		}

		if _, err := users.SetRole(ctx, user.ID, models.RoleInstructor); err != nil {
			t.Fatalf("SetRole() error: %v", err)
		}
		res, err = users.UpsertProfile(ctx, "bob", models.Profile{PhotoURL: "http://img"})
		if err != nil {
			t.Fatalf("UpsertProfile() error: %v", err)
		}
		if res.MatchedCount != 1 || res.ModifiedCount != 1 || res.UpsertedCount != 0 {
			t.Errorf("second UpsertProfile() = %+v", res)
		}

		user, _ = users.FindByEmail(ctx, "bob")
		if user.Name != "Bob" || user.PhotoURL != "http://img" || user.Role != models.RoleInstructor {
			t.Errorf("user after second upsert = %+v", user)
		}
	})

	t.Run("same-value role update matches without modifying", func(t *testing.T) {
		ins, err := users.Insert(ctx, models.User{Email: "root@x.com", Role: models.RoleAdmin})
		if err != nil {
			t.Fatalf("Insert() error: %v", err)
		}
		upd, err := users.SetRole(ctx, ins.InsertedID, models.RoleAdmin)
		if err != nil {
			t.Fatalf("SetRole() error: %v", err)
		}
		if upd.MatchedCount != 1 || upd.ModifiedCount != 0 {
			t.Errorf("SetRole() = %+v, want matched 1 modified 0", upd)
		}

		admins, err := users.ListByRole(ctx, models.RoleAdmin)
		if err != nil || len(admins) != 1 || admins[0].Email != "root@x.com" {
			t.Errorf("ListByRole() = %+v, %v", admins, err)
		}
	})
}

func TestMongoClasses(t *testing.T) {
	m := newTestMongo(t)
	ctx := context.Background()
	classes := m.Classes()

	t.Run("empty collection lists as an empty slice", func(t *testing.T) {
		got, err := classes.List(ctx)
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("List() = %#v, want empty non-nil slice", got)
		}
	})

	t.Run("status filter matches exactly", func(t *testing.T) {
		if _, err := classes.Insert(ctx, models.Class{ClassName: "Ink", InstructorEmail: "ines"}); err != nil {
			t.Fatalf("Insert() error: %v", err)
		}
		approved, _ := classes.Insert(ctx, models.Class{ClassName: "Oil", InstructorEmail: "ines"})
		if _, err := classes.SetStatus(ctx, approved.InsertedID, models.StatusApproved); err != nil {
			t.Fatalf("SetStatus() error: %v", err)
		}

		got, err := classes.ListByStatus(ctx, models.StatusApproved)
		if err != nil {
			t.Fatalf("ListByStatus() error: %v", err)
		}
		if len(got) != 1 || got[0].ID != approved.InsertedID {
			t.Errorf("ListByStatus(approved) = %+v", got)
		}

		got, _ = classes.ListByStatus(ctx, models.StatusPending)
		if len(got) != 0 {
			t.Errorf("ListByStatus(pending) = %+v, want none", got)
		}

		mine, _ := classes.ListByInstructor(ctx, "ines")
		if len(mine) != 2 {
			t.Errorf("ListByInstructor() len = %d, want 2", len(mine))
		}
	})

	t.Run("feedback on a missing class matches nothing", func(t *testing.T) {
		res, err := classes.SetFeedback(ctx, primitive.NewObjectID(), "nice")
		if err != nil {
			t.Fatalf("SetFeedback() error: %v", err)
		}
		if res.MatchedCount != 0 {
			t.Errorf("SetFeedback() = %+v, want matched 0", res)
		}
	})
}

func TestMongoSelections(t *testing.T) {
	m := newTestMongo(t)
	ctx := context.Background()
	selections := m.Selections()

	got, err := selections.ListByEmail(ctx, "stu")
	if err != nil {
		t.Fatalf("ListByEmail() error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("ListByEmail() = %#v, want empty non-nil slice", got)
	}

	sel := models.Selection{Email: "stu", ClassID: "0123456789abcdef01234567"}
	for i := 0; i < 2; i++ {
		if _, err := selections.Insert(ctx, sel); err != nil {
			t.Fatalf("Insert() error: %v", err)
		}
	}
	got, _ = selections.ListByEmail(ctx, "stu")
	if len(got) != 2 {
		t.Errorf("ListByEmail() len = %d, want 2", len(got))
	}
}
