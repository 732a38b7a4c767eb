package db

import (
	"context"
	"sync"

	"github.com/arzan03/ArtistryCamp/internal/models"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process document store with the same filter and update
// semantics as the Mongo repositories. It backs STORE_DRIVER=memory and the
// tests.
type Memory struct {
	mu         sync.RWMutex
	users      []models.User
	classes    []models.Class
	selections []models.Selection
}

func NewMemory() *Memory {
	return &Memory{}
}

// Ping always succeeds.
func (m *Memory) Ping(context.Context) error {
	return nil
}

func (m *Memory) Users() *MemoryUsers {
	return &MemoryUsers{m: m}
}

func (m *Memory) Classes() *MemoryClasses {
	return &MemoryClasses{m: m}
}

func (m *Memory) Selections() *MemorySelections {
	return &MemorySelections{m: m}
}

type MemoryUsers struct {
	m *Memory
}

func (s *MemoryUsers) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	user, ok := lo.Find(s.m.users, func(u models.User) bool { return u.Email == email })
	if !ok {
		return models.User{}, models.ErrNotFound
	}
	return user, nil
}

func (s *MemoryUsers) Insert(_ context.Context, user models.User) (models.InsertResult, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.m.users = append(s.m.users, user)
	return models.InsertResult{Acknowledged: true, InsertedID: user.ID}, nil
}

func (s *MemoryUsers) UpsertProfile(_ context.Context, email string, profile models.Profile) (models.UpdateResult, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	_, idx, ok := lo.FindIndexOf(s.m.users, func(u models.User) bool { return u.Email == email })
	if !ok {
		user := models.User{
			ID:       primitive.NewObjectID(),
			Email:    email,
			Name:     profile.Name,
			PhotoURL: profile.PhotoURL,
		}
		s.m.users = append(s.m.users, user)
		return models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &user.ID}, nil
	}

	before := s.m.users[idx]
	after := before
	if profile.Name != "" {
		after.Name = profile.Name
	}
	if profile.PhotoURL != "" {
		after.PhotoURL = profile.PhotoURL
	}
	s.m.users[idx] = after
	return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified(before != after)}, nil
}

func (s *MemoryUsers) SetRole(_ context.Context, id primitive.ObjectID, role string) (models.UpdateResult, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	_, idx, ok := lo.FindIndexOf(s.m.users, func(u models.User) bool { return u.ID == id })
	if !ok {
		return models.UpdateResult{Acknowledged: true}, nil
	}
	changed := s.m.users[idx].Role != role
	s.m.users[idx].Role = role
	return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified(changed)}, nil
}

func (s *MemoryUsers) List(context.Context) ([]models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	return append(make([]models.User, 0, len(s.m.users)), s.m.users...), nil
}

func (s *MemoryUsers) ListByRole(_ context.Context, role string) ([]models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	return lo.Filter(s.m.users, func(u models.User, _ int) bool { return u.Role == role }), nil
}

type MemoryClasses struct {
	m *Memory
}

func (s *MemoryClasses) Insert(_ context.Context, class models.Class) (models.InsertResult, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if class.ID.IsZero() {
		class.ID = primitive.NewObjectID()
	}
	s.m.classes = append(s.m.classes, class)
	return models.InsertResult{Acknowledged: true, InsertedID: class.ID}, nil
}

func (s *MemoryClasses) List(context.Context) ([]models.Class, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	return append(make([]models.Class, 0, len(s.m.classes)), s.m.classes...), nil
}

func (s *MemoryClasses) ListByStatus(_ context.Context, status string) ([]models.Class, error) {
	return s.filter(func(c models.Class) bool { return c.Status == status }), nil
}

func (s *MemoryClasses) ListByInstructor(_ context.Context, email string) ([]models.Class, error) {
	return s.filter(func(c models.Class) bool { return c.InstructorEmail == email }), nil
}

func (s *MemoryClasses) SetStatus(_ context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error) {
	return s.update(id, func(c *models.Class) bool {
		changed := c.Status != status
		c.Status = status
		return changed
	}), nil
}

func (s *MemoryClasses) SetFeedback(_ context.Context, id primitive.ObjectID, feedback string) (models.UpdateResult, error) {
	return s.update(id, func(c *models.Class) bool {
		changed := c.Feedback != feedback
		c.Feedback = feedback
		return changed
	}), nil
}

func (s *MemoryClasses) filter(match func(models.Class) bool) []models.Class {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	return lo.Filter(s.m.classes, func(c models.Class, _ int) bool { return match(c) })
}

func (s *MemoryClasses) update(id primitive.ObjectID, apply func(*models.Class) bool) models.UpdateResult {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	_, idx, ok := lo.FindIndexOf(s.m.classes, func(c models.Class) bool { return c.ID == id })
	if !ok {
		return models.UpdateResult{Acknowledged: true}
	}
	changed := apply(&s.m.classes[idx])
	return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified(changed)}
}

type MemorySelections struct {
	m *Memory
}

func (s *MemorySelections) Insert(_ context.Context, sel models.Selection) (models.InsertResult, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if sel.ID.IsZero() {
		sel.ID = primitive.NewObjectID()
	}
	s.m.selections = append(s.m.selections, sel)
	return models.InsertResult{Acknowledged: true, InsertedID: sel.ID}, nil
}

func (s *MemorySelections) ListByEmail(_ context.Context, email string) ([]models.Selection, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	return lo.Filter(s.m.selections, func(sel models.Selection, _ int) bool { return sel.Email == email }), nil
}

func modified(changed bool) int64 {
	if changed {
		return 1
	}
	return 0
}
