package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"qa-forum-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// In-memory repositories mirroring the Mongo implementations. They back
// the service tests and are handy for local experiments without a
// running store.

type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[bson.ObjectID]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[bson.ObjectID]models.User)}
}

func (r *MemoryUserRepository) Insert(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = *u
	return nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Phone != "" && u.Phone == phone {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) UpdateProfile(_ context.Context, id bson.ObjectID, upd ProfileUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	if upd.Fname != nil {
		u.Fname = *upd.Fname
	}
	if upd.Lname != nil {
		u.Lname = *upd.Lname
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	u.UpdatedAt = time.Now().UTC()
	r.users[id] = u
	return &u, nil
}

func (r *MemoryUserRepository) DebitCredit(_ context.Context, id bson.ObjectID, amount int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.CreditScore <= 0 {
		return false, nil
	}
	u.CreditScore -= amount
	u.UpdatedAt = time.Now().UTC()
	r.users[id] = u
	return true, nil
}

func (r *MemoryUserRepository) AddCredit(_ context.Context, id bson.ObjectID, amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.CreditScore += amount
		u.UpdatedAt = time.Now().UTC()
		r.users[id] = u
	}
	return nil
}

type MemoryQuestionRepository struct {
	mu        sync.Mutex
	questions map[bson.ObjectID]models.Question
}

func NewMemoryQuestionRepository() *MemoryQuestionRepository {
	return &MemoryQuestionRepository{questions: make(map[bson.ObjectID]models.Question)}
}

func (r *MemoryQuestionRepository) Insert(_ context.Context, q *models.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if q.ID.IsZero() {
		q.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	q.CreatedAt = now
	q.UpdatedAt = now
	r.questions[q.ID] = *q
	return nil
}

func (r *MemoryQuestionRepository) FindByID(_ context.Context, id bson.ObjectID) (*models.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if q, ok := r.questions[id]; ok {
		return &q, nil
	}
	return nil, nil
}

func (r *MemoryQuestionRepository) List(_ context.Context, f QuestionFilter) ([]models.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Question
	for _, q := range r.questions {
		if q.IsDeleted || !containsAll(q.Tag, f.Tags) {
			continue
		}
		out = append(out, q)
	}
	if f.Sort != SortNone {
		sort.Slice(out, func(i, j int) bool {
			if f.Sort == SortAscending {
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out, nil
}

func containsAll(have, want []string) bool {
	set := make(map[string]bool, len(have))
	for _, t := range have {
		set[t] = true
	}
	for _, t := range want {
		if !set[t] {
			return false
		}
	}
	return true
}

func (r *MemoryQuestionRepository) Update(_ context.Context, id bson.ObjectID, upd QuestionUpdate) (*models.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.questions[id]
	if !ok {
		return nil, nil
	}
	if upd.Description != nil {
		q.Description = *upd.Description
	}
	if upd.Tags != nil {
		q.Tag = upd.Tags
	}
	q.UpdatedAt = time.Now().UTC()
	r.questions[id] = q
	return &q, nil
}

func (r *MemoryQuestionRepository) SoftDelete(_ context.Context, id bson.ObjectID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if q, ok := r.questions[id]; ok {
		q.IsDeleted = true
		q.DeletedAt = &at
		q.UpdatedAt = at
		r.questions[id] = q
	}
	return nil
}

type MemoryAnswerRepository struct {
	mu      sync.Mutex
	answers map[bson.ObjectID]models.Answer
}

func NewMemoryAnswerRepository() *MemoryAnswerRepository {
	return &MemoryAnswerRepository{answers: make(map[bson.ObjectID]models.Answer)}
}

func (r *MemoryAnswerRepository) Insert(_ context.Context, a *models.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID.IsZero() {
		a.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.answers[a.ID] = *a
	return nil
}

func (r *MemoryAnswerRepository) FindByID(_ context.Context, id bson.ObjectID) (*models.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.answers[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *MemoryAnswerRepository) ListByQuestion(_ context.Context, questionID bson.ObjectID, newestFirst bool) ([]models.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Answer
	for _, a := range r.answers {
		if a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if newestFirst {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryAnswerRepository) UpdateText(_ context.Context, id bson.ObjectID, text string) (*models.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.answers[id]
	if !ok {
		return nil, nil
	}
	a.Text = text
	a.UpdatedAt = time.Now().UTC()
	r.answers[id] = a
	return &a, nil
}

func (r *MemoryAnswerRepository) SoftDelete(_ context.Context, id bson.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.answers[id]; ok {
		a.IsDeleted = true
		a.UpdatedAt = time.Now().UTC()
		r.answers[id] = a
	}
	return nil
}
