package api

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"Boettcher_Wiki/internal/models"
	"Boettcher_Wiki/internal/wiki/store"
)

var (
	_ store.QuestionStore  = (*memQuestionStore)(nil)
	_ store.AnswerStore    = (*memAnswerStore)(nil)
	_ store.KnowledgeStore = (*memKnowledgeStore)(nil)
)

// In-memory store implementations mirroring the Mongo query semantics, so
// handlers and services can be exercised without a database.

type memQuestionStore struct {
	mu        sync.Mutex
	questions []*models.Question
}

func newMemQuestionStore() *memQuestionStore {
	return &memQuestionStore{}
}

func (s *memQuestionStore) Create(_ context.Context, q *models.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *q
	s.questions = append([]*models.Question{&copied}, s.questions...)
	return nil
}

func (s *memQuestionStore) List(_ context.Context, category string, limit int64) ([]*models.Question, error) {
	if limit <= 0 {
		limit = store.DefaultQuestionLimit
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.matching(func(q *models.Question) bool {
		return category == "" || q.Category == category
	})
	if int64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *memQuestionStore) GetByID(_ context.Context, id string) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.questions {
		if q.ID == id {
			copied := *q
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memQuestionStore) SetAnswered(_ context.Context, id string, answered bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.questions {
		if q.ID == id {
			q.Answered = answered
		}
	}
	return nil
}

func (s *memQuestionStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *memQuestionStore) Search(_ context.Context, query, category string) ([]*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.matching(func(q *models.Question) bool {
		if category != "" && q.Category != category {
			return false
		}
		if query == "" {
			return true
		}
		needle := strings.ToLower(query)
		if strings.Contains(strings.ToLower(q.QuestionText), needle) {
			return true
		}
		for _, tag := range q.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
		return false
	}), nil
}

func (s *memQuestionStore) DistinctCategories(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, q := range s.questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			categories = append(categories, q.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (s *memQuestionStore) Count(_ context.Context, answered *bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, q := range s.questions {
		if answered == nil || q.Answered == *answered {
			count++
		}
	}
	return count, nil
}

// matching returns copies of the matching questions newest-first. New
// questions are prepended on create, so insertion order is already
// newest-first for equal timestamps.
func (s *memQuestionStore) matching(pred func(*models.Question) bool) []*models.Question {
	result := make([]*models.Question, 0)
	for _, q := range s.questions {
		if pred(q) {
			copied := *q
			result = append(result, &copied)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

type memAnswerStore struct {
	mu      sync.Mutex
	answers map[string]*models.Answer // keyed by question ID
}

func newMemAnswerStore() *memAnswerStore {
	return &memAnswerStore{answers: make(map[string]*models.Answer)}
}

func (s *memAnswerStore) Create(_ context.Context, a *models.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *a
	s.answers[a.QuestionID] = &copied
	return nil
}

func (s *memAnswerStore) GetByQuestionID(_ context.Context, questionID string) (*models.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.answers[questionID]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, nil
}

func (s *memAnswerStore) DeleteByQuestionID(_ context.Context, questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.answers, questionID)
	return nil
}

type memKnowledgeStore struct {
	mu      sync.Mutex
	entries []*models.KnowledgeEntry
}

func newMemKnowledgeStore() *memKnowledgeStore {
	return &memKnowledgeStore{}
}

func (s *memKnowledgeStore) Create(_ context.Context, e *models.KnowledgeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *e
	s.entries = append([]*models.KnowledgeEntry{&copied}, s.entries...)
	return nil
}

func (s *memKnowledgeStore) List(_ context.Context, category string, limit int64) ([]*models.KnowledgeEntry, error) {
	if limit <= 0 {
		limit = store.DefaultKnowledgeLimit
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.matching(func(e *models.KnowledgeEntry) bool {
		return category == "" || e.Category == category
	})
	if int64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *memKnowledgeStore) GetByID(_ context.Context, id string) (*models.KnowledgeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memKnowledgeStore) Update(_ context.Context, id string, e *models.KnowledgeEntry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, stored := range s.entries {
		if stored.ID == id {
			stored.Question = e.Question
			stored.Answer = e.Answer
			stored.Category = e.Category
			stored.Tags = e.Tags
			stored.UpdatedAt = time.Now().UTC()
			return true, nil
		}
	}
	return false, nil
}

func (s *memKnowledgeStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *memKnowledgeStore) Search(_ context.Context, query, category string) ([]*models.KnowledgeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.matching(func(e *models.KnowledgeEntry) bool {
		if category != "" && e.Category != category {
			return false
		}
		if query == "" {
			return true
		}
		needle := strings.ToLower(query)
		if strings.Contains(strings.ToLower(e.Question), needle) ||
			strings.Contains(strings.ToLower(e.Answer), needle) {
			return true
		}
		for _, tag := range e.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
		return false
	}), nil
}

func (s *memKnowledgeStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.entries)), nil
}

func (s *memKnowledgeStore) matching(pred func(*models.KnowledgeEntry) bool) []*models.KnowledgeEntry {
	result := make([]*models.KnowledgeEntry, 0)
	for _, e := range s.entries {
		if pred(e) {
			copied := *e
			result = append(result, &copied)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}
