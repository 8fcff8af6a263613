package service

import (
	"context"
	"fmt"
	"time"

	"Boettcher_Wiki/internal/models"
	"Boettcher_Wiki/internal/wiki/store"
	"Boettcher_Wiki/pkg/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Service owns the wiki business rules on top of the store layer.
type Service struct {
	questions store.QuestionStore
	answers   store.AnswerStore
	knowledge store.KnowledgeStore
	logger    *logger.Logger
}

// NewService creates a new Service instance.
func NewService(questions store.QuestionStore, answers store.AnswerStore, knowledge store.KnowledgeStore, l *logger.Logger) *Service {
	return &Service{
		questions: questions,
		answers:   answers,
		knowledge: knowledge,
		logger:    l,
	}
}

// --- Questions ---

// CreateQuestion assigns a fresh ID and creation timestamp and persists the
// question. New questions always start unanswered.
func (s *Service) CreateQuestion(ctx context.Context, q *models.Question) (*models.Question, error) {
	q.ID = uuid.NewString()
	q.CreatedAt = time.Now().UTC()
	q.Answered = false
	if q.Tags == nil {
		q.Tags = []string{}
	}

	if err := s.questions.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return q, nil
}

// ListQuestions returns questions newest-first with their answers attached,
// optionally filtered by category and capped at limit.
func (s *Service) ListQuestions(ctx context.Context, category string, limit int64) ([]*models.QuestionWithAnswer, error) {
	questions, err := s.questions.List(ctx, category, limit)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return s.attachAnswers(ctx, questions)
}

// CreateAnswer attaches an answer to a question. The question must exist and
// must not already have an answer. The existence check, the insert and the
// answered-flag update are three separate storage operations; the unique
// index on question_id closes the race between concurrent submissions.
func (s *Service) CreateAnswer(ctx context.Context, questionID string, a *models.Answer) (*models.Answer, error) {
	question, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("find question: %w", err)
	}
	if question == nil {
		return nil, ErrNotFound
	}

	existing, err := s.answers.GetByQuestionID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("find answer: %w", err)
	}
	if existing != nil {
		return nil, ErrAnswerExists
	}

	a.ID = uuid.NewString()
	a.QuestionID = questionID
	a.CreatedAt = time.Now().UTC()
	a.HelpfulCount = 0

	if err := s.answers.Create(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAnswerExists
		}
		return nil, fmt.Errorf("create answer: %w", err)
	}

	if err := s.questions.SetAnswered(ctx, questionID, true); err != nil {
		// The answer is stored; only the flag update failed. Report it, the
		// next stats/listing call will still find the answer itself.
		s.logger.WithError(models.ErrorInfo{Message: err.Error(), Type: "storage_error"}).
			Error("failed to mark question as answered")
	}

	return a, nil
}

// Search returns questions matching the query and category newest-first with
// answers attached. Unlike listing, search results are not capped.
func (s *Service) Search(ctx context.Context, query, category string) ([]*models.QuestionWithAnswer, error) {
	questions, err := s.questions.Search(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return s.attachAnswers(ctx, questions)
}

// Categories returns the category values currently in use.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.questions.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	return categories, nil
}

// Stats returns the wiki counters. Unanswered is derived from the other two
// counts so the answered/unanswered split always sums to the total.
func (s *Service) Stats(ctx context.Context) (*models.WikiStats, error) {
	total, err := s.questions.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}
	answered := true
	answeredCount, err := s.questions.Count(ctx, &answered)
	if err != nil {
		return nil, fmt.Errorf("count answered questions: %w", err)
	}
	entries, err := s.knowledge.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count knowledge entries: %w", err)
	}

	return &models.WikiStats{
		TotalQuestions:      total,
		AnsweredQuestions:   answeredCount,
		UnansweredQuestions: total - answeredCount,
		TotalEntries:        entries,
	}, nil
}

// DeleteQuestion removes a question and, best-effort, its answer.
func (s *Service) DeleteQuestion(ctx context.Context, id string) error {
	deleted, err := s.questions.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	if err := s.answers.DeleteByQuestionID(ctx, id); err != nil {
		s.logger.WithError(models.ErrorInfo{Message: err.Error(), Type: "storage_error"}).
			Error("failed to delete answer of deleted question")
	}
	return nil
}

func (s *Service) attachAnswers(ctx context.Context, questions []*models.Question) ([]*models.QuestionWithAnswer, error) {
	result := make([]*models.QuestionWithAnswer, 0, len(questions))
	for _, q := range questions {
		answer, err := s.answers.GetByQuestionID(ctx, q.ID)
		if err != nil {
			return nil, fmt.Errorf("find answer for question %s: %w", q.ID, err)
		}
		result = append(result, &models.QuestionWithAnswer{Question: *q, Answer: answer})
	}
	return result, nil
}
