package service

import (
	"context"
	"fmt"
	"time"

	"Boettcher_Wiki/internal/models"

	"github.com/google/uuid"
)

// CreateEntry assigns a fresh ID and timestamps and persists the entry.
func (s *Service) CreateEntry(ctx context.Context, e *models.KnowledgeEntry) (*models.KnowledgeEntry, error) {
	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Tags == nil {
		e.Tags = []string{}
	}

	if err := s.knowledge.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create knowledge entry: %w", err)
	}
	return e, nil
}

// ListEntries returns knowledge entries newest-first, optionally filtered by
// category and capped at limit.
func (s *Service) ListEntries(ctx context.Context, category string, limit int64) ([]*models.KnowledgeEntry, error) {
	entries, err := s.knowledge.List(ctx, category, limit)
	if err != nil {
		return nil, fmt.Errorf("list knowledge entries: %w", err)
	}
	return entries, nil
}

// UpdateEntry replaces the mutable fields of an entry. The stored ID and
// creation timestamp are preserved; updated_at is refreshed.
func (s *Service) UpdateEntry(ctx context.Context, id string, e *models.KnowledgeEntry) (*models.KnowledgeEntry, error) {
	updated, err := s.knowledge.Update(ctx, id, e)
	if err != nil {
		return nil, fmt.Errorf("update knowledge entry: %w", err)
	}
	if !updated {
		return nil, ErrNotFound
	}

	entry, err := s.knowledge.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload knowledge entry: %w", err)
	}
	if entry == nil {
		// Deleted between update and reload.
		return nil, ErrNotFound
	}
	return entry, nil
}

// DeleteEntry removes an entry.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	deleted, err := s.knowledge.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete knowledge entry: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// SearchEntries returns knowledge entries matching the query and category
// newest-first, uncapped.
func (s *Service) SearchEntries(ctx context.Context, query, category string) ([]*models.KnowledgeEntry, error) {
	entries, err := s.knowledge.Search(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("search knowledge entries: %w", err)
	}
	return entries, nil
}
