package store

import (
	"context"
	"time"

	"Boettcher_Wiki/internal/models"
	"Boettcher_Wiki/internal/wiki/search"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultKnowledgeLimit caps knowledge listings when no page size is given.
const DefaultKnowledgeLimit = 100

// KnowledgeStore defines the interface for knowledge entry persistence.
type KnowledgeStore interface {
	Create(ctx context.Context, e *models.KnowledgeEntry) error
	List(ctx context.Context, category string, limit int64) ([]*models.KnowledgeEntry, error)
	GetByID(ctx context.Context, id string) (*models.KnowledgeEntry, error)
	// Update replaces the mutable fields of an entry, refreshes updated_at and
	// reports whether the entry existed. ID and created_at are preserved.
	Update(ctx context.Context, id string, e *models.KnowledgeEntry) (bool, error)
	// Delete removes the entry and reports whether a document was removed.
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query, category string) ([]*models.KnowledgeEntry, error)
	Count(ctx context.Context) (int64, error)
}

// MongoKnowledgeStore is the MongoDB implementation of KnowledgeStore.
type MongoKnowledgeStore struct {
	collection *mongo.Collection
}

// NewMongoKnowledgeStore creates a new MongoKnowledgeStore.
func NewMongoKnowledgeStore(db *mongo.Database, collectionName string) *MongoKnowledgeStore {
	return &MongoKnowledgeStore{
		collection: db.Collection(collectionName),
	}
}

// Create inserts a new knowledge entry document.
func (s *MongoKnowledgeStore) Create(ctx context.Context, e *models.KnowledgeEntry) error {
	_, err := s.collection.InsertOne(ctx, e)
	return err
}

// List retrieves entries newest-first, optionally filtered by exact
// category, capped at limit (DefaultKnowledgeLimit when limit <= 0).
func (s *MongoKnowledgeStore) List(ctx context.Context, category string, limit int64) ([]*models.KnowledgeEntry, error) {
	if limit <= 0 {
		limit = DefaultKnowledgeLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	return s.find(ctx, search.CategoryFilter(category), opts)
}

// GetByID retrieves an entry by its ID, or (nil, nil) when absent.
func (s *MongoKnowledgeStore) GetByID(ctx context.Context, id string) (*models.KnowledgeEntry, error) {
	var e models.KnowledgeEntry
	err := s.collection.FindOne(ctx, bson.M{"id": id}).Decode(&e)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// Update replaces the mutable fields of an entry and refreshes updated_at.
func (s *MongoKnowledgeStore) Update(ctx context.Context, id string, e *models.KnowledgeEntry) (bool, error) {
	res, err := s.collection.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{
			"question":   e.Question,
			"answer":     e.Answer,
			"category":   e.Category,
			"tags":       e.Tags,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Delete removes an entry and reports whether anything was deleted.
func (s *MongoKnowledgeStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Search retrieves entries matching the text/category filter newest-first,
// uncapped.
func (s *MongoKnowledgeStore) Search(ctx context.Context, query, category string) ([]*models.KnowledgeEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.find(ctx, search.KnowledgeFilter(query, category), opts)
}

// Count returns the total number of knowledge entries.
func (s *MongoKnowledgeStore) Count(ctx context.Context) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{})
}

func (s *MongoKnowledgeStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.KnowledgeEntry, error) {
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]*models.KnowledgeEntry, 0)
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
