package store

import (
	"context"

	"Boettcher_Wiki/internal/models"
	"Boettcher_Wiki/internal/wiki/search"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultQuestionLimit caps question listings when the caller does not ask
// for a specific page size.
const DefaultQuestionLimit = 50

// QuestionStore defines the interface for question persistence.
type QuestionStore interface {
	Create(ctx context.Context, q *models.Question) error
	List(ctx context.Context, category string, limit int64) ([]*models.Question, error)
	GetByID(ctx context.Context, id string) (*models.Question, error)
	SetAnswered(ctx context.Context, id string, answered bool) error
	// Delete removes the question and reports whether a document was removed.
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query, category string) ([]*models.Question, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	Count(ctx context.Context, answered *bool) (int64, error)
}

// MongoQuestionStore is the MongoDB implementation of QuestionStore.
type MongoQuestionStore struct {
	collection *mongo.Collection
}

// NewMongoQuestionStore creates a new MongoQuestionStore.
func NewMongoQuestionStore(db *mongo.Database, collectionName string) *MongoQuestionStore {
	return &MongoQuestionStore{
		collection: db.Collection(collectionName),
	}
}

// Create inserts a new question document.
func (s *MongoQuestionStore) Create(ctx context.Context, q *models.Question) error {
	_, err := s.collection.InsertOne(ctx, q)
	return err
}

// List retrieves questions newest-first, optionally filtered by exact
// category, capped at limit (DefaultQuestionLimit when limit <= 0).
func (s *MongoQuestionStore) List(ctx context.Context, category string, limit int64) ([]*models.Question, error) {
	if limit <= 0 {
		limit = DefaultQuestionLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	return s.find(ctx, search.CategoryFilter(category), opts)
}

// GetByID retrieves a question by its ID. A missing question is (nil, nil);
// absence is not an error at this layer.
func (s *MongoQuestionStore) GetByID(ctx context.Context, id string) (*models.Question, error) {
	var q models.Question
	err := s.collection.FindOne(ctx, bson.M{"id": id}).Decode(&q)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

// SetAnswered updates the answered flag of a question.
func (s *MongoQuestionStore) SetAnswered(ctx context.Context, id string, answered bool) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"answered": answered}},
	)
	return err
}

// Delete removes a question and reports whether anything was deleted.
func (s *MongoQuestionStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Search retrieves questions matching the text/category filter newest-first.
// Unlike List, search results are not capped.
func (s *MongoQuestionStore) Search(ctx context.Context, query, category string) ([]*models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.find(ctx, search.QuestionFilter(query, category), opts)
}

// DistinctCategories returns the category values present in the collection.
func (s *MongoQuestionStore) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := s.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if c, ok := v.(string); ok {
			categories = append(categories, c)
		}
	}
	return categories, nil
}

// Count returns the number of questions, optionally restricted to a given
// answered state.
func (s *MongoQuestionStore) Count(ctx context.Context, answered *bool) (int64, error) {
	filter := bson.M{}
	if answered != nil {
		filter["answered"] = *answered
	}
	return s.collection.CountDocuments(ctx, filter)
}

func (s *MongoQuestionStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Question, error) {
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := make([]*models.Question, 0)
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}
