package store

import (
	"context"

	"Boettcher_Wiki/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnswerStore defines the interface for answer persistence.
type AnswerStore interface {
	Create(ctx context.Context, a *models.Answer) error
	GetByQuestionID(ctx context.Context, questionID string) (*models.Answer, error)
	// DeleteByQuestionID removes the answer of a question if one exists.
	// Absence is not an error.
	DeleteByQuestionID(ctx context.Context, questionID string) error
}

// MongoAnswerStore is the MongoDB implementation of AnswerStore.
type MongoAnswerStore struct {
	collection *mongo.Collection
}

// NewMongoAnswerStore creates a new MongoAnswerStore.
func NewMongoAnswerStore(db *mongo.Database, collectionName string) *MongoAnswerStore {
	return &MongoAnswerStore{
		collection: db.Collection(collectionName),
	}
}

// Create inserts a new answer document. The unique index on question_id
// (see EnsureIndexes) makes concurrent duplicate inserts fail here instead
// of silently racing past the service-level existence check.
func (s *MongoAnswerStore) Create(ctx context.Context, a *models.Answer) error {
	_, err := s.collection.InsertOne(ctx, a)
	return err
}

// GetByQuestionID retrieves the answer of a question, or (nil, nil) if the
// question has none.
func (s *MongoAnswerStore) GetByQuestionID(ctx context.Context, questionID string) (*models.Answer, error) {
	var a models.Answer
	err := s.collection.FindOne(ctx, bson.M{"question_id": questionID}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// DeleteByQuestionID removes the answer attached to a question, if any.
func (s *MongoAnswerStore) DeleteByQuestionID(ctx context.Context, questionID string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"question_id": questionID})
	return err
}
