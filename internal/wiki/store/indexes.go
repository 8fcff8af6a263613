package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the wiki relies on. The unique index on
// answers.question_id enforces the at-most-one-answer invariant at the
// storage layer; the existence-then-insert sequence in the service is not
// transactional, so without this index two concurrent answer submissions for
// the same question could both succeed.
func EnsureIndexes(ctx context.Context, db *mongo.Database, answersCollection string) error {
	_, err := db.Collection(answersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "question_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
