package models

import (
	"time"
)

// Question is a single question submitted by a wiki user. The ID is a
// server-generated UUID string kept in its own field, separate from Mongo's
// own _id, so documents stay portable across storage backends.
type Question struct {
	ID           string    `json:"id" bson:"id"`
	QuestionText string    `json:"question_text" bson:"question_text"`
	Category     string    `json:"category" bson:"category"`
	Author       string    `json:"author" bson:"author"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	Tags         []string  `json:"tags" bson:"tags"`
	Answered     bool      `json:"answered" bson:"answered"`
}

// Answer belongs to exactly one question. HelpfulCount is persisted for
// future voting support but no endpoint mutates it yet.
type Answer struct {
	ID           string    `json:"id" bson:"id"`
	QuestionID   string    `json:"question_id" bson:"question_id"`
	AnswerText   string    `json:"answer_text" bson:"answer_text"`
	Author       string    `json:"author" bson:"author"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	HelpfulCount int       `json:"helpful_count" bson:"helpful_count"`
}

// QuestionWithAnswer is the listing shape: a question plus its answer, if one
// has been given.
type QuestionWithAnswer struct {
	Question Question `json:"question"`
	Answer   *Answer  `json:"answer,omitempty"`
}

// KnowledgeEntry is the curated question/answer pair maintained by
// administrators. UpdatedAt is refreshed on every update, CreatedAt never is.
type KnowledgeEntry struct {
	ID        string    `json:"id" bson:"id"`
	Question  string    `json:"question" bson:"question"`
	Answer    string    `json:"answer" bson:"answer"`
	Category  string    `json:"category" bson:"category"`
	Tags      []string  `json:"tags" bson:"tags"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// WikiStats is the payload of the stats endpoint.
type WikiStats struct {
	TotalQuestions      int64 `json:"total_questions"`
	AnsweredQuestions   int64 `json:"answered_questions"`
	UnansweredQuestions int64 `json:"unanswered_questions"`
	TotalEntries        int64 `json:"total_entries"`
}
