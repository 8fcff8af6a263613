// Package search builds the MongoDB filters behind the wiki's text search.
//
// The text predicate is a case-insensitive substring match: the raw query is
// escaped before being handed to $regex, so metacharacters like "." or "*"
// match literally instead of acting as wildcards. Search results are never
// capped by the listing page limit.
package search

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionFilter returns the filter for searching questions. A blank query
// matches every question; a non-blank query must appear as a substring of
// the question text or of any tag. A non-empty category narrows the result
// to exact category matches.
func QuestionFilter(query, category string) bson.M {
	return combine(textPredicate(query, "question_text", "tags"), category)
}

// KnowledgeFilter returns the filter for searching knowledge entries. The
// substring match additionally covers the answer text.
func KnowledgeFilter(query, category string) bson.M {
	return combine(textPredicate(query, "question", "answer", "tags"), category)
}

// CategoryFilter returns the filter used by plain listings: everything, or
// an exact category match.
func CategoryFilter(category string) bson.M {
	return combine(nil, category)
}

// textPredicate builds the $or clause matching query case-insensitively in
// any of the given fields. For array fields Mongo applies the regex to each
// element, which gives the "any tag matches" semantics for free.
func textPredicate(query string, fields ...string) bson.M {
	if query == "" {
		return nil
	}
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: bson.M{"$regex": pattern}})
	}
	return bson.M{"$or": or}
}

func combine(text bson.M, category string) bson.M {
	filter := bson.M{}
	for k, v := range text {
		filter[k] = v
	}
	if category != "" {
		filter["category"] = category
	}
	return filter
}
