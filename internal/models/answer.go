package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Answer struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	QuestionID bson.ObjectID `bson:"questionId" json:"questionId"`
	AnsweredBy bson.ObjectID `bson:"answeredBy" json:"answeredBy"`
	Text       string        `bson:"text" json:"text"`
	IsDeleted  bool          `bson:"isDeleted" json:"isDeleted"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// AnswerSummary is an answer with its timestamps stripped, the shape
// used in answer listings and nested under a question.
type AnswerSummary struct {
	ID         bson.ObjectID `json:"_id"`
	QuestionID bson.ObjectID `json:"questionId"`
	AnsweredBy bson.ObjectID `json:"answeredBy"`
	Text       string        `json:"text"`
	IsDeleted  bool          `json:"isDeleted"`
}

// Summary strips the timestamp fields from an answer.
func (a Answer) Summary() AnswerSummary {
	return AnswerSummary{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		AnsweredBy: a.AnsweredBy,
		Text:       a.Text,
		IsDeleted:  a.IsDeleted,
	}
}
