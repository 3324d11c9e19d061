package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Question struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Description string        `bson:"description" json:"description"`
	Tag         []string      `bson:"tag,omitempty" json:"tag,omitempty"`
	AskedBy     bson.ObjectID `bson:"askedBy" json:"askedBy"`
	IsDeleted   bool          `bson:"isDeleted" json:"isDeleted"`
	DeletedAt   *time.Time    `bson:"deletedAt" json:"deletedAt"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// QuestionDetail is the projection served for a single question: the
// question fields plus its answers, newest first.
type QuestionDetail struct {
	Description string          `json:"description"`
	Tag         []string        `json:"tag,omitempty"`
	AskedBy     bson.ObjectID   `json:"askedBy"`
	Answers     []AnswerSummary `json:"answers"`
}
