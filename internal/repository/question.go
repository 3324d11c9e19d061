package repository

import (
	"context"
	"errors"
	"time"

	"qa-forum-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Sort directions for question listings.
const (
	SortNone       = 0
	SortAscending  = 1
	SortDescending = -1
)

// QuestionFilter narrows a listing. Tags is a containment filter: every
// listed tag must be present on the question.
type QuestionFilter struct {
	Tags []string
	Sort int
}

// QuestionUpdate replaces fields on a question. Nil Description and nil
// Tags leave the field untouched.
type QuestionUpdate struct {
	Description *string
	Tags        []string
}

type QuestionRepository interface {
	Insert(ctx context.Context, q *models.Question) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Question, error)

	// List returns non-deleted questions matching the filter, sorted by
	// creation time when a direction is given.
	List(ctx context.Context, f QuestionFilter) ([]models.Question, error)

	Update(ctx context.Context, id bson.ObjectID, upd QuestionUpdate) (*models.Question, error)
	SoftDelete(ctx context.Context, id bson.ObjectID, at time.Time) error
}

type questionMongoRepository struct {
	coll *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) QuestionRepository {
	return &questionMongoRepository{coll: db.Collection("questions")}
}

func (r *questionMongoRepository) Insert(ctx context.Context, q *models.Question) error {
	if q.ID.IsZero() {
		q.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	q.CreatedAt = now
	q.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, q)
	return err
}

func (r *questionMongoRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Question, error) {
	var q models.Question
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionMongoRepository) List(ctx context.Context, f QuestionFilter) ([]models.Question, error) {
	filter := bson.M{"isDeleted": false}
	if len(f.Tags) > 0 {
		filter["tag"] = bson.M{"$all": f.Tags}
	}

	opts := options.Find()
	if f.Sort != SortNone {
		opts.SetSort(bson.D{{Key: "createdAt", Value: f.Sort}})
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var questions []models.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionMongoRepository) Update(ctx context.Context, id bson.ObjectID, upd QuestionUpdate) (*models.Question, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Tags != nil {
		set["tag"] = upd.Tags
	}

	var q models.Question
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionMongoRepository) SoftDelete(ctx context.Context, id bson.ObjectID, at time.Time) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isDeleted": true, "deletedAt": at, "updatedAt": at}},
	)
	return err
}
