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

type AnswerRepository interface {
	Insert(ctx context.Context, a *models.Answer) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Answer, error)

	// ListByQuestion returns every answer of a question, newest first
	// when newestFirst is set.
	ListByQuestion(ctx context.Context, questionID bson.ObjectID, newestFirst bool) ([]models.Answer, error)

	UpdateText(ctx context.Context, id bson.ObjectID, text string) (*models.Answer, error)
	SoftDelete(ctx context.Context, id bson.ObjectID) error
}

type answerMongoRepository struct {
	coll *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) AnswerRepository {
	return &answerMongoRepository{coll: db.Collection("answers")}
}

func (r *answerMongoRepository) Insert(ctx context.Context, a *models.Answer) error {
	if a.ID.IsZero() {
		a.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, a)
	return err
}

func (r *answerMongoRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Answer, error) {
	var a models.Answer
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *answerMongoRepository) ListByQuestion(ctx context.Context, questionID bson.ObjectID, newestFirst bool) ([]models.Answer, error) {
	opts := options.Find()
	if newestFirst {
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}

	cursor, err := r.coll.Find(ctx, bson.M{"questionId": questionID}, opts)
	if err != nil {
		return nil, err
	}
	var answers []models.Answer
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerMongoRepository) UpdateText(ctx context.Context, id bson.ObjectID, text string) (*models.Answer, error) {
	var a models.Answer
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"text": text, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *answerMongoRepository) SoftDelete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now().UTC()}},
	)
	return err
}
