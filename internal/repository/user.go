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

// ProfileUpdate carries the profile fields being replaced. A nil field
// is left untouched.
type ProfileUpdate struct {
	Fname *string
	Lname *string
	Email *string
	Phone *string
}

// UserRepository is the persistence boundary for users. Lookups return
// (nil, nil) when no document matches.
type UserRepository interface {
	Insert(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	UpdateProfile(ctx context.Context, id bson.ObjectID, upd ProfileUpdate) (*models.User, error)

	// DebitCredit decrements creditScore by amount, but only while the
	// score is still positive. Returns false when the condition did not
	// match, so concurrent debits cannot pass the gate twice.
	DebitCredit(ctx context.Context, id bson.ObjectID, amount int) (bool, error)

	// AddCredit increments creditScore by amount.
	AddCredit(ctx context.Context, id bson.ObjectID, amount int) error
}

type userMongoRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userMongoRepository{coll: db.Collection("users")}
}

func (r *userMongoRepository) Insert(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, u)
	return err
}

func (r *userMongoRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *userMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userMongoRepository) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

func (r *userMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	err := r.coll.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userMongoRepository) UpdateProfile(ctx context.Context, id bson.ObjectID, upd ProfileUpdate) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Fname != nil {
		set["fname"] = *upd.Fname
	}
	if upd.Lname != nil {
		set["lname"] = *upd.Lname
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}

	var u models.User
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userMongoRepository) DebitCredit(ctx context.Context, id bson.ObjectID, amount int) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "creditScore": bson.M{"$gt": 0}},
		bson.M{
			"$inc": bson.M{"creditScore": -amount},
			"$set": bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (r *userMongoRepository) AddCredit(ctx context.Context, id bson.ObjectID, amount int) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"creditScore": amount},
			"$set": bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	return err
}
