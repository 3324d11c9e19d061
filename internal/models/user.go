package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a registered forum member. The password field holds only the
// bcrypt hash and is never serialized into responses.
type User struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Fname       string        `bson:"fname" json:"fname"`
	Lname       string        `bson:"lname" json:"lname"`
	Email       string        `bson:"email" json:"email"`
	Phone       string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Password    string        `bson:"password" json:"-"`
	CreditScore int           `bson:"creditScore" json:"creditScore"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// DefaultCreditScore is granted on registration.
const DefaultCreditScore = 500
