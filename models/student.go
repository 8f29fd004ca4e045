package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Student struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName    string        `bson:"firstName" json:"firstName"`
	LastName     string        `bson:"lastName" json:"lastName"`
	Email        string        `bson:"email" json:"email"`
	Course       string        `bson:"course" json:"course"`
	SubField     string        `bson:"subField,omitempty" json:"subField,omitempty"`
	Year         string        `bson:"year" json:"year"`
	RollNumber   string        `bson:"rollNumber" json:"rollNumber"`
	Gender       string        `bson:"gender" json:"gender"`
	PasswordHash string        `bson:"passwordHash" json:"-"` // never expose
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
}
