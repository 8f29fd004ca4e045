package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStudent Role = "STUDENT"
)

type Admin struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName    string        `bson:"firstName" json:"firstName"`
	LastName     string        `bson:"lastName" json:"lastName"`
	Email        string        `bson:"email" json:"email"`
	AdminID      string        `bson:"adminId" json:"adminId"`
	PasswordHash string        `bson:"passwordHash" json:"-"` // never expose
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
}
