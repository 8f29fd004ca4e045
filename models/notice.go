package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Notice struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Message   string        `bson:"message" json:"message"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
