package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// GalleryImage is the metadata record for a carousel image; the bytes
// themselves live in the storage bucket under ObjectName.
type GalleryImage struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Caption    string        `bson:"caption" json:"caption"`
	Slug       string        `bson:"slug" json:"slug"`
	ImageURL   string        `bson:"imageUrl" json:"imageUrl"`
	ObjectName string        `bson:"objectName" json:"-"`
	MimeType   string        `bson:"mimeType" json:"mimeType"`
	SizeBytes  int64         `bson:"sizeBytes" json:"sizeBytes"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}
