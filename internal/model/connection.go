package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedConnection associates a connection string with the account that
// saved it. Records are immutable once created except for deletion.
//
// Uniqueness is enforced per owner on the trimmed connection string by a
// unique compound index; labels are optional display names only.
type SavedConnection struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID          string             `json:"-" bson:"owner_id"`
	Label            string             `json:"label,omitempty" bson:"label,omitempty"`
	ConnectionString string             `json:"connection_string" bson:"connection_string"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
}
