// Package model contains the persistence representations of the domain entities.
package model

import (
	"time"
)

// UserDocument is the BSON shape of a user record in the "users" collection.
// The UUID primary key is stored in its canonical string form; email carries
// a unique index (see mongo.New).
type UserDocument struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"passwordHash"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}
