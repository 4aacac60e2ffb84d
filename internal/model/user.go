package model

import "time"

// User is a registered account
type User struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Username       string    `json:"username" bson:"username"`
	Email          string    `json:"email" bson:"email"`
	HashedPassword string    `json:"-" bson:"hashedPassword"`
	FullName       string    `json:"fullName,omitempty" bson:"fullName,omitempty"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}
