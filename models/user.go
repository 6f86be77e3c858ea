package models

import "time"

// User is an account identified by email.
// Collection: users
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CompanyName  string    `bson:"company_name" json:"company_name"`
	Role         string    `bson:"role" json:"role"`
	DateJoined   time.Time `bson:"date_joined" json:"date_joined"`
}
