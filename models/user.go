package models

import "time"

// Address is the postal address captured on profiles and at checkout.
type Address struct {
	Name    string `json:"name,omitempty" bson:"name,omitempty"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zipCode" bson:"zipCode"`
	Country string `json:"country" bson:"country"`
}

type User struct {
	UserID        string    `json:"userId" bson:"userid"`
	Email         string    `json:"email" bson:"email"`
	Name          string    `json:"name" bson:"name"`
	Phone         string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address       *Address  `json:"address,omitempty" bson:"address,omitempty"`
	IsAdmin       bool      `json:"isAdmin" bson:"isAdmin"`
	IsVerified    bool      `json:"isVerified" bson:"isVerified"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
	LastLogin     time.Time `json:"-" bson:"last_login,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}
