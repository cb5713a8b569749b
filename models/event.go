package models

import "time"

// Event is a client analytics event (page view, add-to-cart, purchase...).
type Event struct {
	UserID    string                 `json:"userId,omitempty" bson:"userId,omitempty"`
	Name      string                 `json:"name" bson:"name"`
	Data      map[string]interface{} `json:"data,omitempty" bson:"data,omitempty"`
	Timestamp time.Time              `json:"timestamp" bson:"timestamp"`
}
