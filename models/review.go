package models

import "time"

type Review struct {
	ReviewID   string    `json:"reviewid" bson:"reviewid"`
	EntityType string    `json:"entity_type" bson:"entity_type"` // golf, hotel, restaurant, experience
	EntityID   string    `json:"entity_id" bson:"entity_id"`
	UserID     string    `json:"userid" bson:"userid"`
	Rating     int       `json:"rating" bson:"rating"` // 1..5
	Content    string    `json:"content" bson:"content"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
