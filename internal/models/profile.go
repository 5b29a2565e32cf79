package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Availability describes when a user is free for swap sessions.
type Availability string

const (
	AvailabilityWeekends Availability = "Weekends"
	AvailabilityEvenings Availability = "Evenings"
	AvailabilityWeekdays Availability = "Weekdays"
	AvailabilityFlexible Availability = "Flexible"
)

// SkillProfile is a user's public skill listing, stored as a MongoDB document.
// The matching and swap flows only ever read these; writes happen through the
// profile endpoints.
type SkillProfile struct {
	ID            primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID        uint               `json:"user_id" bson:"user_id"`
	SkillsOffered []string           `json:"skills_offered" bson:"skills_offered"`
	SkillsWanted  []string           `json:"skills_wanted" bson:"skills_wanted"`
	Availability  Availability       `json:"availability" bson:"availability"`
	Rating        float64            `json:"rating" bson:"rating"`
	Visibility    bool               `json:"visibility" bson:"visibility"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// UpdateProfileRequest defines the request body for creating/updating the
// authenticated user's skill profile
type UpdateProfileRequest struct {
	SkillsOffered []string `json:"skills_offered" validate:"required,max=20,dive,min=1,max=60"`
	SkillsWanted  []string `json:"skills_wanted" validate:"required,max=20,dive,min=1,max=60"`
	Availability  string   `json:"availability" validate:"required,oneof=Weekends Evenings Weekdays Flexible"`
	Visibility    *bool    `json:"visibility" validate:"required"`
}
