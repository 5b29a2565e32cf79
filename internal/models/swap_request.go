package models

import "time"

// SwapStatus is the lifecycle state of a swap request.
type SwapStatus string

const (
	SwapStatusPending  SwapStatus = "pending"
	SwapStatusAccepted SwapStatus = "accepted"
	SwapStatusRejected SwapStatus = "rejected"
)

// Terminal reports whether no further transitions are permitted.
func (s SwapStatus) Terminal() bool {
	return s == SwapStatusAccepted || s == SwapStatusRejected
}

// SwapRequest represents a skill swap negotiation between two users.
// SenderID, ReceiverID and the skill snapshots are immutable after creation;
// Status and MeetLink change exactly once, through the swap service.
type SwapRequest struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	SenderID      uint       `json:"sender_id" gorm:"index"`
	ReceiverID    uint       `json:"receiver_id" gorm:"index"`
	SkillsOffered []string   `json:"skills_offered" gorm:"serializer:json"` // snapshot taken at creation
	SkillsWanted  []string   `json:"skills_wanted" gorm:"serializer:json"`
	Message       string     `json:"message,omitempty"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	Status        SwapStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	MeetLink      string     `json:"meet_link,omitempty"` // set exactly once, on acceptance
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CreateSwapRequest defines the request body for sending a swap request
type CreateSwapRequest struct {
	ReceiverID    uint       `json:"receiver_id" validate:"required"`
	SkillsOffered []string   `json:"skills_offered" validate:"required,min=1,max=20,dive,min=1,max=60"`
	SkillsWanted  []string   `json:"skills_wanted" validate:"required,min=1,max=20,dive,min=1,max=60"`
	Message       string     `json:"message,omitempty" validate:"omitempty,max=500"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
}
