package models

import "time"

// EventType names a domain event published to the event stream.
type EventType string

const (
	EventUserRegistered    EventType = "user.registered"
	EventCourseCreated     EventType = "course.created"
	EventEnrollmentCreated EventType = "enrollment.created"
	EventEnrollmentDeleted EventType = "enrollment.deleted"
	EventPostCreated       EventType = "post.created"
)

// Event is a change in the platform published for downstream consumers.
type Event struct {
	Type       EventType `json:"type"`        // Type identifies what happened.
	EntityID   int64     `json:"entity_id"`   // EntityID is the id of the created or deleted row.
	UserID     int64     `json:"user_id"`     // UserID is the acting user, zero for anonymous requests.
	OccurredAt time.Time `json:"occurred_at"` // OccurredAt is when the change was committed.
}
