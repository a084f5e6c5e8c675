package domain

import "time"

// ActivityAction identifies the kind of post mutation recorded in the audit trail.
type ActivityAction string

const (
	ActivityCreated ActivityAction = "created"
	ActivityEdited  ActivityAction = "edited"
	ActivityDeleted ActivityAction = "deleted"
)

// Activity is a single audit-trail entry written asynchronously after a post
// mutation.
type Activity struct {
	Action    ActivityAction `json:"action" bson:"action"`
	PostID    string         `json:"post_id" bson:"post_id"`
	ActorID   string         `json:"actor_id" bson:"actor_id"`
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
}
