package domain

import "time"

// ActivityAction names a lifecycle change on an entry.
type ActivityAction string

const (
	ActivityCreated ActivityAction = "created"
	ActivityUpdated ActivityAction = "updated"
	ActivityDeleted ActivityAction = "deleted"
)

// EntryActivity is an audit record of a successful write.
type EntryActivity struct {
	EntryID string         `json:"entry_id" bson:"entry_id"`
	OwnerID string         `json:"user_id" bson:"user_id"`
	Action  ActivityAction `json:"action" bson:"action"`
	At      time.Time      `json:"at" bson:"at"`
}
