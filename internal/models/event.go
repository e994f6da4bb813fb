package models

// CollectionEvent is published to Kafka whenever a collection entry changes.
type CollectionEvent struct {
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	MovieID   string `json:"movie_id"`
	Action    string `json:"action"` // "created", "updated" or "deleted"
	Timestamp int64  `json:"ts"`
}
