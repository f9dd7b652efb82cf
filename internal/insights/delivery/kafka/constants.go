package kafka

// Producer topic.
const (
	TopicSyncEvents = "metaads.sync.events"
)

// Event types carried on the sync events topic.
const (
	EventTypeSyncCompleted = "sync.completed"
	EventTypeSyncFailed    = "sync.failed"
)
