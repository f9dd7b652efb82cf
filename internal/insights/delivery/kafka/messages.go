package kafka

import "time"

// SyncEventMessage is the wire format on the sync events topic.
// Messages are keyed by account ID so one account stays in order.
type SyncEventMessage struct {
	EventType    string    `json:"event_type"`
	RunID        string    `json:"run_id"`
	AccountID    string    `json:"account_id"`
	Status       string    `json:"status"`
	RowsLoaded   int       `json:"rows_loaded"`
	PagesFetched int       `json:"pages_fetched"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CompletedAt  time.Time `json:"completed_at"`
}
