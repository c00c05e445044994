package models

// Event is a hackathon. Start and end are epoch seconds.
type Event struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	StartTime int64  `json:"start_time" db:"start_time"`
	EndTime   int64  `json:"end_time" db:"end_time"`
}

// Owner marks a user as organiser of an event.
type Owner struct {
	ID      int64 `json:"id" db:"id"`
	EventID int64 `json:"event_id" db:"event_id"`
	UserID  int64 `json:"user_id" db:"user_id"`
}
