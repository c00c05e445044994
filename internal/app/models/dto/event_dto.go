package dto

// EventRequest creates or replaces an event. Times are epoch seconds.
type EventRequest struct {
	Name      string `json:"name" binding:"required,max=200"`
	StartTime int64  `json:"start_time" binding:"required"`
	EndTime   int64  `json:"end_time" binding:"required"`
}

// OwnerRequest names an event organiser
type OwnerRequest struct {
	EventID int64 `json:"event_id" binding:"required,gt=0"`
	UserID  int64 `json:"user_id" binding:"required,gt=0"`
}
