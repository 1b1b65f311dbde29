package feedback

import "time"

type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusArchived Status = "archived"
)

// UnassignedServer is shown when a feedback row has no resolvable server.
const UnassignedServer = "Non attribué"

func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusRead, StatusArchived:
		return true
	}
	return false
}

// Entry is a private note left by a customer, joined with the server it
// mentions.
type Entry struct {
	ID           int       `json:"id"`
	FeedbackText string    `json:"feedback_text"`
	ServerName   string    `json:"server_name"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Filter narrows a listing. Zero values match everything.
type Filter struct {
	Status Status
	Search string
}
