package stats

import "time"

type ServerCount struct {
	ServerName  string `json:"server_name"`
	ReviewCount int    `json:"review_count"`
}

type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type QualitativeCount struct {
	Category string
	ValueCount
}

type DishCount struct {
	DishName     string `json:"dish_name"`
	DishCategory string `json:"dish_category"`
	Count        int    `json:"count"`
}

type Dashboard struct {
	Period               Period        `json:"period"`
	TotalReviews         int           `json:"total_reviews"`
	AverageReviewsPerDay float64       `json:"average_reviews_per_day"`
	Trend                []TrendPoint  `json:"trend"`
	TopServers           []ServerCount `json:"top_servers"`
	NewFeedbackCount     int           `json:"new_feedback_count"`
}

// Snapshot is the content of the append-only tables, archived before a reset.
type Snapshot struct {
	TakenAt             time.Time         `json:"taken_at"`
	GeneratedReviews    []GeneratedReview `json:"generated_reviews"`
	MenuSelections      []MenuSelection   `json:"menu_selections"`
	QualitativeFeedback []QualitativeRow  `json:"qualitative_feedback"`
	InternalFeedback    []FeedbackRow     `json:"internal_feedback"`
}

type GeneratedReview struct {
	ID         int       `json:"id"`
	ServerName string    `json:"server_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type MenuSelection struct {
	ID           int       `json:"id"`
	DishName     string    `json:"dish_name"`
	DishCategory string    `json:"dish_category"`
	SelectedAt   time.Time `json:"selection_timestamp"`
}

type QualitativeRow struct {
	ID        int       `json:"id"`
	Category  string    `json:"category"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

type FeedbackRow struct {
	ID        int       `json:"id"`
	Text      string    `json:"feedback_text"`
	ServerID  *int      `json:"associated_server_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
