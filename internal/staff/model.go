package staff

// Server is a member of the floor staff that customers can name in a review.
type Server struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
