package models

// Rating is a user review attached to a tour. Stars 1..5.
type Rating struct {
	ID        int64  `json:"id"`
	TourID    int64  `json:"tourId"`
	UserID    int64  `json:"userId"`
	UserName  string `json:"userName,omitempty"`
	Stars     int    `json:"stars"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}
