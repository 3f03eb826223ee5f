package models

// Course defines a catalog entry based on the 'courses' table.
// The catalog is flat and seeded once; there are no update endpoints.
type Course struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	Title    string `json:"title" db:"title" example:"中考数学复习全集"`
	Subject  string `json:"subject" db:"subject" example:"数学"`
	VideoURL string `json:"video_url" db:"video_url"`
}
