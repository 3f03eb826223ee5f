package models

// Question defines a quiz question based on the 'questions' table.
// Options holds the choice-label to text mapping serialized as JSON,
// exactly as imported from the question bank.
type Question struct {
	ID      int64  `json:"id" db:"id" example:"1"`
	Subject string `json:"subject" db:"subject" example:"数学"`
	Content string `json:"content" db:"content"`
	Options string `json:"options" db:"options"`
	Answer  string `json:"answer" db:"answer" example:"B"`
}
