package dto

// SubmitAnswerRequest represents an answer submission
type SubmitAnswerRequest struct {
	QuestionID int64  `json:"question_id" binding:"required,min=1"`
	UserAnswer string `json:"user_answer" binding:"required"`
}

// SubmitAnswerResponse represents the grading result
type SubmitAnswerResponse struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
}
