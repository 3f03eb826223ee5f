package dto

// SystemStats summarizes platform activity for administrators
type SystemStats struct {
	TotalStudents  int64 `json:"total_students"`
	TotalQuestions int64 `json:"total_questions"`
	DailyActive    int64 `json:"daily_active"`
}
