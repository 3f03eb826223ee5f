package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"studyhub/internal/app/models/dto"
	"studyhub/internal/app/repositories"
)

// AssessmentService grades answer submissions and records their side
// effects: the wrong-answer log and the per-day activity counter.
type AssessmentService struct {
	questionRepo repositories.IQuestionRepository
	progressRepo repositories.IProgressRepository
	logger       zerolog.Logger
	now          func() time.Time
}

// NewAssessmentService creates a new AssessmentService
func NewAssessmentService(questionRepo repositories.IQuestionRepository, progressRepo repositories.IProgressRepository, logger zerolog.Logger) *AssessmentService {
	return &AssessmentService{
		questionRepo: questionRepo,
		progressRepo: progressRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// SubmitAnswer grades a submission against the stored answer. Both sides
// are trimmed of surrounding whitespace and compared case-sensitively.
// The wrong-answer append and the activity upsert commit together.
func (s *AssessmentService) SubmitAnswer(ctx context.Context, userID int64, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	question, err := s.questionRepo.GetByID(ctx, req.QuestionID)
	if err != nil {
		return nil, err
	}

	isCorrect := strings.TrimSpace(req.UserAnswer) == strings.TrimSpace(question.Answer)

	today := dateOnly(s.now())
	if err := s.progressRepo.RecordSubmission(ctx, userID, question.ID, !isCorrect, today); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int64("userID", userID).
		Int64("questionID", question.ID).
		Bool("correct", isCorrect).
		Msg("Answer graded")

	return &dto.SubmitAnswerResponse{
		IsCorrect:     isCorrect,
		CorrectAnswer: question.Answer,
	}, nil
}

// dateOnly strips the time-of-day so DATE columns see a calendar date
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
