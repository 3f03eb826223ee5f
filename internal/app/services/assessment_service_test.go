package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"studyhub/internal/app/models/dto"
	"studyhub/internal/pkg/apperrors"
)

func newTestAssessmentService() (*AssessmentService, *fakeQuestionRepo, *fakeProgressRepo) {
	questionRepo := newFakeQuestionRepo()
	progressRepo := newFakeProgressRepo(questionRepo)
	service := NewAssessmentService(questionRepo, progressRepo, zerolog.Nop())
	return service, questionRepo, progressRepo
}

func TestAssessmentService_CorrectAnswerWithWhitespace(t *testing.T) {
	service, questionRepo, progressRepo := newTestAssessmentService()
	ctx := context.Background()

	question := questionRepo.add("数学", "1+1=?", `{"A":"1","B":"2"}`, "42")

	resp, err := service.SubmitAnswer(ctx, 1, &dto.SubmitAnswerRequest{
		QuestionID: question.ID,
		UserAnswer: " 42 ",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsCorrect)
	assert.Equal(t, "42", resp.CorrectAnswer)

	// No wrong-answer row, but the day still counts
	assert.Empty(t, progressRepo.wrong)
	records, err := progressRepo.ListStudyRecords(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].Count)
}

func TestAssessmentService_CaseSensitiveGrading(t *testing.T) {
	service, questionRepo, _ := newTestAssessmentService()
	ctx := context.Background()

	question := questionRepo.add("英语", "choose", `{"A":"go"}`, "A")

	resp, err := service.SubmitAnswer(ctx, 1, &dto.SubmitAnswerRequest{
		QuestionID: question.ID,
		UserAnswer: "a",
	})
	require.NoError(t, err)
	assert.False(t, resp.IsCorrect)
}

func TestAssessmentService_WrongAnswerTwiceAppendsTwice(t *testing.T) {
	service, questionRepo, progressRepo := newTestAssessmentService()
	ctx := context.Background()

	question := questionRepo.add("物理", "光速？", `{"A":"3×10⁵ km/s"}`, "A")

	for i := 0; i < 2; i++ {
		resp, err := service.SubmitAnswer(ctx, 7, &dto.SubmitAnswerRequest{
			QuestionID: question.ID,
			UserAnswer: "B",
		})
		require.NoError(t, err)
		assert.False(t, resp.IsCorrect)
	}

	// The wrong-answer log is append-only and never deduplicated
	require.Len(t, progressRepo.wrong, 2)
	assert.Equal(t, question.ID, progressRepo.wrong[0].QuestionID)
	assert.Equal(t, question.ID, progressRepo.wrong[1].QuestionID)
}

func TestAssessmentService_SameDaySubmissionsShareOneRecord(t *testing.T) {
	service, questionRepo, progressRepo := newTestAssessmentService()
	ctx := context.Background()

	question := questionRepo.add("数学", "1+1=?", `{"A":"1","B":"2"}`, "B")

	fixed := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	_, err := service.SubmitAnswer(ctx, 3, &dto.SubmitAnswerRequest{QuestionID: question.ID, UserAnswer: "B"})
	require.NoError(t, err)

	// Later the same day
	service.now = func() time.Time { return fixed.Add(5 * time.Hour) }
	_, err = service.SubmitAnswer(ctx, 3, &dto.SubmitAnswerRequest{QuestionID: question.ID, UserAnswer: "A"})
	require.NoError(t, err)

	records, err := progressRepo.ListStudyRecords(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].Count)
	assert.Equal(t, "2026-08-28", records[0].Date.Format("2006-01-02"))
}

func TestAssessmentService_UnknownQuestion(t *testing.T) {
	service, _, progressRepo := newTestAssessmentService()

	_, err := service.SubmitAnswer(context.Background(), 1, &dto.SubmitAnswerRequest{
		QuestionID: 999,
		UserAnswer: "A",
	})
	assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)

	// No side effects on a missing question
	assert.Empty(t, progressRepo.wrong)
	assert.Empty(t, progressRepo.records)
}

func TestAssessmentService_RecordFailurePropagates(t *testing.T) {
	service, questionRepo, progressRepo := newTestAssessmentService()

	question := questionRepo.add("数学", "1+1=?", `{"A":"1","B":"2"}`, "B")
	progressRepo.failWith = errors.New("store unavailable")

	_, err := service.SubmitAnswer(context.Background(), 1, &dto.SubmitAnswerRequest{
		QuestionID: question.ID,
		UserAnswer: "A",
	})
	require.Error(t, err)

	// The transaction failed as a unit
	assert.Empty(t, progressRepo.wrong)
	assert.Empty(t, progressRepo.records)
}
