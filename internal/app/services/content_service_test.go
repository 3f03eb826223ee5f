package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"studyhub/internal/app/models"
)

func TestContentService_ListCoursesBySubject(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	service := NewContentService(courseRepo, newFakeQuestionRepo())
	ctx := context.Background()

	require.NoError(t, courseRepo.CreateBatch(ctx, []models.Course{
		{Subject: "数学", Title: "初中数学", VideoURL: "https://example.com/math"},
		{Subject: "物理", Title: "初中物理", VideoURL: "https://example.com/physics"},
		{Subject: "数学", Title: "代数专题", VideoURL: "https://example.com/algebra"},
	}))

	courses, err := service.ListCourses(ctx, "数学")
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "初中数学", courses[0].Title)
	assert.Equal(t, "代数专题", courses[1].Title)
}

func TestContentService_UnknownSubjectIsEmptyNotError(t *testing.T) {
	service := NewContentService(newFakeCourseRepo(), newFakeQuestionRepo())

	courses, err := service.ListCourses(context.Background(), "历史")
	require.NoError(t, err)
	assert.Empty(t, courses)

	questions, err := service.ListQuestions(context.Background(), "历史")
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestContentService_ListQuestionsBySubject(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	service := NewContentService(newFakeCourseRepo(), questionRepo)

	questionRepo.add("数学", "1+1=?", `{"A":"1","B":"2"}`, "B")
	questionRepo.add("英语", "choose", `{"A":"go"}`, "A")
	questionRepo.add("数学", "2×3=?", `{"A":"5","B":"6"}`, "B")

	questions, err := service.ListQuestions(context.Background(), "数学")
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "1+1=?", questions[0].Content)
	assert.Equal(t, "2×3=?", questions[1].Content)
}
