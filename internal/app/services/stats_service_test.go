package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"studyhub/internal/app/models"
)

func TestStatsService_SystemStats(t *testing.T) {
	userRepo := newFakeUserRepo()
	questionRepo := newFakeQuestionRepo()
	progressRepo := newFakeProgressRepo(questionRepo)
	service := NewStatsService(userRepo, questionRepo, progressRepo)
	ctx := context.Background()

	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return today.Add(14 * time.Hour) }

	require.NoError(t, userRepo.Create(ctx, &models.User{Username: "admin", Role: models.RoleAdmin}))
	require.NoError(t, userRepo.Create(ctx, &models.User{Username: "alice", Role: models.RoleStudent}))
	require.NoError(t, userRepo.Create(ctx, &models.User{Username: "bob", Role: models.RoleStudent}))

	questionRepo.add("数学", "1+1=?", `{"A":"1","B":"2"}`, "B")
	questionRepo.add("物理", "光速？", `{"A":"3×10⁵ km/s"}`, "A")

	// alice active today, bob active yesterday
	require.NoError(t, progressRepo.RecordSubmission(ctx, 2, 1, false, today))
	require.NoError(t, progressRepo.RecordSubmission(ctx, 3, 1, false, today.AddDate(0, 0, -1)))

	stats, err := service.SystemStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalStudents)
	assert.Equal(t, int64(2), stats.TotalQuestions)
	assert.Equal(t, int64(1), stats.DailyActive)
}

func TestStatsService_SystemStatsEmpty(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	service := NewStatsService(newFakeUserRepo(), questionRepo, newFakeProgressRepo(questionRepo))

	stats, err := service.SystemStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalStudents)
	assert.Zero(t, stats.TotalQuestions)
	assert.Zero(t, stats.DailyActive)
}
