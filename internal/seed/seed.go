// Package seed populates an empty store at startup: the default admin
// account, the course catalog and the question bank. Every step is guarded
// by an existence check and failures never prevent the service from
// starting.
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"studyhub/internal/app/models"
	"studyhub/internal/app/repositories"
	"studyhub/internal/config"
	"studyhub/internal/pkg/auth"
)

// Default admin credentials, created only when no admin user exists yet
const (
	AdminUsername = "admin"
	AdminPassword = "admin123"
)

// defaultCourses is the fixed course catalog
var defaultCourses = []models.Course{
	{Title: "中考数学复习全集", Subject: "数学", VideoURL: "https://player.bilibili.com/player.html?bvid=BV1qE411H7Uv"},
	{Title: "分子动理论", Subject: "物理", VideoURL: "https://player.bilibili.com/player.html?bvid=BV1Mb421n7nB"},
	{Title: "初中化学公开课", Subject: "化学", VideoURL: "https://player.bilibili.com/player.html?bvid=BV1wb411x78e"},
	{Title: "七年级地理上册", Subject: "地理", VideoURL: "https://player.bilibili.com/player.html?bvid=BV1ni4y1u7qn"},
	{Title: "初中生物基础课", Subject: "生物", VideoURL: "https://player.bilibili.com/player.html?bvid=BV1n94y1g7XG"},
	{Title: "零基础英语拯救计划", Subject: "英语", VideoURL: "https://player.bilibili.com/player.html?bvid=BV1wt411G7QY"},
	{Title: "七年级道法名师课", Subject: "道法", VideoURL: "https://player.bilibili.com/player.html?bvid=BV1K4KyzNEVJ"},
	{Title: "初中语文全题型讲解", Subject: "语文", VideoURL: "https://player.bilibili.com/player.html?bvid=BV1jc411c7CS"},
}

// CreateDefaultData runs the three independent seeding steps. Errors are
// collected and returned for logging but the caller is expected to proceed
// regardless.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, cfg *config.Config, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	if err := seedAdmin(ctx, repos.UserRepository, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin")
		finalErr = errors.Join(finalErr, err)
	}

	if err := seedCourses(ctx, repos.CourseRepository, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error seeding course catalog")
		finalErr = errors.Join(finalErr, err)
	}

	if err := seedQuestions(ctx, repos.QuestionRepository, cfg.Seed.QuestionBankPath, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error importing question bank")
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// seedAdmin creates the well-known admin account if it does not exist
func seedAdmin(ctx context.Context, userRepo repositories.IUserRepository, lgr zerolog.Logger) error {
	exists, err := userRepo.UsernameExists(ctx, AdminUsername)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: AdminUsername,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	lgr.Info().Str("username", AdminUsername).Msg("Default admin account created")
	return nil
}

// seedCourses bulk-inserts the catalog into an empty courses table
func seedCourses(ctx context.Context, courseRepo repositories.ICourseRepository, lgr zerolog.Logger) error {
	count, err := courseRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := courseRepo.CreateBatch(ctx, defaultCourses); err != nil {
		return err
	}

	lgr.Info().Int("courses", len(defaultCourses)).Msg("Course catalog seeded")
	return nil
}

// seedQuestions imports the external question bank into an empty questions
// table and reports how many rows were inserted.
func seedQuestions(ctx context.Context, questionRepo repositories.IQuestionRepository, bankPath string, lgr zerolog.Logger) error {
	count, err := questionRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	questions, err := LoadQuestionBank(bankPath)
	if err != nil {
		return err
	}

	if err := questionRepo.CreateBatch(ctx, questions); err != nil {
		return err
	}

	lgr.Info().Int("questions", len(questions)).Str("path", bankPath).Msg("Question bank imported")
	return nil
}
