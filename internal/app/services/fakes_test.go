package services

import (
	"context"
	"fmt"
	"time"

	"studyhub/internal/app/models"
	"studyhub/internal/pkg/apperrors"
)

// In-memory repository fakes used across the service tests.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, user := range r.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, userID int64, grade, avatar *string, hashedPassword string) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Grade = grade
	user.Avatar = avatar
	if hashedPassword != "" {
		user.Password = hashedPassword
	}
	user.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role models.RoleType) (int64, error) {
	var count int64
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

type fakeCourseRepo struct {
	courses []models.Course
	nextID  int64
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{}
}

func (r *fakeCourseRepo) ListBySubject(_ context.Context, subject string) ([]models.Course, error) {
	matches := make([]models.Course, 0)
	for _, course := range r.courses {
		if course.Subject == subject {
			matches = append(matches, course)
		}
	}
	return matches, nil
}

func (r *fakeCourseRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.courses)), nil
}

func (r *fakeCourseRepo) CreateBatch(_ context.Context, courses []models.Course) error {
	for _, course := range courses {
		r.nextID++
		course.ID = r.nextID
		r.courses = append(r.courses, course)
	}
	return nil
}

type fakeQuestionRepo struct {
	questions map[int64]*models.Question
	nextID    int64
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[int64]*models.Question)}
}

func (r *fakeQuestionRepo) GetByID(_ context.Context, id int64) (*models.Question, error) {
	question, ok := r.questions[id]
	if !ok {
		return nil, apperrors.ErrQuestionNotFound
	}
	copied := *question
	return &copied, nil
}

func (r *fakeQuestionRepo) ListBySubject(_ context.Context, subject string) ([]models.Question, error) {
	matches := make([]models.Question, 0)
	for id := int64(1); id <= r.nextID; id++ {
		if question, ok := r.questions[id]; ok && question.Subject == subject {
			matches = append(matches, *question)
		}
	}
	return matches, nil
}

func (r *fakeQuestionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.questions)), nil
}

func (r *fakeQuestionRepo) CreateBatch(_ context.Context, questions []models.Question) error {
	for _, question := range questions {
		r.nextID++
		question.ID = r.nextID
		stored := question
		r.questions[question.ID] = &stored
	}
	return nil
}

func (r *fakeQuestionRepo) add(subject, content, options, answer string) *models.Question {
	r.nextID++
	question := &models.Question{
		ID:      r.nextID,
		Subject: subject,
		Content: content,
		Options: options,
		Answer:  answer,
	}
	r.questions[question.ID] = question
	return question
}

type fakeProgressRepo struct {
	questions *fakeQuestionRepo
	wrong     []models.WrongQuestion
	records   map[string]*models.StudyRecord
	nextID    int64
	failWith  error
}

func newFakeProgressRepo(questions *fakeQuestionRepo) *fakeProgressRepo {
	return &fakeProgressRepo{
		questions: questions,
		records:   make(map[string]*models.StudyRecord),
	}
}

func recordKey(userID int64, day time.Time) string {
	return fmt.Sprintf("%d|%s", userID, day.Format("2006-01-02"))
}

func (r *fakeProgressRepo) RecordSubmission(_ context.Context, userID, questionID int64, wrong bool, day time.Time) error {
	if r.failWith != nil {
		// Atomic: nothing is applied on failure
		return r.failWith
	}

	if wrong {
		r.nextID++
		r.wrong = append(r.wrong, models.WrongQuestion{
			ID:         r.nextID,
			UserID:     userID,
			QuestionID: questionID,
			CreatedAt:  day,
		})
	}

	key := recordKey(userID, day)
	if record, ok := r.records[key]; ok {
		record.Count++
	} else {
		r.nextID++
		r.records[key] = &models.StudyRecord{
			ID:     r.nextID,
			UserID: userID,
			Date:   day,
			Count:  1,
		}
	}
	return nil
}

func (r *fakeProgressRepo) ListStudyRecords(_ context.Context, userID int64) ([]models.StudyRecord, error) {
	records := make([]models.StudyRecord, 0)
	for _, record := range r.records {
		if record.UserID == userID {
			records = append(records, *record)
		}
	}
	return records, nil
}

func (r *fakeProgressRepo) ListWrongQuestions(ctx context.Context, userID int64) ([]models.Question, error) {
	questions := make([]models.Question, 0)
	for _, entry := range r.wrong {
		if entry.UserID != userID {
			continue
		}
		question, err := r.questions.GetByID(ctx, entry.QuestionID)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *question)
	}
	return questions, nil
}

func (r *fakeProgressRepo) CountActiveUsers(_ context.Context, day time.Time) (int64, error) {
	var count int64
	for _, record := range r.records {
		if record.Date.Format("2006-01-02") == day.Format("2006-01-02") {
			count++
		}
	}
	return count, nil
}
