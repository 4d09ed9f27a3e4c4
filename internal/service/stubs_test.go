package service

import (
	"context"
	"errors"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a function-field stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn    func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	createFn     func(ctx context.Context, user *models.User) error
	updateFn     func(ctx context.Context, user *models.User) error
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		updateFn:     func(_ context.Context, _ *models.User) error { return nil },
	}
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

// profileRepoStub is a function-field stub for repository.ProfileRepository.
type profileRepoStub struct {
	getByUserIDFn      func(ctx context.Context, userID uint) (*models.Profile, error)
	listFn             func(ctx context.Context) ([]models.Profile, error)
	upsertFn           func(ctx context.Context, profile *models.Profile) error
	addExperienceFn    func(ctx context.Context, userID uint, exp *models.Experience) (*models.Profile, error)
	deleteExperienceFn func(ctx context.Context, userID, expID uint) (*models.Profile, error)
	addEducationFn     func(ctx context.Context, userID uint, edu *models.Education) (*models.Profile, error)
	deleteEducationFn  func(ctx context.Context, userID, eduID uint) (*models.Profile, error)
	deleteCascadeFn    func(ctx context.Context, userID uint) error
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByUserIDFn: func(_ context.Context, userID uint) (*models.Profile, error) {
			return &models.Profile{UserID: userID}, nil
		},
		listFn:   func(_ context.Context) ([]models.Profile, error) { return nil, nil },
		upsertFn: func(_ context.Context, _ *models.Profile) error { return nil },
		addExperienceFn: func(_ context.Context, userID uint, _ *models.Experience) (*models.Profile, error) {
			return &models.Profile{UserID: userID}, nil
		},
		deleteExperienceFn: func(_ context.Context, userID, _ uint) (*models.Profile, error) {
			return &models.Profile{UserID: userID}, nil
		},
		addEducationFn: func(_ context.Context, userID uint, _ *models.Education) (*models.Profile, error) {
			return &models.Profile{UserID: userID}, nil
		},
		deleteEducationFn: func(_ context.Context, userID, _ uint) (*models.Profile, error) {
			return &models.Profile{UserID: userID}, nil
		},
		deleteCascadeFn: func(_ context.Context, _ uint) error { return nil },
	}
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}

func (s *profileRepoStub) List(ctx context.Context) ([]models.Profile, error) {
	return s.listFn(ctx)
}

func (s *profileRepoStub) Upsert(ctx context.Context, profile *models.Profile) error {
	return s.upsertFn(ctx, profile)
}

func (s *profileRepoStub) AddExperience(ctx context.Context, userID uint, exp *models.Experience) (*models.Profile, error) {
	return s.addExperienceFn(ctx, userID, exp)
}

func (s *profileRepoStub) DeleteExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	return s.deleteExperienceFn(ctx, userID, expID)
}

func (s *profileRepoStub) AddEducation(ctx context.Context, userID uint, edu *models.Education) (*models.Profile, error) {
	return s.addEducationFn(ctx, userID, edu)
}

func (s *profileRepoStub) DeleteEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	return s.deleteEducationFn(ctx, userID, eduID)
}

func (s *profileRepoStub) DeleteCascade(ctx context.Context, userID uint) error {
	return s.deleteCascadeFn(ctx, userID)
}

// postRepoStub is a function-field stub for repository.PostRepository.
type postRepoStub struct {
	createFn        func(ctx context.Context, post *models.Post) error
	getByIDFn       func(ctx context.Context, id uint) (*models.Post, error)
	listFn          func(ctx context.Context, limit, offset int) ([]models.Post, error)
	deleteFn        func(ctx context.Context, id uint) error
	likeFn          func(ctx context.Context, userID, postID uint) error
	unlikeFn        func(ctx context.Context, userID, postID uint) error
	addCommentFn    func(ctx context.Context, comment *models.Comment) error
	getCommentFn    func(ctx context.Context, postID, commentID uint) (*models.Comment, error)
	deleteCommentFn func(ctx context.Context, postID, commentID uint) error
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		listFn:       func(_ context.Context, _, _ int) ([]models.Post, error) { return nil, nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
		likeFn:       func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn:     func(_ context.Context, _, _ uint) error { return nil },
		addCommentFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getCommentFn: func(_ context.Context, _, commentID uint) (*models.Comment, error) {
			return &models.Comment{ID: commentID}, nil
		},
		deleteCommentFn: func(_ context.Context, _, _ uint) error { return nil },
	}
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}

func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}

func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}

func (s *postRepoStub) AddComment(ctx context.Context, comment *models.Comment) error {
	return s.addCommentFn(ctx, comment)
}

func (s *postRepoStub) GetComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	return s.getCommentFn(ctx, postID, commentID)
}

func (s *postRepoStub) DeleteComment(ctx context.Context, postID, commentID uint) error {
	return s.deleteCommentFn(ctx, postID, commentID)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, code, appErr.Code)
}
