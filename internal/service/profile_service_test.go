package service

import (
	"context"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForceHTTPS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"example.com", "https://example.com"},
		{"http://example.com", "https://example.com"},
		{"https://example.com", "https://example.com"},
		{"  example.com  ", "https://example.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, forceHTTPS(tt.in))
	}
}

func TestSplitSkills(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Go", "SQL", "Docker"}, splitSkills("Go, SQL ,Docker"))
	assert.Equal(t, []string{"Go"}, splitSkills("Go,,  ,"))
	assert.Empty(t, splitSkills("  ,  "))
}

func TestProfileService_UpsertProfile(t *testing.T) {
	t.Parallel()

	t.Run("normalizes links and skills", func(t *testing.T) {
		t.Parallel()
		repo := noopProfileRepo()
		var saved *models.Profile
		repo.upsertFn = func(_ context.Context, p *models.Profile) error {
			saved = p
			return nil
		}
		svc := NewProfileService(repo)

		_, err := svc.UpsertProfile(context.Background(), UpsertProfileInput{
			UserID:  1,
			Status:  "Developer",
			Skills:  "Go, SQL",
			Website: "example.dev",
			Twitter: "http://twitter.com/jane",
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, []string{"Go", "SQL"}, saved.Skills)
		assert.Equal(t, "https://example.dev", saved.Website)
		assert.Equal(t, "https://twitter.com/jane", saved.Social.Twitter)
	})

	t.Run("status required", func(t *testing.T) {
		t.Parallel()
		svc := NewProfileService(noopProfileRepo())
		_, err := svc.UpsertProfile(context.Background(), UpsertProfileInput{
			UserID: 1,
			Skills: "Go",
		})
		assertValidationError(t, err)
	})

	t.Run("skills required", func(t *testing.T) {
		t.Parallel()
		svc := NewProfileService(noopProfileRepo())
		_, err := svc.UpsertProfile(context.Background(), UpsertProfileInput{
			UserID: 1,
			Status: "Developer",
			Skills: " , ",
		})
		assertValidationError(t, err)
	})
}

func TestProfileService_CreateProfile(t *testing.T) {
	t.Parallel()

	t.Run("rejects when a profile exists", func(t *testing.T) {
		t.Parallel()
		svc := NewProfileService(noopProfileRepo())
		_, err := svc.CreateProfile(context.Background(), UpsertProfileInput{
			UserID: 1,
			Status: "Developer",
			Skills: "Go",
		})
		assertErrorCode(t, err, models.CodeAlreadyExists)
	})

	t.Run("creates when absent", func(t *testing.T) {
		t.Parallel()
		repo := noopProfileRepo()
		created := false
		repo.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
			if created {
				return &models.Profile{UserID: userID, Status: "Developer"}, nil
			}
			return nil, models.NewNotFoundError("Profile", userID)
		}
		repo.upsertFn = func(_ context.Context, _ *models.Profile) error {
			created = true
			return nil
		}
		svc := NewProfileService(repo)

		profile, err := svc.CreateProfile(context.Background(), UpsertProfileInput{
			UserID: 1,
			Status: "Developer",
			Skills: "Go",
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "Developer", profile.Status)
	})
}

func TestProfileService_AddExperience_Validation(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(noopProfileRepo())

	_, err := svc.AddExperience(context.Background(), ExperienceInput{
		UserID:  1,
		Company: "Acme",
		From:    "2020-01-01",
	})
	assertValidationError(t, err)

	_, err = svc.AddExperience(context.Background(), ExperienceInput{
		UserID: 1,
		Title:  "Engineer",
		From:   "2020-01-01",
	})
	assertValidationError(t, err)

	_, err = svc.AddExperience(context.Background(), ExperienceInput{
		UserID:  1,
		Title:   "Engineer",
		Company: "Acme",
	})
	assertValidationError(t, err)
}

func TestProfileService_AddEducation_Validation(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(noopProfileRepo())

	_, err := svc.AddEducation(context.Background(), EducationInput{
		UserID:       1,
		Degree:       "BSc",
		FieldOfStudy: "CS",
		From:         "2015-09-01",
	})
	assertValidationError(t, err)
}

func TestProfileService_DeleteAccount(t *testing.T) {
	t.Parallel()

	repo := noopProfileRepo()
	var deleted uint
	repo.deleteCascadeFn = func(_ context.Context, userID uint) error {
		deleted = userID
		return nil
	}
	svc := NewProfileService(repo)

	require.NoError(t, svc.DeleteAccount(context.Background(), 7))
	assert.Equal(t, uint(7), deleted)
}
