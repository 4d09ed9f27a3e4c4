package service

import (
	"context"
	"errors"
	"strings"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// ProfileService handles developer profile management.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// UpsertProfileInput carries the fields for creating or replacing the
// caller's profile. Skills is a comma-separated list.
type UpsertProfileInput struct {
	UserID         uint
	Company        string
	Website        string
	Location       string
	Status         string
	Skills         string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Instagram      string
	Linkedin       string
	Facebook       string
}

// ExperienceInput carries the fields for a work history entry.
type ExperienceInput struct {
	UserID      uint
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// EducationInput carries the fields for a schooling entry.
type EducationInput struct {
	UserID       uint
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// forceHTTPS normalizes a user-supplied link to an absolute https:// URL.
// Empty input stays empty.
func forceHTTPS(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "https://") {
		return url
	}
	if strings.HasPrefix(url, "http://") {
		return "https://" + strings.TrimPrefix(url, "http://")
	}
	return "https://" + url
}

// splitSkills turns a comma-separated list into trimmed entries, dropping
// empties.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// GetProfile returns the profile belonging to the given user.
func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// ListProfiles returns all profiles with their owning users.
func (s *ProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// CreateProfile creates a profile for a user that does not yet have one.
// Fails with an already-exists error otherwise.
func (s *ProfileService) CreateProfile(ctx context.Context, in UpsertProfileInput) (*models.Profile, error) {
	existing, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		var appErr *models.AppError
		if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
			return nil, err
		}
	}
	if existing != nil {
		return nil, models.NewAlreadyExistsError("Profile")
	}
	return s.UpsertProfile(ctx, in)
}

// UpsertProfile creates the caller's profile or replaces its fields.
func (s *ProfileService) UpsertProfile(ctx context.Context, in UpsertProfileInput) (*models.Profile, error) {
	if strings.TrimSpace(in.Status) == "" {
		return nil, models.NewValidationError("Status is required")
	}
	skills := splitSkills(in.Skills)
	if len(skills) == 0 {
		return nil, models.NewValidationError("Skills is required")
	}

	profile := &models.Profile{
		UserID:         in.UserID,
		Company:        in.Company,
		Website:        forceHTTPS(in.Website),
		Location:       in.Location,
		Status:         strings.TrimSpace(in.Status),
		Bio:            in.Bio,
		GithubUsername: in.GithubUsername,
		Skills:         skills,
		Social: models.Social{
			Youtube:   forceHTTPS(in.Youtube),
			Twitter:   forceHTTPS(in.Twitter),
			Instagram: forceHTTPS(in.Instagram),
			Linkedin:  forceHTTPS(in.Linkedin),
			Facebook:  forceHTTPS(in.Facebook),
		},
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, in.UserID)
}

// AddExperience prepends a work history entry to the caller's profile.
func (s *ProfileService) AddExperience(ctx context.Context, in ExperienceInput) (*models.Profile, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if strings.TrimSpace(in.Company) == "" {
		return nil, models.NewValidationError("Company is required")
	}
	if strings.TrimSpace(in.From) == "" {
		return nil, models.NewValidationError("From date is required")
	}

	exp := &models.Experience{
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	return s.profileRepo.AddExperience(ctx, in.UserID, exp)
}

// DeleteExperience removes a work history entry from the caller's profile.
func (s *ProfileService) DeleteExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	return s.profileRepo.DeleteExperience(ctx, userID, expID)
}

// AddEducation prepends a schooling entry to the caller's profile.
func (s *ProfileService) AddEducation(ctx context.Context, in EducationInput) (*models.Profile, error) {
	if strings.TrimSpace(in.School) == "" {
		return nil, models.NewValidationError("School is required")
	}
	if strings.TrimSpace(in.Degree) == "" {
		return nil, models.NewValidationError("Degree is required")
	}
	if strings.TrimSpace(in.FieldOfStudy) == "" {
		return nil, models.NewValidationError("Field of study is required")
	}
	if strings.TrimSpace(in.From) == "" {
		return nil, models.NewValidationError("From date is required")
	}

	edu := &models.Education{
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	return s.profileRepo.AddEducation(ctx, in.UserID, edu)
}

// DeleteEducation removes a schooling entry from the caller's profile.
func (s *ProfileService) DeleteEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	return s.profileRepo.DeleteEducation(ctx, userID, eduID)
}

// DeleteAccount removes the caller's profile, posts and account.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.profileRepo.DeleteCascade(ctx, userID)
}
