package repository

import (
	"context"
	"errors"

	"devconnect/internal/cache"
	"devconnect/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for developer profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
	AddExperience(ctx context.Context, userID uint, exp *models.Experience) (*models.Profile, error)
	DeleteExperience(ctx context.Context, userID, expID uint) (*models.Profile, error)
	AddEducation(ctx context.Context, userID uint, edu *models.Education) (*models.Profile, error)
	DeleteEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error)
	DeleteCascade(ctx context.Context, userID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) load(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("from_date DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("from_date DESC")
		}).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	key := cache.ProfileKey(userID)

	err := cache.Aside(ctx, key, &profile, cache.ProfileTTL, func() error {
		p, err := r.load(ctx, userID)
		if err != nil {
			return err
		}
		profile = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := cache.Aside(ctx, cache.ProfilesListKey, &profiles, cache.ListTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("User").
			Order("created_at DESC").
			Find(&profiles).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// Upsert creates the caller's profile, or updates the scalar fields of the
// existing one. Experience and education entries are managed separately.
func (r *profileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Profile
		err := tx.Where("user_id = ?", profile.UserID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(profile).Error
		case err != nil:
			return err
		}

		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		return tx.Model(&existing).Select(
			"company", "website", "location", "status", "bio", "github_username", "skills",
			"social_youtube", "social_twitter", "social_instagram", "social_linkedin", "social_facebook",
		).Updates(profile).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.UserID)
	return nil
}

func (r *profileRepository) AddExperience(ctx context.Context, userID uint, exp *models.Experience) (*models.Profile, error) {
	profile, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp.ProfileID = profile.ID
	if err := r.db.WithContext(ctx).Create(exp).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, userID)
	return r.load(ctx, userID)
}

func (r *profileRepository) DeleteExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", expID, profile.ID).
		Delete(&models.Experience{})
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Experience", expID)
	}
	cache.InvalidateProfile(ctx, userID)
	return r.load(ctx, userID)
}

func (r *profileRepository) AddEducation(ctx context.Context, userID uint, edu *models.Education) (*models.Profile, error) {
	profile, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu.ProfileID = profile.ID
	if err := r.db.WithContext(ctx).Create(edu).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, userID)
	return r.load(ctx, userID)
}

func (r *profileRepository) DeleteEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", eduID, profile.ID).
		Delete(&models.Education{})
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Education", eduID)
	}
	cache.InvalidateProfile(ctx, userID)
	return r.load(ctx, userID)
}

// DeleteCascade removes the user's profile, posts (with likes and comments)
// and finally the user record itself, in a single transaction.
func (r *profileRepository) DeleteCascade(ctx context.Context, userID uint) error {
	// Post IDs whose cached copies must be dropped after the transaction:
	// the user's own posts plus posts they liked or commented on.
	var postIDs, touchedIDs []uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("user_id = ?", userID).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Like{}).
			Where("user_id = ?", userID).
			Distinct().
			Pluck("post_id", &touchedIDs).Error; err != nil {
			return err
		}
		var commentedIDs []uint
		if err := tx.Model(&models.Comment{}).
			Where("user_id = ?", userID).
			Distinct().
			Pluck("post_id", &commentedIDs).Error; err != nil {
			return err
		}
		touchedIDs = append(touchedIDs, commentedIDs...)

		if len(postIDs) > 0 {
			if err := tx.Unscoped().Where("post_id IN ?", postIDs).Delete(&models.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}

		// Likes and comments the user left on other people's posts go too.
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		var profile models.Profile
		err := tx.Where("user_id = ?", userID).First(&profile).Error
		if err == nil {
			if err := tx.Unscoped().Where("profile_id = ?", profile.ID).Delete(&models.Experience{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("profile_id = ?", profile.ID).Delete(&models.Education{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Delete(&profile).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Unscoped().Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}

	cache.InvalidateProfile(ctx, userID)
	cache.InvalidateUser(ctx, userID)
	for _, id := range postIDs {
		cache.InvalidatePost(ctx, id)
	}
	for _, id := range touchedIDs {
		cache.InvalidatePost(ctx, id)
	}
	cache.InvalidatePostsList(ctx)
	return nil
}
