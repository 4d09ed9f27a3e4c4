// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Password is the plaintext password every seeded account gets, so seeded
// users can be logged into during development.
const Password = "password123"

var skillPool = []string{
	"Go", "JavaScript", "TypeScript", "Python", "Rust", "SQL",
	"React", "Vue", "Node.js", "Docker", "Kubernetes", "PostgreSQL",
	"Redis", "GraphQL", "AWS", "Terraform",
}

var statusPool = []string{
	"Developer", "Senior Developer", "Student or Learning",
	"Instructor or Teacher", "Intern", "Engineering Manager",
}

// Seeder populates the database with fake users, profiles and feed activity.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seedable data. Deletion order respects the foreign
// key relationships between the tables.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []any{
		&models.Like{}, &models.Comment{}, &models.Post{},
		&models.Experience{}, &models.Education{}, &models.Profile{},
		&models.User{},
	} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", model, err)
		}
	}
	return nil
}

// Run creates numUsers accounts with developer profiles, then spreads
// numPosts posts among them along with random likes and comments.
func (s *Seeder) Run(numUsers, numPosts int) error {
	if numUsers < 1 {
		return fmt.Errorf("at least one user is required, got %d", numUsers)
	}
	users, err := s.seedUsers(numUsers)
	if err != nil {
		return err
	}
	if err := s.seedProfiles(users); err != nil {
		return err
	}
	return s.seedFeed(users, numPosts)
}

func (s *Seeder) seedUsers(n int) ([]*models.User, error) {
	log.Printf("Creating %d users...", n)

	// Every account shares one password; MinCost keeps seeding fast.
	hashed, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		email := fmt.Sprintf("%d.%s", i, gofakeit.Email())
		user := &models.User{
			Name:      gofakeit.Name(),
			Email:     email,
			Password:  string(hashed),
			Avatar:    service.GravatarURL(email),
			CreatedAt: s.pastTime(365),
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) seedProfiles(users []*models.User) error {
	log.Printf("Creating profiles...")

	for _, user := range users {
		// Roughly one in five users never filled out a profile.
		if s.rand.Intn(5) == 0 {
			continue
		}

		profile := &models.Profile{
			UserID:         user.ID,
			Company:        gofakeit.Company(),
			Website:        gofakeit.URL(),
			Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.State()),
			Status:         statusPool[s.rand.Intn(len(statusPool))],
			Bio:            gofakeit.Paragraph(1, 2, 8, " "),
			GithubUsername: gofakeit.Username(),
			Skills:         s.pickSkills(),
			Social: models.Social{
				Twitter:  fmt.Sprintf("https://twitter.com/%s", gofakeit.Username()),
				Linkedin: fmt.Sprintf("https://linkedin.com/in/%s", gofakeit.Username()),
			},
		}
		if err := s.db.Create(profile).Error; err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		for i := 0; i < 1+s.rand.Intn(3); i++ {
			exp := &models.Experience{
				ProfileID:   profile.ID,
				Title:       gofakeit.JobTitle(),
				Company:     gofakeit.Company(),
				Location:    gofakeit.City(),
				From:        s.pastTime(8 * 365).Format("2006-01-02"),
				Current:     i == 0,
				Description: gofakeit.Sentence(12),
			}
			if !exp.Current {
				exp.To = s.pastTime(365).Format("2006-01-02")
			}
			if err := s.db.Create(exp).Error; err != nil {
				return fmt.Errorf("failed to create experience: %w", err)
			}
		}

		edu := &models.Education{
			ProfileID:    profile.ID,
			School:       fmt.Sprintf("University of %s", gofakeit.City()),
			Degree:       "BSc",
			FieldOfStudy: "Computer Science",
			From:         s.pastTime(12 * 365).Format("2006-01-02"),
			To:           s.pastTime(6 * 365).Format("2006-01-02"),
		}
		if err := s.db.Create(edu).Error; err != nil {
			return fmt.Errorf("failed to create education: %w", err)
		}
	}
	return nil
}

func (s *Seeder) seedFeed(users []*models.User, numPosts int) error {
	log.Printf("Creating %d posts with likes and comments...", numPosts)

	for i := 0; i < numPosts; i++ {
		author := users[s.rand.Intn(len(users))]
		post := &models.Post{
			UserID:    author.ID,
			Name:      author.Name,
			Avatar:    author.Avatar,
			Text:      gofakeit.Paragraph(1, 3, 10, " "),
			CreatedAt: s.pastTime(90),
		}
		if err := s.db.Create(post).Error; err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}

		// A random subset of other users likes the post. Each user may
		// like a post at most once, so pick without replacement.
		for _, idx := range s.rand.Perm(len(users))[:s.rand.Intn(len(users)/2+1)] {
			like := &models.Like{UserID: users[idx].ID, PostID: post.ID}
			if err := s.db.Create(like).Error; err != nil {
				return fmt.Errorf("failed to create like: %w", err)
			}
		}

		for j := 0; j < s.rand.Intn(4); j++ {
			commenter := users[s.rand.Intn(len(users))]
			comment := &models.Comment{
				PostID:    post.ID,
				UserID:    commenter.ID,
				Name:      commenter.Name,
				Avatar:    commenter.Avatar,
				Text:      gofakeit.Sentence(8),
				CreatedAt: post.CreatedAt.Add(time.Duration(1+s.rand.Intn(72)) * time.Hour),
			}
			if err := s.db.Create(comment).Error; err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
		}
	}
	return nil
}

func (s *Seeder) pickSkills() []string {
	count := 3 + s.rand.Intn(5)
	picked := make([]string, 0, count)
	for _, idx := range s.rand.Perm(len(skillPool))[:count] {
		picked = append(picked, skillPool[idx])
	}
	return picked
}

// pastTime returns a timestamp up to maxDays in the past for a realistic
// created_at spread.
func (s *Seeder) pastTime(maxDays int) time.Time {
	return time.Now().
		Add(-time.Duration(s.rand.Intn(maxDays*24)) * time.Hour).
		Add(-time.Duration(s.rand.Intn(60)) * time.Minute)
}
