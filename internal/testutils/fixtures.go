package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shchuropedia/wiki-service/internal/model/article"
	"shchuropedia/wiki-service/internal/model/user"
)

// CreateTestUser creates a test user with a unique username
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()
	username := fmt.Sprintf("test_user_%s", uniqueID)

	// MinCost keeps fixture creation cheap; these hashes never leave tests
	hash, _ := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.MinCost)

	testUser := &user.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         "user",
		CreatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithUsername sets the username
func WithUsername(username string) UserOption {
	return func(u *user.User) {
		u.Username = username
	}
}

// WithRole sets the role
func WithRole(role string) UserOption {
	return func(u *user.User) {
		u.Role = role
	}
}

// WithPassword sets the password (stored as a bcrypt hash)
func WithPassword(password string) UserOption {
	return func(u *user.User) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		u.PasswordHash = string(hash)
	}
}

// CreateTestArticle creates a test article together with its baseline
// history entry, matching what a real create does
func CreateTestArticle(db *gorm.DB, opts ...ArticleOption) *article.Article {
	uniqueID := uuid.New().String()

	testArticle := &article.Article{
		Title:     fmt.Sprintf("test-article-%s", uniqueID),
		Content:   "# Test\n\ntest content",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, opt := range opts {
		opt(testArticle)
	}

	if err := db.Create(testArticle).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test article: %v", err))
	}

	baseline := &article.ArticleHistory{
		ArticleID: testArticle.ID,
		Content:   testArticle.Content,
		AuthorID:  testArticle.AuthorID,
		CreatedAt: testArticle.CreatedAt,
	}
	if err := db.Create(baseline).Error; err != nil {
		panic(fmt.Sprintf("Failed to create baseline history: %v", err))
	}

	return testArticle
}

// ArticleOption configures test article
type ArticleOption func(*article.Article)

// WithTitle sets the article title
func WithTitle(title string) ArticleOption {
	return func(a *article.Article) {
		a.Title = title
	}
}

// WithContent sets the article content
func WithContent(content string) ArticleOption {
	return func(a *article.Article) {
		a.Content = content
	}
}

// WithAuthor sets the article author
func WithAuthor(authorID uint) ArticleOption {
	return func(a *article.Article) {
		a.AuthorID = &authorID
	}
}
