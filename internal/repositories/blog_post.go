package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/course-platform/internal/models"
)

const blogPostColumns = `id, title, slug, summary, content, image_url, created_at`

// BlogPostReadRepository handles blog post read operations
type BlogPostReadRepository struct {
	db *sqlx.DB
}

func NewBlogPostReadRepository(db *sqlx.DB) *BlogPostReadRepository {
	return &BlogPostReadRepository{db: db}
}

// List returns all posts, newest first.
func (r *BlogPostReadRepository) List(ctx context.Context) ([]models.BlogPost, error) {
	const query = `SELECT ` + blogPostColumns + ` FROM blog_posts ORDER BY created_at DESC, id DESC`

	posts := []models.BlogPost{}
	err := r.db.SelectContext(ctx, &posts, query)

	logQuery(query, nil, len(posts), err)

	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetBySlug returns the post with the given slug, or nil.
func (r *BlogPostReadRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	const query = `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE slug = $1`

	var post models.BlogPost
	err := r.db.GetContext(ctx, &post, query, slug)

	logQuery(query, []any{slug}, post.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// BlogPostWriteRepository handles blog post write operations
type BlogPostWriteRepository struct {
	db *sqlx.DB
}

func NewBlogPostWriteRepository(db *sqlx.DB) *BlogPostWriteRepository {
	return &BlogPostWriteRepository{db: db}
}

// Save inserts a post. A duplicate slug fails with ErrUniqueViolation.
func (r *BlogPostWriteRepository) Save(ctx context.Context, p models.NewBlogPost) (*models.BlogPost, error) {
	const query = `
		INSERT INTO blog_posts (title, slug, summary, content, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + blogPostColumns

	args := []any{p.Title, p.Slug, p.Summary, p.Content, p.ImageURL}

	var post models.BlogPost
	err := r.db.GetContext(ctx, &post, query, args...)

	logQuery(query, args, post.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}
