package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/course-platform/internal/logger"
	"github.com/sbilibin2017/course-platform/internal/models"
	"github.com/sbilibin2017/course-platform/internal/repositories"
)

//go:generate mockgen -source=blog.go -destination=mock_blog_test.go -package=services

var (
	ErrPostNotFound  = errors.New("blog post not found")
	ErrPostSlugTaken = errors.New("blog post slug already exists")
)

const postListCacheKey = "blog:list"

func postCacheKey(slug string) string {
	return "blog:slug:" + slug
}

// PostReader defines read operations for blog posts.
type PostReader interface {
	List(ctx context.Context) ([]models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
}

// PostWriter defines write operations for blog posts.
type PostWriter interface {
	Save(ctx context.Context, p models.NewBlogPost) (*models.BlogPost, error)
}

// BlogService lists, reads and creates blog posts.
type BlogService struct {
	reader PostReader
	writer PostWriter
	cache  Cache
	events EventPublisher
}

// NewBlogService creates a BlogService. cache and events may be nil.
func NewBlogService(reader PostReader, writer PostWriter, cache Cache, events EventPublisher) *BlogService {
	return &BlogService{
		reader: reader,
		writer: writer,
		cache:  cache,
		events: events,
	}
}

// List returns all posts, newest first.
func (s *BlogService) List(ctx context.Context) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if cacheGet(ctx, s.cache, postListCacheKey, &posts) {
		return posts, nil
	}

	posts, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list blog posts", "error", err)
		return nil, err
	}

	cacheSet(ctx, s.cache, postListCacheKey, posts)
	return posts, nil
}

// GetBySlug returns the post with the given slug.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var cached models.BlogPost
	if cacheGet(ctx, s.cache, postCacheKey(slug), &cached) {
		return &cached, nil
	}

	post, err := s.reader.GetBySlug(ctx, slug)
	if err != nil {
		logger.Log.Errorw("failed to get blog post", "slug", slug, "error", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	cacheSet(ctx, s.cache, postCacheKey(slug), post)
	return post, nil
}

// Create stores a new post. userID is zero for anonymous requests.
func (s *BlogService) Create(ctx context.Context, userID int64, p models.NewBlogPost) (*models.BlogPost, error) {
	post, err := s.writer.Save(ctx, p)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrPostSlugTaken
		}
		logger.Log.Errorw("failed to create blog post", "slug", p.Slug, "error", err)
		return nil, err
	}

	cacheDelete(ctx, s.cache, postListCacheKey)
	publish(ctx, s.events, models.EventPostCreated, post.ID, userID)
	return post, nil
}
