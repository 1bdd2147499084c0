package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/course-platform/internal/logger"
	"github.com/sbilibin2017/course-platform/internal/middlewares"
	"github.com/sbilibin2017/course-platform/internal/models"
	"github.com/sbilibin2017/course-platform/internal/services"
)

//go:generate mockgen -source=blog.go -destination=mock_blog_test.go -package=handlers

// PostLister lists blog posts.
type PostLister interface {
	List(ctx context.Context) ([]models.BlogPost, error)
}

// PostGetter fetches a post by slug.
type PostGetter interface {
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
}

// PostCreator creates posts.
type PostCreator interface {
	Create(ctx context.Context, userID int64, p models.NewBlogPost) (*models.BlogPost, error)
}

// CreatePostRequest represents the JSON body for post creation
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	// Title
	// required: true
	// default: Release notes
	Title string `json:"title" validate:"required"`

	// Unique slug
	// required: true
	// default: release-notes
	Slug string `json:"slug" validate:"required"`

	// Optional summary
	Summary *string `json:"summary"`

	// Body
	// required: true
	Content string `json:"content" validate:"required"`

	// Optional cover image
	ImageURL *string `json:"image_url"`
}

// NewListPostsHandler returns an HTTP handler listing blog posts.
// @Summary List blog posts
// @Description Returns all posts, newest first
// @Tags blog
// @Produce json
// @Success 200 {array} models.BlogPost "Posts"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch blog posts"
// @Router /blog [get]
func NewListPostsHandler(svc PostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to fetch blog posts", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch blog posts"})
			return
		}
		if posts == nil {
			posts = []models.BlogPost{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(posts)
	}
}

// NewGetPostHandler returns an HTTP handler for a single post.
// @Summary Get blog post
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.BlogPost "Post"
// @Failure 404 {object} handlers.ErrorResponse "Blog post not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch blog post"
// @Router /blog/{slug} [get]
func NewGetPostHandler(svc PostGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		post, err := svc.GetBySlug(r.Context(), slug)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Blog post not found"})
			default:
				logger.Log.Errorw("failed to fetch blog post", "slug", slug, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch blog post"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(post)
	}
}

// NewCreatePostHandler returns an HTTP handler creating a post.
// @Summary Create blog post
// @Description Requires a bearer token only when the server runs with BLOG_REQUIRE_AUTH=true
// @Tags blog
// @Accept json
// @Produce json
// @Param createPostRequest body handlers.CreatePostRequest true "Post"
// @Success 201 {object} models.BlogPost "Created post"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failed"
// @Failure 400 {object} handlers.ErrorResponse "Blog post with this slug already exists"
// @Failure 500 {object} handlers.ErrorResponse "Failed to create blog post"
// @Router /blog [post]
func NewCreatePostHandler(svc PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePostRequest
		if !decodeBody(w, r, &req) {
			return
		}

		// zero when the route is mounted without the auth guard
		userID, _ := middlewares.UserIDFromContext(r.Context())

		post, err := svc.Create(r.Context(), userID, models.NewBlogPost{
			Title:    req.Title,
			Slug:     req.Slug,
			Summary:  req.Summary,
			Content:  req.Content,
			ImageURL: req.ImageURL,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPostSlugTaken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Blog post with this slug already exists"})
			default:
				logger.Log.Errorw("failed to create blog post", "slug", req.Slug, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to create blog post"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(post)
	}
}
