package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"travel-api/internal/models"
	apperrors "travel-api/internal/pkg/errors"
	"travel-api/internal/pkg/htmlsanitize"
	"travel-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const blogsCachePrefix = "blogs"

type BlogService interface {
	GetBlog(ctx context.Context, idOrSlug string) (*models.Blog, error)
	ListBlogs(ctx context.Context, filter models.BlogFilter, p models.Pagination) ([]models.Blog, int64, error)
	CreateBlog(ctx context.Context, blog *models.Blog) error
	UpdateBlog(ctx context.Context, id primitive.ObjectID, update *models.BlogUpdate) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id primitive.ObjectID) error
}

type blogService struct {
	blogRepo repository.BlogRepository
	cache    CacheService
	audit    AuditLogService
	cacheTTL time.Duration
}

func NewBlogService(blogRepo repository.BlogRepository, cache CacheService, audit AuditLogService, cacheTTL time.Duration) BlogService {
	return &blogService{
		blogRepo: blogRepo,
		cache:    cache,
		audit:    audit,
		cacheTTL: cacheTTL,
	}
}

// GetBlog looks a blog up by hex id, falling back to its slug. A slug that
// happens to be 24 hex characters is still found.
func (s *blogService) GetBlog(ctx context.Context, idOrSlug string) (*models.Blog, error) {
	key := buildCacheKey(blogsCachePrefix, "get", idOrSlug)

	var cached models.Blog
	if cacheLookup(ctx, s.cache, key, &cached) {
		return &cached, nil
	}

	var (
		blog *models.Blog
		err  error
	)
	if id, parseErr := primitive.ObjectIDFromHex(idOrSlug); parseErr == nil {
		blog, err = s.blogRepo.GetByID(ctx, id)
	} else {
		err = apperrors.ErrNotFound
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		blog, err = s.blogRepo.GetBySlug(ctx, strings.ToLower(idOrSlug))
	}
	if err != nil {
		return nil, err
	}

	cacheStore(ctx, s.cache, key, blog, s.cacheTTL)
	return blog, nil
}

func (s *blogService) ListBlogs(ctx context.Context, filter models.BlogFilter, p models.Pagination) ([]models.Blog, int64, error) {
	key := buildCacheKey(blogsCachePrefix, "list", filter.Search, filter.Tag, p.Page, p.PerPage)

	var cached cachedPage[models.Blog]
	if cacheLookup(ctx, s.cache, key, &cached) {
		return cached.Items, cached.Total, nil
	}

	items, total, err := s.blogRepo.List(ctx, filter, p)
	if err != nil {
		return nil, 0, err
	}
	cacheStore(ctx, s.cache, key, cachedPage[models.Blog]{Items: items, Total: total}, s.cacheTTL)
	return items, total, nil
}

func (s *blogService) CreateBlog(ctx context.Context, blog *models.Blog) error {
	now := time.Now().UTC()
	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	if blog.PublishedAt.IsZero() {
		blog.PublishedAt = now
	}
	content, err := sanitizeContent(blog.Content)
	if err != nil {
		return err
	}
	blog.Content = content

	slug, err := s.uniqueSlug(ctx, blog)
	if err != nil {
		return err
	}
	blog.Slug = slug

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return err
	}

	s.invalidate(ctx)
	recordAudit(ctx, s.audit, models.AuditActionCreate, "blog", blog.ID.Hex(),
		models.JSON{"title": blog.Title, "slug": blog.Slug})
	return nil
}

// UpdateBlog applies update. The slug is kept so published links stay valid.
func (s *blogService) UpdateBlog(ctx context.Context, id primitive.ObjectID, update *models.BlogUpdate) (*models.Blog, error) {
	if update.Content != nil {
		clean, err := sanitizeContent(*update.Content)
		if err != nil {
			return nil, err
		}
		update.Content = &clean
	}

	blog, err := s.blogRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	recordAudit(ctx, s.audit, models.AuditActionUpdate, "blog", id.Hex(), models.JSON{"title": blog.Title})
	return blog, nil
}

func (s *blogService) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	recordAudit(ctx, s.audit, models.AuditActionDelete, "blog", id.Hex(), nil)
	return nil
}

// uniqueSlug slugifies the requested slug or the title. A slug already in use
// gets the tail of the blog id appended.
func (s *blogService) uniqueSlug(ctx context.Context, blog *models.Blog) (string, error) {
	base := Slugify(blog.Slug)
	if base == "" {
		base = Slugify(blog.Title)
	}
	hex := blog.ID.Hex()
	if base == "" {
		return hex, nil
	}

	taken, err := s.blogRepo.SlugExists(ctx, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	return base + "-" + hex[len(hex)-6:], nil
}

// sanitizeContent strips unsafe markup. Content left with no text or markup
// is rejected.
func sanitizeContent(content string) (string, error) {
	clean := htmlsanitize.Sanitize(content)
	if strings.TrimSpace(clean) == "" {
		return "", apperrors.Invalid("content is empty after sanitizing")
	}
	return clean, nil
}

func (s *blogService) invalidate(ctx context.Context) {
	cacheInvalidate(ctx, s.cache, blogsCachePrefix, statsCachePrefix)
}

// Slugify lower-cases s and joins its letter and digit runs with dashes.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
