package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"showcase-backend/internal/models"
	"showcase-backend/internal/repository"
	"showcase-backend/pkg/cache"
	"showcase-backend/pkg/logger"
	"showcase-backend/pkg/utils"
	"showcase-backend/pkg/validator"
)

var (
	ErrPageNotFound  = errors.New("page not found")
	ErrSlugTaken     = errors.New("a page with this slug already exists")
	ErrUnknownBlocks = errors.New("page contains unknown block types")
)

// PageService stores authored pages and serves them decorated.
type PageService struct {
	repo     repository.PageRepository
	cache    *cache.Cache
	decorate *DecorateService
}

func NewPageService(repo repository.PageRepository, c *cache.Cache, decorate *DecorateService) *PageService {
	return &PageService{
		repo:     repo,
		cache:    c,
		decorate: decorate,
	}
}

func (s *PageService) Create(req models.CreatePageRequest) (*models.Page, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}
	if slug == "" {
		return nil, fmt.Errorf("cannot derive a slug from title %q", req.Title)
	}

	if taken, err := s.repo.ExistsBySlug(slug); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrSlugTaken
	}

	if err := s.validateBlocks(req.Blocks); err != nil {
		return nil, err
	}

	page := &models.Page{
		UUID:        uuid.NewString(),
		Title:       validator.SanitizeString(req.Title),
		Slug:        slug,
		Description: validator.SanitizeString(req.Description),
		Published:   req.Published,
		Blocks:      req.Blocks,
	}
	if err := s.repo.Create(page); err != nil {
		return nil, err
	}

	logger.Info("Page created", map[string]interface{}{"slug": page.Slug, "blocks": len(page.Blocks)})
	return page, nil
}

func (s *PageService) Update(id uint, req models.UpdatePageRequest) (*models.Page, error) {
	page, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		page.Title = validator.SanitizeString(*req.Title)
	}
	if req.Slug != nil && *req.Slug != page.Slug {
		if taken, err := s.repo.ExistsBySlug(*req.Slug); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrSlugTaken
		}
		page.Slug = *req.Slug
	}
	if req.Description != nil {
		page.Description = validator.SanitizeString(*req.Description)
	}
	if req.Published != nil {
		page.Published = *req.Published
	}
	if req.Blocks != nil {
		if err := s.validateBlocks(*req.Blocks); err != nil {
			return nil, err
		}
		page.Blocks = *req.Blocks
	}

	if err := s.repo.Update(page); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidatePage(page.ID); err != nil {
			logger.Debug("Failed to invalidate page cache", map[string]interface{}{"error": err.Error()})
		}
	}
	return page, nil
}

func (s *PageService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPageNotFound
		}
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.InvalidatePage(id); err != nil {
			logger.Debug("Failed to invalidate page cache", map[string]interface{}{"error": err.Error()})
		}
	}
	return nil
}

func (s *PageService) List(includeUnpublished bool) ([]models.Page, error) {
	if includeUnpublished {
		return s.repo.GetAllAdmin()
	}
	return s.repo.GetAll()
}

func (s *PageService) GetBySlug(slug string) (*models.Page, error) {
	page, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return page, nil
}

// ExistsBySlug reports whether any page, published or not, owns the slug.
func (s *PageService) ExistsBySlug(slug string) (bool, error) {
	return s.repo.ExistsBySlug(slug)
}

// Decorated returns a published page with every block rendered.
func (s *PageService) Decorated(ctx context.Context, slug string) (*models.DecoratedPage, error) {
	page, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	return &models.DecoratedPage{
		Page:   *page,
		Blocks: s.decorate.DecorateAll(ctx, page.Blocks),
	}, nil
}

// validateBlocks rejects pages referencing decorators that do not exist so
// authoring mistakes surface at save time, not render time.
func (s *PageService) validateBlocks(sources []models.BlockSource) error {
	if s.decorate == nil {
		return nil
	}
	known := map[string]bool{}
	for _, t := range s.decorate.BlockTypes() {
		known[t] = true
	}
	for _, source := range sources {
		if !known[source.Type] {
			return fmt.Errorf("%w: %q", ErrUnknownBlocks, source.Type)
		}
	}
	return nil
}
