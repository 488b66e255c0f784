package menu

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	pkgerrors "github.com/rlozano/campus-canteen-backend/pkg/errors"
)

const defaultEmoji = "🍽️"

// Service exposes the menu surface. Students see available items only; the
// owner listing is unfiltered.
type Service interface {
	ListForStudents(ctx context.Context, params ListParams) ([]models.MenuItem, error)
	ListForOwner(ctx context.Context) ([]models.MenuItem, error)
	Create(ctx context.Context, req CreateItemRequest) (*models.MenuItem, error)
	UpdateFlags(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*models.MenuItem, error)
}

type service struct {
	repo Repository
}

// NewService wires menu dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "menu repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListForStudents(ctx context.Context, params ListParams) ([]models.MenuItem, error) {
	category := strings.TrimSpace(params.Category)
	if strings.EqualFold(category, "all") {
		category = ""
	}
	items, err := s.repo.ListAvailable(ctx, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list menu items")
	}
	return items, nil
}

func (s *service) ListForOwner(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list menu items")
	}
	return items, nil
}

func (s *service) Create(ctx context.Context, req CreateItemRequest) (*models.MenuItem, error) {
	if req.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}

	emoji := strings.TrimSpace(req.Emoji)
	if emoji == "" {
		emoji = defaultEmoji
	}

	item := &models.MenuItem{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		Category:    strings.ToLower(strings.TrimSpace(req.Category)),
		Description: strings.TrimSpace(req.Description),
		Emoji:       emoji,
		Available:   true,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create menu item")
	}
	return item, nil
}

func (s *service) UpdateFlags(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*models.MenuItem, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item id required")
	}
	if req.Available == nil && req.Popular == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nothing to update")
	}

	updates := map[string]any{}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if req.Popular != nil {
		updates["popular"] = *req.Popular
	}

	affected, err := s.repo.UpdateFlags(ctx, id, updates)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update menu item")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu item")
	}
	return item, nil
}
