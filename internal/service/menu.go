package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"dinehall/internal/domain"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuService owns the catalog: full CRUD through the generic contract plus
// the read-only Lookup collaborator the order engine consumes. Lookup is
// read-through cached; catalog writes invalidate.
type MenuService struct {
	*CrudService[domain.MenuItem, MenuItemDTO]
	repo  MenuRepository
	cache MenuCache
}

func NewMenuService(repo MenuRepository, cache MenuCache) *MenuService {
	mapper := Mapper[domain.MenuItem, MenuItemDTO]{
		ToDTO:    menuItemToDTO,
		ToEntity: menuItemToEntity,
		SetID:    func(item *domain.MenuItem, id int) { item.ID = id },
	}
	hooks := Hooks[MenuItemDTO]{
		ValidateCreate: validateMenuItem,
		ValidateUpdate: validateMenuItem,
	}
	return &MenuService{
		CrudService: NewCrudService(repo, mapper, hooks),
		repo:        repo,
		cache:       cache,
	}
}

func validateMenuItem(dto MenuItemDTO) error {
	if strings.TrimSpace(dto.Name) == "" {
		return Invalidf("menu item name is required")
	}
	if dto.Price <= 0 {
		return Invalidf("menu item price must be greater than zero")
	}
	if dto.Availability != "" &&
		dto.Availability != domain.MenuItemAvailable &&
		dto.Availability != domain.MenuItemOutOfStock {
		return Invalidf("unknown availability %q", dto.Availability)
	}
	return nil
}

func (s *MenuService) Lookup(ctx context.Context, id int) (*domain.MenuItem, error) {
	if s.cache != nil {
		if item, err := s.cache.Get(ctx, s.cache.ItemKey(id)); err == nil && item != nil {
			return item, nil
		}
	}

	item, err := s.repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup menu item %d: %w", id, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, s.cache.ItemKey(id), item); err != nil {
			log.Printf("[dinehall] failed to cache menu item %d: %v", id, err)
		}
	}
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id int, dto MenuItemDTO) Result[MenuItemDTO] {
	res := s.CrudService.Update(id, dto)
	if res.Success {
		s.invalidate(ctx, id)
	}
	return res
}

func (s *MenuService) Delete(ctx context.Context, id int) Result[bool] {
	res := s.CrudService.Delete(id)
	if res.Success {
		s.invalidate(ctx, id)
	}
	return res
}

func (s *MenuService) invalidate(ctx context.Context, id int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, s.cache.ItemKey(id)); err != nil {
		log.Printf("[dinehall] failed to invalidate menu item %d: %v", id, err)
	}
}

var _ MenuServiceInterface = (*MenuService)(nil)
