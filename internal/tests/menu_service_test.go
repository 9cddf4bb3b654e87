package tests

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"dinehall/internal/domain"
	"dinehall/internal/mocks"
	"dinehall/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMenuService_Create(t *testing.T) {
	t.Run("success_defaults_availability", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		cache := mocks.NewMenuCache(t)
		svc := service.NewMenuService(repo, cache)

		repo.On("Create", mock.MatchedBy(func(item *domain.MenuItem) bool {
			return item.Availability == domain.MenuItemAvailable
		})).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.MenuItem).ID = 3
		}).Return(nil).Once()

		res := svc.Create(service.MenuItemDTO{Name: "Burger", Price: 10.00, Category: "mains"})
		assert.True(t, res.Success)
		assert.Equal(t, 3, res.Data.ID)
		assert.Equal(t, domain.MenuItemAvailable, res.Data.Availability)
	})

	t.Run("validation_failures", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		cache := mocks.NewMenuCache(t)
		svc := service.NewMenuService(repo, cache)

		cases := []struct {
			name string
			dto  service.MenuItemDTO
		}{
			{"blank_name", service.MenuItemDTO{Name: "  ", Price: 5}},
			{"zero_price", service.MenuItemDTO{Name: "Tea", Price: 0}},
			{"negative_price", service.MenuItemDTO{Name: "Tea", Price: -1}},
			{"bad_availability", service.MenuItemDTO{Name: "Tea", Price: 2, Availability: "sometimes"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				res := svc.Create(tc.dto)
				assert.False(t, res.Success)
				assert.Equal(t, service.KindValidation, res.Kind)
			})
		}
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestMenuService_GetByID(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewMenuService(repo, cache)

	repo.On("GetByID", 3).Return(&domain.MenuItem{ID: 3, Name: "Burger", Price: 10}, nil).Once()
	res := svc.GetByID(3)
	assert.True(t, res.Success)
	assert.Equal(t, "Burger", res.Data.Name)

	repo.On("GetByID", 404).Return(nil, sql.ErrNoRows).Once()
	res = svc.GetByID(404)
	assert.False(t, res.Success)
	assert.Equal(t, service.KindNotFound, res.Kind)
	assert.Equal(t, "record not found", res.Message)
}

func TestMenuService_StorageFailureIsInternal(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewMenuService(repo, cache)

	repo.On("GetAll").Return(nil, errors.New("connection refused")).Once()

	res := svc.GetAll()
	assert.False(t, res.Success)
	assert.Equal(t, service.KindInternal, res.Kind)
	assert.Equal(t, "unexpected storage error", res.Message)
	assert.Contains(t, res.Errors, "connection refused")
}

func TestMenuService_Pagination(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewMenuService(repo, cache)

	params := domain.PageParams{Page: 2, Size: 10}
	repo.On("GetPaginated", params).Return(domain.Page[domain.MenuItem]{
		Items:        []domain.MenuItem{{ID: 11, Name: "Soup"}},
		PageNumber:   2,
		PageSize:     10,
		TotalRecords: 21,
	}, nil).Once()

	res := svc.GetPaginated(params)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Data.PageNumber)
	assert.Equal(t, 10, res.Data.PageSize)
	assert.Equal(t, 21, res.Data.TotalRecords)
	assert.Len(t, res.Data.Items, 1)
}

func TestMenuService_Search(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewMenuService(repo, cache)

	res := svc.Search("   ")
	assert.False(t, res.Success)
	assert.Equal(t, service.KindValidation, res.Kind)

	repo.On("Search", "burger").Return([]domain.MenuItem{{ID: 3, Name: "Burger"}}, nil).Once()
	res = svc.Search("burger")
	assert.True(t, res.Success)
	assert.Len(t, res.Data, 1)
}

func TestMenuService_UpdateInvalidatesCache(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewMenuService(repo, cache)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.On("Update", mock.MatchedBy(func(item *domain.MenuItem) bool {
		return item.ID == 3
	})).Return(true, nil).Once()
	repo.On("GetByID", 3).Return(&domain.MenuItem{
		ID: 3, Name: "Burger XL", Price: 12,
		Availability: domain.MenuItemAvailable, CreatedAt: created,
	}, nil).Once()
	cache.On("ItemKey", 3).Return("menu:item:3").Once()
	cache.On("Invalidate", mock.Anything, "menu:item:3").Return(nil).Once()

	res := svc.Update(context.Background(), 3, service.MenuItemDTO{Name: "Burger XL", Price: 12})
	assert.True(t, res.Success)
	assert.Equal(t, 3, res.Data.ID)
	assert.Equal(t, created, res.Data.CreatedAt)
}

func TestMenuService_UpdateMissingSkipsInvalidation(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewMenuService(repo, cache)

	repo.On("Update", mock.Anything).Return(false, nil).Once()

	res := svc.Update(context.Background(), 404, service.MenuItemDTO{Name: "Ghost", Price: 1})
	assert.False(t, res.Success)
	assert.Equal(t, service.KindNotFound, res.Kind)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestMenuService_DeleteInvalidatesCache(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewMenuService(repo, cache)

	repo.On("Delete", 3).Return(true, nil).Once()
	cache.On("ItemKey", 3).Return("menu:item:3").Once()
	cache.On("Invalidate", mock.Anything, "menu:item:3").Return(nil).Once()

	res := svc.Delete(context.Background(), 3)
	assert.True(t, res.Success)
	assert.True(t, res.Data)
}

func TestMenuService_Lookup(t *testing.T) {
	ctx := context.Background()
	burger := &domain.MenuItem{ID: 3, Name: "Burger", Price: 10, Availability: domain.MenuItemAvailable}

	t.Run("cache_hit_skips_repo", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		cache := mocks.NewMenuCache(t)
		svc := service.NewMenuService(repo, cache)

		cache.On("ItemKey", 3).Return("menu:item:3").Once()
		cache.On("Get", mock.Anything, "menu:item:3").Return(burger, nil).Once()

		item, err := svc.Lookup(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, burger, item)
		repo.AssertNotCalled(t, "GetByID", mock.Anything)
	})

	t.Run("cache_miss_reads_through_and_stores", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		cache := mocks.NewMenuCache(t)
		svc := service.NewMenuService(repo, cache)

		cache.On("ItemKey", 3).Return("menu:item:3").Twice()
		cache.On("Get", mock.Anything, "menu:item:3").Return(nil, nil).Once()
		repo.On("GetByID", 3).Return(burger, nil).Once()
		cache.On("Set", mock.Anything, "menu:item:3", burger).Return(nil).Once()

		item, err := svc.Lookup(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, 3, item.ID)
	})

	t.Run("missing_item_maps_to_sentinel", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		cache := mocks.NewMenuCache(t)
		svc := service.NewMenuService(repo, cache)

		cache.On("ItemKey", 404).Return("menu:item:404").Once()
		cache.On("Get", mock.Anything, "menu:item:404").Return(nil, nil).Once()
		repo.On("GetByID", 404).Return(nil, sql.ErrNoRows).Once()

		item, err := svc.Lookup(ctx, 404)
		assert.Nil(t, item)
		assert.ErrorIs(t, err, service.ErrMenuItemNotFound)
	})
}
