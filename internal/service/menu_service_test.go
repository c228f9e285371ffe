package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/seed"
)

func newTestMenu() MenuService {
	return NewMenuService(seed.MenuItems(), nil)
}

func TestMenuList_NoFilters(t *testing.T) {
	menu := newTestMenu()

	resp := menu.List(context.Background(), &domain.ListMenuRequest{}, nil)
	assert.Equal(t, 6, resp.Count)
	assert.Equal(t, 6, resp.Total)
	assert.Empty(t, resp.Warnings)
}

func TestMenuList_SearchMatchesNameAndDescription(t *testing.T) {
	menu := newTestMenu()

	resp := menu.List(context.Background(), &domain.ListMenuRequest{Search: "rendang"}, nil)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Rendang Padang", resp.Items[0].Name)

	// matches the description of Gado-Gado
	resp = menu.List(context.Background(), &domain.ListMenuRequest{Search: "peanut sauce"}, nil)
	assert.Equal(t, 2, resp.Count)
}

func TestMenuList_SearchMatchesAllergenTagExactly(t *testing.T) {
	menu := newTestMenu()

	resp := menu.List(context.Background(), &domain.ListMenuRequest{Search: "peanuts"}, nil)
	assert.Equal(t, 2, resp.Count)
	for _, item := range resp.Items {
		assert.Contains(t, item.Allergens, "peanuts")
	}
}

func TestMenuList_CategoryFilter(t *testing.T) {
	menu := newTestMenu()

	resp := menu.List(context.Background(), &domain.ListMenuRequest{Category: "appetizers"}, nil)
	assert.Equal(t, 2, resp.Count)

	// the sentinel matches everything
	resp = menu.List(context.Background(), &domain.ListMenuRequest{Category: domain.CategoryAll}, nil)
	assert.Equal(t, 6, resp.Count)
}

func TestMenuList_DietaryFiltersAreConjunctive(t *testing.T) {
	menu := newTestMenu()

	resp := menu.List(context.Background(), &domain.ListMenuRequest{Dietary: []string{"vegetarian"}}, nil)
	assert.Equal(t, 2, resp.Count)

	resp = menu.List(context.Background(), &domain.ListMenuRequest{Dietary: []string{"vegetarian", "vegan"}}, nil)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Es Cendol", resp.Items[0].Name)
}

func TestMenuList_SortByPrice(t *testing.T) {
	menu := newTestMenu()

	resp := menu.List(context.Background(), &domain.ListMenuRequest{SortBy: SortByPriceAsc}, nil)
	assert.Equal(t, domain.Money(15000), resp.Items[0].Price)
	assert.Equal(t, domain.Money(65000), resp.Items[len(resp.Items)-1].Price)

	// equal prices keep menu order: Gado-Gado is listed before Sate
	assert.Equal(t, "Gado-Gado Jakarta", resp.Items[1].Name)
	assert.Equal(t, "Sate Ayam Madura", resp.Items[2].Name)

	resp = menu.List(context.Background(), &domain.ListMenuRequest{SortBy: SortByPriceDesc}, nil)
	assert.Equal(t, domain.Money(65000), resp.Items[0].Price)
}

func TestMenuList_UnknownSortKeepsMenuOrder(t *testing.T) {
	menu := newTestMenu()

	resp := menu.List(context.Background(), &domain.ListMenuRequest{SortBy: "bogus"}, nil)
	assert.Equal(t, "Nasi Goreng Special", resp.Items[0].Name)
}

func TestMenuList_AllergenWarnings(t *testing.T) {
	menu := newTestMenu()
	prefs := &domain.Preferences{Allergies: []string{"peanuts"}}

	resp := menu.List(context.Background(), &domain.ListMenuRequest{Category: "appetizers"}, prefs)
	assert.Len(t, resp.Warnings, 2)
	assert.Contains(t, resp.Warnings[0], "contains peanuts")
}

// stubCache in-memory cache.Service recording menu cache traffic
type stubCache struct {
	entries map[string][]byte
	hits    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (s *stubCache) Get(_ context.Context, _ string, _ interface{}) error { return errors.New("miss") }
func (s *stubCache) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}
func (s *stubCache) Delete(_ context.Context, _ ...string) error      { return nil }
func (s *stubCache) Exists(_ context.Context, _ string) (bool, error) { return false, nil }
func (s *stubCache) IsAvailable() bool                                { return true }
func (s *stubCache) Ping(_ context.Context) error                     { return nil }

func (s *stubCache) GetMenu(_ context.Context, key string) ([]byte, error) {
	data, ok := s.entries[key]
	if !ok {
		return nil, errors.New("miss")
	}
	s.hits++
	return data, nil
}

func (s *stubCache) SetMenu(_ context.Context, key string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	s.entries[key] = raw
	return nil
}

func (s *stubCache) InvalidateMenu(_ context.Context) error {
	s.entries = make(map[string][]byte)
	return nil
}

func TestMenuList_UsesCache(t *testing.T) {
	stub := newStubCache()
	menu := NewMenuService(seed.MenuItems(), stub)
	ctx := context.Background()
	req := &domain.ListMenuRequest{Category: "appetizers"}

	resp := menu.List(ctx, req, nil)
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, stub.entries, 1)
	assert.Equal(t, 0, stub.hits)

	// the second identical listing is served from the cache
	resp = menu.List(ctx, req, nil)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 1, stub.hits)

	// allergen warnings stay per-viewer even on a cache hit
	prefs := &domain.Preferences{Allergies: []string{"peanuts"}}
	resp = menu.List(ctx, req, prefs)
	assert.Equal(t, 2, stub.hits)
	assert.Len(t, resp.Warnings, 2)

	// an availability toggle invalidates every cached listing
	_, err := menu.SetAvailability("1", false)
	assert.NoError(t, err)
	assert.Empty(t, stub.entries)
}

func TestMenuGetByID(t *testing.T) {
	menu := newTestMenu()

	item, err := menu.GetByID("2")
	assert.NoError(t, err)
	assert.Equal(t, "Rendang Padang", item.Name)

	_, err = menu.GetByID("999")
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestMenuSetAvailability(t *testing.T) {
	menu := newTestMenu()

	item, err := menu.SetAvailability("1", false)
	assert.NoError(t, err)
	assert.False(t, item.Available)

	fetched, err := menu.GetByID("1")
	assert.NoError(t, err)
	assert.False(t, fetched.Available)

	_, err = menu.SetAvailability("999", false)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}
