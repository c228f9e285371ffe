package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/listing"
	"github.com/kedaimae/kedai-backend/pkg/cache"
)

var (
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrMenuItemUnavailable = errors.New("menu item is not available")
)

// Menu sort keys
const (
	SortByName      = "name"
	SortByPriceAsc  = "price-asc"
	SortByPriceDesc = "price-desc"
	SortByRating    = "rating"
)

// MenuService menu catalog: listing with filter/sort, item lookup,
// availability management for the back office
type MenuService interface {
	List(ctx context.Context, req *domain.ListMenuRequest, prefs *domain.Preferences) *domain.MenuListResponse
	GetByID(id string) (*domain.MenuItem, error)
	Categories() []string
	SetAvailability(id string, available bool) (*domain.MenuItem, error)
}

type menuService struct {
	mu    sync.RWMutex
	items []domain.MenuItem
	cache cache.Service
}

// NewMenuService constructor. The cache may be nil-backed; listing
// falls through to memory when it is unavailable.
func NewMenuService(items []domain.MenuItem, cacheSvc cache.Service) MenuService {
	owned := make([]domain.MenuItem, len(items))
	copy(owned, items)
	return &menuService{items: owned, cache: cacheSvc}
}

// List applies search, category and dietary filters then sorts.
// Unknown sort keys leave menu order untouched. When prefs carry
// allergies, matching dishes in the result produce warnings.
// Filtered listings are cached; allergen warnings are per-viewer and
// computed on every call.
func (s *menuService) List(ctx context.Context, req *domain.ListMenuRequest, prefs *domain.Preferences) *domain.MenuListResponse {
	resp := s.listCached(ctx, req)
	if prefs != nil && len(prefs.Allergies) > 0 {
		resp.Warnings = allergenWarnings(resp.Items, prefs.Allergies)
	}
	return resp
}

func listKey(req *domain.ListMenuRequest) string {
	return strings.Join([]string{
		"list", req.Search, req.Category, strings.Join(req.Dietary, ","), req.SortBy,
	}, "|")
}

func (s *menuService) listCached(ctx context.Context, req *domain.ListMenuRequest) *domain.MenuListResponse {
	cached := s.cache != nil && s.cache.IsAvailable()
	key := listKey(req)

	if cached {
		if data, err := s.cache.GetMenu(ctx, key); err == nil {
			var resp domain.MenuListResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				return &resp
			}
		}
	}

	resp := s.buildList(req)
	if cached {
		if err := s.cache.SetMenu(ctx, key, resp); err != nil {
			log.Warn().Err(err).Msg("Failed to cache menu listing")
		}
	}
	return resp
}

func (s *menuService) buildList(req *domain.ListMenuRequest) *domain.MenuListResponse {
	s.mu.RLock()
	items := make([]domain.MenuItem, len(s.items))
	copy(items, s.items)
	s.mu.RUnlock()

	total := len(items)

	var preds []listing.Predicate[domain.MenuItem]
	if req.Search != "" {
		search := req.Search
		preds = append(preds, func(m domain.MenuItem) bool {
			return listing.MatchesSearch(search, []string{m.Name, m.Description}, m.Allergens)
		})
	}
	if req.Category != "" {
		category := req.Category
		preds = append(preds, func(m domain.MenuItem) bool {
			return listing.MatchesCategory(category, m.Category)
		})
	}
	if len(req.Dietary) > 0 {
		dietary := req.Dietary
		preds = append(preds, func(m domain.MenuItem) bool {
			return listing.AllTags(dietary, m.HasDietary)
		})
	}

	filtered := listing.Filter(items, preds...)
	sortMenu(filtered, req.SortBy)

	return &domain.MenuListResponse{
		Items: filtered,
		Count: len(filtered),
		Total: total,
	}
}

func sortMenu(items []domain.MenuItem, key string) {
	switch key {
	case SortByName:
		listing.SortStable(items, func(a, b domain.MenuItem) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		})
	case SortByPriceAsc:
		listing.SortStable(items, func(a, b domain.MenuItem) bool {
			return a.Price < b.Price
		})
	case SortByPriceDesc:
		listing.SortStable(items, func(a, b domain.MenuItem) bool {
			return a.Price > b.Price
		})
	case SortByRating:
		listing.SortStable(items, func(a, b domain.MenuItem) bool {
			return a.Rating > b.Rating
		})
	}
}

// allergenWarnings one warning per dish containing any of the viewer's allergens
func allergenWarnings(items []domain.MenuItem, allergies []string) []string {
	var warnings []string
	for i := range items {
		hits := matchAllergens(items[i].Allergens, allergies)
		if len(hits) > 0 {
			warnings = append(warnings, items[i].Name+" contains "+strings.Join(hits, ", "))
		}
	}
	return warnings
}

func matchAllergens(itemAllergens, userAllergies []string) []string {
	var hits []string
	for _, allergen := range itemAllergens {
		for _, allergy := range userAllergies {
			if strings.EqualFold(allergen, allergy) {
				hits = append(hits, allergen)
			}
		}
	}
	sort.Strings(hits)
	return hits
}

func (s *menuService) GetByID(id string) (*domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, ErrMenuItemNotFound
}

func (s *menuService) Categories() []string {
	return domain.MenuCategories
}

// SetAvailability toggles a dish on or off the orderable menu
func (s *menuService) SetAvailability(id string, available bool) (*domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Available = available
			item := s.items[i]
			if s.cache != nil && s.cache.IsAvailable() {
				if err := s.cache.InvalidateMenu(context.Background()); err != nil {
					log.Warn().Err(err).Msg("Failed to invalidate menu cache")
				}
			}
			return &item, nil
		}
	}
	return nil, ErrMenuItemNotFound
}
