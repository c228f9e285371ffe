package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type dish struct {
	Name       string
	Category   string
	Price      int64
	Vegetarian bool
	Spicy      bool
}

var dishes = []dish{
	{Name: "Nasi Goreng Special", Category: "main-courses", Price: 45000, Spicy: true},
	{Name: "Gado-Gado Jakarta", Category: "appetizers", Price: 35000, Vegetarian: true},
	{Name: "Sate Ayam Madura", Category: "appetizers", Price: 35000},
	{Name: "Es Cendol", Category: "desserts", Price: 15000, Vegetarian: true},
}

func TestFilter(t *testing.T) {
	t.Run("source never mutated", func(t *testing.T) {
		src := append([]dish(nil), dishes...)

		out := Filter(src, func(d dish) bool { return d.Vegetarian })

		assert.Len(t, out, 2)
		assert.Equal(t, dishes, src)
	})

	t.Run("predicates are conjunctive", func(t *testing.T) {
		out := Filter(dishes,
			func(d dish) bool { return d.Category == "appetizers" },
			func(d dish) bool { return d.Vegetarian },
		)

		assert.Len(t, out, 1)
		assert.Equal(t, "Gado-Gado Jakarta", out[0].Name)
	})

	t.Run("no predicates copies everything", func(t *testing.T) {
		out := Filter(dishes)
		assert.Equal(t, dishes, out)
	})
}

func TestSortStable(t *testing.T) {
	t.Run("equal keys keep source order", func(t *testing.T) {
		out := Filter(dishes)
		SortStable(out, func(a, b dish) bool { return a.Price < b.Price })

		// Gado-Gado and Sate share a price; Gado-Gado was seeded first.
		assert.Equal(t, "Es Cendol", out[0].Name)
		assert.Equal(t, "Gado-Gado Jakarta", out[1].Name)
		assert.Equal(t, "Sate Ayam Madura", out[2].Name)
		assert.Equal(t, "Nasi Goreng Special", out[3].Name)
	})

	t.Run("nil comparator is a no-op", func(t *testing.T) {
		out := Filter(dishes)
		SortStable(out, nil)
		assert.Equal(t, dishes, out)
	})
}

func TestMatchesSearch(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		fields   []string
		tags     []string
		expected bool
	}{
		{"empty term matches", "", []string{"Rendang"}, nil, true},
		{"case-insensitive substring", "GORENG", []string{"Nasi Goreng Special"}, nil, true},
		{"description field", "coconut", []string{"Rendang", "slow-cooked beef in coconut curry"}, nil, true},
		{"exact tag match", "rendang", []string{"Family Recipe"}, []string{"rendang", "beef"}, true},
		{"tag match is exact not substring", "rend", []string{"Family Recipe"}, []string{"rendang"}, false},
		{"no match", "pizza", []string{"Nasi Goreng"}, []string{"rice"}, false},
		{"surrounding whitespace trimmed", "  goreng  ", []string{"Nasi Goreng"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchesSearch(tt.term, tt.fields, tt.tags))
		})
	}
}

func TestMatchesCategory(t *testing.T) {
	assert.True(t, MatchesCategory("all", "desserts"))
	assert.True(t, MatchesCategory("", "desserts"))
	assert.True(t, MatchesCategory("desserts", "desserts"))
	assert.False(t, MatchesCategory("drinks", "desserts"))
}

func TestAllTags(t *testing.T) {
	spicyVeg := dish{Vegetarian: true, Spicy: true}
	has := func(d dish) func(string) bool {
		return func(tag string) bool {
			switch tag {
			case "vegetarian":
				return d.Vegetarian
			case "spicy":
				return d.Spicy
			default:
				return true
			}
		}
	}

	t.Run("record with every flag passes", func(t *testing.T) {
		assert.True(t, AllTags([]string{"vegetarian", "spicy"}, has(spicyVeg)))
	})

	t.Run("one missing flag rejects", func(t *testing.T) {
		assert.False(t, AllTags([]string{"vegetarian", "spicy"}, has(dish{Spicy: true})))
	})

	t.Run("empty selection passes everything", func(t *testing.T) {
		assert.True(t, AllTags(nil, has(dish{})))
	})
}
