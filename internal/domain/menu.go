package domain

// MenuItem a dish on the restaurant menu
type MenuItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        Money    `json:"price"`
	Image        string   `json:"image"`
	Category     string   `json:"category"`
	Rating       float64  `json:"rating"`
	PrepTime     string   `json:"prep_time"`
	Allergens    []string `json:"allergens"`
	IsSpicy      bool     `json:"is_spicy"`
	IsVegetarian bool     `json:"is_vegetarian"`
	IsVegan      bool     `json:"is_vegan"`
	IsGlutenFree bool     `json:"is_gluten_free"`
	Available    bool     `json:"available"`
}

// HasDietary reports whether the item satisfies a dietary tag
func (m *MenuItem) HasDietary(tag string) bool {
	switch tag {
	case DietaryVegetarian:
		return m.IsVegetarian
	case DietaryVegan:
		return m.IsVegan
	case DietaryGlutenFree:
		return m.IsGlutenFree
	case DietarySpicy:
		return m.IsSpicy
	default:
		return true
	}
}

// Dietary filter tags
const (
	DietaryVegetarian = "vegetarian"
	DietaryVegan      = "vegan"
	DietaryGlutenFree = "gluten-free"
	DietarySpicy      = "spicy"
)

// MenuCategories the fixed category set, "all" included as the sentinel
var MenuCategories = []string{
	CategoryAll,
	"appetizers",
	"main-courses",
	"desserts",
	"beverages",
	"vegetarian",
	"seafood",
	"meat",
}

// CategoryAll matches every record in a category filter
const CategoryAll = "all"

// ListMenuRequest menu listing filter/sort parameters
type ListMenuRequest struct {
	Search   string   `form:"search"`
	Category string   `form:"category"`
	Dietary  []string `form:"dietary"`
	SortBy   string   `form:"sort"`
}

// MenuListResponse filtered menu with totals for the results banner
type MenuListResponse struct {
	Items    []MenuItem `json:"items"`
	Count    int        `json:"count"`
	Total    int        `json:"total"`
	Warnings []string   `json:"warnings,omitempty"`
}
