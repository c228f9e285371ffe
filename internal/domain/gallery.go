package domain

import "time"

// GalleryImage a photo in the restaurant gallery
type GalleryImage struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	Likes       int       `json:"likes"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// GalleryCategories fixed gallery category set, "all" as the sentinel
var GalleryCategories = []string{
	CategoryAll,
	"food",
	"restaurant",
	"events",
	"behind-the-scenes",
}

// ListGalleryRequest gallery listing filter parameters
type ListGalleryRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}

// GalleryImageResponse image plus the viewer's like state
type GalleryImageResponse struct {
	GalleryImage
	IsLiked bool `json:"is_liked"`
}
