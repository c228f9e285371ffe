package service

import (
	"errors"
	"sync"

	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/listing"
)

var ErrImageNotFound = errors.New("gallery image not found")

// GalleryService the photo gallery with per-viewer like toggles
type GalleryService interface {
	List(req *domain.ListGalleryRequest, viewerID string) []domain.GalleryImageResponse
	Like(imageID, viewerID string) (*domain.GalleryImageResponse, error)
	Categories() []string
}

type galleryService struct {
	mu     sync.Mutex
	images []domain.GalleryImage
	likes  map[string]map[string]bool // imageID -> viewerID
}

// NewGalleryService constructor
func NewGalleryService(images []domain.GalleryImage) GalleryService {
	owned := make([]domain.GalleryImage, len(images))
	copy(owned, images)
	return &galleryService{
		images: owned,
		likes:  make(map[string]map[string]bool),
	}
}

func (s *galleryService) response(img domain.GalleryImage, viewerID string) domain.GalleryImageResponse {
	return domain.GalleryImageResponse{
		GalleryImage: img,
		IsLiked:      s.likes[img.ID][viewerID],
	}
}

func (s *galleryService) List(req *domain.ListGalleryRequest, viewerID string) []domain.GalleryImageResponse {
	s.mu.Lock()
	images := make([]domain.GalleryImage, len(s.images))
	copy(images, s.images)
	s.mu.Unlock()

	var preds []listing.Predicate[domain.GalleryImage]
	if req.Search != "" {
		search := req.Search
		preds = append(preds, func(img domain.GalleryImage) bool {
			return listing.MatchesSearch(search, []string{img.Title, img.Description}, img.Tags)
		})
	}
	if req.Category != "" {
		category := req.Category
		preds = append(preds, func(img domain.GalleryImage) bool {
			return listing.MatchesCategory(category, img.Category)
		})
	}
	filtered := listing.Filter(images, preds...)

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.GalleryImageResponse, 0, len(filtered))
	for _, img := range filtered {
		out = append(out, s.response(img, viewerID))
	}
	return out
}

// Like toggles the viewer's like on an image
func (s *galleryService) Like(imageID, viewerID string) (*domain.GalleryImageResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.images {
		if s.images[i].ID != imageID {
			continue
		}
		img := &s.images[i]
		if s.likes[imageID][viewerID] {
			img.Likes--
			delete(s.likes[imageID], viewerID)
		} else {
			if s.likes[imageID] == nil {
				s.likes[imageID] = make(map[string]bool)
			}
			img.Likes++
			s.likes[imageID][viewerID] = true
		}
		resp := s.response(*img, viewerID)
		return &resp, nil
	}
	return nil, ErrImageNotFound
}

func (s *galleryService) Categories() []string {
	return domain.GalleryCategories
}
