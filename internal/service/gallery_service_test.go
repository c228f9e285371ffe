package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/seed"
)

func TestGallery_ListAndFilter(t *testing.T) {
	svc := NewGalleryService(seed.GalleryImages())

	all := svc.List(&domain.ListGalleryRequest{}, "v")
	assert.Len(t, all, 6)

	food := svc.List(&domain.ListGalleryRequest{Category: "food"}, "v")
	assert.Len(t, food, 3)

	byTag := svc.List(&domain.ListGalleryRequest{Search: "es-cendol"}, "v")
	assert.Len(t, byTag, 1)
	assert.Equal(t, "6", byTag[0].ID)

	byTitle := svc.List(&domain.ListGalleryRequest{Search: "kitchen"}, "v")
	assert.Len(t, byTitle, 1)
}

func TestGallery_LikeToggle(t *testing.T) {
	svc := NewGalleryService(seed.GalleryImages())

	img, err := svc.Like("1", "viewer-1")
	assert.NoError(t, err)
	assert.Equal(t, 246, img.Likes)
	assert.True(t, img.IsLiked)

	img, err = svc.Like("1", "viewer-1")
	assert.NoError(t, err)
	assert.Equal(t, 245, img.Likes)
	assert.False(t, img.IsLiked)

	_, err = svc.Like("999", "viewer-1")
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestGallery_LikesAreVisibleToEveryViewer(t *testing.T) {
	svc := NewGalleryService(seed.GalleryImages())

	_, err := svc.Like("2", "viewer-1")
	assert.NoError(t, err)

	other := svc.List(&domain.ListGalleryRequest{Category: "food"}, "viewer-2")
	for _, img := range other {
		if img.ID == "2" {
			assert.Equal(t, 190, img.Likes)
			assert.False(t, img.IsLiked)
		}
	}
}
