package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/notify"
	"github.com/kedaimae/kedai-backend/internal/seed"
)

func newTestCommunity(capture *notify.Capture) CommunityService {
	return NewCommunityService(seed.ForumPosts(), seed.Polls(), seed.ShowcasePosts(), capture)
}

func TestCommunity_ListPostsNewestFirst(t *testing.T) {
	svc := newTestCommunity(nil)

	posts := svc.ListPosts(&domain.ListPostsRequest{}, "viewer-1")
	assert.Len(t, posts, 3)
	assert.Equal(t, "1", posts[0].ID) // 2024-01-15
	assert.Equal(t, "3", posts[2].ID) // 2024-01-13
}

func TestCommunity_ListPostsFiltered(t *testing.T) {
	svc := newTestCommunity(nil)

	recipes := svc.ListPosts(&domain.ListPostsRequest{Category: "recipes"}, "v")
	assert.Len(t, recipes, 1)

	byTag := svc.ListPosts(&domain.ListPostsRequest{Search: "peanut"}, "v")
	assert.Len(t, byTag, 1)
	assert.Equal(t, "3", byTag[0].ID)
}

func TestCommunity_CreatePost(t *testing.T) {
	capture := notify.NewCapture()
	svc := newTestCommunity(capture)

	post := svc.CreatePost(context.Background(), "viewer-1",
		domain.Author{Name: "Budi"}, &domain.CreatePostRequest{
			Title:    "My First Soto",
			Content:  "Finally nailed the broth after three tries.",
			Category: "general",
			Tags:     []string{"soto", "first-try"},
		})
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "Budi", post.Author.Name)

	posts := svc.ListPosts(&domain.ListPostsRequest{}, "viewer-1")
	assert.Len(t, posts, 4)

	last, _ := capture.Last()
	assert.Equal(t, notify.EventPostCreated, last.Type)
}

func TestCommunity_LikeToggle(t *testing.T) {
	svc := newTestCommunity(nil)

	post, err := svc.LikePost("1", "viewer-1")
	assert.NoError(t, err)
	assert.Equal(t, 157, post.Likes)
	assert.True(t, post.IsLiked)

	// second like un-likes
	post, err = svc.LikePost("1", "viewer-1")
	assert.NoError(t, err)
	assert.Equal(t, 156, post.Likes)
	assert.False(t, post.IsLiked)
}

func TestCommunity_LikeClearsDislike(t *testing.T) {
	svc := newTestCommunity(nil)

	post, err := svc.DislikePost("1", "viewer-1")
	assert.NoError(t, err)
	assert.Equal(t, 4, post.Dislikes)
	assert.True(t, post.IsDisliked)

	post, err = svc.LikePost("1", "viewer-1")
	assert.NoError(t, err)
	assert.Equal(t, 157, post.Likes)
	assert.Equal(t, 3, post.Dislikes)
	assert.True(t, post.IsLiked)
	assert.False(t, post.IsDisliked)
}

func TestCommunity_ReactionsArePerViewer(t *testing.T) {
	svc := newTestCommunity(nil)

	_, err := svc.LikePost("2", "viewer-1")
	assert.NoError(t, err)

	posts := svc.ListPosts(&domain.ListPostsRequest{}, "viewer-2")
	for _, p := range posts {
		assert.False(t, p.IsLiked)
	}
}

func TestCommunity_VoteOnce(t *testing.T) {
	capture := notify.NewCapture()
	svc := newTestCommunity(capture)
	ctx := context.Background()

	poll, err := svc.Vote(ctx, "1", "viewer-1", &domain.VotePollRequest{OptionID: "2"})
	assert.NoError(t, err)
	assert.Equal(t, 39, poll.Options[1].Votes)
	assert.Equal(t, 137, poll.TotalVotes)
	assert.True(t, poll.HasVoted)
	assert.Equal(t, "2", poll.UserVote)

	// a second vote on the same poll is rejected, even for another option
	_, err = svc.Vote(ctx, "1", "viewer-1", &domain.VotePollRequest{OptionID: "3"})
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	// another viewer still votes freely
	_, err = svc.Vote(ctx, "1", "viewer-2", &domain.VotePollRequest{OptionID: "3"})
	assert.NoError(t, err)

	last, _ := capture.Last()
	assert.Equal(t, notify.EventVoteRecorded, last.Type)
}

func TestCommunity_VoteErrors(t *testing.T) {
	svc := newTestCommunity(nil)
	ctx := context.Background()

	_, err := svc.Vote(ctx, "999", "v", &domain.VotePollRequest{OptionID: "1"})
	assert.ErrorIs(t, err, ErrPollNotFound)

	_, err = svc.Vote(ctx, "1", "v", &domain.VotePollRequest{OptionID: "999"})
	assert.ErrorIs(t, err, ErrOptionNotFound)
}

func TestCommunity_ShowcaseLikeToggle(t *testing.T) {
	svc := newTestCommunity(nil)

	post, err := svc.LikeShowcase("1", "viewer-1")
	assert.NoError(t, err)
	assert.Equal(t, 35, post.Likes)
	assert.True(t, post.IsLiked)

	post, err = svc.LikeShowcase("1", "viewer-1")
	assert.NoError(t, err)
	assert.Equal(t, 34, post.Likes)
	assert.False(t, post.IsLiked)

	_, err = svc.LikeShowcase("999", "viewer-1")
	assert.ErrorIs(t, err, ErrPostNotFound)
}
