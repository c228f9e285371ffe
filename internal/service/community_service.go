package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/listing"
	"github.com/kedaimae/kedai-backend/internal/notify"
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrPollNotFound   = errors.New("poll not found")
	ErrOptionNotFound = errors.New("poll option not found")
	ErrAlreadyVoted   = errors.New("already voted on this poll")
)

// CommunityService forum threads, polls, and the home-cooking showcase.
// Reactions are tracked per viewer: likes and dislikes are mutually
// exclusive toggles, poll votes are once per viewer.
type CommunityService interface {
	ListPosts(req *domain.ListPostsRequest, viewerID string) []domain.ForumPostResponse
	CreatePost(ctx context.Context, viewerID string, author domain.Author, req *domain.CreatePostRequest) *domain.ForumPostResponse
	LikePost(postID, viewerID string) (*domain.ForumPostResponse, error)
	DislikePost(postID, viewerID string) (*domain.ForumPostResponse, error)

	ListPolls(viewerID string) []domain.PollResponse
	Vote(ctx context.Context, pollID, viewerID string, req *domain.VotePollRequest) (*domain.PollResponse, error)

	ListShowcase(viewerID string) []domain.ShowcaseResponse
	LikeShowcase(postID, viewerID string) (*domain.ShowcaseResponse, error)

	Categories() []string
}

// reactions per-content viewer reaction sets
type reactions struct {
	likes    map[string]map[string]bool // contentID -> viewerID
	dislikes map[string]map[string]bool
}

func newReactions() *reactions {
	return &reactions{
		likes:    make(map[string]map[string]bool),
		dislikes: make(map[string]map[string]bool),
	}
}

func mark(set map[string]map[string]bool, contentID, viewerID string, on bool) {
	if set[contentID] == nil {
		set[contentID] = make(map[string]bool)
	}
	if on {
		set[contentID][viewerID] = true
	} else {
		delete(set[contentID], viewerID)
	}
}

func marked(set map[string]map[string]bool, contentID, viewerID string) bool {
	return set[contentID][viewerID]
}

type communityService struct {
	mu       sync.Mutex
	posts    []domain.ForumPost
	polls    []domain.Poll
	showcase []domain.ShowcasePost

	postReactions     *reactions
	showcaseReactions *reactions
	votes             map[string]map[string]string // pollID -> viewerID -> optionID

	notifier notify.Notifier
}

// NewCommunityService constructor
func NewCommunityService(posts []domain.ForumPost, polls []domain.Poll, showcase []domain.ShowcasePost, notifier notify.Notifier) CommunityService {
	if notifier == nil {
		notifier = notify.NewNoop()
	}
	s := &communityService{
		posts:             make([]domain.ForumPost, len(posts)),
		polls:             make([]domain.Poll, len(polls)),
		showcase:          make([]domain.ShowcasePost, len(showcase)),
		postReactions:     newReactions(),
		showcaseReactions: newReactions(),
		votes:             make(map[string]map[string]string),
		notifier:          notifier,
	}
	copy(s.posts, posts)
	copy(s.polls, polls)
	copy(s.showcase, showcase)
	return s
}

func (s *communityService) postResponse(p domain.ForumPost, viewerID string) domain.ForumPostResponse {
	return domain.ForumPostResponse{
		ForumPost: p,
		ReactionState: domain.ReactionState{
			IsLiked:    marked(s.postReactions.likes, p.ID, viewerID),
			IsDisliked: marked(s.postReactions.dislikes, p.ID, viewerID),
		},
	}
}

func (s *communityService) ListPosts(req *domain.ListPostsRequest, viewerID string) []domain.ForumPostResponse {
	s.mu.Lock()
	posts := make([]domain.ForumPost, len(s.posts))
	copy(posts, s.posts)
	s.mu.Unlock()

	var preds []listing.Predicate[domain.ForumPost]
	if req.Search != "" {
		search := req.Search
		preds = append(preds, func(p domain.ForumPost) bool {
			return listing.MatchesSearch(search, []string{p.Title, p.Content, p.Author.Name}, p.Tags)
		})
	}
	if req.Category != "" {
		category := req.Category
		preds = append(preds, func(p domain.ForumPost) bool {
			return listing.MatchesCategory(category, p.Category)
		})
	}

	filtered := listing.Filter(posts, preds...)
	// newest first
	listing.SortStable(filtered, func(a, b domain.ForumPost) bool {
		return a.CreatedAt.After(b.CreatedAt)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ForumPostResponse, 0, len(filtered))
	for _, p := range filtered {
		out = append(out, s.postResponse(p, viewerID))
	}
	return out
}

func (s *communityService) CreatePost(ctx context.Context, viewerID string, author domain.Author, req *domain.CreatePostRequest) *domain.ForumPostResponse {
	post := domain.ForumPost{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		Author:    author,
		Category:  req.Category,
		Tags:      req.Tags,
		Image:     req.Image,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.posts = append(s.posts, post)
	resp := s.postResponse(post, viewerID)
	s.mu.Unlock()

	s.notifier.Publish(ctx, notify.NewEvent(notify.EventPostCreated, viewerID,
		fmt.Sprintf("Post %q published", post.Title)).WithPayload("post_id", post.ID))
	return &resp
}

// LikePost toggles the viewer's like. Liking clears an existing dislike
// so the two can never be set together.
func (s *communityService) LikePost(postID, viewerID string) (*domain.ForumPostResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		p := &s.posts[i]
		liked := marked(s.postReactions.likes, postID, viewerID)
		disliked := marked(s.postReactions.dislikes, postID, viewerID)

		if liked {
			p.Likes--
			mark(s.postReactions.likes, postID, viewerID, false)
		} else {
			p.Likes++
			mark(s.postReactions.likes, postID, viewerID, true)
			if disliked {
				p.Dislikes--
				mark(s.postReactions.dislikes, postID, viewerID, false)
			}
		}
		resp := s.postResponse(*p, viewerID)
		return &resp, nil
	}
	return nil, ErrPostNotFound
}

// DislikePost mirror of LikePost for the dislike toggle
func (s *communityService) DislikePost(postID, viewerID string) (*domain.ForumPostResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		p := &s.posts[i]
		liked := marked(s.postReactions.likes, postID, viewerID)
		disliked := marked(s.postReactions.dislikes, postID, viewerID)

		if disliked {
			p.Dislikes--
			mark(s.postReactions.dislikes, postID, viewerID, false)
		} else {
			p.Dislikes++
			mark(s.postReactions.dislikes, postID, viewerID, true)
			if liked {
				p.Likes--
				mark(s.postReactions.likes, postID, viewerID, false)
			}
		}
		resp := s.postResponse(*p, viewerID)
		return &resp, nil
	}
	return nil, ErrPostNotFound
}

func (s *communityService) pollResponse(p domain.Poll, viewerID string) domain.PollResponse {
	vote := s.votes[p.ID][viewerID]
	return domain.PollResponse{
		Poll:     p,
		HasVoted: vote != "",
		UserVote: vote,
	}
}

func (s *communityService) ListPolls(viewerID string) []domain.PollResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.PollResponse, 0, len(s.polls))
	for _, p := range s.polls {
		out = append(out, s.pollResponse(p, viewerID))
	}
	return out
}

// Vote records the viewer's single vote on a poll
func (s *communityService) Vote(ctx context.Context, pollID, viewerID string, req *domain.VotePollRequest) (*domain.PollResponse, error) {
	s.mu.Lock()
	var resp *domain.PollResponse
	var question string
	err := func() error {
		for i := range s.polls {
			if s.polls[i].ID != pollID {
				continue
			}
			if s.votes[pollID][viewerID] != "" {
				return ErrAlreadyVoted
			}
			poll := &s.polls[i]
			for j := range poll.Options {
				if poll.Options[j].ID == req.OptionID {
					poll.Options[j].Votes++
					poll.TotalVotes++
					if s.votes[pollID] == nil {
						s.votes[pollID] = make(map[string]string)
					}
					s.votes[pollID][viewerID] = req.OptionID
					question = poll.Question
					r := s.pollResponse(*poll, viewerID)
					resp = &r
					return nil
				}
			}
			return ErrOptionNotFound
		}
		return ErrPollNotFound
	}()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, notify.NewEvent(notify.EventVoteRecorded, viewerID,
		"Vote recorded!").WithPayload("poll_id", pollID).WithPayload("question", question))
	return resp, nil
}

func (s *communityService) showcaseResponse(p domain.ShowcasePost, viewerID string) domain.ShowcaseResponse {
	return domain.ShowcaseResponse{
		ShowcasePost: p,
		IsLiked:      marked(s.showcaseReactions.likes, p.ID, viewerID),
	}
}

func (s *communityService) ListShowcase(viewerID string) []domain.ShowcaseResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ShowcaseResponse, 0, len(s.showcase))
	for _, p := range s.showcase {
		out = append(out, s.showcaseResponse(p, viewerID))
	}
	return out
}

// LikeShowcase toggles the viewer's like on a showcase post
func (s *communityService) LikeShowcase(postID, viewerID string) (*domain.ShowcaseResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.showcase {
		if s.showcase[i].ID != postID {
			continue
		}
		p := &s.showcase[i]
		if marked(s.showcaseReactions.likes, postID, viewerID) {
			p.Likes--
			mark(s.showcaseReactions.likes, postID, viewerID, false)
		} else {
			p.Likes++
			mark(s.showcaseReactions.likes, postID, viewerID, true)
		}
		resp := s.showcaseResponse(*p, viewerID)
		return &resp, nil
	}
	return nil, ErrPostNotFound
}

func (s *communityService) Categories() []string {
	return domain.ForumCategories
}
