package domain

import "time"

// Author display info attached to community content
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Level  string `json:"level,omitempty"`
}

// ForumPost a discussion thread in the community forum
type ForumPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	Category  string    `json:"category"`
	Likes     int       `json:"likes"`
	Dislikes  int       `json:"dislikes"`
	Replies   int       `json:"replies"`
	Tags      []string  `json:"tags"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ForumCategories fixed forum category set, "all" as the sentinel
var ForumCategories = []string{
	CategoryAll,
	"recipes",
	"reviews",
	"tips",
	"events",
	"general",
}

// PollOption one choice in a poll with its running tally
type PollOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Poll a community poll. Each user may vote at most once.
type Poll struct {
	ID         string       `json:"id"`
	Question   string       `json:"question"`
	Options    []PollOption `json:"options"`
	TotalVotes int          `json:"total_votes"`
	Author     Author       `json:"author"`
	CreatedAt  time.Time    `json:"created_at"`
}

// ShowcasePost a member-submitted photo post (home cooking showcase)
type ShowcasePost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Author      Author    `json:"author"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreatePostRequest new forum post DTO
type CreatePostRequest struct {
	Title    string   `json:"title" binding:"required,min=3,max=200"`
	Content  string   `json:"content" binding:"required,min=10"`
	Category string   `json:"category" binding:"required"`
	Tags     []string `json:"tags" binding:"omitempty,max=10"`
	Image    string   `json:"image" binding:"omitempty,url"`
}

// VotePollRequest poll vote DTO
type VotePollRequest struct {
	OptionID string `json:"option_id" binding:"required"`
}

// ListPostsRequest forum listing filter parameters
type ListPostsRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}

// ReactionState per-viewer like/dislike flags merged into responses
type ReactionState struct {
	IsLiked    bool `json:"is_liked"`
	IsDisliked bool `json:"is_disliked,omitempty"`
}

// ForumPostResponse post plus the viewer's reaction state
type ForumPostResponse struct {
	ForumPost
	ReactionState
}

// PollResponse poll plus the viewer's vote
type PollResponse struct {
	Poll
	HasVoted bool   `json:"has_voted"`
	UserVote string `json:"user_vote,omitempty"`
}

// ShowcaseResponse showcase post plus the viewer's like state
type ShowcaseResponse struct {
	ShowcasePost
	IsLiked bool `json:"is_liked"`
}
