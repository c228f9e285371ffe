package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/gateway"
	"github.com/kedaimae/kedai-backend/internal/mirror"
	"github.com/kedaimae/kedai-backend/internal/seed"
	"github.com/kedaimae/kedai-backend/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("an account with this email already exists")
)

// AuthService registration, login, and member profiles
type AuthService interface {
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error)
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error)
	GetProfile(userID string) (*domain.User, error)
	ListUsers(query string) []domain.User
	ToggleFavorite(ctx context.Context, userID, itemID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, req *domain.UpdateProfileRequest) (*domain.User, error)
	OrderHistory(ctx context.Context, userID string) ([]domain.Order, error)
}

type authService struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]*domain.User

	jwtManager *jwt.Manager
	identity   gateway.IdentityGateway
	mirror     mirror.Store
	db         *gorm.DB
}

// NewAuthService constructor. Seed users get their passwords hashed
// here, at startup cost, so no hash ever lives in source.
func NewAuthService(seedUsers []seed.SeedUser, jwtManager *jwt.Manager, identity gateway.IdentityGateway, m mirror.Store, db *gorm.DB) (AuthService, error) {
	s := &authService{
		byID:       make(map[string]*domain.User),
		byEmail:    make(map[string]*domain.User),
		jwtManager: jwtManager,
		identity:   identity,
		mirror:     m,
		db:         db,
	}
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user := su.User
		user.PasswordHash = string(hash)
		s.index(&user)
	}
	return s, nil
}

// index callers must hold the write lock (or be in the constructor)
func (s *authService) index(user *domain.User) {
	s.byID[user.ID] = user
	s.byEmail[strings.ToLower(user.Email)] = user
}

// persist mirrors the profile; failures are logged, never surfaced
func (s *authService) persist(ctx context.Context, user *domain.User) {
	if s.mirror == nil {
		return
	}
	if err := mirror.WriteJSON(ctx, s.mirror, mirror.UserKey(user.ID), user); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to mirror user profile")
	}
}

func (s *authService) token(user *domain.User) (string, error) {
	return s.jwtManager.GenerateToken(user.ID, user.Name, user.Email, string(user.Role))
}

func (s *authService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	if _, exists := s.byEmail[email]; exists {
		s.mu.Unlock()
		return nil, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleMember,
		Level:        domain.LevelBronze,
		Preferences:  req.Preferences,
		Notifications: domain.NotificationSettings{
			Email: true,
		},
		CreatedAt: time.Now(),
	}
	s.index(user)
	snapshot := *user
	s.mu.Unlock()

	s.persist(ctx, &snapshot)

	token, err := s.token(&snapshot)
	if err != nil {
		return nil, err
	}
	log.Info().Str("user_id", snapshot.ID).Msg("Member registered")
	return &domain.AuthResponse{Token: token, User: &snapshot}, nil
}

func (s *authService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	// identity provider round trip first, as in production
	if s.identity != nil {
		if err := s.identity.Verify(ctx); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	user, ok := s.byEmail[strings.ToLower(strings.TrimSpace(req.Email))]
	var snapshot domain.User
	if ok {
		snapshot = *user
	}
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(snapshot.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.token(&snapshot)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResponse{Token: token, User: &snapshot}, nil
}

func (s *authService) GetProfile(userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	snapshot := *user
	return &snapshot, nil
}

// ListUsers members matching the query on name or email, sorted by
// name. An empty query returns everyone.
func (s *authService) ListUsers(query string) []domain.User {
	query = strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	users := make([]domain.User, 0, len(s.byID))
	for _, user := range s.byID {
		if query != "" &&
			!strings.Contains(strings.ToLower(user.Name), query) &&
			!strings.Contains(strings.ToLower(user.Email), query) {
			continue
		}
		users = append(users, *user)
	}
	s.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users
}

// ToggleFavorite adds the menu item to the member's favorites, or
// removes it when already present
func (s *authService) ToggleFavorite(ctx context.Context, userID, itemID string) (*domain.User, error) {
	s.mu.Lock()
	user, ok := s.byID[userID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrUserNotFound
	}

	found := false
	for i, fav := range user.Favorites {
		if fav == itemID {
			user.Favorites = append(user.Favorites[:i], user.Favorites[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		user.Favorites = append(user.Favorites, itemID)
	}
	snapshot := *user
	s.mu.Unlock()

	s.persist(ctx, &snapshot)
	return &snapshot, nil
}

// UpdateProfile applies the non-nil fields of the request
func (s *authService) UpdateProfile(ctx context.Context, userID string, req *domain.UpdateProfileRequest) (*domain.User, error) {
	s.mu.Lock()
	user, ok := s.byID[userID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Preferences != nil {
		user.Preferences = *req.Preferences
	}
	if req.Notifications != nil {
		user.Notifications = *req.Notifications
	}
	snapshot := *user
	s.mu.Unlock()

	s.persist(ctx, &snapshot)
	return &snapshot, nil
}

// OrderHistory the member's placed orders, newest first
func (s *authService) OrderHistory(ctx context.Context, userID string) ([]domain.Order, error) {
	if s.db == nil {
		return []domain.Order{}, nil
	}
	var orders []domain.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
