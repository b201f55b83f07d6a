package memory

import (
	"context"

	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
)

var (
	_ repository.UserRepository         = (*UserRepo)(nil)
	_ repository.RefreshTokenRepository = (*RefreshTokenRepo)(nil)
)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	s *Store
}

// Create rechaza usernames repetidos.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	u := *user
	r.s.users[user.ID] = &u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

// RefreshTokenRepo implementación en memoria de RefreshTokenRepository.
type RefreshTokenRepo struct {
	s *Store
}

func (r *RefreshTokenRepo) Create(_ context.Context, token *entity.RefreshToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t := *token
	r.s.tokens[token.ID] = &t
	return nil
}

func (r *RefreshTokenRepo) GetByToken(_ context.Context, token string) (*entity.RefreshToken, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, t := range r.s.tokens {
		if t.Token == token {
			out := *t
			return &out, nil
		}
	}
	return nil, nil
}

func (r *RefreshTokenRepo) Revoke(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t, ok := r.s.tokens[id]; ok {
		t.IsRevoked = true
	}
	return nil
}

func (r *RefreshTokenRepo) RevokeAllForUser(_ context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tokens {
		if t.UserID == userID {
			t.IsRevoked = true
		}
	}
	return nil
}
