// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/store-last-login/internal/logger"
	"github.com/MKhiriev/store-last-login/internal/query"
	"github.com/MKhiriev/store-last-login/models"
)

// MemoryStore keeps users and their attributes in process memory. It
// implements both [UserRepository] and [MetaRepository] and is meant for
// tests and throwaway runs; nothing survives a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]models.User
	meta   map[int64]map[string]string
	logger *logger.Logger
}

func NewMemoryStore(log *logger.Logger) *MemoryStore {
	log.Debug().Msg("creating in-memory store")
	return &MemoryStore{
		users:  make(map[int64]models.User),
		meta:   make(map[int64]map[string]string),
		logger: log,
	}
}

func (s *MemoryStore) GetMeta(_ context.Context, userID int64, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.meta[userID][key], nil
}

func (s *MemoryStore) SetMeta(_ context.Context, userID int64, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setLocked(userID, key, value)
	return nil
}

func (s *MemoryStore) BackfillMeta(_ context.Context, key, value string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id := range s.users {
		if _, ok := s.meta[id][key]; ok {
			continue
		}
		s.setLocked(id, key, value)
		n++
	}
	return n, nil
}

func (s *MemoryStore) setLocked(userID int64, key, value string) {
	bucket, ok := s.meta[userID]
	if !ok {
		bucket = make(map[string]string)
		s.meta[userID] = bucket
	}
	bucket[key] = value
}

func (s *MemoryStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Login == user.Login {
			return models.User{}, ErrLoginAlreadyExists
		}
	}

	s.nextID++
	user.ID = s.nextID
	if user.RegisteredAt.IsZero() {
		user.RegisteredAt = time.Now().UTC()
	}
	s.users[user.ID] = user

	return user, nil
}

func (s *MemoryStore) FindUserByLogin(_ context.Context, login string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Login == login {
			return u, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

func (s *MemoryStore) FindUserByID(_ context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return u, nil
}

// ListUsers evaluates the ordering and paging of q. Arbitrary predicates
// cannot be run without SQL, so a plan carrying WHERE clauses is rejected.
// A plan whose vars select a numeric meta sort orders users by that attribute,
// missing values sorting as [models.NeverLoggedIn].
func (s *MemoryStore) ListUsers(ctx context.Context, q *query.UserQuery) ([]models.User, error) {
	if len(q.Where) > 0 {
		logger.FromContext(ctx).Warn().Str("func", "*MemoryStore.ListUsers").Msg("listing predicates are not supported")
		return nil, ErrUnsupportedQuery
	}

	s.mu.RLock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	metaKey := q.Vars.MetaKey
	values := make(map[int64]models.Instant, len(users))
	if metaKey != "" {
		for _, u := range users {
			values[u.ID] = models.NeverLoggedIn
			if raw, ok := s.meta[u.ID][metaKey]; ok {
				if v, err := models.ParseInstant(raw); err == nil {
					values[u.ID] = v
				}
			}
		}
	}
	s.mu.RUnlock()

	desc := q.Order.Direction == query.Desc
	byMeta := metaKey != "" && q.Vars.OrderBy == "meta_value_num"

	slices.SortStableFunc(users, func(a, b models.User) int {
		var c int
		if byMeta {
			c = cmp.Compare(values[a.ID], values[b.ID])
		} else {
			c = compareColumn(q.Order.Expr, a, b)
		}
		if desc {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		return c
	})

	return page(users, q.Offset, q.Limit), nil
}

func compareColumn(expr string, a, b models.User) int {
	switch expr {
	case "users.id":
		return cmp.Compare(a.ID, b.ID)
	case "users.display_name":
		return strings.Compare(a.DisplayName, b.DisplayName)
	case "users.email":
		return strings.Compare(a.Email, b.Email)
	case "users.registered_at":
		return a.RegisteredAt.Compare(b.RegisteredAt)
	default:
		return strings.Compare(a.Login, b.Login)
	}
}

func page(users []models.User, offset, limit uint64) []models.User {
	if offset >= uint64(len(users)) {
		return []models.User{}
	}
	users = users[offset:]
	if limit > 0 && limit < uint64(len(users)) {
		users = users[:limit]
	}
	return users
}
