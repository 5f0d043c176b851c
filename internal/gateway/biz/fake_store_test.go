package biz

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kart-io/mongogate/internal/gateway/store"
	"github.com/kart-io/mongogate/internal/model"
	"github.com/kart-io/mongogate/pkg/errors"
)

// fakeFactory is an in-memory store.Factory for business-layer tests. Its
// connection store enforces the (owner, connection string) uniqueness
// atomically under a mutex, mirroring the unique index semantics.
type fakeFactory struct {
	users *fakeUserStore
	conns *fakeConnectionStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		users: &fakeUserStore{byID: make(map[string]*model.User)},
		conns: &fakeConnectionStore{records: make(map[string][]*model.SavedConnection)},
	}
}

func (f *fakeFactory) Users() store.UserStore             { return f.users }
func (f *fakeFactory) Connections() store.ConnectionStore { return f.conns }
func (f *fakeFactory) Close(context.Context) error        { return nil }

type fakeUserStore struct {
	mu   sync.Mutex
	byID map[string]*model.User
}

func (s *fakeUserStore) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		if u.Username == user.Username || u.Email == user.Email {
			return errors.ErrUserExists
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.byID[user.ID.Hex()] = user
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, errors.ErrUserNotFound
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errors.ErrUserNotFound
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.ErrUserNotFound
}

type fakeConnectionStore struct {
	mu      sync.Mutex
	records map[string][]*model.SavedConnection // owner -> newest first
}

func (s *fakeConnectionStore) Create(_ context.Context, conn *model.SavedConnection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.records[conn.OwnerID] {
		if c.ConnectionString == conn.ConnectionString {
			return errors.ErrConnectionExists
		}
	}
	conn.ID = primitive.NewObjectID()
	conn.CreatedAt = time.Now()
	s.records[conn.OwnerID] = append([]*model.SavedConnection{conn}, s.records[conn.OwnerID]...)
	return nil
}

func (s *fakeConnectionStore) GetByConnectionString(_ context.Context, ownerID, connectionString string) (*model.SavedConnection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.records[ownerID] {
		if c.ConnectionString == connectionString {
			return c, nil
		}
	}
	return nil, errors.ErrConnectionNotFound
}

func (s *fakeConnectionStore) ListByOwner(_ context.Context, ownerID string) ([]*model.SavedConnection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.SavedConnection, len(s.records[ownerID]))
	copy(out, s.records[ownerID])
	return out, nil
}

func (s *fakeConnectionStore) Delete(_ context.Context, ownerID, connectionString string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conns := s.records[ownerID]
	for i, c := range conns {
		if c.ConnectionString == connectionString {
			s.records[ownerID] = append(conns[:i:i], conns[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
