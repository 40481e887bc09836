package music

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateUser(ctx context.Context, user User) (User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockStore) FindUserByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockStore) FindUserByID(ctx context.Context, id string) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockStore) AddLikedSong(ctx context.Context, userID, songID string) error {
	args := m.Called(ctx, userID, songID)
	return args.Error(0)
}

func (m *MockStore) RemoveLikedSong(ctx context.Context, userID, songID string) error {
	args := m.Called(ctx, userID, songID)
	return args.Error(0)
}

func (m *MockStore) CreateSong(ctx context.Context, song Song) (Song, error) {
	args := m.Called(ctx, song)
	return args.Get(0).(Song), args.Error(1)
}

func (m *MockStore) ListSongs(ctx context.Context) ([]Song, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Song), args.Error(1)
}

func (m *MockStore) FindSongByID(ctx context.Context, id string) (Song, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Song), args.Error(1)
}

func (m *MockStore) FindSongsByIDs(ctx context.Context, ids []string) ([]Song, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Song), args.Error(1)
}

func (m *MockStore) UpdateSong(ctx context.Context, id string, update SongUpdate) (Song, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(Song), args.Error(1)
}

func (m *MockStore) DeleteSong(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestServer(store Store, uploads Uploader) *Server {
	return NewServer(store, uploads, []byte("test-secret"), time.Hour, log.New(io.Discard))
}

func bearerToken(t *testing.T, s *Server, user User) string {
	t.Helper()
	token, err := s.issueToken(user)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}
	return "Bearer " + token
}

// MockUploader
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, objectName, reader, size, contentType)
	return args.String(0), args.Error(1)
}
