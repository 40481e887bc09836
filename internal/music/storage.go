package music

import "context"

type Store interface {
	CreateUser(ctx context.Context, user User) (User, error)
	FindUserByEmail(ctx context.Context, email string) (User, error)
	FindUserByID(ctx context.Context, id string) (User, error)
	AddLikedSong(ctx context.Context, userID, songID string) error
	RemoveLikedSong(ctx context.Context, userID, songID string) error

	CreateSong(ctx context.Context, song Song) (Song, error)
	ListSongs(ctx context.Context) ([]Song, error)
	FindSongByID(ctx context.Context, id string) (Song, error)
	FindSongsByIDs(ctx context.Context, ids []string) ([]Song, error)
	UpdateSong(ctx context.Context, id string, update SongUpdate) (Song, error)
	DeleteSong(ctx context.Context, id string) error
}
