package music

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password" json:"-"`
	IsAdmin    bool               `bson:"isAdmin" json:"isAdmin"`
	LikedSongs []string           `bson:"likedSongs" json:"likedSongs"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// Likes reports whether songID is in the user's liked songs.
func (u User) Likes(songID string) bool {
	for _, id := range u.LikedSongs {
		if id == songID {
			return true
		}
	}
	return false
}

type Song struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Artist    string             `bson:"artist" json:"artist"`
	Song      string             `bson:"song" json:"song"`
	Img       string             `bson:"img" json:"img"`
	Duration  string             `bson:"duration" json:"duration"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrSongNotFound   = errors.New("song not found")
	ErrDuplicateEmail = errors.New("email already registered")
)
