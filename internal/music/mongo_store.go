package music

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	users *mongo.Collection
	songs *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		users: db.Collection("users"),
		songs: db.Collection("songs"),
	}
}

// EnsureIndexes creates the unique email index; registering a duplicate email
// then fails with a duplicate-key error even under concurrent requests.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *MongoStore) CreateUser(ctx context.Context, user User) (User, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	if user.LikedSongs == nil {
		user.LikedSongs = []string{}
	}
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return User{}, ErrDuplicateEmail
		}
		return User{}, err
	}
	return user, nil
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return user, nil
}

func (s *MongoStore) FindUserByID(ctx context.Context, id string) (User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return User{}, ErrUserNotFound
	}
	var user User
	err = s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return user, nil
}

func (s *MongoStore) AddLikedSong(ctx context.Context, userID, songID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrUserNotFound
	}
	// $addToSet keeps likedSongs duplicate-free even when toggles race.
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$addToSet": bson.M{"likedSongs": songID},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *MongoStore) RemoveLikedSong(ctx context.Context, userID, songID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrUserNotFound
	}
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$pull": bson.M{"likedSongs": songID},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *MongoStore) CreateSong(ctx context.Context, song Song) (Song, error) {
	song.ID = primitive.NewObjectID()
	song.CreatedAt = time.Now().UTC()
	if song.Duration == "" {
		song.Duration = "0"
	}
	if _, err := s.songs.InsertOne(ctx, song); err != nil {
		return Song{}, err
	}
	return song, nil
}

func (s *MongoStore) ListSongs(ctx context.Context) ([]Song, error) {
	cur, err := s.songs.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	songs := make([]Song, 0)
	if err := cur.All(ctx, &songs); err != nil {
		return nil, err
	}
	return songs, nil
}

func (s *MongoStore) FindSongByID(ctx context.Context, id string) (Song, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Song{}, ErrSongNotFound
	}
	var song Song
	err = s.songs.FindOne(ctx, bson.M{"_id": oid}).Decode(&song)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Song{}, ErrSongNotFound
		}
		return Song{}, err
	}
	return song, nil
}

func (s *MongoStore) FindSongsByIDs(ctx context.Context, ids []string) ([]Song, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	cur, err := s.songs.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	songs := make([]Song, 0)
	if err := cur.All(ctx, &songs); err != nil {
		return nil, err
	}
	return songs, nil
}

func (s *MongoStore) UpdateSong(ctx context.Context, id string, update SongUpdate) (Song, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Song{}, ErrSongNotFound
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Artist != nil {
		set["artist"] = *update.Artist
	}
	if update.Song != nil {
		set["song"] = *update.Song
	}
	if update.Img != nil {
		set["img"] = *update.Img
	}
	if update.Duration != nil {
		set["duration"] = *update.Duration
	}
	if len(set) == 0 {
		return s.FindSongByID(ctx, id)
	}

	var song Song
	err = s.songs.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&song)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Song{}, ErrSongNotFound
		}
		return Song{}, err
	}
	return song, nil
}

func (s *MongoStore) DeleteSong(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrSongNotFound
	}
	res, err := s.songs.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrSongNotFound
	}
	// Prune the deleted song from every user's liked songs so the reference
	// does not dangle.
	_, err = s.users.UpdateMany(ctx, bson.M{}, bson.M{
		"$pull": bson.M{"likedSongs": id},
	})
	return err
}
