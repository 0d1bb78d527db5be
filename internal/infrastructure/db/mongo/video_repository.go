package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
)

const collectionVideos = "raid_videos"

type VideoRepository struct {
	col *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{col: db.Collection(collectionVideos)}
}

type mongoVideo struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	YoutubeURL   string             `bson:"youtube_url"`
	UploaderName string             `bson:"uploader_name"`
	RaidName     string             `bson:"raid_name"`
	Difficulty   string             `bson:"difficulty"`
	Gate         string             `bson:"gate"`
}

func (m mongoVideo) toDomain() domain.RaidVideo {
	return domain.RaidVideo{
		ID:           m.ID.Hex(),
		Title:        m.Title,
		YoutubeURL:   m.YoutubeURL,
		UploaderName: m.UploaderName,
		RaidName:     m.RaidName,
		Difficulty:   m.Difficulty,
		Gate:         m.Gate,
	}
}

// Create inserts a new video document. The identity is generated client side
// so it is known without a read back.
func (r *VideoRepository) Create(ctx context.Context, v *domain.RaidVideo) (*domain.RaidVideo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoVideo{
		ID:           primitive.NewObjectID(),
		Title:        v.Title,
		YoutubeURL:   v.YoutubeURL,
		UploaderName: v.UploaderName,
		RaidName:     v.RaidName,
		Difficulty:   v.Difficulty,
		Gate:         v.Gate,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert video: %w", err)
	}

	created := doc.toDomain()
	return &created, nil
}

// FindAll returns every video ordered by _id, which follows insertion order.
func (r *VideoRepository) FindAll(ctx context.Context) ([]domain.RaidVideo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find videos: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoVideo
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode videos: %w", err)
	}

	videos := make([]domain.RaidVideo, 0, len(docs))
	for _, d := range docs {
		videos = append(videos, d.toDomain())
	}
	return videos, nil
}

// Delete removes the video with the given id. An id that is not a valid
// ObjectID cannot match any document and is treated as already deleted.
func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	return nil
}

// EnsureIndexes creates the lookup index on raid name.
func (r *VideoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "raid_name", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("video indexes: %w", err)
	}
	return nil
}
