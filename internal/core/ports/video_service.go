package ports

import (
	"context"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
)

// CreateVideoInput carries a submission. Field lengths are validated at the
// HTTP boundary; the service only enforces the raid difficulty rules.
type CreateVideoInput struct {
	Title        string
	YoutubeURL   string
	UploaderName string
	RaidName     string
	Difficulty   string
	Gate         string
}

type VideoService interface {
	CreateVideo(ctx context.Context, input CreateVideoInput) (*domain.RaidVideo, error)
	ListVideos(ctx context.Context) ([]domain.RaidVideo, error)
	DeleteVideo(ctx context.Context, id string) error
}
