package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ljhwogur/raid-hub/internal/core/domain"
	"github.com/ljhwogur/raid-hub/internal/core/ports"
	"github.com/ljhwogur/raid-hub/internal/pkg/metrics"
)

type VideoService struct {
	repo   ports.VideoRepository
	logger zerolog.Logger
}

func NewVideoService(repo ports.VideoRepository, logger zerolog.Logger) *VideoService {
	return &VideoService{repo: repo, logger: logger}
}

// CreateVideo checks the raid difficulty rule and persists the submission.
// Nothing reaches the repository when the rule rejects it.
func (s *VideoService) CreateVideo(ctx context.Context, input ports.CreateVideoInput) (*domain.RaidVideo, error) {
	if err := domain.ValidateDifficulty(input.RaidName, input.Difficulty); err != nil {
		metrics.VideosRejectedTotal.WithLabelValues("invalid_difficulty").Inc()
		allowed, _ := domain.AllowedDifficulties(input.RaidName)
		s.logger.Warn().Str("raid", input.RaidName).Str("difficulty", input.Difficulty).Strs("allowed", allowed).Msg("video rejected")
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.RaidVideo{
		Title:        input.Title,
		YoutubeURL:   input.YoutubeURL,
		UploaderName: input.UploaderName,
		RaidName:     input.RaidName,
		Difficulty:   input.Difficulty,
		Gate:         input.Gate,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create video")
		return nil, fmt.Errorf("create video: %w", err)
	}

	metrics.VideosCreatedTotal.WithLabelValues(created.RaidName).Inc()
	s.logger.Info().Str("id", created.ID).Str("raid", created.RaidName).Msg("video created")
	return created, nil
}

// ListVideos returns every video in insertion order, never nil.
func (s *VideoService) ListVideos(ctx context.Context) ([]domain.RaidVideo, error) {
	videos, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	if videos == nil {
		videos = []domain.RaidVideo{}
	}
	return videos, nil
}

// DeleteVideo removes a video. Deleting an unknown id succeeds.
func (s *VideoService) DeleteVideo(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	s.logger.Info().Str("id", id).Msg("video deleted")
	return nil
}
