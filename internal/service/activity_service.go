package service

import (
	"context"

	"fitness-club/internal/model"
	"fitness-club/internal/repository"
)

const DefaultRecentActivity = 15

type ActivityService interface {
	Recent(ctx context.Context, limit int) ([]*model.ActivityEntry, error)
}

type ActivityServiceImpl struct {
	repo repository.ActivityRepository
}

func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &ActivityServiceImpl{repo: repo}
}

func (s *ActivityServiceImpl) Recent(ctx context.Context, limit int) ([]*model.ActivityEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentActivity
	}
	return s.repo.Recent(ctx, limit)
}
