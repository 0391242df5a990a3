package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gentle-breeze49/birdkit/internal/cache"
	"github.com/gentle-breeze49/birdkit/internal/twitter/models"
)

//go:generate mockery --with-expecter --name=StatusRepository
type StatusRepository interface {
	// GetStatus returns nil without error when the status is not stored.
	GetStatus(context.Context, int64) (*models.Status, error)
	Store(context.Context, *models.Status) error
}

type cacheStatusRepository struct {
	cache cache.Cache[models.Status]
}

func NewStatusRepository(cache cache.Cache[models.Status]) *cacheStatusRepository {
	return &cacheStatusRepository{
		cache: cache,
	}
}

func (r *cacheStatusRepository) getStatusCacheKey(id int64) string {
	return strings.Join([]string{"twitter", "statuses", strconv.FormatInt(id, 10)}, "/")
}

func (r *cacheStatusRepository) GetStatus(ctx context.Context, statusID int64) (*models.Status, error) {
	status, err := r.cache.Get(ctx, r.getStatusCacheKey(statusID))
	if errors.Is(err, cache.ErrMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to get status from cache")
	}
	return status, nil
}

func (r *cacheStatusRepository) Store(ctx context.Context, status *models.Status) error {
	if status == nil || status.ID == 0 {
		return errors.New("cannot store a status without id")
	}
	err := r.cache.Set(ctx, r.getStatusCacheKey(status.ID), *status)
	if err != nil {
		return errors.Wrap(err, "unable to store status")
	}
	return nil
}
