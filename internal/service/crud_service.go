package service

import (
	"context"

	"fitness-club/internal/model"
	"fitness-club/internal/repository"
)

// CrudService is the per-entity application API used by the form handlers.
type CrudService[T any] interface {
	List(ctx context.Context) ([]*T, error)
	// Get returns apperrors.ErrNotFound for an unknown id.
	Get(ctx context.Context, id int) (*T, error)
	Save(ctx context.Context, entity *T) (*T, error)
	Delete(ctx context.Context, id int) error
}

type CrudServiceImpl[T any] struct {
	repo      repository.CrudRepository[T]
	publisher *ChangePublisher
	entity    string
	idOf      func(*T) int
}

func NewCrudService[T any](repo repository.CrudRepository[T], publisher *ChangePublisher, entity string, idOf func(*T) int) *CrudServiceImpl[T] {
	return &CrudServiceImpl[T]{
		repo:      repo,
		publisher: publisher,
		entity:    entity,
		idOf:      idOf,
	}
}

func (s *CrudServiceImpl[T]) List(ctx context.Context) ([]*T, error) {
	return s.repo.FindAll(ctx)
}

func (s *CrudServiceImpl[T]) Get(ctx context.Context, id int) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CrudServiceImpl[T]) Save(ctx context.Context, entity *T) (*T, error) {
	saved, err := s.repo.Save(ctx, entity)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, s.entity, s.idOf(saved), model.ChangeActionSaved)
	return saved, nil
}

func (s *CrudServiceImpl[T]) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, s.entity, id, model.ChangeActionDeleted)
	return nil
}
