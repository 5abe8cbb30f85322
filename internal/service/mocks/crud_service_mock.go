package mocks

import (
	"context"

	"fitness-club/internal/model"

	"github.com/stretchr/testify/mock"
)

// CrudServiceMock implements service.CrudService[T] for any entity type.
type CrudServiceMock[T any] struct {
	mock.Mock
}

func NewCrudServiceMock[T any]() *CrudServiceMock[T] {
	return &CrudServiceMock[T]{}
}

func (m *CrudServiceMock[T]) List(ctx context.Context) ([]*T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*T), args.Error(1)
}

func (m *CrudServiceMock[T]) Get(ctx context.Context, id int) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *CrudServiceMock[T]) Save(ctx context.Context, entity *T) (*T, error) {
	args := m.Called(ctx, entity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *CrudServiceMock[T]) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ActivityServiceMock struct {
	mock.Mock
}

func NewActivityServiceMock() *ActivityServiceMock {
	return &ActivityServiceMock{}
}

func (m *ActivityServiceMock) Recent(ctx context.Context, limit int) ([]*model.ActivityEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ActivityEntry), args.Error(1)
}
