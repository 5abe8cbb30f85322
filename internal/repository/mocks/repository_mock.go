package mocks

import (
	"context"

	"fitness-club/internal/model"

	"github.com/stretchr/testify/mock"
)

// CrudRepositoryMock implements repository.CrudRepository[T].
type CrudRepositoryMock[T any] struct {
	mock.Mock
}

func NewCrudRepositoryMock[T any]() *CrudRepositoryMock[T] {
	return &CrudRepositoryMock[T]{}
}

func (m *CrudRepositoryMock[T]) FindAll(ctx context.Context) ([]*T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*T), args.Error(1)
}

func (m *CrudRepositoryMock[T]) FindByID(ctx context.Context, id int) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *CrudRepositoryMock[T]) Save(ctx context.Context, entity *T) (*T, error) {
	args := m.Called(ctx, entity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *CrudRepositoryMock[T]) DeleteByID(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type TicketPurchaseRepositoryMock struct {
	CrudRepositoryMock[model.TicketPurchase]
}

func NewTicketPurchaseRepositoryMock() *TicketPurchaseRepositoryMock {
	return &TicketPurchaseRepositoryMock{}
}

func (m *TicketPurchaseRepositoryMock) FirstPurchaseOfClient(ctx context.Context, clientID int) (*model.TicketPurchase, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TicketPurchase), args.Error(1)
}

// VisitRepositoryMock runs the check passed to SaveChecked against the purchase configured
// with WithPurchase before consulting its expectations, as the real repository does.
type VisitRepositoryMock struct {
	CrudRepositoryMock[model.Visit]
	purchase *model.TicketPurchase
}

func NewVisitRepositoryMock() *VisitRepositoryMock {
	return &VisitRepositoryMock{}
}

func (m *VisitRepositoryMock) WithPurchase(purchase *model.TicketPurchase) *VisitRepositoryMock {
	m.purchase = purchase
	return m
}

func (m *VisitRepositoryMock) SaveChecked(ctx context.Context, visit *model.Visit, check model.VisitCheck) (*model.Visit, error) {
	if err := check(visit, m.purchase); err != nil {
		return nil, err
	}
	return m.Save(ctx, visit)
}

type ActivityRepositoryMock struct {
	mock.Mock
}

func NewActivityRepositoryMock() *ActivityRepositoryMock {
	return &ActivityRepositoryMock{}
}

func (m *ActivityRepositoryMock) Record(ctx context.Context, entry *model.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepositoryMock) Recent(ctx context.Context, limit int) ([]*model.ActivityEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ActivityEntry), args.Error(1)
}
