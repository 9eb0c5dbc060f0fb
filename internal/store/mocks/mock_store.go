package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Available() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockStore) Insert(ctx context.Context, collection string, doc any) error {
	args := m.Called(ctx, collection, doc)
	return args.Error(0)
}

func (m *MockStore) FindAll(ctx context.Context, collection string) ([]bson.M, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockStore) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	args := m.Called(ctx, collection, filter)
	return args.Get(0).(int64), args.Error(1)
}
