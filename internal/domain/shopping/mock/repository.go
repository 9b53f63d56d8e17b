package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/sunar87/foodgram/internal/gateways/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// AggregateCart mocks base method.
func (m *MockRepository) AggregateCart(ctx context.Context, userID int64) ([]models.ShoppingItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AggregateCart", ctx, userID)
	ret0, _ := ret[0].([]models.ShoppingItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AggregateCart indicates an expected call of AggregateCart.
func (mr *MockRepositoryMockRecorder) AggregateCart(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AggregateCart", reflect.TypeOf((*MockRepository)(nil).AggregateCart), ctx, userID)
}
