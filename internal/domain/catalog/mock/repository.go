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

// GetIngredient mocks base method.
func (m *MockRepository) GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetIngredient", ctx, id)
	ret0, _ := ret[0].(*models.Ingredient)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetIngredient indicates an expected call of GetIngredient.
func (mr *MockRepositoryMockRecorder) GetIngredient(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetIngredient", reflect.TypeOf((*MockRepository)(nil).GetIngredient), ctx, id)
}

// GetTag mocks base method.
func (m *MockRepository) GetTag(ctx context.Context, id int64) (*models.Tag, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTag", ctx, id)
	ret0, _ := ret[0].(*models.Tag)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTag indicates an expected call of GetTag.
func (mr *MockRepositoryMockRecorder) GetTag(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTag", reflect.TypeOf((*MockRepository)(nil).GetTag), ctx, id)
}

// InsertIngredients mocks base method.
func (m *MockRepository) InsertIngredients(ctx context.Context, ingredients []*models.Ingredient) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertIngredients", ctx, ingredients)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// InsertIngredients indicates an expected call of InsertIngredients.
func (mr *MockRepositoryMockRecorder) InsertIngredients(ctx, ingredients any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertIngredients", reflect.TypeOf((*MockRepository)(nil).InsertIngredients), ctx, ingredients)
}

// InsertTags mocks base method.
func (m *MockRepository) InsertTags(ctx context.Context, tags []*models.Tag) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertTags", ctx, tags)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// InsertTags indicates an expected call of InsertTags.
func (mr *MockRepositoryMockRecorder) InsertTags(ctx, tags any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertTags", reflect.TypeOf((*MockRepository)(nil).InsertTags), ctx, tags)
}

// ListIngredients mocks base method.
func (m *MockRepository) ListIngredients(ctx context.Context) ([]*models.Ingredient, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListIngredients", ctx)
	ret0, _ := ret[0].([]*models.Ingredient)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListIngredients indicates an expected call of ListIngredients.
func (mr *MockRepositoryMockRecorder) ListIngredients(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListIngredients", reflect.TypeOf((*MockRepository)(nil).ListIngredients), ctx)
}

// ListTags mocks base method.
func (m *MockRepository) ListTags(ctx context.Context) ([]*models.Tag, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTags", ctx)
	ret0, _ := ret[0].([]*models.Tag)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTags indicates an expected call of ListTags.
func (mr *MockRepositoryMockRecorder) ListTags(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTags", reflect.TypeOf((*MockRepository)(nil).ListTags), ctx)
}

// SearchIngredients mocks base method.
func (m *MockRepository) SearchIngredients(ctx context.Context, prefix string, limit int) ([]*models.Ingredient, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchIngredients", ctx, prefix, limit)
	ret0, _ := ret[0].([]*models.Ingredient)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SearchIngredients indicates an expected call of SearchIngredients.
func (mr *MockRepositoryMockRecorder) SearchIngredients(ctx, prefix, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchIngredients", reflect.TypeOf((*MockRepository)(nil).SearchIngredients), ctx, prefix, limit)
}
