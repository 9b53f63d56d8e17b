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

// Create mocks base method.
func (m *MockRepository) Create(ctx context.Context, recipe *models.Recipe, tagIDs []int64, ingredients []models.RecipeIngredient) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, recipe, tagIDs, ingredients)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockRepositoryMockRecorder) Create(ctx, recipe, tagIDs, ingredients any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRepository)(nil).Create), ctx, recipe, tagIDs, ingredients)
}

// Delete mocks base method.
func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockRepository)(nil).Delete), ctx, id)
}

// GetByID mocks base method.
func (m *MockRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Recipe)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRepository)(nil).GetByID), ctx, id)
}

// IngredientsByRecipe mocks base method.
func (m *MockRepository) IngredientsByRecipe(ctx context.Context, recipeIDs []int64) (map[int64][]models.IngredientAmount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IngredientsByRecipe", ctx, recipeIDs)
	ret0, _ := ret[0].(map[int64][]models.IngredientAmount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IngredientsByRecipe indicates an expected call of IngredientsByRecipe.
func (mr *MockRepositoryMockRecorder) IngredientsByRecipe(ctx, recipeIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IngredientsByRecipe", reflect.TypeOf((*MockRepository)(nil).IngredientsByRecipe), ctx, recipeIDs)
}

// List mocks base method.
func (m *MockRepository) List(ctx context.Context, filter models.RecipeFilter) ([]*models.Recipe, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, filter)
	ret0, _ := ret[0].([]*models.Recipe)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// List indicates an expected call of List.
func (mr *MockRepositoryMockRecorder) List(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockRepository)(nil).List), ctx, filter)
}

// MemberRecipes mocks base method.
func (m *MockRepository) MemberRecipes(ctx context.Context, kind models.MembershipKind, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MemberRecipes", ctx, kind, userID, recipeIDs)
	ret0, _ := ret[0].(map[int64]bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MemberRecipes indicates an expected call of MemberRecipes.
func (mr *MockRepositoryMockRecorder) MemberRecipes(ctx, kind, userID, recipeIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MemberRecipes", reflect.TypeOf((*MockRepository)(nil).MemberRecipes), ctx, kind, userID, recipeIDs)
}

// SubscribedAuthors mocks base method.
func (m *MockRepository) SubscribedAuthors(ctx context.Context, viewerID int64, authorIDs []int64) (map[int64]bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SubscribedAuthors", ctx, viewerID, authorIDs)
	ret0, _ := ret[0].(map[int64]bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SubscribedAuthors indicates an expected call of SubscribedAuthors.
func (mr *MockRepositoryMockRecorder) SubscribedAuthors(ctx, viewerID, authorIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SubscribedAuthors", reflect.TypeOf((*MockRepository)(nil).SubscribedAuthors), ctx, viewerID, authorIDs)
}

// TagsByRecipe mocks base method.
func (m *MockRepository) TagsByRecipe(ctx context.Context, recipeIDs []int64) (map[int64][]models.RecipeTagRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TagsByRecipe", ctx, recipeIDs)
	ret0, _ := ret[0].(map[int64][]models.RecipeTagRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TagsByRecipe indicates an expected call of TagsByRecipe.
func (mr *MockRepositoryMockRecorder) TagsByRecipe(ctx, recipeIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TagsByRecipe", reflect.TypeOf((*MockRepository)(nil).TagsByRecipe), ctx, recipeIDs)
}

// Update mocks base method.
func (m *MockRepository) Update(ctx context.Context, recipe *models.Recipe, tagIDs []int64, ingredients []models.RecipeIngredient) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, recipe, tagIDs, ingredients)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockRepositoryMockRecorder) Update(ctx, recipe, tagIDs, ingredients any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRepository)(nil).Update), ctx, recipe, tagIDs, ingredients)
}

// UsersByID mocks base method.
func (m *MockRepository) UsersByID(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UsersByID", ctx, ids)
	ret0, _ := ret[0].(map[int64]*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UsersByID indicates an expected call of UsersByID.
func (mr *MockRepositoryMockRecorder) UsersByID(ctx, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UsersByID", reflect.TypeOf((*MockRepository)(nil).UsersByID), ctx, ids)
}

// MockImageStore is a mock of ImageStore interface.
type MockImageStore struct {
	ctrl     *gomock.Controller
	recorder *MockImageStoreMockRecorder
	isgomock struct{}
}

// MockImageStoreMockRecorder is the mock recorder for MockImageStore.
type MockImageStoreMockRecorder struct {
	mock *MockImageStore
}

// NewMockImageStore creates a new mock instance.
func NewMockImageStore(ctrl *gomock.Controller) *MockImageStore {
	mock := &MockImageStore{ctrl: ctrl}
	mock.recorder = &MockImageStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockImageStore) EXPECT() *MockImageStoreMockRecorder {
	return m.recorder
}

// Delete mocks base method.
func (m *MockImageStore) Delete(ctx context.Context, ref string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, ref)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockImageStoreMockRecorder) Delete(ctx, ref any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockImageStore)(nil).Delete), ctx, ref)
}

// Save mocks base method.
func (m *MockImageStore) Save(ctx context.Context, prefix string, dataURL string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, prefix, dataURL)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Save indicates an expected call of Save.
func (mr *MockImageStoreMockRecorder) Save(ctx, prefix, dataURL any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockImageStore)(nil).Save), ctx, prefix, dataURL)
}

// URL mocks base method.
func (m *MockImageStore) URL(ref string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "URL", ref)
	ret0, _ := ret[0].(string)
	return ret0
}

// URL indicates an expected call of URL.
func (mr *MockImageStoreMockRecorder) URL(ref any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "URL", reflect.TypeOf((*MockImageStore)(nil).URL), ref)
}
