package handlers

import (
	"context"

	"receipt_keeper/internal/models"
	"receipt_keeper/internal/service"

	"github.com/gin-gonic/gin"
)

// newTestRouter builds the full route tree around a stubbed service.
func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, "")
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// ---- Service mocks shared by the handler tests ----

type mockAuth struct {
	registerUser  models.User
	registerToken string
	registerErr   error
	loginUser     models.User
	loginToken    string
	loginErr      error
	parseID       int
	parseErr      error

	lastRegister   service.RegisterParams
	lastLoginUser  string
	lastParseToken string
}

func (m *mockAuth) Register(ctx context.Context, p service.RegisterParams) (models.User, string, error) {
	m.lastRegister = p
	return m.registerUser, m.registerToken, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, username, password string) (models.User, string, error) {
	m.lastLoginUser = username
	return m.loginUser, m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockProfile struct {
	user          models.User
	getErr        error
	updateErr     error
	changeErr     error
	deleteErr     error
	lastUpdate    service.ProfileUpdate
	lastPasswords [2]string
	lastDeletePwd string
}

func (m *mockProfile) Get(ctx context.Context, userID int) (models.User, error) {
	return m.user, m.getErr
}

func (m *mockProfile) Update(ctx context.Context, userID int, p service.ProfileUpdate) (models.User, error) {
	m.lastUpdate = p
	return m.user, m.updateErr
}

func (m *mockProfile) ChangePassword(ctx context.Context, userID int, current, newPassword string) error {
	m.lastPasswords = [2]string{current, newPassword}
	return m.changeErr
}

func (m *mockProfile) DeleteAccount(ctx context.Context, userID int, password string) error {
	m.lastDeletePwd = password
	return m.deleteErr
}

type mockCategories struct {
	createResp []string
	createErr  error
	deleteResp service.CategoryCascade
	deleteErr  error
	favResp    []string
	favErr     error

	lastCreate string
	lastDelete string
	lastFav    string
	lastAdd    bool
}

func (m *mockCategories) Create(ctx context.Context, userID int, name string) ([]string, error) {
	m.lastCreate = name
	return m.createResp, m.createErr
}

func (m *mockCategories) Delete(ctx context.Context, userID int, name string) (service.CategoryCascade, error) {
	m.lastDelete = name
	return m.deleteResp, m.deleteErr
}

func (m *mockCategories) SetFavourite(ctx context.Context, userID int, name string, add bool) ([]string, error) {
	m.lastFav = name
	m.lastAdd = add
	return m.favResp, m.favErr
}

type mockStats struct {
	stats models.Stats
	err   error
}

func (m *mockStats) Summary(ctx context.Context, userID int) (models.Stats, error) {
	return m.stats, m.err
}

type mockReceipts struct {
	createResp models.Receipt
	createErr  error
	listResp   []models.Receipt
	listErr    error
	getResp    models.Receipt
	getErr     error
	updateResp models.Receipt
	updateErr  error
	deleteErr  error
	itemsResp  []models.CategoryItem
	itemsErr   error

	lastCreate   service.ReceiptParams
	lastUpdateID string
	lastDeleteID string
	lastCategory string
	lastUserID   int
}

func (m *mockReceipts) Create(ctx context.Context, userID int, p service.ReceiptParams) (models.Receipt, error) {
	m.lastUserID = userID
	m.lastCreate = p
	return m.createResp, m.createErr
}

func (m *mockReceipts) List(ctx context.Context, userID int) ([]models.Receipt, error) {
	m.lastUserID = userID
	return m.listResp, m.listErr
}

func (m *mockReceipts) GetByID(ctx context.Context, userID int, id string) (models.Receipt, error) {
	m.lastUserID = userID
	return m.getResp, m.getErr
}

func (m *mockReceipts) Update(ctx context.Context, userID int, id string, p service.ReceiptParams) (models.Receipt, error) {
	m.lastUserID = userID
	m.lastUpdateID = id
	return m.updateResp, m.updateErr
}

func (m *mockReceipts) Delete(ctx context.Context, userID int, id string) error {
	m.lastUserID = userID
	m.lastDeleteID = id
	return m.deleteErr
}

func (m *mockReceipts) CategoryItems(ctx context.Context, userID int, category string) ([]models.CategoryItem, error) {
	m.lastUserID = userID
	m.lastCategory = category
	return m.itemsResp, m.itemsErr
}

type mockExtraction struct {
	draft        models.Draft
	err          error
	lastMimeType string
	lastContent  []byte
}

func (m *mockExtraction) ProcessDocument(ctx context.Context, content []byte, mimeType string) (models.Draft, error) {
	m.lastContent = content
	m.lastMimeType = mimeType
	return m.draft, m.err
}
