package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"receipt_keeper/internal/models"
	"receipt_keeper/internal/service"
)

func TestUserHandlers_Stats(t *testing.T) {
	stats := &mockStats{
		stats: models.Stats{
			TotalReceipts:     2,
			TotalSpent:        30.01,
			AvgPerReceipt:     15.01,
			CurrentMonthSpent: 20,
			TopCategories:     []models.CategoryTotal{{Category: "Food", Total: 15}},
		},
	}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Statistics: stats})

	w := doJSON(t, r, http.MethodGet, "/users/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var got models.Stats
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if got.TotalSpent != 30.01 || got.AvgPerReceipt != 15.01 || got.TotalReceipts != 2 {
		t.Fatalf("unexpected stats payload: %+v", got)
	}
	if len(got.TopCategories) != 1 || got.TopCategories[0].Category != "Food" {
		t.Fatalf("unexpected top categories: %+v", got.TopCategories)
	}
}

func TestUserHandlers_Profile(t *testing.T) {
	profile := &mockProfile{user: models.User{ID: 1, Username: "ana", Email: "ana@example.com"}}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Profile: profile})

	w := doJSON(t, r, http.MethodGet, "/users/profile", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	profile.getErr = service.ErrNotFound
	w = doJSON(t, r, http.MethodGet, "/users/profile", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", w.Code)
	}
}

func TestUserHandlers_ChangePassword(t *testing.T) {
	profile := &mockProfile{}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Profile: profile})

	w := doJSON(t, r, http.MethodPut, "/users/changePassword",
		`{"currentPassword":"old-secret","newPassword":"new-secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if profile.lastPasswords != [2]string{"old-secret", "new-secret"} {
		t.Fatalf("passwords not passed through: %v", profile.lastPasswords)
	}

	profile.changeErr = service.ErrInvalidPassword
	w = doJSON(t, r, http.MethodPut, "/users/changePassword",
		`{"currentPassword":"wrong","newPassword":"new-secret"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", w.Code)
	}
}

func TestUserHandlers_DeleteUser(t *testing.T) {
	profile := &mockProfile{deleteErr: service.ErrInvalidPassword}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Profile: profile})

	w := doJSON(t, r, http.MethodDelete, "/users/deleteUser?password=wrong", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", w.Code)
	}

	profile.deleteErr = nil
	w = doJSON(t, r, http.MethodDelete, "/users/deleteUser?password=right", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200 (body=%s)", w.Code, w.Body.String())
	}
	if profile.lastDeletePwd != "right" {
		t.Fatalf("password=%q, want right", profile.lastDeletePwd)
	}
}

func TestCategoryHandlers_Create(t *testing.T) {
	categories := &mockCategories{createResp: []string{"Groceries", "Hobbies"}}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Categories: categories})

	w := doJSON(t, r, http.MethodPost, "/users/newCategory", `{"name":"Hobbies"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if categories.lastCreate != "Hobbies" {
		t.Fatalf("created %q, want Hobbies", categories.lastCreate)
	}

	categories.createErr = service.ErrDuplicateCategory
	w = doJSON(t, r, http.MethodPost, "/users/newCategory", `{"name":"hobbies"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400 for duplicate", w.Code)
	}
}

func TestCategoryHandlers_Delete(t *testing.T) {
	categories := &mockCategories{
		deleteResp: service.CategoryCascade{Categories: []string{"Groceries"}, ReceiptsUpdated: 3},
	}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Categories: categories})

	w := doJSON(t, r, http.MethodDelete, "/users/deleteCategory?name=Fitness", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var got service.CategoryCascade
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode cascade: %v", err)
	}
	if got.ReceiptsUpdated != 3 {
		t.Fatalf("receiptsUpdated=%d, want 3", got.ReceiptsUpdated)
	}

	categories.deleteErr = service.ErrNotFound
	w = doJSON(t, r, http.MethodDelete, "/users/deleteCategory?name=Missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", w.Code)
	}
}

func TestCategoryHandlers_Favourites(t *testing.T) {
	categories := &mockCategories{favResp: []string{"Groceries"}}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Categories: categories})

	w := doJSON(t, r, http.MethodPost, "/users/addCategoryToFavourites",
		`{"categoryName":"Groceries","add":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if categories.lastFav != "Groceries" || !categories.lastAdd {
		t.Fatalf("service called with name=%q add=%v", categories.lastFav, categories.lastAdd)
	}

	// missing add flag → 400 before the service is reached
	w = doJSON(t, r, http.MethodPost, "/users/addCategoryToFavourites",
		`{"categoryName":"Groceries"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400 when add flag missing", w.Code)
	}

	categories.favErr = service.ErrFavouritesLimit
	w = doJSON(t, r, http.MethodPost, "/users/addCategoryToFavourites",
		`{"categoryName":"Groceries","add":true}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400 at limit", w.Code)
	}
}
