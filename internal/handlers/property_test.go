package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rental-portal/internal/database"
	"rental-portal/internal/handlers"
	"rental-portal/internal/models"
)

var seq int

func newTestDB(t *testing.T) *database.GormDB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	gdb := database.NewFromDB(db)
	require.NoError(t, gdb.InitSchema())
	t.Cleanup(func() { _ = gdb.Close() })
	return gdb
}

func newTestRouter(t *testing.T) (*gin.Engine, *database.GormDB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := newTestDB(t)

	r := gin.New()
	r.LoadHTMLGlob("../../templates/*.html")
	handlers.NewPropertyHandler(gdb).RegisterRoutes(r)
	admin := r.Group("/api/admin")
	handlers.NewAdminHandler(gdb).RegisterRoutes(admin)
	return r, gdb
}

func seedOwner(t *testing.T, gdb *database.GormDB) *models.Owner {
	t.Helper()
	seq++
	owner := &models.Owner{
		FirstName: "Anna",
		LastName:  "Smirnova",
		Phone:     "+79261234567",
		Email:     fmt.Sprintf("owner%d@example.com", seq),
		Passport:  fmt.Sprintf("45%08d", seq),
	}
	require.NoError(t, gdb.CreateOwner(owner))
	return owner
}

func seedProperty(t *testing.T, gdb *database.GormDB, ownerID uint) *models.Property {
	t.Helper()
	seq++
	property := &models.Property{
		OwnerID:     ownerID,
		Title:       fmt.Sprintf("Flat %d", seq),
		Address:     "1 Main St",
		Price:       decimal.RequireFromString("1200.00"),
		IsAvailable: true,
	}
	require.NoError(t, gdb.CreateProperty(property))
	return property
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePropertyAndList(t *testing.T) {
	r, gdb := newTestRouter(t)
	owner := seedOwner(t, gdb)

	w := postForm(r, "/property/new/", url.Values{
		"owner":       {fmt.Sprint(owner.ID)},
		"title":       {"Sunny Flat"},
		"description": {"South-facing 2BR"},
		"price":       {"1200.50"},
		"address":     {"1 Main St"},
		"is_for_rent": {"on"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sunny Flat")
	assert.Contains(t, w.Body.String(), "1200.50")

	properties, err := gdb.GetAllProperties()
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.True(t, properties[0].IsAvailable)
}

func TestCreateInvalidRerendersAndPersistsNothing(t *testing.T) {
	r, gdb := newTestRouter(t)
	seedOwner(t, gdb)

	w := postForm(r, "/property/new/", url.Values{
		"owner":   {""},
		"title":   {"Broken Flat"},
		"price":   {"twelve"},
		"address": {""},
	})
	// Invalid submissions re-render the form, they do not redirect
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Broken Flat", "submitted values survive the round trip")
	assert.Contains(t, body, "price")

	properties, err := gdb.GetAllProperties()
	require.NoError(t, err)
	assert.Empty(t, properties)
}

func TestEditProperty(t *testing.T) {
	r, gdb := newTestRouter(t)
	owner := seedOwner(t, gdb)
	property := seedProperty(t, gdb, owner.ID)

	w := get(r, fmt.Sprintf("/property/%d/edit/", property.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), property.Title)

	w = postForm(r, fmt.Sprintf("/property/%d/edit/", property.ID), url.Values{
		"owner":   {fmt.Sprint(owner.ID)},
		"title":   {"Renamed Flat"},
		"price":   {"1350.00"},
		"address": {"1 Main St"},
	})
	require.Equal(t, http.StatusFound, w.Code)

	reloaded, err := gdb.GetPropertyByID(property.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Flat", reloaded.Title)
	assert.Equal(t, "1350.00", reloaded.Price.StringFixed(2))
	assert.False(t, reloaded.IsAvailable, "absent checkbox unsets availability")
}

func TestEditUnknownPropertyIs404(t *testing.T) {
	r, _ := newTestRouter(t)

	w := get(r, "/property/999/edit/")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = postForm(r, "/property/999/edit/", url.Values{"title": {"Ghost"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteConfirmThenDelete(t *testing.T) {
	r, gdb := newTestRouter(t)
	owner := seedOwner(t, gdb)
	property := seedProperty(t, gdb, owner.ID)

	// GET renders the confirmation and removes nothing
	w := get(r, fmt.Sprintf("/property/%d/delete/", property.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), property.Title)
	_, err := gdb.GetPropertyByID(property.ID)
	require.NoError(t, err)

	// POST performs the delete
	w = postForm(r, fmt.Sprintf("/property/%d/delete/", property.ID), url.Values{})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	_, err = gdb.GetPropertyByID(property.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	logs, err := gdb.GetRecentDeleteLogs(5)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.DeleteReasonPropertyScreen, logs[0].Reason)
}

func TestDeleteUnknownPropertyIs404(t *testing.T) {
	r, _ := newTestRouter(t)
	w := postForm(r, "/property/999/delete/", url.Values{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHomeRenders(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(r, "/home/")
	assert.Equal(t, http.StatusOK, w.Code)
}
