package controller

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/re912/cafe-managenent/config"
	"github.com/re912/cafe-managenent/database"
	"github.com/re912/cafe-managenent/database/model"
	"github.com/re912/cafe-managenent/web/session"

	"github.com/stretchr/testify/assert"
)

func testUploadConfig(t *testing.T) config.UploadConfig {
	return config.UploadConfig{
		Folder:         filepath.Join(t.TempDir(), "uploads"),
		MaxUploadBytes: 16 * 1024 * 1024,
		AllowedExts:    []string{"png", "jpg", "jpeg", "gif"},
	}
}

func postProduct(t *testing.T, engine http.Handler, fields map[string]string, imageName string) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, value := range fields {
		assert.NoError(t, w.WriteField(name, value))
	}
	if imageName != "" {
		fw, err := w.CreateFormFile("image", imageName)
		assert.NoError(t, err)
		_, err = fw.Write([]byte("file content"))
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/add_product", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAddProductStoresAllowedImage(t *testing.T) {
	setupTestDB(t)
	engine := newTestEngine(t)
	NewCatalogController(engine.Group("/"), testUploadConfig(t))

	w := postProduct(t, engine, map[string]string{
		"name":        "espresso",
		"price":       "2.5",
		"category":    "drink",
		"description": "double shot",
	}, "menu.png")
	assert.Equal(t, http.StatusFound, w.Code)

	var products []model.Product
	assert.NoError(t, database.GetDB().Find(&products).Error)
	assert.Len(t, products, 1)
	assert.Equal(t, "espresso", products[0].Name)
	assert.Equal(t, 2.5, products[0].Price)
	assert.NotEmpty(t, products[0].ImageUrl)
}

func TestAddProductRejectsExtensionSilently(t *testing.T) {
	setupTestDB(t)
	engine := newTestEngine(t)
	NewCatalogController(engine.Group("/"), testUploadConfig(t))

	w := postProduct(t, engine, map[string]string{
		"name":  "croissant",
		"price": "1.8",
	}, "x.exe")
	assert.Equal(t, http.StatusFound, w.Code)

	var products []model.Product
	assert.NoError(t, database.GetDB().Find(&products).Error)
	assert.Len(t, products, 1)
	assert.Empty(t, products[0].ImageUrl)
}

func TestStockOperationUsesCookieResponsiblePerson(t *testing.T) {
	setupTestDB(t)
	engine := newTestEngine(t)
	catalog := NewCatalogController(engine.Group("/"), testUploadConfig(t))
	NewStockController(engine.Group("/"), catalog.ProductService())

	product := &model.Product{Name: "espresso", Price: 2.5}
	assert.NoError(t, database.GetDB().Create(product).Error)

	form := url.Values{
		"product_id":         {"1"},
		"quantity":           {"5"},
		"operation_type":     {"in"},
		"responsible_person": {"form-person"},
	}
	req := httptest.NewRequest(http.MethodPost, "/stock_operation", bytes.NewBufferString(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "alice"})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)

	var logs []model.StockLog
	assert.NoError(t, database.GetDB().Find(&logs).Error)
	assert.Len(t, logs, 1)
	// Cookie wins over the form field.
	assert.Equal(t, "alice", logs[0].ResponsiblePerson)
	assert.Equal(t, 5, logs[0].Quantity)
}

func TestStockOperationFallsBackToFormField(t *testing.T) {
	setupTestDB(t)
	engine := newTestEngine(t)
	catalog := NewCatalogController(engine.Group("/"), testUploadConfig(t))
	NewStockController(engine.Group("/"), catalog.ProductService())

	form := url.Values{
		"product_id":         {"1"},
		"quantity":           {"2"},
		"operation_type":     {"out"},
		"responsible_person": {"bob"},
	}
	req := httptest.NewRequest(http.MethodPost, "/stock_operation", bytes.NewBufferString(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)

	var logs []model.StockLog
	assert.NoError(t, database.GetDB().Find(&logs).Error)
	assert.Len(t, logs, 1)
	assert.Equal(t, "bob", logs[0].ResponsiblePerson)
}
