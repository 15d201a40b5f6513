package service

import (
	"testing"

	"github.com/re912/cafe-managenent/database"
	"github.com/re912/cafe-managenent/database/model"

	"github.com/stretchr/testify/assert"
)

func addTestProduct(t *testing.T, name string) *model.Product {
	t.Helper()
	product := &model.Product{Name: name, Price: 1, Category: "drink"}
	err := database.GetDB().Create(product).Error
	assert.NoError(t, err)
	return product
}

func TestRecordAndEditMovement(t *testing.T) {
	setupTestDB(t)
	service := StockService{}
	product := addTestProduct(t, "espresso")

	err := service.RecordMovement(product.Id, 10, "in", "alice")
	assert.NoError(t, err)

	entries, err := service.GetHistory()
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 10, entries[0].Quantity)
	assert.Equal(t, "in", entries[0].OperationType)
	assert.Equal(t, "alice", entries[0].ResponsiblePerson)
	assert.Equal(t, "espresso", entries[0].ProductName)
	assert.NotEmpty(t, entries[0].Datetime)

	// Edit keeps the original timestamp.
	err = service.UpdateMovement(entries[0].Id, 4, "out", "bob")
	assert.NoError(t, err)
	edited, err := service.GetMovement(entries[0].Id)
	assert.NoError(t, err)
	assert.Equal(t, 4, edited.Quantity)
	assert.Equal(t, "out", edited.OperationType)
	assert.Equal(t, "bob", edited.ResponsiblePerson)
	assert.Equal(t, entries[0].Datetime, edited.Datetime)

	err = service.DeleteMovement(edited.Id)
	assert.NoError(t, err)
	entries, err = service.GetHistory()
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordMovementUnknownProductIsAccepted(t *testing.T) {
	setupTestDB(t)
	service := StockService{}

	// The product reference is unenforced; the row lands in storage but
	// never shows in the joined history.
	err := service.RecordMovement(12345, 3, "in", "alice")
	assert.NoError(t, err)

	var logs []model.StockLog
	assert.NoError(t, database.GetDB().Find(&logs).Error)
	assert.Len(t, logs, 1)

	entries, err := service.GetHistory()
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryOrderedByTimestampDescending(t *testing.T) {
	setupTestDB(t)
	service := StockService{}
	product := addTestProduct(t, "espresso")

	// Insert with explicit timestamps to get a deterministic order.
	times := []string{
		"2026-08-01 09:00:00",
		"2026-08-03 18:30:00",
		"2026-08-02 12:15:00",
	}
	for i, ts := range times {
		log := &model.StockLog{
			ProductId:         product.Id,
			Quantity:          i + 1,
			OperationType:     "in",
			Datetime:          ts,
			ResponsiblePerson: "alice",
		}
		assert.NoError(t, database.GetDB().Create(log).Error)
	}

	entries, err := service.GetHistory()
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	for i := 0; i < len(entries)-1; i++ {
		assert.GreaterOrEqual(t, entries[i].Datetime, entries[i+1].Datetime)
	}
	assert.Equal(t, "2026-08-03 18:30:00", entries[0].Datetime)
}

func TestDeletedProductDropsFromHistoryButNotStorage(t *testing.T) {
	setupTestDB(t)
	stockService := StockService{}
	productService := NewProductService(testUploadConfig(t))

	kept := addTestProduct(t, "espresso")
	doomed := addTestProduct(t, "croissant")

	assert.NoError(t, stockService.RecordMovement(kept.Id, 5, "in", "alice"))
	assert.NoError(t, stockService.RecordMovement(doomed.Id, 2, "in", "alice"))

	assert.NoError(t, productService.DeleteProduct(doomed.Id))

	products, err := productService.GetProducts()
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, kept.Id, products[0].Id)

	// The joined view drops the orphaned row; raw storage keeps it.
	entries, err := stockService.GetHistory()
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, kept.Id, entries[0].ProductId)

	var logs []model.StockLog
	assert.NoError(t, database.GetDB().Find(&logs).Error)
	assert.Len(t, logs, 2)
}
