package service

import (
	"time"

	"github.com/re912/cafe-managenent/database"
	"github.com/re912/cafe-managenent/database/model"
)

const datetimeFormat = "2006-01-02 15:04:05"

// StockHistoryEntry is a stock log row joined with its product name.
type StockHistoryEntry struct {
	model.StockLog
	ProductName string `json:"productName"`
}

// StockService manages the append-only movement ledger.
type StockService struct{}

// RecordMovement appends a movement with a server-assigned timestamp.
// productId is not checked for existence and quantity may be any
// integer; the operation type carries the in/out meaning.
func (s *StockService) RecordMovement(productId int, quantity int, operationType string, responsiblePerson string) error {
	db := database.GetDB()
	log := &model.StockLog{
		ProductId:         productId,
		Quantity:          quantity,
		OperationType:     operationType,
		Datetime:          time.Now().Format(datetimeFormat),
		ResponsiblePerson: responsiblePerson,
	}
	return db.Create(log).Error
}

// UpdateMovement overwrites the editable fields of a log entry. The
// original timestamp is kept. A missing id updates zero rows.
func (s *StockService) UpdateMovement(logId int, quantity int, operationType string, responsiblePerson string) error {
	db := database.GetDB()
	return db.Model(model.StockLog{}).
		Where("id = ?", logId).
		Updates(map[string]any{
			"quantity":           quantity,
			"operation_type":     operationType,
			"responsible_person": responsiblePerson,
		}).
		Error
}

func (s *StockService) DeleteMovement(logId int) error {
	db := database.GetDB()
	return db.Delete(&model.StockLog{}, logId).Error
}

func (s *StockService) GetMovement(logId int) (*model.StockLog, error) {
	db := database.GetDB()
	log := &model.StockLog{}
	err := db.First(log, logId).Error
	if err != nil {
		return nil, err
	}
	return log, nil
}

// GetHistory returns all movements joined with their product name,
// newest first. The inner join drops rows whose product was deleted;
// those rows stay in storage and only vanish from this view.
func (s *StockService) GetHistory() ([]StockHistoryEntry, error) {
	db := database.GetDB()
	var entries []StockHistoryEntry
	err := db.Table("stock_logs").
		Select("stock_logs.*, products.name AS product_name").
		Joins("INNER JOIN products ON products.id = stock_logs.product_id").
		Order("stock_logs.datetime DESC").
		Scan(&entries).
		Error
	return entries, err
}
