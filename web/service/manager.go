package service

import (
	"github.com/re912/cafe-managenent/database"
	"github.com/re912/cafe-managenent/database/model"
	"github.com/re912/cafe-managenent/logger"
	"github.com/re912/cafe-managenent/util/crypto"

	"gorm.io/gorm"
)

// ManagerService manages staff accounts and credential checks.
type ManagerService struct{}

// CheckManager returns the manager when name and password match, nil
// otherwise. Lookup is by name; duplicate names resolve to the first
// inserted row.
func (s *ManagerService) CheckManager(name string, password string) *model.Manager {
	db := database.GetDB()

	manager := &model.Manager{}
	err := db.Model(model.Manager{}).
		Where("name = ?", name).
		First(manager).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check manager err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(manager.Password, password) {
		return nil
	}
	return manager
}

// AddManager hashes the password and stores the account. Names are not
// checked for duplicates.
func (s *ManagerService) AddManager(name string, password string, role string) error {
	hashedPassword, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	db := database.GetDB()
	manager := &model.Manager{
		Name:     name,
		Password: hashedPassword,
		Role:     role,
	}
	return db.Create(manager).Error
}

func (s *ManagerService) GetFirstManager() (*model.Manager, error) {
	db := database.GetDB()
	manager := &model.Manager{}
	err := db.Model(model.Manager{}).First(manager).Error
	if err != nil {
		return nil, err
	}
	return manager, nil
}

func (s *ManagerService) GetManagers() ([]model.Manager, error) {
	db := database.GetDB()
	var managers []model.Manager
	err := db.Find(&managers).Error
	return managers, err
}
