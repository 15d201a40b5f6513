package service

import (
	"testing"

	"github.com/re912/cafe-managenent/database"
	"github.com/re912/cafe-managenent/database/model"

	"github.com/stretchr/testify/assert"
)

func TestAddAndCheckManager(t *testing.T) {
	setupTestDB(t)
	service := ManagerService{}

	err := service.AddManager("alice", "correct-pw", "staff")
	assert.NoError(t, err)

	manager := service.CheckManager("alice", "correct-pw")
	assert.NotNil(t, manager)
	assert.Equal(t, "alice", manager.Name)
	assert.Equal(t, "staff", manager.Role)

	assert.Nil(t, service.CheckManager("alice", "wrong-pw"))
	assert.Nil(t, service.CheckManager("nobody", "correct-pw"))
}

func TestManagerPasswordIsHashed(t *testing.T) {
	setupTestDB(t)
	service := ManagerService{}

	assert.NoError(t, service.AddManager("alice", "correct-pw", "staff"))

	var stored model.Manager
	assert.NoError(t, database.GetDB().Where("name = ?", "alice").First(&stored).Error)
	assert.NotEqual(t, "correct-pw", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestDuplicateManagerNamesAreAccepted(t *testing.T) {
	setupTestDB(t)
	service := ManagerService{}

	assert.NoError(t, service.AddManager("alice", "first-pw", "staff"))
	assert.NoError(t, service.AddManager("alice", "second-pw", "manager"))

	managers, err := service.GetManagers()
	assert.NoError(t, err)
	assert.Len(t, managers, 2)

	// Lookup resolves to the earliest row.
	manager := service.CheckManager("alice", "first-pw")
	assert.NotNil(t, manager)
	assert.Nil(t, service.CheckManager("alice", "second-pw"))
}
