package database

import "collabhub/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Listing{},
		&models.Proposal{},
		&models.Deliverable{},
		&models.Message{},
	}
}
