// Package migrations brings the database schema up to date.
package migrations

import (
	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
)

// MigrateAll creates or updates every table the application uses.
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.TicketModel{},
		&models.TicketMessageModel{},
		&models.TicketTagModel{},
		&models.SkillModel{},
		&models.QueueModel{},
		&models.AgentSkillModel{},
		&models.TicketSkillModel{},
		&models.QueueAgentModel{},
		&models.QueueTicketModel{},
	)
}
