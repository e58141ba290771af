package migration

import (
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists the persistence models covered by the
// development auto migration strategy.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ClientModel{},
		&models.PlanModel{},
		&models.SubscriptionModel{},
		&models.PaymentModel{},
		&models.AttendanceModel{},
	}
}
