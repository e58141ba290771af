// Package constants defines shared constant values used across layers.
package constants

// Database table names
const (
	TableClients     = "clients"
	TablePlans       = "subscription_plans"
	TableSubs        = "subscriptions"
	TablePayments    = "payments"
	TableAttendances = "attendances"
)
