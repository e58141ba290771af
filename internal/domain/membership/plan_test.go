package membership

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bassir-Elhoussein/gymapp/internal/shared/biztime"
)

func TestNewPlan_ValidInput(t *testing.T) {
	plan, err := NewPlan("  Annual  ", "Full year access", 250000, "MAD", 12)

	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, "Annual", plan.Name(), "name should be trimmed")
	assert.Equal(t, int64(250000), plan.PriceCents())
	assert.Equal(t, 12, plan.DurationMonths())
	assert.True(t, plan.IsActive())
	assert.Equal(t, 1, plan.Version())
}

func TestNewPlan_DefaultsCurrencyToMAD(t *testing.T) {
	plan, err := NewPlan("Monthly", "", 30000, "", 1)

	require.NoError(t, err)
	assert.Equal(t, "MAD", plan.Currency())
}

func TestNewPlan_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name           string
		planName       string
		priceCents     int64
		currency       string
		durationMonths int
	}{
		{"empty name", "", 30000, "MAD", 1},
		{"name too long", strings.Repeat("x", 101), 30000, "MAD", 1},
		{"negative price", "Monthly", -1, "MAD", 1},
		{"unknown currency", "Monthly", 30000, "GBP", 1},
		{"zero duration", "Monthly", 30000, "MAD", 0},
		{"negative duration", "Monthly", 30000, "MAD", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := NewPlan(tt.planName, "", tt.priceCents, tt.currency, tt.durationMonths)
			assert.Error(t, err)
			assert.Nil(t, plan)
		})
	}
}

func TestPlan_EndDateFor(t *testing.T) {
	plan, err := NewPlan("Monthly", "", 30000, "MAD", 1)
	require.NoError(t, err)

	end := plan.EndDateFor(biztime.Date(2024, time.March, 1))

	assert.Equal(t, biztime.Date(2024, time.March, 31), end)
}

func TestPlan_PricePerMonthCents(t *testing.T) {
	plan, err := NewPlan("Quarterly", "", 90000, "MAD", 3)
	require.NoError(t, err)

	assert.Equal(t, int64(30000), plan.PricePerMonthCents())
}

func TestPlan_UpdatePricing(t *testing.T) {
	plan, err := NewPlan("Monthly", "", 30000, "MAD", 1)
	require.NoError(t, err)

	require.NoError(t, plan.UpdatePricing(35000, 1))

	assert.Equal(t, int64(35000), plan.PriceCents())
	assert.Equal(t, 2, plan.Version())

	assert.Error(t, plan.UpdatePricing(-1, 1))
	assert.Error(t, plan.UpdatePricing(35000, 0))
}

func TestPlan_UpdateDetails(t *testing.T) {
	plan, err := NewPlan("Monthly", "Old", 30000, "MAD", 1)
	require.NoError(t, err)

	require.NoError(t, plan.UpdateDetails("Monthly Plus", "New description"))

	assert.Equal(t, "Monthly Plus", plan.Name())
	assert.Equal(t, "New description", plan.Description())

	assert.Error(t, plan.UpdateDetails("", "desc"))
}

func TestPlan_ActivateDeactivate(t *testing.T) {
	plan, err := NewPlan("Monthly", "", 30000, "MAD", 1)
	require.NoError(t, err)

	plan.Deactivate()
	assert.False(t, plan.IsActive())
	version := plan.Version()

	// no-op when already inactive
	plan.Deactivate()
	assert.Equal(t, version, plan.Version())

	plan.Activate()
	assert.True(t, plan.IsActive())
}

func TestPlan_SetID(t *testing.T) {
	plan, err := NewPlan("Monthly", "", 30000, "MAD", 1)
	require.NoError(t, err)

	require.NoError(t, plan.SetID(7))
	assert.Equal(t, uint(7), plan.ID())

	assert.Error(t, plan.SetID(8), "ID cannot be reassigned")
	assert.Equal(t, uint(7), plan.ID())
}

func TestReconstructPlan_RejectsInvalidStatus(t *testing.T) {
	now := biztime.NowUTC()

	plan, err := ReconstructPlan(1, "Monthly", "", 30000, "MAD", 1, "archived", 1, now, now)

	assert.Error(t, err)
	assert.Nil(t, plan)
}
