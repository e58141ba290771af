package membership

import (
	"fmt"
	"strings"
	"time"
)

type PlanStatus string

const (
	PlanStatusActive   PlanStatus = "active"
	PlanStatusInactive PlanStatus = "inactive"
)

var validCurrencies = map[string]bool{
	"MAD": true,
	"EUR": true,
	"USD": true,
}

// Plan represents a subscription plan offered by the gym. Price is stored in
// minor units (centimes). Duration is whole months.
type Plan struct {
	id             uint
	name           string
	description    string
	priceCents     int64
	currency       string
	durationMonths int
	status         PlanStatus
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewPlan(name, description string, priceCents int64, currency string, durationMonths int) (*Plan, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("plan name too long (max 100 characters)")
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("plan price cannot be negative")
	}
	if currency == "" {
		currency = "MAD"
	}
	if !validCurrencies[currency] {
		return nil, fmt.Errorf("invalid currency code: %s", currency)
	}
	if durationMonths <= 0 {
		return nil, fmt.Errorf("duration must be at least one month")
	}

	now := time.Now().UTC()
	return &Plan{
		name:           name,
		description:    description,
		priceCents:     priceCents,
		currency:       currency,
		durationMonths: durationMonths,
		status:         PlanStatusActive,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructPlan reconstructs a plan from persistence
func ReconstructPlan(
	id uint,
	name, description string,
	priceCents int64,
	currency string,
	durationMonths int,
	status string,
	version int,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if durationMonths <= 0 {
		return nil, fmt.Errorf("duration must be at least one month")
	}

	planStatus := PlanStatus(status)
	if planStatus != PlanStatusActive && planStatus != PlanStatusInactive {
		return nil, fmt.Errorf("invalid plan status: %s", status)
	}

	return &Plan{
		id:             id,
		name:           name,
		description:    description,
		priceCents:     priceCents,
		currency:       currency,
		durationMonths: durationMonths,
		status:         planStatus,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (p *Plan) ID() uint             { return p.id }
func (p *Plan) Name() string         { return p.name }
func (p *Plan) Description() string  { return p.description }
func (p *Plan) PriceCents() int64    { return p.priceCents }
func (p *Plan) Currency() string     { return p.currency }
func (p *Plan) DurationMonths() int  { return p.durationMonths }
func (p *Plan) Status() PlanStatus   { return p.status }
func (p *Plan) Version() int         { return p.version }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

func (p *Plan) IsActive() bool {
	return p.status == PlanStatusActive
}

// SetID sets the plan ID (only for persistence layer use)
func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

// EndDateFor computes the inclusive end date for a subscription starting on
// startDate: the plan runs durationMonths calendar months, ending the day
// before the anniversary. A 1-month plan starting March 1 ends March 31.
func (p *Plan) EndDateFor(startDate time.Time) time.Time {
	return startDate.AddDate(0, p.durationMonths, 0).AddDate(0, 0, -1)
}

// PricePerMonthCents returns the monthly price in minor units.
func (p *Plan) PricePerMonthCents() int64 {
	if p.durationMonths == 0 {
		return 0
	}
	return p.priceCents / int64(p.durationMonths)
}

// UpdatePricing changes the plan's price and duration. Existing subscriptions
// keep their price snapshot; only future subscriptions see the new values.
func (p *Plan) UpdatePricing(priceCents int64, durationMonths int) error {
	if priceCents < 0 {
		return fmt.Errorf("plan price cannot be negative")
	}
	if durationMonths <= 0 {
		return fmt.Errorf("duration must be at least one month")
	}

	p.priceCents = priceCents
	p.durationMonths = durationMonths
	p.updatedAt = time.Now().UTC()
	p.version++

	return nil
}

// UpdateDetails changes the plan's display fields.
func (p *Plan) UpdateDetails(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("plan name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("plan name too long (max 100 characters)")
	}

	p.name = name
	p.description = description
	p.updatedAt = time.Now().UTC()
	p.version++

	return nil
}

// Activate makes the plan available for new subscriptions.
func (p *Plan) Activate() {
	if p.status == PlanStatusActive {
		return
	}
	p.status = PlanStatusActive
	p.updatedAt = time.Now().UTC()
	p.version++
}

// Deactivate withdraws the plan from sale. Existing subscriptions are untouched.
func (p *Plan) Deactivate() {
	if p.status == PlanStatusInactive {
		return
	}
	p.status = PlanStatusInactive
	p.updatedAt = time.Now().UTC()
	p.version++
}
