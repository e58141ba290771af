package client

import (
	"fmt"
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Client represents the gym member aggregate root. Subscriptions and
// attendance records reference the client by ID from their own tables.
type Client struct {
	id            uint
	fullName      string
	phone         string
	email         string
	gender        *Gender
	birthDate     *time.Time
	fingerprintID *string
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewClient creates a new client. Phone is the unique business identifier
// used at the front desk; email and the fingerprint device token are optional.
func NewClient(fullName, phone, email string, gender *Gender, birthDate *time.Time) (*Client, error) {
	fullName = strings.TrimSpace(fullName)
	phone = strings.TrimSpace(phone)

	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if phone == "" {
		return nil, fmt.Errorf("phone is required")
	}
	if gender != nil && !gender.IsValid() {
		return nil, fmt.Errorf("invalid gender: %s", *gender)
	}

	now := time.Now().UTC()
	return &Client{
		fullName:  fullName,
		phone:     phone,
		email:     email,
		gender:    gender,
		birthDate: birthDate,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructClient reconstructs a client from persistence
func ReconstructClient(
	id uint,
	fullName, phone, email string,
	gender *Gender,
	birthDate *time.Time,
	fingerprintID *string,
	version int,
	createdAt, updatedAt time.Time,
) (*Client, error) {
	if id == 0 {
		return nil, fmt.Errorf("client ID cannot be zero")
	}
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if phone == "" {
		return nil, fmt.Errorf("phone is required")
	}

	return &Client{
		id:            id,
		fullName:      fullName,
		phone:         phone,
		email:         email,
		gender:        gender,
		birthDate:     birthDate,
		fingerprintID: fingerprintID,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (c *Client) ID() uint               { return c.id }
func (c *Client) FullName() string       { return c.fullName }
func (c *Client) Phone() string          { return c.phone }
func (c *Client) Email() string          { return c.email }
func (c *Client) Gender() *Gender        { return c.gender }
func (c *Client) BirthDate() *time.Time  { return c.birthDate }
func (c *Client) FingerprintID() *string { return c.fingerprintID }
func (c *Client) Version() int           { return c.version }
func (c *Client) CreatedAt() time.Time   { return c.createdAt }
func (c *Client) UpdatedAt() time.Time   { return c.updatedAt }

// SetID sets the client ID (only for persistence layer use)
func (c *Client) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("client ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("client ID cannot be zero")
	}
	c.id = id
	return nil
}

// UpdateContact updates the client's contact details.
func (c *Client) UpdateContact(fullName, phone, email string) error {
	fullName = strings.TrimSpace(fullName)
	phone = strings.TrimSpace(phone)

	if fullName == "" {
		return fmt.Errorf("full name is required")
	}
	if phone == "" {
		return fmt.Errorf("phone is required")
	}

	c.fullName = fullName
	c.phone = phone
	c.email = email
	c.updatedAt = time.Now().UTC()
	c.version++

	return nil
}

// EnrollFingerprint stores the opaque token issued by the fingerprint device.
// The token is never interpreted here; matching happens on the device.
func (c *Client) EnrollFingerprint(token string) error {
	if token == "" {
		return fmt.Errorf("fingerprint token is required")
	}

	c.fingerprintID = &token
	c.updatedAt = time.Now().UTC()
	c.version++

	return nil
}

// ClearFingerprint removes the stored device token.
func (c *Client) ClearFingerprint() {
	if c.fingerprintID == nil {
		return
	}

	c.fingerprintID = nil
	c.updatedAt = time.Now().UTC()
	c.version++
}
