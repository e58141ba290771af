package client

import "context"

type Repository interface {
	Create(ctx context.Context, client *Client) error
	GetByID(ctx context.Context, id uint) (*Client, error)
	GetByPhone(ctx context.Context, phone string) (*Client, error)
	GetByFingerprintID(ctx context.Context, fingerprintID string) (*Client, error)
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, filter Filter) ([]*Client, int64, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}

type Filter struct {
	Search   string
	Page     int
	PageSize int
}
