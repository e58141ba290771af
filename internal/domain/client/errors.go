package client

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrPhoneExists    = errors.New("phone number already registered")
)
