package valueobjects

import "fmt"

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheque       PaymentMethod = "cheque"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// DefaultPaymentMethod is the named default applied by callers that accept an
// optional method (front-desk payments are overwhelmingly cash). The domain
// itself never defaults; constructors require an explicit method.
const DefaultPaymentMethod = PaymentMethodCash

func NewPaymentMethod(method string) (PaymentMethod, error) {
	pm := PaymentMethod(method)
	if !pm.IsValid() {
		return "", fmt.Errorf("invalid payment method: %s", method)
	}
	return pm, nil
}

func (pm PaymentMethod) IsValid() bool {
	switch pm {
	case PaymentMethodCash, PaymentMethodCheque, PaymentMethodCard, PaymentMethodBankTransfer:
		return true
	default:
		return false
	}
}

func (pm PaymentMethod) String() string {
	return string(pm)
}
