package usecases

import (
	"context"
	"fmt"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/payment"
	vo "github.com/Bassir-Elhoussein/gymapp/internal/domain/payment/valueobjects"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/db"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type RecordPaymentCommand struct {
	SubscriptionID uint
	AmountCents    int64
	Method         string
	Notes          *string
	ProcessedByID  *uint
}

type RecordPaymentResult struct {
	Payment      *payment.Payment
	Subscription *membership.Subscription
}

// RecordPaymentUseCase appends a payment to the ledger and updates the
// subscription's paid total as one unit of work. The subscription row is
// locked for the duration of the transaction so two staff members recording
// payments at the same time cannot lose an update. Amounts exceeding the
// remaining balance are accepted; the surplus shows as client credit.
type RecordPaymentUseCase struct {
	paymentRepo      payment.Repository
	subscriptionRepo membership.SubscriptionRepository
	txManager        *db.TransactionManager
	logger           logger.Interface
}

func NewRecordPaymentUseCase(
	paymentRepo payment.Repository,
	subscriptionRepo membership.SubscriptionRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		paymentRepo:      paymentRepo,
		subscriptionRepo: subscriptionRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *RecordPaymentUseCase) Execute(ctx context.Context, cmd RecordPaymentCommand) (*RecordPaymentResult, error) {
	if cmd.AmountCents <= 0 {
		return nil, apperrors.NewValidationError("payment amount must be positive")
	}

	method, err := vo.NewPaymentMethod(cmd.Method)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	var result RecordPaymentResult

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		sub, err := uc.subscriptionRepo.GetByIDForUpdate(txCtx, cmd.SubscriptionID)
		if err != nil {
			return fmt.Errorf("failed to lock subscription: %w", err)
		}
		if sub == nil {
			return apperrors.NewNotFoundError("subscription not found")
		}

		amount := vo.NewMoney(cmd.AmountCents, sub.Currency())
		p, err := payment.NewPayment(cmd.SubscriptionID, amount, method, cmd.Notes, cmd.ProcessedByID)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}

		if err := uc.paymentRepo.Create(txCtx, p); err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		if err := sub.ApplyPayment(cmd.AmountCents); err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return fmt.Errorf("failed to update subscription balance: %w", err)
		}

		result.Payment = p
		result.Subscription = sub
		return nil
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to record payment",
			"error", err,
			"subscription_id", cmd.SubscriptionID,
			"amount_cents", cmd.AmountCents,
		)
		return nil, err
	}

	uc.logger.Infow("payment recorded",
		"payment_id", result.Payment.ID(),
		"subscription_id", cmd.SubscriptionID,
		"amount", result.Payment.Amount().String(),
		"method", method.String(),
		"remaining_balance_cents", result.Subscription.RemainingBalanceCents(),
	)

	return &result, nil
}
