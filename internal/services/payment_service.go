package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/baharkarakas/minivenmo/internal/events"
	"github.com/baharkarakas/minivenmo/internal/metrics"
	"github.com/baharkarakas/minivenmo/internal/models"
	repo "github.com/baharkarakas/minivenmo/internal/repository"
	"github.com/baharkarakas/minivenmo/internal/worker"
)

type PaymentService struct {
	store  repo.Store
	notify notifier
}

// NewPaymentService wires the transfer operation. pub and wp may be nil to disable events.
func NewPaymentService(s repo.Store, pub events.Publisher, wp *worker.Pool) *PaymentService {
	return &PaymentService{store: s, notify: notifier{pub: pub, wp: wp}}
}

// Pay moves amount from payer to payee, drawing on the payer's credit line once cash runs out,
// and records a payment activity. Wallet updates and the activity commit together or not at all.
func (s *PaymentService) Pay(ctx context.Context, payerID, payeeID string, amount decimal.Decimal, description string) (models.Activity, error) {
	ctx, span := tracer.Start(ctx, "payments.pay", trace.WithAttributes(
		attribute.String("payer_id", payerID),
		attribute.String("payee_id", payeeID),
		attribute.String("amount", amount.String()),
	))
	defer span.End()

	act, drawn, err := s.pay(ctx, payerID, payeeID, amount, description)
	if err != nil {
		metrics.PaymentsFailed.WithLabelValues(failureReason(err)).Inc()
		fail(span, "payment", err, "payer_id", payerID, "payee_id", payeeID, "amount", amount.String())
		return models.Activity{}, err
	}

	metrics.PaymentsTotal.Inc()
	metrics.PaymentVolume.Add(amount.InexactFloat64())
	if drawn.IsPositive() {
		metrics.CreditDrawn.Add(drawn.InexactFloat64())
	}
	s.notify.activity(act)
	return act, nil
}

// pay returns the recorded activity and how much of amount came from credit.
func (s *PaymentService) pay(ctx context.Context, payerID, payeeID string, amount decimal.Decimal, description string) (models.Activity, decimal.Decimal, error) {
	users := s.store.Repos().Users
	if _, err := users.GetByID(ctx, payerID); err != nil {
		return models.Activity{}, decimal.Zero, err
	}
	if _, err := users.GetByID(ctx, payeeID); err != nil {
		return models.Activity{}, decimal.Zero, err
	}

	var (
		act   *models.Activity
		drawn decimal.Decimal
	)
	err := s.store.WithTx(ctx, func(r repo.Repositories) error {
		payer, payee, err := lockWallets(ctx, r.Wallets, payerID, payeeID)
		if err != nil {
			return err
		}
		if !amount.IsPositive() {
			return models.ErrInvalidAmount
		}

		creditBefore := payer.Credit
		if err := payer.Draw(amount); err != nil {
			return err
		}
		drawn = payer.Credit.Sub(creditBefore)
		if err := payee.Deposit(amount); err != nil {
			return err
		}

		if err := r.Wallets.Update(ctx, *payer); err != nil {
			return err
		}
		if payee != payer {
			if err := r.Wallets.Update(ctx, *payee); err != nil {
				return err
			}
		}

		act = models.NewPaymentActivity(payerID, payeeID, amount, description)
		return r.Activities.Create(ctx, act)
	})
	if err != nil {
		return models.Activity{}, decimal.Zero, err
	}
	return *act, drawn, nil
}

// lockWallets loads both wallets for update in user id order so that two opposite
// payments cannot deadlock. When payer and payee are the same user both results
// point at one wallet.
func lockWallets(ctx context.Context, wallets repo.Wallets, payerID, payeeID string) (payer, payee *models.Wallet, err error) {
	if payerID == payeeID {
		w, err := wallets.GetForUpdate(ctx, payerID)
		if err != nil {
			return nil, nil, err
		}
		return &w, &w, nil
	}

	first, second := payerID, payeeID
	if second < first {
		first, second = second, first
	}
	a, err := wallets.GetForUpdate(ctx, first)
	if err != nil {
		return nil, nil, err
	}
	b, err := wallets.GetForUpdate(ctx, second)
	if err != nil {
		return nil, nil, err
	}
	if first == payerID {
		return &a, &b, nil
	}
	return &b, &a, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, models.ErrCreditLimitExceeded):
		return "credit_limit"
	case errors.Is(err, models.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, models.ErrMissingWallet):
		return "missing_wallet"
	case errors.Is(err, models.ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
