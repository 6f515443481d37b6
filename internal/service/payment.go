package service

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	MethodStripe         = "stripe"
	MethodPayPal         = "paypal"
	MethodApplePay       = "apple_pay"
	MethodGooglePay      = "google_pay"
	MethodBankTransfer   = "bank_transfer"
	MethodCashOnDelivery = "cash_on_delivery"
)

// PaymentInput carries the method-specific fields a caller presents.
// Each simulated gateway only looks at the fields it cares about.
type PaymentInput struct {
	CardNumber    string `json:"card_number"`
	Email         string `json:"email"`
	AccountNumber string `json:"account_number"`
	Token         string `json:"token"`
}

// PaymentResult is exactly one of success with a transaction id or
// failure with a reason.
type PaymentResult struct {
	Success       bool
	TransactionID string
	Reason        string
}

type PaymentMethodInfo struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	Enabled       bool    `json:"enabled"`
	ProcessingFee float64 `json:"processing_fee"`
}

// PaymentSimulator stands in for real gateway integrations. Every call
// suspends for Delay to model network latency, except cash on delivery
// which resolves immediately.
type PaymentSimulator struct {
	Delay time.Duration
	Now   func() time.Time
}

func (s *PaymentSimulator) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

type paymentFunc func(input PaymentInput, txnID string) PaymentResult

var paymentHandlers = map[string]paymentFunc{
	MethodStripe: func(input PaymentInput, txnID string) PaymentResult {
		if len(input.CardNumber) >= 16 {
			return PaymentResult{Success: true, TransactionID: txnID}
		}
		return PaymentResult{Reason: "Invalid card details"}
	},
	MethodPayPal: func(input PaymentInput, txnID string) PaymentResult {
		if input.Email != "" {
			return PaymentResult{Success: true, TransactionID: txnID}
		}
		return PaymentResult{Reason: "Invalid PayPal details"}
	},
	MethodBankTransfer: func(input PaymentInput, txnID string) PaymentResult {
		if input.AccountNumber != "" {
			return PaymentResult{Success: true, TransactionID: txnID}
		}
		return PaymentResult{Reason: "Invalid bank details"}
	},
	MethodApplePay:  walletPayment,
	MethodGooglePay: walletPayment,
}

func walletPayment(input PaymentInput, txnID string) PaymentResult {
	if input.Token != "" {
		return PaymentResult{Success: true, TransactionID: txnID}
	}
	return PaymentResult{Reason: "Invalid wallet token"}
}

func (s *PaymentSimulator) transactionID(method string) string {
	prefix := strings.ToUpper(method)
	switch method {
	case MethodBankTransfer:
		prefix = "BANK"
	case MethodCashOnDelivery:
		prefix = "COD"
	}
	return fmt.Sprintf("%s-%d", prefix, s.now().UnixMilli())
}

// Process resolves a payment attempt for the given method. Cash on
// delivery always succeeds without validating anything; unknown methods
// are a validation failure.
func (s *PaymentSimulator) Process(ctx context.Context, method string, input PaymentInput) (PaymentResult, error) {
	if method == MethodCashOnDelivery {
		return PaymentResult{Success: true, TransactionID: s.transactionID(method)}, nil
	}

	handler, ok := paymentHandlers[method]
	if !ok {
		return PaymentResult{}, fmt.Errorf("%w: invalid payment method", ErrValidation)
	}

	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return PaymentResult{}, ctx.Err()
		}
	}

	return handler(input, s.transactionID(method)), nil
}

// PaymentMethods is the static catalogue shown at checkout.
func PaymentMethods() []PaymentMethodInfo {
	return []PaymentMethodInfo{
		{ID: MethodStripe, Name: "Credit/Debit Card", Description: "Pay securely with your card", Icon: "credit_card", Enabled: true},
		{ID: MethodPayPal, Name: "PayPal", Description: "Pay with your PayPal account", Icon: "paypal", Enabled: true},
		{ID: MethodApplePay, Name: "Apple Pay", Description: "Pay with Apple Pay", Icon: "apple", Enabled: true},
		{ID: MethodGooglePay, Name: "Google Pay", Description: "Pay with Google Pay", Icon: "google", Enabled: true},
		{ID: MethodBankTransfer, Name: "Bank Transfer", Description: "Direct bank transfer", Icon: "account_balance", Enabled: true},
		{ID: MethodCashOnDelivery, Name: "Cash on Delivery", Description: "Pay when you receive", Icon: "local_shipping", Enabled: true, ProcessingFee: 2.00},
	}
}
