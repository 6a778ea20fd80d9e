package entities

import (
	"time"
)

type PaymentStatus string

const (
	PAYMENT_INITIATED PaymentStatus = "INITIATED"
	PAYMENT_REDIRECT  PaymentStatus = "AWAITING_REDIRECT"
	PAYMENT_PAID      PaymentStatus = "PAID"
	PAYMENT_FAILED    PaymentStatus = "FAILED"
	PAYMENT_REFUNDED  PaymentStatus = "REFUNDED"
	PAYMENT_REVERSED  PaymentStatus = "REVERSED"
)

func (s PaymentStatus) IsPaid() bool {
	return s == PAYMENT_PAID
}

func (s PaymentStatus) IsFailed() bool {
	return s == PAYMENT_FAILED
}

func (s PaymentStatus) IsAwaitingRedirect() bool {
	return s == PAYMENT_REDIRECT
}

// PaymentEntity is the per-order payment record the engine upserts. Keyed by
// order id so a replayed callback converges instead of double charging.
type PaymentEntity struct {
	OrderID     string        `json:"order_id" bson:"order_id"`
	Provider    string        `json:"provider" bson:"provider,omitempty"`
	Status      PaymentStatus `json:"status" bson:"status,omitempty"`
	HostLogKey  string        `json:"host_log_key" bson:"host_log_key,omitempty"`
	AuthCode    string        `json:"auth_code" bson:"auth_code,omitempty"`
	BankRef     string        `json:"bank_ref" bson:"bank_ref,omitempty"`
	Xid         string        `json:"xid" bson:"xid,omitempty"`
	Amount      int64         `json:"amount" bson:"amount,omitempty"`
	Currency    string        `json:"currency" bson:"currency,omitempty"`
	Installment string        `json:"installment" bson:"installment,omitempty"`
	FailClass   string        `json:"fail_class" bson:"fail_class,omitempty"`
	FailReason  string        `json:"fail_reason" bson:"fail_reason,omitempty"`
	MaskedPan   string        `json:"masked_pan" bson:"masked_pan,omitempty"`
	PaidAt      time.Time     `json:"paid_at" bson:"paid_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}
