package entities

import (
	"time"
)

type EntityStatus string

const (
	ORDER_PENDING    EntityStatus = "PENDING"
	ORDER_PROCESSING EntityStatus = "PROCESSING"
	ORDER_VERIFYING  EntityStatus = "VERIFYING"
	ORDER_SUCCESS    EntityStatus = "SUCCESS"
	ORDER_FAILED     EntityStatus = "FAILED"
	ORDER_CANCEL     EntityStatus = "CANCEL"
)

func (o EntityStatus) StatusString() string {
	return string(o)
}

func (o EntityStatus) IsPending() bool {
	return o == ORDER_PENDING
}

func (o EntityStatus) IsProcessing() bool {
	return o == ORDER_PROCESSING
}

func (o EntityStatus) IsVerifying() bool {
	return o == ORDER_VERIFYING
}

func (o EntityStatus) IsSuccess() bool {
	return o == ORDER_SUCCESS
}

func (o EntityStatus) IsFailed() bool {
	return o == ORDER_FAILED
}

func (o EntityStatus) IsCancel() bool {
	return o == ORDER_CANCEL
}

// OrderEntity is the engine's read view of an order. The order lifecycle
// itself lives in the host checkout service; the engine only needs the amount
// and currency agreed before any redirect, plus the customer identity.
type OrderEntity struct {
	OrderID    string       `json:"order_id" bson:"order_id,omitempty"`
	UserID     string       `json:"user_id" bson:"user_id,omitempty"`
	Amount     int64        `json:"amount" bson:"amount,omitempty"` // minor units
	Currency   string       `json:"currency" bson:"currency,omitempty"`
	Status     EntityStatus `json:"status" bson:"status,omitempty"`
	CustomerID string       `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	Email      string       `json:"email,omitempty" bson:"email,omitempty"`
	CreatedAt  time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" bson:"updated_at,omitempty"`
	SucceedAt  time.Time    `json:"succeed_at" bson:"succeed_at,omitempty"`
	FailReason string       `json:"fail_reason" bson:"fail_reason,omitempty"`
}
