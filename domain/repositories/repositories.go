package repositories

import (
	"context"
	"time"

	"cardpay-system/domain/entities"
	ePosnet "cardpay-system/domain/entities/posnet"
	"cardpay-system/domain/value_objects"
)

// OrderRepository is the engine's window on the host checkout's orders. The
// order lifecycle is owned elsewhere; the engine reads the agreed amount and
// flips the paid flag.
type OrderRepository interface {
	FindByOrderID(ctx context.Context, orderID string) (*entities.OrderEntity, error)
	AmountMinorUnits(ctx context.Context, orderID string) (int64, error)
	MarkPaid(ctx context.Context, orderID string, paidAt time.Time) error
	MarkFailed(ctx context.Context, orderID string, reason string) error
}

// PaymentRepository upserts the per-order payment record. Keyed by order id;
// a second callback delivery converges on the same record.
type PaymentRepository interface {
	Upsert(ctx context.Context, payment *entities.PaymentEntity) (*entities.PaymentEntity, error)
	FindByOrderID(ctx context.Context, orderID string) (*entities.PaymentEntity, error)
}

// TransactionLogRepository persists the masked audit trail. Implementations
// are best-effort; a logging failure never fails the payment.
type TransactionLogRepository interface {
	Create(ctx context.Context, entry *entities.TransactionLogEntry) error
	Complete(ctx context.Context, entry *entities.TransactionLogEntry) error
	AppendNote(ctx context.Context, correlationID string, note string) error
	FindByCorrelationID(ctx context.Context, correlationID string) (*entities.TransactionLogEntry, error)
}

// GatewayRepository is the wire-level facade: one method per gateway
// capability. Implementations classify failures per the errors package and
// never report approval from transport success alone.
type GatewayRepository interface {
	Sale(orderID string, amount int64, currency string, installment int, card value_objects.CardDetails) (*ePosnet.Response, error)
	Authorize(orderID string, amount int64, currency string, installment int, card value_objects.CardDetails) (*ePosnet.Response, error)
	Capture(orderRef string, amount int64, currency string, installment int) (*ePosnet.Response, error)
	Reverse(transaction, hostLogKey, authCode string) (*ePosnet.Response, error)
	Refund(hostLogKey string, amount int64, currency string) (*ePosnet.Response, error)
	PointInquiry(card value_objects.CardDetails) (*ePosnet.Response, error)
	StatusInquiry(orderRef string) (*ePosnet.Response, error)

	OosRequest(xid string, amount int64, currency string, installment int, tranType string, card value_objects.CardDetails) (*ePosnet.Response, error)
	OosResolve(callback *ePosnet.CallbackPayload, mac string) (*ePosnet.Response, error)
	OosFinalize(bankData, wpAmount, mac string) (*ePosnet.Response, error)
}

// PaymentProvider is the capability set the checkout flow consumes; this
// engine is one concrete implementation among the platform's providers.
type PaymentProvider interface {
	InitiatePayment(ctx context.Context, orderID string, card value_objects.CardDetails, installment int) (*value_objects.PaymentResult, error)
	CompletePayment(ctx context.Context, callback *ePosnet.CallbackPayload) (*value_objects.PaymentResult, error)
	Refund(ctx context.Context, orderID string, amount int64) (*value_objects.PaymentResult, error)
	Status(ctx context.Context, orderID string) (*value_objects.PaymentResult, error)
}

// IEventStream publishes payment outcome events. Best-effort.
type IEventStream interface {
	Publish(topic string, key string, payload interface{}) error
}
