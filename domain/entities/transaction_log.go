package entities

import (
	"time"
)

// TransactionLogEntry is the durable audit trail of one gateway round-trip.
// Request and response documents are stored masked; once Completed is set the
// entry is only ever extended through append-only notes.
type TransactionLogEntry struct {
	CorrelationID string    `json:"correlation_id" bson:"correlation_id"`
	Operation     string    `json:"operation" bson:"operation"`
	OrderID       string    `json:"order_id" bson:"order_id,omitempty"`
	PaymentID     string    `json:"payment_id" bson:"payment_id,omitempty"`
	RequestXML    string    `json:"request_xml" bson:"request_xml,omitempty"`
	ResponseXML   string    `json:"response_xml" bson:"response_xml,omitempty"`
	SentAt        time.Time `json:"sent_at" bson:"sent_at"`
	ReceivedAt    time.Time `json:"received_at" bson:"received_at,omitempty"`
	DurationMs    int64     `json:"duration_ms" bson:"duration_ms,omitempty"`
	Success       bool      `json:"success" bson:"success"`
	ErrorCode     string    `json:"error_code" bson:"error_code,omitempty"`
	ErrorMessage  string    `json:"error_message" bson:"error_message,omitempty"`
	MdStatus      string    `json:"md_status" bson:"md_status,omitempty"`
	Eci           string    `json:"eci" bson:"eci,omitempty"`
	Cavv          string    `json:"cavv" bson:"cavv,omitempty"`
	Completed     bool      `json:"completed" bson:"completed"`
	Notes         []string  `json:"notes" bson:"notes,omitempty"`
}
