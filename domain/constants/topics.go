package constants

const (
	TopicPaymentSuccess       = "payment-success"
	TopicPaymentFailed        = "payment-failed"
	TopicPaymentSecurityAlert = "payment-security-alert"
)

type Message struct {
	Event       string      `json:"t"`
	Key         string      `json:"k"`
	MessageData interface{} `json:"d"`
}
