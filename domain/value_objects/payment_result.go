package value_objects

// PaymentResult is what every facade operation hands back to the checkout
// layer: outcome plus classification plus a message it can show. Expected
// failures never surface as raw errors across this boundary.
type PaymentResult struct {
	Approved      bool   `json:"approved"`
	Class         string `json:"class,omitempty"`
	OrderID       string `json:"order_id"`
	HostLogKey    string `json:"host_log_key,omitempty"`
	AuthCode      string `json:"auth_code,omitempty"`
	BankRef       string `json:"bank_ref,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	ErrorCode     string `json:"error_code,omitempty"`
	ErrorMessage  string `json:"error_message,omitempty"`
	UserMessage   string `json:"user_message,omitempty"`

	// set when the shopper has to be sent to the bank first
	Redirect *RedirectForm `json:"redirect,omitempty"`
}

// RedirectForm is the auto-submitting form the checkout renders to push the
// shopper to the bank's verification page.
type RedirectForm struct {
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields"`
}

type PointBalance struct {
	Point       string `json:"point"`
	PointAmount string `json:"point_amount"`
}
