package posnet

import "encoding/xml"

// Request is the single document root the gateway accepts. Exactly one
// operation element must be set; nil operations are omitted from the wire
// because the gateway treats an absent tag and an empty tag differently.
type Request struct {
	XMLName    xml.Name `xml:"posnetRequest"`
	MerchantID string   `xml:"mid"`
	TerminalID string   `xml:"tid"`

	Sale         *Sale         `xml:"sale,omitempty"`
	Auth         *Auth         `xml:"auth,omitempty"`
	Capture      *Capture      `xml:"capt,omitempty"`
	Reverse      *Reverse      `xml:"reverse,omitempty"`
	Return       *Return       `xml:"return,omitempty"`
	PointInquiry *PointInquiry `xml:"pointinquiry,omitempty"`
	Agreement    *Agreement    `xml:"agreement,omitempty"`
	OosRequest   *OosRequest   `xml:"oosRequestData,omitempty"`
	OosResolve   *OosResolve   `xml:"oosResolveMerchantData,omitempty"`
	OosTranData  *OosTranData  `xml:"oosTranData,omitempty"`
}

// Operation names as they appear on the wire and in the transaction log.
const (
	OpSale         = "sale"
	OpAuth         = "auth"
	OpCapture      = "capt"
	OpReverse      = "reverse"
	OpReturn       = "return"
	OpPointInquiry = "pointinquiry"
	OpAgreement    = "agreement"
	OpOosRequest   = "oosRequestData"
	OpOosResolve   = "oosResolveMerchantData"
	OpOosTranData  = "oosTranData"
)

// Operation reports which operation element is populated.
func (r *Request) Operation() string {
	switch {
	case r.Sale != nil:
		return OpSale
	case r.Auth != nil:
		return OpAuth
	case r.Capture != nil:
		return OpCapture
	case r.Reverse != nil:
		return OpReverse
	case r.Return != nil:
		return OpReturn
	case r.PointInquiry != nil:
		return OpPointInquiry
	case r.Agreement != nil:
		return OpAgreement
	case r.OosRequest != nil:
		return OpOosRequest
	case r.OosResolve != nil:
		return OpOosResolve
	case r.OosTranData != nil:
		return OpOosTranData
	}
	return ""
}

// Sale charges the card in one step.
type Sale struct {
	OrderID        string `xml:"orderID"`
	Amount         string `xml:"amount"`
	CurrencyCode   string `xml:"currencyCode"`
	CardNumber     string `xml:"ccno"`
	ExpDate        string `xml:"expDate"`
	Cvc            string `xml:"cvc,omitempty"`
	CardHolderName string `xml:"cardHolderName,omitempty"`
	Installment    string `xml:"installment,omitempty"`
}

// Auth blocks the amount; a later capture moves the money.
type Auth struct {
	OrderID        string `xml:"orderID"`
	Amount         string `xml:"amount"`
	CurrencyCode   string `xml:"currencyCode"`
	CardNumber     string `xml:"ccno"`
	ExpDate        string `xml:"expDate"`
	Cvc            string `xml:"cvc,omitempty"`
	CardHolderName string `xml:"cardHolderName,omitempty"`
	Installment    string `xml:"installment,omitempty"`
}

type Capture struct {
	OrderID      string `xml:"orderID"`
	Amount       string `xml:"amount"`
	CurrencyCode string `xml:"currencyCode"`
	Installment  string `xml:"installment,omitempty"`
}

// Reverse voids a prior transaction referenced by its host log key.
type Reverse struct {
	Transaction string `xml:"transaction"`
	HostLogKey  string `xml:"hostLogKey"`
	AuthCode    string `xml:"authCode,omitempty"`
}

// Return refunds a settled transaction.
type Return struct {
	Amount       string `xml:"amount"`
	CurrencyCode string `xml:"currencyCode"`
	HostLogKey   string `xml:"hostLogKey"`
}

type PointInquiry struct {
	CardNumber string `xml:"ccno"`
	ExpDate    string `xml:"expDate"`
}

// Agreement queries the status of a previously submitted order reference.
type Agreement struct {
	OrderID string `xml:"orderID"`
}

// OosRequest opens the off-site (3-D Secure) flow and returns the packets the
// shopper's browser posts to the bank.
type OosRequest struct {
	PosnetID       string `xml:"posnetid"`
	XID            string `xml:"XID"`
	Amount         string `xml:"amount"`
	CurrencyCode   string `xml:"currencyCode"`
	Installment    string `xml:"installment,omitempty"`
	TranType       string `xml:"tranType"`
	CardNumber     string `xml:"ccno"`
	ExpDate        string `xml:"expDate"`
	Cvc            string `xml:"cvc,omitempty"`
	CardHolderName string `xml:"cardHolderName,omitempty"`
}

// OosResolve asks the gateway to decrypt and validate the packets that came
// back on the browser callback.
type OosResolve struct {
	BankData     string `xml:"bankData"`
	MerchantData string `xml:"merchantData"`
	Sign         string `xml:"sign"`
	Mac          string `xml:"mac"`
}

// OosTranData finalizes the off-site transaction. Money moves here.
type OosTranData struct {
	BankData string `xml:"bankData"`
	WpAmount string `xml:"wpAmount,omitempty"`
	Mac      string `xml:"mac"`
}
