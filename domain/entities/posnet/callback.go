package posnet

import (
	"cardpay-system/domain/constants"
)

// CallbackPayload is everything the bank posts back through the shopper's
// browser after 3-D Secure verification. All of it is untrusted until the MAC
// has been verified and the packets resolved through the gateway.
type CallbackPayload struct {
	BankData       string             `json:"bank_data"`
	MerchantData   string             `json:"merchant_data"`
	Sign           string             `json:"sign"`
	Mac            string             `json:"mac"`
	MdStatus       constants.MdStatus `json:"md_status"`
	MdErrorMessage string             `json:"md_error_message"`
	Xid            string             `json:"xid"`
	Amount         string             `json:"amount"`
	Currency       string             `json:"currency"`
	Installment    string             `json:"installment"`
	TxStatus       string             `json:"tx_status"`
}
