package posnet

import (
	"cardpay-system/domain/constants"
)

// Response is the parsed gateway answer. Approved is only ever set from the
// gateway's own approval flag; transport success alone never approves.
type Response struct {
	Approved   constants.ApprovedFlag `json:"approved"`
	RespCode   constants.RespCode     `json:"resp_code"`
	RespText   string                 `json:"resp_text"`
	HostLogKey string                 `json:"host_log_key"`
	AuthCode   string                 `json:"auth_code"`
	OrderID    string                 `json:"order_id"`
	TranDate   string                 `json:"tran_date"`

	Point *PointData `json:"point,omitempty"`

	OosRequestData *OosRequestResponse `json:"oos_request_data,omitempty"`
	OosResolveData *ResolvedData       `json:"oos_resolve_data,omitempty"`
}

func (r *Response) IsApproved() bool {
	return r != nil && r.Approved.IsApproved()
}

// IsAlreadyProcessed reports the idempotent-replay answer on a finalize: the
// gateway has completed this reference before.
func (r *Response) IsAlreadyProcessed() bool {
	return r != nil && r.RespCode.IsAlreadyProcessed()
}

type PointData struct {
	Point       string `json:"point"`
	PointAmount string `json:"point_amount"`
}

// OosRequestResponse carries the opaque packets the browser posts to the
// bank's verification page.
type OosRequestResponse struct {
	Data1 string `json:"data1"`
	Data2 string `json:"data2"`
	Sign  string `json:"sign"`
}

// ResolvedData is the decrypted view of a browser callback. It is only ever
// produced by the gateway's resolve round-trip, never derived locally.
type ResolvedData struct {
	Xid            string             `json:"xid"`
	Amount         string             `json:"amount"`
	Currency       string             `json:"currency"`
	Installment    string             `json:"installment"`
	TxStatus       string             `json:"tx_status"`
	MdStatus       constants.MdStatus `json:"md_status"`
	MdErrorMessage string             `json:"md_error_message"`
	Eci            string             `json:"eci"`
	Cavv           string             `json:"cavv"`
	Mac            string             `json:"mac"`
	Point          string             `json:"point"`
	PointAmount    string             `json:"point_amount"`
}
