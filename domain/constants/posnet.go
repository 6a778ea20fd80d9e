package constants

import "strings"

// The gateway speaks its own two-letter currency codes, not ISO 4217.
const (
	CurrencyTL = "TL"
	CurrencyUS = "US"
	CurrencyEU = "EU"
)

// GatewayCurrency maps an ISO-ish input onto the gateway code. Unknown input
// falls back to TL, which is what the host platform trades in.
func GatewayCurrency(code string) string {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case CurrencyTL, "TRY", "TRL", "949":
		return CurrencyTL
	case CurrencyUS, "USD", "840":
		return CurrencyUS
	case CurrencyEU, "EUR", "978":
		return CurrencyEU
	}
	return CurrencyTL
}

const (
	// correlation id header on every outbound call
	HeaderCorrelationID = "X-CORRELATION-ID"
	HeaderMerchantID    = "X-MERCHANT-ID"
	HeaderTerminalID    = "X-TERMINAL-ID"
	HeaderPosnetID      = "X-POSNET-ID"

	// single form field carrying the url-encoded document
	FormFieldXML = "xdata"
)

// --------------------- gateway approval flag ---------------------

type ApprovedFlag string

func (a ApprovedFlag) IsApproved() bool {
	return a == "1"
}

func (a ApprovedFlag) IsDeclined() bool {
	return a == "0" || a == ""
}

// --------------------- gateway response codes ---------------------

type RespCode string

const (
	// the reference was already finalized once; a replayed finalize is a
	// success, not an error
	RespCodeOrderAlreadyCompleted RespCode = "0148"
	// diagnostic code attached by the codec when the response document
	// could not be parsed
	RespCodeUnparsableResponse RespCode = "CLIENT_PARSE"
)

func (c RespCode) IsAlreadyProcessed() bool {
	return c == RespCodeOrderAlreadyCompleted
}

func (c RespCode) IsParseFailure() bool {
	return c == RespCodeUnparsableResponse
}

// --------------------- 3-D Secure verification outcome ---------------------

type MdStatus string

func (m MdStatus) IsVerified() bool {
	return m == "1"
}

// IsAttempt covers partial or attempted verification. Whether these are
// honored is deployment policy, not protocol.
func (m MdStatus) IsAttempt() bool {
	return m == "2" || m == "3" || m == "4"
}

func (m MdStatus) IsFailed() bool {
	return m == "0"
}

func (m MdStatus) IsSystemError() bool {
	return len(m) == 1 && m[0] >= '5' && m[0] <= '9'
}

func (m MdStatus) IsKnown() bool {
	return len(m) == 1 && m[0] >= '0' && m[0] <= '9'
}

var mdStatusReasons = map[MdStatus]string{
	"0": "card verification failed or one-time code timed out",
	"1": "full 3-D Secure verification",
	"2": "card holder or issuer not enrolled",
	"3": "issuer not enrolled",
	"4": "verification attempted, card holder enrolling later",
	"5": "verification could not be performed",
	"6": "3-D Secure system error",
	"7": "gateway system error",
	"8": "unknown card number",
	"9": "issuer is not a 3-D Secure member",
}

func (m MdStatus) Reason() string {
	if reason, ok := mdStatusReasons[m]; ok {
		return reason
	}
	return "unknown verification status"
}

// --------------------- gateway transaction kinds ---------------------

const (
	TranTypeSale = "Sale"
	TranTypeAuth = "Auth"
)
