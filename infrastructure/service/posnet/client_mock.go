package posnet

import (
	"strings"
	"time"

	"cardpay-system/domain/constants"
	ePosnet "cardpay-system/domain/entities/posnet"
	"cardpay-system/domain/value_objects"
	pErrors "cardpay-system/errors"
	"cardpay-system/utils/configs"
	"cardpay-system/utils/gen_ids"

	"github.com/spf13/cast"
)

// Test cards recognized by the mock gateway. Each one deterministically
// triggers a failure class so orchestrator branches can be exercised without
// a live bank connection.
const (
	TestCardApproved          = "4111111111111111"
	TestCardInsufficientFunds = "4111111111111129"
	TestCardExpired           = "4111111111111137"
	TestCardThreeDSFailure    = "4111111111111145"
	TestCardTimeout           = "4111111111111152"
	TestCardFraudHold         = "4111111111111160"
)

// mockImpl answers like the gateway would, without a network. Behavior is
// carried inside the opaque packets it issues, so it holds no per-transaction
// state and stays safe for concurrent use.
type mockImpl struct {
	Conf configs.Posnet
	Mac  *MacEngine
}

func NewMockImpl(conf configs.Posnet) *mockImpl {
	return &mockImpl{
		Conf: conf,
		Mac:  NewMacEngine(conf.MerchantID, conf.TerminalID, conf.EncKey),
	}
}

func approvedResponse(orderRef string) *ePosnet.Response {
	return &ePosnet.Response{
		Approved:   "1",
		RespCode:   "00",
		RespText:   "APPROVED",
		HostLogKey: "0" + cast.ToString(time.Now().UnixNano()%900000000+100000000),
		AuthCode:   "M" + cast.ToString(time.Now().UnixNano()%90000+10000),
		OrderID:    orderRef,
	}
}

func declinedResponse(code, text string) *ePosnet.Response {
	return &ePosnet.Response{
		Approved: "0",
		RespCode: constants.RespCode(code),
		RespText: text,
	}
}

func (m *mockImpl) cardOutcome(pan, orderRef string) (*ePosnet.Response, error) {
	switch strings.TrimSpace(pan) {
	case TestCardInsufficientFunds:
		return declinedResponse("0051", "INSUFFICIENT FUNDS"), nil
	case TestCardExpired:
		return declinedResponse("0054", "EXPIRED CARD"), nil
	case TestCardFraudHold:
		return declinedResponse("0004", "PICK UP CARD - FRAUD HOLD"), nil
	case TestCardTimeout:
		return nil, pErrors.NewConnection("gateway unreachable", nil)
	}
	return approvedResponse(orderRef), nil
}

func (m *mockImpl) Sale(orderID string, amount int64, currency string, installment int, card value_objects.CardDetails) (*ePosnet.Response, error) {
	return m.cardOutcome(card.NormalizedNumber(), gen_ids.GatewayOrderRef(orderID, time.Now()))
}

func (m *mockImpl) Authorize(orderID string, amount int64, currency string, installment int, card value_objects.CardDetails) (*ePosnet.Response, error) {
	return m.cardOutcome(card.NormalizedNumber(), gen_ids.GatewayOrderRef(orderID, time.Now()))
}

func (m *mockImpl) Capture(orderRef string, amount int64, currency string, installment int) (*ePosnet.Response, error) {
	return approvedResponse(orderRef), nil
}

func (m *mockImpl) Reverse(transaction, hostLogKey, authCode string) (*ePosnet.Response, error) {
	return approvedResponse(""), nil
}

func (m *mockImpl) Refund(hostLogKey string, amount int64, currency string) (*ePosnet.Response, error) {
	return approvedResponse(""), nil
}

func (m *mockImpl) PointInquiry(card value_objects.CardDetails) (*ePosnet.Response, error) {
	resp := approvedResponse("")
	resp.Point = &ePosnet.PointData{Point: "1500", PointAmount: "750"}
	return resp, nil
}

func (m *mockImpl) StatusInquiry(orderRef string) (*ePosnet.Response, error) {
	return approvedResponse(orderRef), nil
}

// OosRequest issues packets that embed the requested behavior; the shopper
// "returns" them unchanged on the callback, which is exactly how the real
// bank round-trips its opaque data.
func (m *mockImpl) OosRequest(xid string, amount int64, currency string, installment int, tranType string, card value_objects.CardDetails) (*ePosnet.Response, error) {
	pan := card.NormalizedNumber()
	if pan == TestCardTimeout {
		return nil, pErrors.NewConnection("gateway unreachable", nil)
	}

	mdStatus := "1"
	if pan == TestCardThreeDSFailure {
		mdStatus = "0"
	}

	resp := approvedResponse("")
	resp.OosRequestData = &ePosnet.OosRequestResponse{
		Data1: strings.Join([]string{"MOCKBANK", xid, cast.ToString(amount), NormalizeCurrency(currency), mdStatus}, "|"),
		Data2: "MOCKMERCHANT|" + gen_ids.OrderIDFromXID(xid),
		Sign:  "MOCKSIGN",
	}
	return resp, nil
}

func (m *mockImpl) OosResolve(callback *ePosnet.CallbackPayload, mac string) (*ePosnet.Response, error) {
	parts := strings.Split(callback.BankData, "|")
	if len(parts) != 5 || parts[0] != "MOCKBANK" {
		return declinedResponse("0999", "INVALID BANK DATA"), nil
	}

	xid, amount, currency, mdStatus := parts[1], parts[2], parts[3], parts[4]
	resolvedMac, err := m.Mac.CallbackMac(mdStatus, xid, amount, currency)
	if err != nil {
		return nil, pErrors.NewSecurityViolation(err.Error())
	}

	resp := approvedResponse("")
	resp.OosResolveData = &ePosnet.ResolvedData{
		Xid:            xid,
		Amount:         amount,
		Currency:       currency,
		TxStatus:       "Y",
		MdStatus:       constants.MdStatus(mdStatus),
		MdErrorMessage: constants.MdStatus(mdStatus).Reason(),
		Mac:            resolvedMac,
	}
	if constants.MdStatus(mdStatus).IsVerified() {
		resp.OosResolveData.Eci = "05"
		resp.OosResolveData.Cavv = "AAABBWcSNIdjeUZThmNHAAAAAAA="
	}
	return resp, nil
}

func (m *mockImpl) OosFinalize(bankData, wpAmount, mac string) (*ePosnet.Response, error) {
	if strings.Contains(bankData, "|DUP") {
		return declinedResponse(string(constants.RespCodeOrderAlreadyCompleted), "ORDER ALREADY COMPLETED"), nil
	}
	return approvedResponse(""), nil
}
