package posnet

import (
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"cardpay-system/domain/constants"
	"cardpay-system/domain/entities"
	ePosnet "cardpay-system/domain/entities/posnet"
	"cardpay-system/domain/value_objects"
	pErrors "cardpay-system/errors"
	"cardpay-system/utils/configs"
	"cardpay-system/utils/gen_ids"
	"cardpay-system/utils/helpers"

	"github.com/spf13/cast"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultTimeout = time.Second * 60

// Recorder receives the masked audit entry for every round-trip. Start is
// called before the wire write, Finish after the response (or failure) is in.
// Implementations are best-effort; the client never lets recording break a
// payment.
type Recorder interface {
	Start(entry *entities.TransactionLogEntry)
	Finish(entry *entities.TransactionLogEntry)
}

type repoImpl struct {
	URI      string
	OosURI   string
	Conf     configs.Posnet
	Mac      *MacEngine
	Timeout  time.Duration
	Logger   *zap.Logger
	Recorder Recorder
}

// NewRepoImpl builds the live gateway client.
func NewRepoImpl(conf configs.Posnet, logger *zap.Logger, recorder Recorder) *repoImpl {
	timeout := defaultTimeout
	if conf.TimeoutSeconds > 0 {
		timeout = time.Duration(conf.TimeoutSeconds) * time.Second
	}

	return &repoImpl{
		URI:      conf.URI,
		OosURI:   conf.OosURI,
		Conf:     conf,
		Mac:      NewMacEngine(conf.MerchantID, conf.TerminalID, conf.EncKey),
		Timeout:  timeout,
		Logger:   logger,
		Recorder: recorder,
	}
}

func (r *repoImpl) newRequest() *ePosnet.Request {
	return &ePosnet.Request{
		MerchantID: r.Conf.MerchantID,
		TerminalID: r.Conf.TerminalID,
	}
}

func (r *repoImpl) Sale(orderID string, amount int64, currency string, installment int, card value_objects.CardDetails) (*ePosnet.Response, error) {
	request := r.newRequest()
	request.Sale = &ePosnet.Sale{
		OrderID:        gen_ids.GatewayOrderRef(orderID, time.Now()),
		Amount:         cast.ToString(amount),
		CurrencyCode:   NormalizeCurrency(currency),
		CardNumber:     card.NormalizedNumber(),
		ExpDate:        card.GatewayExpiry(),
		Cvc:            card.Cvc,
		CardHolderName: card.HolderName,
		Installment:    installmentCode(installment),
	}

	return r.send(request, orderID, request.Sale.OrderID, r.URI)
}

func (r *repoImpl) Authorize(orderID string, amount int64, currency string, installment int, card value_objects.CardDetails) (*ePosnet.Response, error) {
	request := r.newRequest()
	request.Auth = &ePosnet.Auth{
		OrderID:        gen_ids.GatewayOrderRef(orderID, time.Now()),
		Amount:         cast.ToString(amount),
		CurrencyCode:   NormalizeCurrency(currency),
		CardNumber:     card.NormalizedNumber(),
		ExpDate:        card.GatewayExpiry(),
		Cvc:            card.Cvc,
		CardHolderName: card.HolderName,
		Installment:    installmentCode(installment),
	}

	return r.send(request, orderID, request.Auth.OrderID, r.URI)
}

func (r *repoImpl) Capture(orderRef string, amount int64, currency string, installment int) (*ePosnet.Response, error) {
	request := r.newRequest()
	request.Capture = &ePosnet.Capture{
		OrderID:      orderRef,
		Amount:       cast.ToString(amount),
		CurrencyCode: NormalizeCurrency(currency),
		Installment:  installmentCode(installment),
	}

	return r.send(request, "", orderRef, r.URI)
}

func (r *repoImpl) Reverse(transaction, hostLogKey, authCode string) (*ePosnet.Response, error) {
	request := r.newRequest()
	request.Reverse = &ePosnet.Reverse{
		Transaction: transaction,
		HostLogKey:  hostLogKey,
		AuthCode:    authCode,
	}

	return r.send(request, "", hostLogKey, r.URI)
}

func (r *repoImpl) Refund(hostLogKey string, amount int64, currency string) (*ePosnet.Response, error) {
	request := r.newRequest()
	request.Return = &ePosnet.Return{
		Amount:       cast.ToString(amount),
		CurrencyCode: NormalizeCurrency(currency),
		HostLogKey:   hostLogKey,
	}

	return r.send(request, "", hostLogKey, r.URI)
}

func (r *repoImpl) PointInquiry(card value_objects.CardDetails) (*ePosnet.Response, error) {
	request := r.newRequest()
	request.PointInquiry = &ePosnet.PointInquiry{
		CardNumber: card.NormalizedNumber(),
		ExpDate:    card.GatewayExpiry(),
	}

	return r.send(request, "", "", r.URI)
}

func (r *repoImpl) StatusInquiry(orderRef string) (*ePosnet.Response, error) {
	request := r.newRequest()
	request.Agreement = &ePosnet.Agreement{
		OrderID: orderRef,
	}

	return r.send(request, "", orderRef, r.URI)
}

func (r *repoImpl) OosRequest(xid string, amount int64, currency string, installment int, tranType string, card value_objects.CardDetails) (*ePosnet.Response, error) {
	request := r.newRequest()
	request.OosRequest = &ePosnet.OosRequest{
		PosnetID:       r.Conf.PosnetID,
		XID:            xid,
		Amount:         cast.ToString(amount),
		CurrencyCode:   NormalizeCurrency(currency),
		Installment:    installmentCode(installment),
		TranType:       tranType,
		CardNumber:     card.NormalizedNumber(),
		ExpDate:        card.GatewayExpiry(),
		Cvc:            card.Cvc,
		CardHolderName: card.HolderName,
	}

	return r.send(request, gen_ids.OrderIDFromXID(xid), xid, r.OosURI)
}

func (r *repoImpl) OosResolve(callback *ePosnet.CallbackPayload, mac string) (*ePosnet.Response, error) {
	request := r.newRequest()
	request.OosResolve = &ePosnet.OosResolve{
		BankData:     callback.BankData,
		MerchantData: callback.MerchantData,
		Sign:         callback.Sign,
		Mac:          mac,
	}

	return r.send(request, gen_ids.OrderIDFromXID(callback.Xid), callback.Xid, r.OosURI)
}

func (r *repoImpl) OosFinalize(bankData, wpAmount, mac string) (*ePosnet.Response, error) {
	request := r.newRequest()
	request.OosTranData = &ePosnet.OosTranData{
		BankData: bankData,
		WpAmount: wpAmount,
		Mac:      mac,
	}

	return r.send(request, "", "", r.OosURI)
}

// installmentCode renders the two-digit installment field; "00" means none.
func installmentCode(installment int) string {
	if installment <= 1 {
		return "00"
	}
	code := cast.ToString(installment)
	if len(code) == 1 {
		code = "0" + code
	}
	return code
}

// send serializes, posts and parses one round-trip. Every call carries a
// correlation id: the transaction's own reference when there is one,
// otherwise a fresh opaque id. Raw card data never reaches the log; masking
// happens before anything is recorded.
func (r *repoImpl) send(request *ePosnet.Request, orderID, reference, uri string) (response *ePosnet.Response, err error) {
	xmlDoc, err := BuildRequest(request)
	if err != nil {
		return nil, err
	}

	correlationID := strings.TrimSpace(reference)
	if correlationID == "" {
		correlationID = helpers.GetUUId()
	}

	entry := &entities.TransactionLogEntry{
		CorrelationID: correlationID,
		Operation:     request.Operation(),
		OrderID:       orderID,
		RequestXML:    helpers.MaskSensitiveXML(xmlDoc),
		SentAt:        time.Now().UTC(),
	}
	if r.Recorder != nil {
		r.Recorder.Start(entry)
	}

	defer func() {
		entry.ReceivedAt = time.Now().UTC()
		entry.DurationMs = entry.ReceivedAt.Sub(entry.SentAt).Milliseconds()
		entry.Completed = true
		if err != nil {
			entry.Success = false
			entry.ErrorMessage = helpers.Truncate(err.Error(), 512)
		}
		if r.Recorder != nil {
			r.Recorder.Finish(entry)
		}
	}()

	client := new(http.Client)
	client.Timeout = r.Timeout

	httpReq, err := http.NewRequest("POST", uri, strings.NewReader(EncodeForTransport(xmlDoc)))
	if err != nil {
		return nil, pErrors.NewSystem("gateway request could not be created", err)
	}

	httpReq.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Add(constants.HeaderMerchantID, r.Conf.MerchantID)
	httpReq.Header.Add(constants.HeaderTerminalID, r.Conf.TerminalID)
	httpReq.Header.Add(constants.HeaderPosnetID, r.Conf.PosnetID)
	httpReq.Header.Add(constants.HeaderCorrelationID, correlationID)

	resp, err := client.Do(httpReq)
	if err != nil {
		r.Logger.With(zap.Error(err)).With(zapcore.Field{
			Key:    "correlation_id",
			Type:   zapcore.StringType,
			String: correlationID,
		}).Error(constants.SERVICE_GATEWAY_ERROR + "transport failure")
		return nil, pErrors.NewConnection("gateway unreachable", err)
	}
	defer resp.Body.Close()

	responseByte, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, pErrors.NewConnection("gateway response could not be read", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.Logger.With(zapcore.Field{
			Key:     "status",
			Type:    zapcore.Int64Type,
			Integer: int64(resp.StatusCode),
		}).With(zapcore.Field{
			Key:    "correlation_id",
			Type:   zapcore.StringType,
			String: correlationID,
		}).Error(constants.SERVICE_GATEWAY_ERROR + "unexpected http status")
		return nil, pErrors.NewConnection("gateway returned http "+cast.ToString(resp.StatusCode), nil)
	}

	maskedResponse := helpers.MaskSensitiveXML(string(responseByte))
	entry.ResponseXML = maskedResponse

	r.Logger.With(zapcore.Field{
		Key:    "uri",
		Type:   zapcore.StringType,
		String: uri,
	}).With(zapcore.Field{
		Key:    "correlation_id",
		Type:   zapcore.StringType,
		String: correlationID,
	}).With(zapcore.Field{
		Key:    "operation",
		Type:   zapcore.StringType,
		String: request.Operation(),
	}).Info("gateway_round_trip")

	// full documents only at debug verbosity; the audit trail keeps them
	r.Logger.With(zapcore.Field{
		Key:    "correlation_id",
		Type:   zapcore.StringType,
		String: correlationID,
	}).With(zapcore.Field{
		Key:    "request",
		Type:   zapcore.StringType,
		String: entry.RequestXML,
	}).With(zapcore.Field{
		Key:    "response",
		Type:   zapcore.StringType,
		String: maskedResponse,
	}).Debug("gateway_round_trip_body")

	response = ParseResponse(string(responseByte))

	entry.Success = response.IsApproved()
	entry.ErrorCode = string(response.RespCode)
	entry.ErrorMessage = helpers.Truncate(response.RespText, 512)
	if response.OosResolveData != nil {
		entry.MdStatus = string(response.OosResolveData.MdStatus)
		entry.Eci = response.OosResolveData.Eci
		entry.Cavv = response.OosResolveData.Cavv
	}

	return response, nil
}
