package test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cardpay-system/domain/constants"
	"cardpay-system/domain/entities"
	ePosnet "cardpay-system/domain/entities/posnet"
	"cardpay-system/domain/value_objects"
	pErrors "cardpay-system/errors"
	"cardpay-system/infrastructure/service/posnet"
	"cardpay-system/utils/gen_ids"
)

func storedOrder() *entities.OrderEntity {
	return &entities.OrderEntity{
		OrderID:  "42",
		UserID:   "U1",
		Amount:   10000,
		Currency: "TRY",
		Status:   entities.ORDER_PENDING,
	}
}

func approvedCard() value_objects.CardDetails {
	return value_objects.CardDetails{
		Number:      posnet.TestCardApproved,
		ExpiryMonth: "09",
		ExpiryYear:  "26",
		Cvc:         "000",
		HolderName:  "TEST HOLDER",
	}
}

func redirectedPayment() *entities.PaymentEntity {
	return &entities.PaymentEntity{
		OrderID:   "42",
		Provider:  "posnet",
		Status:    entities.PAYMENT_REDIRECT,
		Xid:       gen_ids.OosXID("42"),
		Amount:    10000,
		Currency:  "TL",
		MaskedPan: "411111******1111",
	}
}

func echoUpsert(th *MockService) {
	th.Payments.On("Upsert", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, p *entities.PaymentEntity) *entities.PaymentEntity { return p }, nil)
}

// signedCallback builds a browser callback carrying a MAC the bank would have
// computed for the given fields.
func signedCallback(th *MockService, mdStatus, amount string) *ePosnet.CallbackPayload {
	xid := gen_ids.OosXID("42")
	mac, err := th.Mac.CallbackMac(mdStatus, xid, amount, "TL")
	if err != nil {
		panic(err)
	}
	return &ePosnet.CallbackPayload{
		BankData:     "BANKPACKET",
		MerchantData: "MERCHANT|42",
		Sign:         "SIGNPACKET",
		Mac:          mac,
		MdStatus:     constants.MdStatus(mdStatus),
		Xid:          xid,
		Amount:       amount,
		Currency:     "TL",
	}
}

// resolvedResponse builds the gateway's resolve answer with a valid MAC over
// the resolved fields.
func resolvedResponse(th *MockService, mdStatus, amount string) *ePosnet.Response {
	xid := gen_ids.OosXID("42")
	mac, err := th.Mac.CallbackMac(mdStatus, xid, amount, "TL")
	if err != nil {
		panic(err)
	}
	return &ePosnet.Response{
		Approved: "1",
		RespCode: "0000",
		OosResolveData: &ePosnet.ResolvedData{
			Xid:      xid,
			Amount:   amount,
			Currency: "TL",
			TxStatus: "Y",
			MdStatus: constants.MdStatus(mdStatus),
			Mac:      mac,
		},
	}
}

func TestPaymentApplication_InitiatePayment_Redirect(t *testing.T) {
	th := NewTestPaymentApplication()
	ctx := context.TODO()

	th.Orders.On("FindByOrderID", ctx, "42").Return(storedOrder(), nil)
	th.Payments.On("FindByOrderID", ctx, "42").Return(nil, errors.New("mongo: no documents in result"))
	echoUpsert(th)

	th.Gateway.On("OosRequest", gen_ids.OosXID("42"), int64(10000), "TRY", 1, constants.TranTypeSale, mock.Anything).Return(&ePosnet.Response{
		Approved: "1",
		RespCode: "0000",
		OosRequestData: &ePosnet.OosRequestResponse{
			Data1: "BANKPACKET",
			Data2: "MERCHANT|42",
			Sign:  "SIGNPACKET",
		},
	}, nil)

	result, err := th.PaymentApplication.InitiatePayment(ctx, "42", approvedCard(), 1)

	assert.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, gen_ids.OosXID("42"), result.TransactionID)
	if assert.NotNil(t, result.Redirect) {
		assert.Equal(t, th.Config.Posnet.OosURI, result.Redirect.URL)
		assert.Equal(t, "BANKPACKET", result.Redirect.Fields["posnetData"])
		assert.Equal(t, "MERCHANT|42", result.Redirect.Fields["posnetData2"])
		assert.Equal(t, "SIGNPACKET", result.Redirect.Fields["digest"])
		assert.Equal(t, th.Config.Posnet.MerchantReturnURL, result.Redirect.Fields["merchantReturnURL"])
	}
}

func TestPaymentApplication_InitiatePayment_OrderNotFound(t *testing.T) {
	th := NewTestPaymentApplication()
	ctx := context.TODO()

	th.Orders.On("FindByOrderID", ctx, "missing").Return(nil, pErrors.ErrOrderNotFound)

	result, err := th.PaymentApplication.InitiatePayment(ctx, "missing", approvedCard(), 1)

	assert.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, constants.MsgOrderNotFound, result.UserMessage)
	th.Gateway.AssertNotCalled(t, "OosRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentApplication_InitiatePayment_AlreadyPaid(t *testing.T) {
	th := NewTestPaymentApplication()
	ctx := context.TODO()

	order := storedOrder()
	order.Status = entities.ORDER_SUCCESS
	th.Orders.On("FindByOrderID", ctx, "42").Return(order, nil)

	result, err := th.PaymentApplication.InitiatePayment(ctx, "42", approvedCard(), 1)

	assert.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, constants.MsgOrderAlreadyPaid, result.UserMessage)
	th.Gateway.AssertNotCalled(t, "OosRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentApplication_InitiatePayment_InvalidCard(t *testing.T) {
	th := NewTestPaymentApplication()

	card := approvedCard()
	card.Number = "1234"

	result, err := th.PaymentApplication.InitiatePayment(context.TODO(), "42", card, 1)

	assert.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, string(pErrors.ClassValidation), result.Class)
	th.Orders.AssertNotCalled(t, "FindByOrderID", mock.Anything, mock.Anything)
}

func TestPaymentApplication_CompletePayment_HappyPath(t *testing.T) {
	th := NewTestPaymentApplication()
	ctx := context.TODO()

	th.Orders.On("FindByOrderID", ctx, "42").Return(storedOrder(), nil)
	th.Orders.On("MarkPaid", ctx, "42", mock.Anything).Return(nil)
	th.Payments.On("FindByOrderID", ctx, "42").Return(redirectedPayment(), nil)
	echoUpsert(th)

	th.Gateway.On("OosResolve", mock.Anything, mock.Anything).Return(resolvedResponse(th, "1", "10000"), nil)
	th.Gateway.On("OosFinalize", "BANKPACKET", "10000", mock.Anything).Return(&ePosnet.Response{
		Approved:   "1",
		RespCode:   "00",
		HostLogKey: "021459842",
		AuthCode:   "901477",
	}, nil)

	result, err := th.PaymentApplication.CompletePayment(ctx, signedCallback(th, "1", "10000"))

	assert.NoError(t, err)
	assert.True(t, result.Approved)
	assert.Equal(t, "42", result.OrderID)
	assert.Equal(t, "021459842", result.HostLogKey)
	assert.Equal(t, "901477", result.AuthCode)
	th.Orders.AssertCalled(t, "MarkPaid", ctx, "42", mock.Anything)
}

func TestPaymentApplication_CompletePayment_MacMismatch(t *testing.T) {
	th := NewTestPaymentApplication()
	ctx := context.TODO()

	th.Orders.On("FindByOrderID", ctx, "42").Return(storedOrder(), nil)
	th.Orders.On("MarkFailed", ctx, "42", mock.Anything).Return(nil)
	th.Payments.On("FindByOrderID", ctx, "42").Return(redirectedPayment(), nil)
	echoUpsert(th)

	callback := signedCallback(th, "1", "10000")
	callback.Mac = "dGFtcGVyZWQgbWFj"

	result, err := th.PaymentApplication.CompletePayment(ctx, callback)

	assert.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, string(pErrors.ClassMacValidationFailed), result.Class)
	assert.Equal(t, constants.MsgGenericFailure, result.UserMessage)
	th.Gateway.AssertNotCalled(t, "OosResolve", mock.Anything, mock.Anything)
	th.Gateway.AssertNotCalled(t, "OosFinalize", mock.Anything, mock.Anything, mock.Anything)
	th.Orders.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentApplication_CompletePayment_TamperedAmountRejected(t *testing.T) {
	th := NewTestPaymentApplication()
	ctx := context.TODO()

	th.Orders.On("FindByOrderID", ctx, "42").Return(storedOrder(), nil)
	th.Orders.On("MarkFailed", ctx, "42", mock.Anything).Return(nil)
	th.Payments.On("FindByOrderID", ctx, "42").Return(redirectedPayment(), nil)
	echoUpsert(th)

	// the bank resolves the real transaction: 5000, not the 10000 agreed
	th.Gateway.On("OosResolve", mock.Anything, mock.Anything).Return(resolvedResponse(th, "1", "5000"), nil)

	result, err := th.PaymentApplication.CompletePayment(ctx, signedCallback(th, "1", "10000"))

	assert.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, string(pErrors.ClassSecurityViolation), result.Class)
	th.Gateway.AssertNotCalled(t, "OosFinalize", mock.Anything, mock.Anything, mock.Anything)
	th.Orders.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentApplication_CompletePayment_VerificationFailed(t *testing.T) {
	th := NewTestPaymentApplication()
	ctx := context.TODO()

	th.Orders.On("FindByOrderID", ctx, "42").Return(storedOrder(), nil)
	th.Orders.On("MarkFailed", ctx, "42", mock.Anything).Return(nil)
	th.Payments.On("FindByOrderID", ctx, "42").Return(redirectedPayment(), nil)
	echoUpsert(th)

	result, err := th.PaymentApplication.CompletePayment(ctx, signedCallback(th, "0", "10000"))

	assert.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, string(pErrors.ClassThreeDSFailed), result.Class)
	assert.Equal(t, constants.MsgVerificationFailed, result.UserMessage)
	// a failed verification is terminal: no resolve, no finalize, no retry
	th.Gateway.AssertNotCalled(t, "OosResolve", mock.Anything, mock.Anything)
	th.Gateway.AssertNotCalled(t, "OosFinalize", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentApplication_CompletePayment_AttemptStatusPolicy(t *testing.T) {
	tests := []struct {
		name          string
		acceptPartial bool
		expectClass   string
		expectPaid    bool
	}{
		{name: "attempt rejected by default", acceptPartial: false, expectClass: string(pErrors.ClassThreeDSFailed)},
		{name: "attempt honored when configured", acceptPartial: true, expectPaid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := NewTestPaymentApplication()
			th.Config.Posnet.AcceptPartialAuth = tt.acceptPartial
			ctx := context.TODO()

			th.Orders.On("FindByOrderID", ctx, "42").Return(storedOrder(), nil)
			th.Orders.On("MarkPaid", ctx, "42", mock.Anything).Return(nil)
			th.Orders.On("MarkFailed", ctx, "42", mock.Anything).Return(nil)
			th.Payments.On("FindByOrderID", ctx, "42").Return(redirectedPayment(), nil)
			echoUpsert(th)

			th.Gateway.On("OosResolve", mock.Anything, mock.Anything).Return(resolvedResponse(th, "2", "10000"), nil)
			th.Gateway.On("OosFinalize", mock.Anything, mock.Anything, mock.Anything).Return(&ePosnet.Response{
				Approved: "1",
				RespCode: "00",
			}, nil)

			result, err := th.PaymentApplication.CompletePayment(ctx, signedCallback(th, "2", "10000"))

			assert.NoError(t, err)
			assert.Equal(t, tt.expectPaid, result.Approved)
			if !tt.expectPaid {
				assert.Equal(t, tt.expectClass, result.Class)
			}
		})
	}
}

func TestPaymentApplication_CompletePayment_AlreadyProcessedFinalize(t *testing.T) {
	th := NewTestPaymentApplication()
	ctx := context.TODO()

	th.Orders.On("FindByOrderID", ctx, "42").Return(storedOrder(), nil)
	th.Orders.On("MarkPaid", ctx, "42", mock.Anything).Return(nil)
	th.Payments.On("FindByOrderID", ctx, "42").Return(redirectedPayment(), nil)
	echoUpsert(th)

	th.Gateway.On("OosResolve", mock.Anything, mock.Anything).Return(resolvedResponse(th, "1", "10000"), nil)
	th.Gateway.On("OosFinalize", mock.Anything, mock.Anything, mock.Anything).Return(&ePosnet.Response{
		Approved: "0",
		RespCode: constants.RespCodeOrderAlreadyCompleted,
		RespText: "ORDER ALREADY COMPLETED",
	}, nil)

	result, err := th.PaymentApplication.CompletePayment(ctx, signedCallback(th, "1", "10000"))

	assert.NoError(t, err)
	assert.True(t, result.Approved)
}

func TestPaymentApplication_CompletePayment_ReplayAfterPaid(t *testing.T) {
	th := NewTestPaymentApplication()
	ctx := context.TODO()

	paid := redirectedPayment()
	paid.Status = entities.PAYMENT_PAID
	paid.HostLogKey = "021459842"

	th.Orders.On("FindByOrderID", ctx, "42").Return(storedOrder(), nil)
	th.Payments.On("FindByOrderID", ctx, "42").Return(paid, nil)

	result, err := th.PaymentApplication.CompletePayment(ctx, signedCallback(th, "1", "10000"))

	assert.NoError(t, err)
	assert.True(t, result.Approved)
	assert.Equal(t, "021459842", result.HostLogKey)
	// no second charge on a replayed callback
	th.Gateway.AssertNotCalled(t, "OosResolve", mock.Anything, mock.Anything)
	th.Gateway.AssertNotCalled(t, "OosFinalize", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentApplication_CompletePayment_UnknownOrder(t *testing.T) {
	th := NewTestPaymentApplication()
	ctx := context.TODO()

	th.Orders.On("FindByOrderID", mock.Anything, mock.Anything).Return(nil, pErrors.ErrOrderNotFound)

	callback := signedCallback(th, "1", "10000")
	callback.MerchantData = "MERCHANT|777"
	callback.Xid = "00000000000000000777"

	result, err := th.PaymentApplication.CompletePayment(ctx, callback)

	assert.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, constants.MsgOrderNotFound, result.UserMessage)
}

func TestPaymentApplication_CompletePayment_StoreOutageIsSystemError(t *testing.T) {
	th := NewTestPaymentApplication()
	ctx := context.TODO()

	th.Orders.On("FindByOrderID", mock.Anything, mock.Anything).Return(nil, errors.New("server selection timeout"))

	result, err := th.PaymentApplication.CompletePayment(ctx, signedCallback(th, "1", "10000"))

	assert.NoError(t, err)
	assert.False(t, result.Approved)
	// an unreachable store is an operator problem, not a bad callback
	assert.Equal(t, string(pErrors.ClassSystem), result.Class)
	assert.NotEqual(t, constants.MsgOrderNotFound, result.UserMessage)
	th.Gateway.AssertNotCalled(t, "OosResolve", mock.Anything, mock.Anything)
}

func TestPaymentApplication_CompletePayment_ForgedCallbackOnPaidOrder(t *testing.T) {
	th := NewTestPaymentApplication()
	ctx := context.TODO()

	paid := redirectedPayment()
	paid.Status = entities.PAYMENT_PAID
	paid.HostLogKey = "021459842"

	th.Orders.On("FindByOrderID", ctx, "42").Return(storedOrder(), nil)
	th.Payments.On("FindByOrderID", ctx, "42").Return(paid, nil)

	callback := signedCallback(th, "1", "10000")
	callback.Mac = "Zm9yZ2VkIG1hYw=="

	result, err := th.PaymentApplication.CompletePayment(ctx, callback)

	assert.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Empty(t, result.HostLogKey)
	assert.Equal(t, string(pErrors.ClassMacValidationFailed), result.Class)
	// the settled record is never rewritten and no gateway call is made
	th.Payments.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	th.Orders.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything, mock.Anything)
	th.Gateway.AssertNotCalled(t, "OosResolve", mock.Anything, mock.Anything)
	th.Gateway.AssertNotCalled(t, "OosFinalize", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentApplication_AuthorizeThenCapture(t *testing.T) {
	th := NewTestPaymentApplication()
	ctx := context.TODO()

	th.Orders.On("FindByOrderID", ctx, "42").Return(storedOrder(), nil)
	th.Orders.On("MarkPaid", ctx, "42", mock.Anything).Return(nil)
	echoUpsert(th)

	th.Gateway.On("Authorize", "42", int64(10000), "TRY", 1, mock.Anything).Return(&ePosnet.Response{
		Approved:   "1",
		RespCode:   "00",
		HostLogKey: "021459850",
		AuthCode:   "884213",
		OrderID:    "210301120000ORDER42",
	}, nil)

	authResult, err := th.PaymentApplication.Authorize(ctx, "42", approvedCard(), 1)

	assert.NoError(t, err)
	assert.True(t, authResult.Approved)
	assert.Equal(t, "210301120000ORDER42", authResult.BankRef)

	authorized := redirectedPayment()
	authorized.Status = entities.PAYMENT_INITIATED
	authorized.BankRef = authResult.BankRef
	th.Payments.On("FindByOrderID", ctx, "42").Return(authorized, nil)

	th.Gateway.On("Capture", "210301120000ORDER42", int64(10000), "TL", 1).Return(&ePosnet.Response{
		Approved:   "1",
		RespCode:   "00",
		HostLogKey: "021459850",
		AuthCode:   "884213",
	}, nil)

	captResult, err := th.PaymentApplication.Capture(ctx, "42", 10000, 1)

	assert.NoError(t, err)
	assert.True(t, captResult.Approved)
	th.Orders.AssertCalled(t, "MarkPaid", ctx, "42", mock.Anything)
}

func TestPaymentApplication_Capture_RequiresBankRef(t *testing.T) {
	th := NewTestPaymentApplication()
	ctx := context.TODO()

	th.Payments.On("FindByOrderID", ctx, "42").Return(redirectedPayment(), nil)

	result, err := th.PaymentApplication.Capture(ctx, "42", 10000, 1)

	assert.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, string(pErrors.ClassValidation), result.Class)
	th.Gateway.AssertNotCalled(t, "Capture", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentApplication_Refund(t *testing.T) {
	th := NewTestPaymentApplication()
	ctx := context.TODO()

	paid := redirectedPayment()
	paid.Status = entities.PAYMENT_PAID
	paid.HostLogKey = "021459842"

	th.Payments.On("FindByOrderID", ctx, "42").Return(paid, nil)
	echoUpsert(th)
	th.Gateway.On("Refund", "021459842", int64(10000), "TL").Return(&ePosnet.Response{
		Approved:   "1",
		RespCode:   "00",
		HostLogKey: "021459900",
	}, nil)

	result, err := th.PaymentApplication.Refund(ctx, "42", 10000)

	assert.NoError(t, err)
	assert.True(t, result.Approved)
	assert.Equal(t, "021459900", result.HostLogKey)
}

func TestPaymentApplication_Refund_AmountOutOfRange(t *testing.T) {
	th := NewTestPaymentApplication()
	ctx := context.TODO()

	paid := redirectedPayment()
	paid.Status = entities.PAYMENT_PAID
	paid.HostLogKey = "021459842"
	th.Payments.On("FindByOrderID", ctx, "42").Return(paid, nil)

	result, err := th.PaymentApplication.Refund(ctx, "42", 20000)

	assert.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Equal(t, string(pErrors.ClassValidation), result.Class)
	th.Gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything)
}
