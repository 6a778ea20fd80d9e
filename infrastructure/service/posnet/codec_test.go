package posnet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cardpay-system/domain/constants"
	ePosnet "cardpay-system/domain/entities/posnet"
	pErrors "cardpay-system/errors"
)

func saleRequest() *ePosnet.Request {
	return &ePosnet.Request{
		MerchantID: "6706598320",
		TerminalID: "67005551",
		Sale: &ePosnet.Sale{
			OrderID:      "210301120000ORDER42",
			Amount:       "10000",
			CurrencyCode: "TL",
			CardNumber:   "4111111111111111",
			ExpDate:      "2609",
			Cvc:          "000",
		},
	}
}

func TestBuildRequest_Sale(t *testing.T) {
	doc, err := BuildRequest(saleRequest())
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="ISO-8859-9"?>`))
	assert.Contains(t, doc, "<posnetRequest>")
	assert.Contains(t, doc, "<mid>6706598320</mid>")
	assert.Contains(t, doc, "<tid>67005551</tid>")
	assert.Contains(t, doc, "<sale>")
	assert.Contains(t, doc, "<amount>10000</amount>")
	// unset operations must not appear at all
	assert.NotContains(t, doc, "<auth>")
	assert.NotContains(t, doc, "<oosRequestData>")
}

func TestBuildRequest_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ePosnet.Request)
	}{
		{name: "missing merchant", mutate: func(r *ePosnet.Request) { r.MerchantID = "" }},
		{name: "missing terminal", mutate: func(r *ePosnet.Request) { r.TerminalID = " " }},
		{name: "no operation", mutate: func(r *ePosnet.Request) { r.Sale = nil }},
		{name: "zero amount", mutate: func(r *ePosnet.Request) { r.Sale.Amount = "0" }},
		{name: "negative amount", mutate: func(r *ePosnet.Request) { r.Sale.Amount = "-5" }},
		{name: "short pan", mutate: func(r *ePosnet.Request) { r.Sale.CardNumber = "41111111" }},
		{name: "bad expiry month", mutate: func(r *ePosnet.Request) { r.Sale.ExpDate = "2613" }},
		{name: "missing order id", mutate: func(r *ePosnet.Request) { r.Sale.OrderID = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := saleRequest()
			tt.mutate(req)
			_, err := BuildRequest(req)
			assert.Error(t, err)
			assert.Equal(t, pErrors.ClassValidation, pErrors.ClassOf(err))
		})
	}
}

func TestBuildRequest_OosResolveRequiresMac(t *testing.T) {
	req := &ePosnet.Request{
		MerchantID: "6706598320",
		TerminalID: "67005551",
		OosResolve: &ePosnet.OosResolve{
			BankData:     "packet1",
			MerchantData: "packet2",
			Sign:         "sig",
		},
	}
	_, err := BuildRequest(req)
	assert.Error(t, err)

	req.OosResolve.Mac = "somemac"
	_, err = BuildRequest(req)
	assert.NoError(t, err)
}

func TestEncodeForTransport(t *testing.T) {
	encoded := EncodeForTransport(`<?xml version="1.0"?><posnetRequest/>`)
	assert.True(t, strings.HasPrefix(encoded, "xdata="))
	assert.NotContains(t, encoded[6:], "<")
	assert.NotContains(t, encoded[6:], "?")
}

func TestParseResponse_Approved(t *testing.T) {
	raw := `<?xml version="1.0" encoding="ISO-8859-9"?>
<posnetResponse>
	<approved>1</approved>
	<respCode>00</respCode>
	<respText>APPROVED</respText>
	<hostlogkey>021459842</hostlogkey>
	<authCode>901477</authCode>
	<orderId>210301120000ORDER42</orderId>
	<tranDate>21030112</tranDate>
</posnetResponse>`

	resp := ParseResponse(raw)
	assert.True(t, resp.IsApproved())
	assert.Equal(t, constants.RespCode("00"), resp.RespCode)
	assert.Equal(t, "021459842", resp.HostLogKey)
	assert.Equal(t, "901477", resp.AuthCode)
	assert.Equal(t, "210301120000ORDER42", resp.OrderID)
}

func TestParseResponse_CaseInsensitiveFields(t *testing.T) {
	// some gateway deployments answer with different casing
	raw := `<posnetResponse><Approved>1</Approved><RespCode>00</RespCode><HostLogKey>12345</HostLogKey></posnetResponse>`

	resp := ParseResponse(raw)
	assert.True(t, resp.IsApproved())
	assert.Equal(t, "12345", resp.HostLogKey)
}

func TestParseResponse_OosRequestData(t *testing.T) {
	raw := `<posnetResponse>
	<approved>1</approved>
	<respCode>0000</respCode>
	<oosRequestDataResponse>
		<data1>AEFE78BC...</data1>
		<data2>9998F3...</data2>
		<sign>2B8CF1...</sign>
	</oosRequestDataResponse>
</posnetResponse>`

	resp := ParseResponse(raw)
	assert.True(t, resp.IsApproved())
	if assert.NotNil(t, resp.OosRequestData) {
		assert.Equal(t, "AEFE78BC...", resp.OosRequestData.Data1)
		assert.Equal(t, "9998F3...", resp.OosRequestData.Data2)
		assert.Equal(t, "2B8CF1...", resp.OosRequestData.Sign)
	}
}

func TestParseResponse_OosResolveData(t *testing.T) {
	raw := `<posnetResponse>
	<approved>1</approved>
	<oosResolveMerchantDataResponse>
		<xid>00000000000000000042</xid>
		<amount>10000</amount>
		<currency>TL</currency>
		<installment>00</installment>
		<txStatus>Y</txStatus>
		<mdStatus>1</mdStatus>
		<mdErrorMessage></mdErrorMessage>
		<eci>05</eci>
		<cavv>jGvQIvG9eJzxSDcvEF9f7g==</cavv>
		<mac>xbp/employmac==</mac>
	</oosResolveMerchantDataResponse>
</posnetResponse>`

	resp := ParseResponse(raw)
	if assert.NotNil(t, resp.OosResolveData) {
		assert.Equal(t, "00000000000000000042", resp.OosResolveData.Xid)
		assert.Equal(t, "10000", resp.OosResolveData.Amount)
		assert.True(t, resp.OosResolveData.MdStatus.IsVerified())
		assert.Equal(t, "05", resp.OosResolveData.Eci)
		assert.Equal(t, "jGvQIvG9eJzxSDcvEF9f7g==", resp.OosResolveData.Cavv)
		assert.Equal(t, "xbp/employmac==", resp.OosResolveData.Mac)
	}
}

func TestParseResponse_NeverErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace", raw: "   \n  "},
		{name: "not xml", raw: "<html><body>502 Bad Gateway</body>"},
		{name: "wrong root", raw: "<somethingElse><approved>1</approved></somethingElse>"},
		{name: "truncated", raw: "<posnetResponse><approved>1</approv"},
		{name: "no approval flag", raw: "<posnetResponse><respCode>00</respCode></posnetResponse>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ParseResponse(tt.raw)
			assert.NotNil(t, resp)
			assert.False(t, resp.IsApproved())
			assert.True(t, resp.RespCode.IsParseFailure())
			assert.NotEmpty(t, resp.RespText)
		})
	}
}

func TestParseResponse_ApprovalNeverFromTransport(t *testing.T) {
	// an explicit decline parses cleanly but stays declined
	resp := ParseResponse(`<posnetResponse><approved>0</approved><respCode>0051</respCode><respText>INSUFFICIENT FUNDS</respText></posnetResponse>`)
	assert.False(t, resp.IsApproved())
	assert.Equal(t, constants.RespCode("0051"), resp.RespCode)
	assert.False(t, resp.RespCode.IsParseFailure())
}
