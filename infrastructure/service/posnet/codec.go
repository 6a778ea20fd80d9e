package posnet

import (
	"encoding/xml"
	"io"
	"net/url"
	"strings"

	"cardpay-system/domain/constants"
	ePosnet "cardpay-system/domain/entities/posnet"
	pErrors "cardpay-system/errors"

	"github.com/spf13/cast"
)

const xmlDeclaration = `<?xml version="1.0" encoding="ISO-8859-9"?>`

// BuildRequest validates the populated operation and serializes the document.
// Validation failures are local: nothing goes on the wire.
func BuildRequest(req *ePosnet.Request) (string, error) {
	if req == nil {
		return "", pErrors.NewValidation("nil request")
	}
	if strings.TrimSpace(req.MerchantID) == "" || strings.TrimSpace(req.TerminalID) == "" {
		return "", pErrors.NewValidation("merchant and terminal ids are required")
	}
	if req.Operation() == "" {
		return "", pErrors.NewValidation("request carries no operation")
	}

	if err := validateOperation(req); err != nil {
		return "", err
	}

	body, err := xml.Marshal(req)
	if err != nil {
		return "", pErrors.NewValidation("request could not be serialized: " + err.Error())
	}

	return xmlDeclaration + string(body), nil
}

// EncodeForTransport percent-encodes the document under the gateway's single
// form field.
func EncodeForTransport(xmlDoc string) string {
	return constants.FormFieldXML + "=" + url.QueryEscape(xmlDoc)
}

func validateOperation(req *ePosnet.Request) error {
	switch {
	case req.Sale != nil:
		return validateCardPayment(req.Sale.OrderID, req.Sale.Amount, req.Sale.CardNumber, req.Sale.ExpDate)
	case req.Auth != nil:
		return validateCardPayment(req.Auth.OrderID, req.Auth.Amount, req.Auth.CardNumber, req.Auth.ExpDate)
	case req.Capture != nil:
		if strings.TrimSpace(req.Capture.OrderID) == "" {
			return pErrors.NewValidation("capture requires the order reference")
		}
		return validateAmount(req.Capture.Amount)
	case req.Reverse != nil:
		if strings.TrimSpace(req.Reverse.HostLogKey) == "" {
			return pErrors.NewValidation("reverse requires the host log key")
		}
	case req.Return != nil:
		if strings.TrimSpace(req.Return.HostLogKey) == "" {
			return pErrors.NewValidation("return requires the host log key")
		}
		return validateAmount(req.Return.Amount)
	case req.PointInquiry != nil:
		return validateCard(req.PointInquiry.CardNumber, req.PointInquiry.ExpDate)
	case req.Agreement != nil:
		if strings.TrimSpace(req.Agreement.OrderID) == "" {
			return pErrors.NewValidation("status inquiry requires the order reference")
		}
	case req.OosRequest != nil:
		if strings.TrimSpace(req.OosRequest.XID) == "" {
			return pErrors.NewValidation("off-site request requires an XID")
		}
		if err := validateAmount(req.OosRequest.Amount); err != nil {
			return err
		}
		return validateCard(req.OosRequest.CardNumber, req.OosRequest.ExpDate)
	case req.OosResolve != nil:
		if req.OosResolve.BankData == "" || req.OosResolve.MerchantData == "" {
			return pErrors.NewValidation("resolve requires the callback packets")
		}
		if req.OosResolve.Mac == "" {
			return pErrors.NewValidation("resolve requires a mac")
		}
	case req.OosTranData != nil:
		if req.OosTranData.BankData == "" {
			return pErrors.NewValidation("finalize requires the bank packet")
		}
		if req.OosTranData.Mac == "" {
			return pErrors.NewValidation("finalize requires a mac")
		}
	}
	return nil
}

func validateCardPayment(orderID, amount, ccno, expDate string) error {
	if strings.TrimSpace(orderID) == "" {
		return pErrors.NewValidation("order id must not be empty")
	}
	if err := validateAmount(amount); err != nil {
		return err
	}
	return validateCard(ccno, expDate)
}

func validateAmount(amount string) error {
	v := cast.ToInt64(strings.TrimSpace(amount))
	if v <= 0 {
		return pErrors.NewValidation("amount must be a positive number of minor units")
	}
	return nil
}

func validateCard(ccno, expDate string) error {
	n := strings.TrimSpace(ccno)
	if len(n) < 12 || len(n) > 19 {
		return pErrors.NewValidation("card number length is invalid")
	}
	exp := strings.TrimSpace(expDate)
	if len(exp) != 4 || exp[2:] < "01" || exp[2:] > "12" {
		return pErrors.NewValidation("expiry must be YYMM")
	}
	return nil
}

// ---------------------------------------------------------------------------
// tolerant response parsing

// xmlNode is a minimal document tree. The gateway's field casing is not
// consistent across operations, so lookups fall back from direct child to any
// descendant to a case-insensitive match.
type xmlNode struct {
	name     string
	text     string
	children []*xmlNode
}

func (n *xmlNode) find(name string) *xmlNode {
	if n == nil {
		return nil
	}
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	for _, c := range n.children {
		if hit := c.find(name); hit != nil {
			return hit
		}
	}
	return n.findFold(name)
}

func (n *xmlNode) findFold(name string) *xmlNode {
	for _, c := range n.children {
		if strings.EqualFold(c.name, name) {
			return c
		}
	}
	for _, c := range n.children {
		if hit := c.findFold(name); hit != nil {
			return hit
		}
	}
	return nil
}

func (n *xmlNode) value(name string) string {
	if hit := n.find(name); hit != nil {
		return strings.TrimSpace(hit.text)
	}
	return ""
}

func parseTree(raw string) (*xmlNode, error) {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	// the gateway declares ISO-8859-9 but every field the engine reads is
	// plain ASCII; pass the bytes through untouched
	decoder.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var root *xmlNode
	var stack []*xmlNode

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &xmlNode{name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, pErrors.NewValidation("multiple root elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, pErrors.NewValidation("unbalanced document")
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}

	if root == nil || len(stack) != 0 {
		return nil, pErrors.NewValidation("document has no complete root element")
	}

	return root, nil
}

func parseFailure(detail string) *ePosnet.Response {
	return &ePosnet.Response{
		Approved: "0",
		RespCode: constants.RespCodeUnparsableResponse,
		RespText: detail,
	}
}

// ParseResponse turns a raw gateway document into a typed response. It never
// panics and never returns an error: a broken document downgrades to a
// not-approved response carrying a diagnostic code so the surrounding flow
// can still log and classify it.
func ParseResponse(raw string) *ePosnet.Response {
	if strings.TrimSpace(raw) == "" {
		return parseFailure("empty response body")
	}

	root, err := parseTree(raw)
	if err != nil {
		return parseFailure("malformed response: " + err.Error())
	}
	if !strings.EqualFold(root.name, "posnetResponse") {
		return parseFailure("unexpected root element " + root.name)
	}

	approved := root.value("approved")
	if approved == "" {
		return parseFailure("response carries no approval flag")
	}

	resp := &ePosnet.Response{
		Approved:   constants.ApprovedFlag(approved),
		RespCode:   constants.RespCode(root.value("respCode")),
		RespText:   root.value("respText"),
		HostLogKey: root.value("hostlogkey"),
		AuthCode:   root.value("authCode"),
		OrderID:    root.value("orderId"),
		TranDate:   root.value("tranDate"),
	}

	if point := root.value("point"); point != "" {
		resp.Point = &ePosnet.PointData{
			Point:       point,
			PointAmount: root.value("pointAmount"),
		}
	}

	if oos := root.find("oosRequestDataResponse"); oos != nil {
		resp.OosRequestData = &ePosnet.OosRequestResponse{
			Data1: oos.value("data1"),
			Data2: oos.value("data2"),
			Sign:  oos.value("sign"),
		}
	}

	if resolved := root.find("oosResolveMerchantDataResponse"); resolved != nil {
		resp.OosResolveData = &ePosnet.ResolvedData{
			Xid:            resolved.value("xid"),
			Amount:         resolved.value("amount"),
			Currency:       resolved.value("currency"),
			Installment:    resolved.value("installment"),
			TxStatus:       resolved.value("txStatus"),
			MdStatus:       constants.MdStatus(resolved.value("mdStatus")),
			MdErrorMessage: resolved.value("mdErrorMessage"),
			Eci:            resolved.value("eci"),
			Cavv:           resolved.value("cavv"),
			Mac:            resolved.value("mac"),
			Point:          resolved.value("point"),
			PointAmount:    resolved.value("pointAmount"),
		}
	}

	return resp
}
