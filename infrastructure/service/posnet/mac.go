package posnet

import (
	"strings"

	"cardpay-system/domain/constants"
	pErrors "cardpay-system/errors"
	"cardpay-system/utils/crypt"
)

// MacEngine computes the gateway's layered message authentication code:
//
//	firstHash = Base64(SHA256(encKey ";" terminalID))
//	mac       = Base64(SHA256(field1 ";" ... ";" merchantID ";" firstHash))
//
// The engine holds no mutable state and is safe for concurrent use across
// in-flight transactions.
type MacEngine struct {
	merchantID string
	terminalID string
	encKey     string
}

func NewMacEngine(merchantID, terminalID, encKey string) *MacEngine {
	return &MacEngine{
		merchantID: strings.TrimSpace(merchantID),
		terminalID: strings.TrimSpace(terminalID),
		encKey:     strings.TrimSpace(encKey),
	}
}

// NormalizeAmount reduces an amount to digits, strips leading zeros and maps
// the empty result to "0". Idempotent.
func NormalizeAmount(amount string) string {
	var b strings.Builder
	for _, r := range amount {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	out := strings.TrimLeft(b.String(), "0")
	if out == "" {
		return "0"
	}
	return out
}

// NormalizeCurrency maps any currency spelling onto the gateway's two-letter
// code.
func NormalizeCurrency(code string) string {
	return constants.GatewayCurrency(code)
}

// FirstHash is the key-and-terminal digest every MAC chains on. Fails closed
// when no encryption key is configured: a missing key must never validate.
func (m *MacEngine) FirstHash() (string, error) {
	if m.encKey == "" {
		return "", pErrors.ErrMissingEncryptionKey
	}
	return crypt.HashSHA256Base64(m.encKey + ";" + m.terminalID), nil
}

// Mac chains the given fields, the merchant id and the first hash. Field
// order is operation-specific and chosen by the caller; identifiers are
// trimmed here, amounts and currencies must arrive normalized.
func (m *MacEngine) Mac(fields ...string) (string, error) {
	firstHash, err := m.FirstHash()
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(fields)+2)
	for _, f := range fields {
		parts = append(parts, strings.TrimSpace(f))
	}
	parts = append(parts, m.merchantID, firstHash)

	return crypt.HashSHA256Base64(strings.Join(parts, ";")), nil
}

// FinalizeMac signs the finalize (and resolve request) round-trips:
// xid;amount;currency;merchantID;firstHash.
func (m *MacEngine) FinalizeMac(xid, amount, currency string) (string, error) {
	return m.Mac(xid, NormalizeAmount(amount), NormalizeCurrency(currency))
}

// CallbackMac is the formula for verifying bank-originated data:
// mdStatus;xid;amount;currency;merchantID;firstHash.
func (m *MacEngine) CallbackMac(mdStatus, xid, amount, currency string) (string, error) {
	return m.Mac(mdStatus, xid, NormalizeAmount(amount), NormalizeCurrency(currency))
}

// VerifyCallbackMac recomputes the callback MAC and compares it against the
// received value in constant time.
func (m *MacEngine) VerifyCallbackMac(mdStatus, xid, amount, currency, received string) (bool, error) {
	expected, err := m.CallbackMac(mdStatus, xid, amount, currency)
	if err != nil {
		return false, err
	}
	return crypt.SecureCompare(expected, strings.TrimSpace(received)), nil
}
