package value_objects

import (
	"regexp"
	"strings"
)

// CardDetails lives in memory only for the duration of one outbound request.
// It is never stored and never logged unmasked.
type CardDetails struct {
	Number      string `json:"-"`
	ExpiryMonth string `json:"-"`
	ExpiryYear  string `json:"-"`
	Cvc         string `json:"-"`
	HolderName  string `json:"-"`
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// NormalizedNumber strips separators from the PAN.
func (c CardDetails) NormalizedNumber() string {
	return nonDigits.ReplaceAllString(c.Number, "")
}

// GatewayExpiry renders the expiry the way the gateway wants it: YYMM.
func (c CardDetails) GatewayExpiry() string {
	year := strings.TrimSpace(c.ExpiryYear)
	if len(year) == 4 {
		year = year[2:]
	}
	month := strings.TrimSpace(c.ExpiryMonth)
	if len(month) == 1 {
		month = "0" + month
	}
	return year + month
}

// Valid checks the fields the gateway would reject outright. Full issuer-side
// validation is the bank's job.
func (c CardDetails) Valid() bool {
	n := c.NormalizedNumber()
	if len(n) < 12 || len(n) > 19 {
		return false
	}
	exp := c.GatewayExpiry()
	if len(exp) != 4 {
		return false
	}
	if exp[2:] < "01" || exp[2:] > "12" {
		return false
	}
	return true
}
