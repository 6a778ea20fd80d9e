package gen_ids

import (
	"strings"
	"time"
)

const (
	// the gateway rejects references longer than 24 characters
	MaxRefLen = 24
	// XID is a fixed 20 character field on the off-site flow
	XidLen = 20
)

// GatewayOrderRef builds the reference sent with every request. It embeds the
// order id and a second-resolution timestamp so a re-submitted order still
// produces a gateway-side unique reference.
func GatewayOrderRef(orderID string, at time.Time) string {
	ref := at.Format("060102150405") + sanitize(orderID)

	if len(ref) > MaxRefLen {
		ref = ref[:MaxRefLen]
	}

	return ref
}

// OosXID left-pads the order id with zeros to the fixed XID length. Order ids
// longer than the field keep their rightmost characters.
func OosXID(orderID string) string {
	id := sanitize(orderID)

	if len(id) > XidLen {
		id = id[len(id)-XidLen:]
	}

	for len(id) < XidLen {
		id = "0" + id
	}

	return id
}

// OrderIDFromXID recovers the order id from an XID built by OosXID. Returns
// empty when nothing but padding is left.
func OrderIDFromXID(xid string) string {
	return strings.TrimLeft(strings.TrimSpace(xid), "0")
}

func sanitize(id string) string {
	id = strings.TrimSpace(id)
	id = strings.ReplaceAll(id, " ", "")
	id = strings.ReplaceAll(id, "-", "")
	return id
}
