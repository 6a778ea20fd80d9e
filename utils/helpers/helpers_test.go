package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		name   string
		pan    string
		expect string
	}{
		{name: "sixteen digits", pan: "4111111111111111", expect: "411111******1111"},
		{name: "nineteen digits", pan: "4111111111111111123", expect: "411111*********1123"},
		{name: "twelve digits", pan: "411111111111", expect: "411111**1111"},
		{name: "too short fully masked", pan: "41111", expect: "*****"},
		{name: "empty", pan: "", expect: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, MaskCardNumber(tt.pan))
		})
	}
}

func TestMaskSensitiveXML(t *testing.T) {
	raw := `<posnetRequest><mid>6706598320</mid><sale><ccno>4111111111111111</ccno><cvc>123</cvc><amount>10000</amount></sale></posnetRequest>`

	masked := MaskSensitiveXML(raw)

	assert.NotContains(t, masked, "4111111111111111")
	assert.Contains(t, masked, "<ccno>411111******1111</ccno>")
	assert.Contains(t, masked, "<cvc>***</cvc>")
	// non-sensitive fields survive untouched
	assert.Contains(t, masked, "<amount>10000</amount>")
	assert.Contains(t, masked, "<mid>6706598320</mid>")
}

func TestMaskSensitiveXML_BarePan(t *testing.T) {
	// a PAN leaking outside a known tag still gets masked
	masked := MaskSensitiveXML("card 4111111111111111 declined")
	assert.NotContains(t, masked, "4111111111111111")
	assert.Contains(t, masked, "411111******1111")
}

func TestMaskSensitiveXML_MalformedDocument(t *testing.T) {
	// masking is text based, so truncated documents are still covered
	masked := MaskSensitiveXML("<posnetRequest><ccno>4111111111111111</ccno><cv")
	assert.NotContains(t, masked, "4111111111111111")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "abcde", Truncate("abcdefgh", 5))
	assert.Equal(t, "", Truncate("", 5))
}

func TestGetUUId(t *testing.T) {
	assert.NotEqual(t, GetUUId(), GetUUId())
}

func TestIsStringSliceContains(t *testing.T) {
	assert.True(t, IsStringSliceContains([]string{"a", "b"}, "b"))
	assert.False(t, IsStringSliceContains([]string{"a", "b"}, "c"))
	assert.False(t, IsStringSliceContains(nil, "a"))
}
