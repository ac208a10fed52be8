package bookings

import (
	"strings"
	"testing"
)

func TestVoucherPayloadRoundTrip(t *testing.T) {
	payload := VoucherPayload("b123", "ABCD1234")

	if !strings.HasPrefix(payload, "b123|ABCD1234|") {
		t.Errorf("payload %q missing booking prefix", payload)
	}
	if !VerifyVoucherPayload(payload) {
		t.Error("freshly signed payload failed verification")
	}
}

func TestVoucherPayloadTamperRejected(t *testing.T) {
	payload := VoucherPayload("b123", "ABCD1234")

	tampered := strings.Replace(payload, "b123", "b999", 1)
	if VerifyVoucherPayload(tampered) {
		t.Error("tampered payload passed verification")
	}

	if VerifyVoucherPayload("no-signature-here") {
		t.Error("unsigned payload passed verification")
	}
}
