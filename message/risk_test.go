package message

import (
	"testing"

	"github.com/joaquinbejar/deribit-fix/constants"
)

func TestMMProtectionLimitsFields(t *testing.T) {
	p := NewMMProtectionLimits().WithDelta("1.5").WithOrderLimit("100")
	m, err := p.ToFixMessage("CLIENT", "DERIBITSERVER", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := m.Get(constants.TagMMProtDelta); got != "1.5" {
		t.Errorf("Delta = %q", got)
	}
	if m.Has(constants.TagMMProtVega) {
		t.Error("unset field must not be present")
	}
}

func TestMMProtectionResetFields(t *testing.T) {
	r := NewMMProtectionReset(MMProtResetCounters)
	m, err := r.ToFixMessage("CLIENT", "DERIBITSERVER", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := m.Get(constants.TagMMProtResetType); got != "0" {
		t.Errorf("ResetType = %q, want 0", got)
	}
}
