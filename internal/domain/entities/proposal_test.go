package entities

import "testing"

func TestProposalStatus(t *testing.T) {
	tests := []struct {
		status ProposalStatus
		open   bool
		valid  bool
	}{
		{ProposalStatusDraft, true, true},
		{ProposalStatusSent, true, true},
		{ProposalStatusApproved, false, true},
		{ProposalStatusRejected, false, true},
		{ProposalStatus("archived"), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsOpen(); got != tt.open {
				t.Fatalf("IsOpen() = %v, want %v", got, tt.open)
			}
			if got := tt.status.Valid(); got != tt.valid {
				t.Fatalf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}
