package marinade

import (
	"crypto/ed25519"

	"github.com/code-payments/solana-program-clients/pkg/solana"
)

// TicketAccountFilters selects delayed unstake tickets, optionally narrowed
// to a single beneficiary.
func TicketAccountFilters(beneficiary ed25519.PublicKey) []solana.Filter {
	filters := []solana.Filter{
		solana.DataSizeFilter(TicketAccountDataSize),
	}
	if len(beneficiary) > 0 {
		filters = append(filters, solana.MustMemcmpFilter(TicketAccountDataBeneficiaryOffset, beneficiary))
	}
	return filters
}
