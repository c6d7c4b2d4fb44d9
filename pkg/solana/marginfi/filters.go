package marginfi

import (
	"crypto/ed25519"

	"github.com/code-payments/solana-program-clients/pkg/solana"
)

// MarginfiAccountFilters selects the marginfi accounts of a group, optionally
// narrowed to a single authority.
func MarginfiAccountFilters(group, authority ed25519.PublicKey) []solana.Filter {
	filters := []solana.Filter{
		solana.DataSizeFilter(MarginfiAccountSize),
		solana.MustMemcmpFilter(0, MarginfiAccountDiscriminator[:]),
	}
	if len(group) > 0 {
		filters = append(filters, solana.MustMemcmpFilter(MarginfiAccountGroupOffset, group))
	}
	if len(authority) > 0 {
		filters = append(filters, solana.MustMemcmpFilter(MarginfiAccountAuthorityOffset, authority))
	}
	return filters
}

// BankFilters selects the banks of a group.
func BankFilters(group ed25519.PublicKey) []solana.Filter {
	return []solana.Filter{
		solana.DataSizeFilter(BankSize),
		solana.MustMemcmpFilter(0, BankDiscriminator[:]),
		solana.MustMemcmpFilter(BankGroupOffset, group),
	}
}
