package dlmm

import (
	"crypto/ed25519"

	"github.com/code-payments/solana-program-clients/pkg/solana"
)

// PositionFilters selects PositionV2 accounts, optionally narrowed to a pair
// and an owner.
func PositionFilters(lbPair, owner ed25519.PublicKey) []solana.Filter {
	filters := []solana.Filter{
		solana.DataSizeFilter(PositionV2Size),
		solana.MustMemcmpFilter(0, PositionV2Discriminator[:]),
	}
	if len(lbPair) > 0 {
		filters = append(filters, solana.MustMemcmpFilter(PositionV2LbPairOffset, lbPair))
	}
	if len(owner) > 0 {
		filters = append(filters, solana.MustMemcmpFilter(PositionV2OwnerOffset, owner))
	}
	return filters
}

// LbPairFilters selects pairs by token mints in the stored X/Y order. A nil
// mint matches any.
func LbPairFilters(tokenXMint, tokenYMint ed25519.PublicKey) []solana.Filter {
	filters := []solana.Filter{
		solana.DataSizeFilter(LbPairSize),
		solana.MustMemcmpFilter(0, LbPairDiscriminator[:]),
	}
	if len(tokenXMint) > 0 {
		filters = append(filters, solana.MustMemcmpFilter(LbPairTokenXMintOffset, tokenXMint))
	}
	if len(tokenYMint) > 0 {
		filters = append(filters, solana.MustMemcmpFilter(LbPairTokenYMintOffset, tokenYMint))
	}
	return filters
}

func BinArrayFilters(lbPair ed25519.PublicKey) []solana.Filter {
	return []solana.Filter{
		solana.DataSizeFilter(BinArraySize),
		solana.MustMemcmpFilter(0, BinArrayDiscriminator[:]),
		solana.MustMemcmpFilter(BinArrayLbPairOffset, lbPair),
	}
}
