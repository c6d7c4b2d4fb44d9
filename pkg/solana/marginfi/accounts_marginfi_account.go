package marginfi

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const (
	AccountFlagDisabled                 uint64 = 1 << 0
	AccountFlagInFlashloan              uint64 = 1 << 1
	AccountFlagTransferAuthorityAllowed uint64 = 1 << 3
)

const MarginfiAccountSize = (8 + // discriminator
	32 + // group
	32 + // authority
	LendingAccountSize + // lending_account
	8 + // account_flags
	32 + // emissions_destination_account
	HealthCacheSize + // health_cache
	32 + // migrated_from
	32 + // migrated_to
	104) // padding0

const (
	MarginfiAccountGroupOffset     = 8
	MarginfiAccountAuthorityOffset = 40
)

var MarginfiAccountDiscriminator = binary.Discriminator{67, 178, 130, 109, 126, 114, 28, 42}

type MarginfiAccount struct {
	Group                       ed25519.PublicKey
	Authority                   ed25519.PublicKey
	LendingAccount              LendingAccount
	AccountFlags                uint64
	EmissionsDestinationAccount ed25519.PublicKey
	HealthCache                 HealthCache
	MigratedFrom                ed25519.PublicKey
	MigratedTo                  ed25519.PublicKey
	Padding0                    [104]byte
}

// ActiveBalances returns the balances that currently hold a position, in
// slot order.
func (obj *MarginfiAccount) ActiveBalances() []Balance {
	var active []Balance
	for _, balance := range obj.LendingAccount.Balances {
		if balance.IsActive() {
			active = append(active, balance)
		}
	}
	return active
}

func (obj *MarginfiAccount) HasFlag(flag uint64) bool {
	return obj.AccountFlags&flag == flag
}

func (obj *MarginfiAccount) IsDisabled() bool {
	return obj.HasFlag(AccountFlagDisabled)
}

func (obj *MarginfiAccount) Size() int {
	return MarginfiAccountSize
}

func (obj *MarginfiAccount) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteDiscriminator(MarginfiAccountDiscriminator); err != nil {
		return err
	}
	if err := e.WriteKey(obj.Group); err != nil {
		return err
	}
	if err := e.WriteKey(obj.Authority); err != nil {
		return err
	}
	if err := obj.LendingAccount.MarshalBinaryTo(e); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.AccountFlags); err != nil {
		return err
	}
	if err := e.WriteKey(obj.EmissionsDestinationAccount); err != nil {
		return err
	}
	if err := obj.HealthCache.MarshalBinaryTo(e); err != nil {
		return err
	}
	if err := e.WriteKey(obj.MigratedFrom); err != nil {
		return err
	}
	if err := e.WriteKey(obj.MigratedTo); err != nil {
		return err
	}
	return e.WriteBytes(obj.Padding0[:])
}

func (obj *MarginfiAccount) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = d.ReadDiscriminator(MarginfiAccountDiscriminator); err != nil {
		return err
	}
	if obj.Group, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.Authority, err = d.ReadKey(); err != nil {
		return err
	}
	if err = obj.LendingAccount.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	if obj.AccountFlags, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.EmissionsDestinationAccount, err = d.ReadKey(); err != nil {
		return err
	}
	if err = obj.HealthCache.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	if obj.MigratedFrom, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.MigratedTo, err = d.ReadKey(); err != nil {
		return err
	}
	return d.ReadFixed(obj.Padding0[:])
}

func (obj *MarginfiAccount) Unmarshal(data []byte) error {
	_, err := binary.Decode(data, 0, obj)
	return err
}

func (obj *MarginfiAccount) String() string {
	return fmt.Sprintf(
		"MarginfiAccount{group=%s,authority=%s,active_balances=%d,account_flags=%d,healthy=%t,migrated_from=%s,migrated_to=%s}",
		base58.Encode(obj.Group),
		base58.Encode(obj.Authority),
		len(obj.ActiveBalances()),
		obj.AccountFlags,
		obj.HealthCache.IsHealthy(),
		base58.Encode(obj.MigratedFrom),
		base58.Encode(obj.MigratedTo),
	)
}
