package marginfi

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var (
	LendingAccountLiquidateEventDiscriminator = binary.EventDiscriminator("LendingAccountLiquidateEvent")
	LendingAccountDepositEventDiscriminator   = binary.EventDiscriminator("LendingAccountDepositEvent")
)

// AccountEventHeader prefixes every marginfi account event.
type AccountEventHeader struct {
	Signer                   ed25519.PublicKey // optional
	MarginfiAccount          ed25519.PublicKey
	MarginfiAccountAuthority ed25519.PublicKey
	MarginfiGroup            ed25519.PublicKey
}

func (obj *AccountEventHeader) signer() *ed25519.PublicKey {
	if len(obj.Signer) == 0 {
		return nil
	}
	return &obj.Signer
}

func (obj *AccountEventHeader) Size() int {
	return binary.OptionSize(obj.signer(), 32) + 3*32
}

func (obj *AccountEventHeader) MarshalBinaryTo(e *binary.Encoder) error {
	if err := binary.WriteOption(e, obj.signer(), (*binary.Encoder).WriteKey); err != nil {
		return err
	}
	for _, key := range []ed25519.PublicKey{obj.MarginfiAccount, obj.MarginfiAccountAuthority, obj.MarginfiGroup} {
		if err := e.WriteKey(key); err != nil {
			return err
		}
	}
	return nil
}

func (obj *AccountEventHeader) UnmarshalBinaryFrom(d *binary.Decoder) error {
	signer, err := binary.ReadOption(d, (*binary.Decoder).ReadKey)
	if err != nil {
		return err
	}
	obj.Signer = nil
	if signer != nil {
		obj.Signer = *signer
	}

	for _, dst := range []*ed25519.PublicKey{&obj.MarginfiAccount, &obj.MarginfiAccountAuthority, &obj.MarginfiGroup} {
		if *dst, err = d.ReadKey(); err != nil {
			return err
		}
	}
	return nil
}

const LiquidationBalancesSize = 4 * 8

type LiquidationBalances struct {
	LiquidateeAssetBalance     float64
	LiquidateeLiabilityBalance float64
	LiquidatorAssetBalance     float64
	LiquidatorLiabilityBalance float64
}

func (obj *LiquidationBalances) Size() int {
	return LiquidationBalancesSize
}

func (obj *LiquidationBalances) MarshalBinaryTo(e *binary.Encoder) error {
	for _, v := range []float64{
		obj.LiquidateeAssetBalance,
		obj.LiquidateeLiabilityBalance,
		obj.LiquidatorAssetBalance,
		obj.LiquidatorLiabilityBalance,
	} {
		if err := e.WriteFloat64(v); err != nil {
			return err
		}
	}
	return nil
}

func (obj *LiquidationBalances) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	for _, dst := range []*float64{
		&obj.LiquidateeAssetBalance,
		&obj.LiquidateeLiabilityBalance,
		&obj.LiquidatorAssetBalance,
		&obj.LiquidatorLiabilityBalance,
	} {
		if *dst, err = d.ReadFloat64(); err != nil {
			return err
		}
	}
	return nil
}

type LendingAccountLiquidateEvent struct {
	Header AccountEventHeader

	LiquidateeMarginfiAccount          ed25519.PublicKey
	LiquidateeMarginfiAccountAuthority ed25519.PublicKey
	AssetBank                          ed25519.PublicKey
	AssetMint                          ed25519.PublicKey
	LiabilityBank                      ed25519.PublicKey
	LiabilityMint                      ed25519.PublicKey

	LiquidateePreHealth  float64
	LiquidateePostHealth float64

	PreBalances  LiquidationBalances
	PostBalances LiquidationBalances
}

func (obj *LendingAccountLiquidateEvent) keys() []*ed25519.PublicKey {
	return []*ed25519.PublicKey{
		&obj.LiquidateeMarginfiAccount,
		&obj.LiquidateeMarginfiAccountAuthority,
		&obj.AssetBank,
		&obj.AssetMint,
		&obj.LiabilityBank,
		&obj.LiabilityMint,
	}
}

func (obj *LendingAccountLiquidateEvent) Size() int {
	return (binary.DiscriminatorSize + // discriminator
		obj.Header.Size() + // header
		6*32 + // keys
		8 + // liquidatee_pre_health
		8 + // liquidatee_post_health
		2*LiquidationBalancesSize) // pre_balances, post_balances
}

func (obj *LendingAccountLiquidateEvent) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteDiscriminator(LendingAccountLiquidateEventDiscriminator); err != nil {
		return err
	}
	if err := obj.Header.MarshalBinaryTo(e); err != nil {
		return err
	}
	for _, key := range obj.keys() {
		if err := e.WriteKey(*key); err != nil {
			return err
		}
	}
	if err := e.WriteFloat64(obj.LiquidateePreHealth); err != nil {
		return err
	}
	if err := e.WriteFloat64(obj.LiquidateePostHealth); err != nil {
		return err
	}
	if err := obj.PreBalances.MarshalBinaryTo(e); err != nil {
		return err
	}
	return obj.PostBalances.MarshalBinaryTo(e)
}

func (obj *LendingAccountLiquidateEvent) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = d.ReadDiscriminator(LendingAccountLiquidateEventDiscriminator); err != nil {
		return err
	}
	if err = obj.Header.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	for _, key := range obj.keys() {
		if *key, err = d.ReadKey(); err != nil {
			return err
		}
	}
	if obj.LiquidateePreHealth, err = d.ReadFloat64(); err != nil {
		return err
	}
	if obj.LiquidateePostHealth, err = d.ReadFloat64(); err != nil {
		return err
	}
	if err = obj.PreBalances.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	return obj.PostBalances.UnmarshalBinaryFrom(d)
}

// Unmarshal decodes the event from its discriminator-prefixed log payload.
func (obj *LendingAccountLiquidateEvent) Unmarshal(data []byte) error {
	_, err := binary.Decode(data, 0, obj)
	return err
}

func (obj *LendingAccountLiquidateEvent) String() string {
	return fmt.Sprintf(
		"LendingAccountLiquidateEvent{liquidator=%s,liquidatee=%s,asset_bank=%s,liability_bank=%s,pre_health=%f,post_health=%f}",
		base58.Encode(obj.Header.MarginfiAccount),
		base58.Encode(obj.LiquidateeMarginfiAccount),
		base58.Encode(obj.AssetBank),
		base58.Encode(obj.LiabilityBank),
		obj.LiquidateePreHealth,
		obj.LiquidateePostHealth,
	)
}

type LendingAccountDepositEvent struct {
	Header AccountEventHeader
	Bank   ed25519.PublicKey
	Mint   ed25519.PublicKey
	Amount uint64
}

func (obj *LendingAccountDepositEvent) Size() int {
	return (binary.DiscriminatorSize + // discriminator
		obj.Header.Size() + // header
		32 + // bank
		32 + // mint
		8) // amount
}

func (obj *LendingAccountDepositEvent) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteDiscriminator(LendingAccountDepositEventDiscriminator); err != nil {
		return err
	}
	if err := obj.Header.MarshalBinaryTo(e); err != nil {
		return err
	}
	if err := e.WriteKey(obj.Bank); err != nil {
		return err
	}
	if err := e.WriteKey(obj.Mint); err != nil {
		return err
	}
	return e.WriteUint64(obj.Amount)
}

func (obj *LendingAccountDepositEvent) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = d.ReadDiscriminator(LendingAccountDepositEventDiscriminator); err != nil {
		return err
	}
	if err = obj.Header.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	if obj.Bank, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.Mint, err = d.ReadKey(); err != nil {
		return err
	}
	obj.Amount, err = d.ReadUint64()
	return err
}

func (obj *LendingAccountDepositEvent) Unmarshal(data []byte) error {
	_, err := binary.Decode(data, 0, obj)
	return err
}

func (obj *LendingAccountDepositEvent) String() string {
	return fmt.Sprintf(
		"LendingAccountDepositEvent{account=%s,bank=%s,mint=%s,amount=%d}",
		base58.Encode(obj.Header.MarginfiAccount),
		base58.Encode(obj.Bank),
		base58.Encode(obj.Mint),
		obj.Amount,
	)
}
