package marginfi

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const StakedSettingsSize = (8 + // discriminator
	32 + // key
	32 + // marginfi_group
	32 + // oracle
	16 + // asset_weight_init
	16 + // asset_weight_maint
	8 + // deposit_limit
	8 + // total_asset_value_init_limit
	2 + // oracle_max_age
	1 + // risk_tier
	5 + // pad0
	8 + // reserved0
	32 + // reserved1
	64) // reserved2

const StakedSettingsGroupOffset = 40

var StakedSettingsDiscriminator = binary.Discriminator{157, 140, 6, 77, 89, 173, 173, 125}

// StakedSettings are the defaults applied to staked collateral banks of a
// group.
type StakedSettings struct {
	Key                      ed25519.PublicKey
	MarginfiGroup            ed25519.PublicKey
	Oracle                   ed25519.PublicKey
	AssetWeightInit          binary.I80F48
	AssetWeightMaint         binary.I80F48
	DepositLimit             uint64
	TotalAssetValueInitLimit uint64
	OracleMaxAge             uint16
	RiskTier                 RiskTier
	Pad0                     [5]byte
	Reserved0                [8]byte
	Reserved1                [32]byte
	Reserved2                [64]byte
}

func (obj *StakedSettings) Size() int {
	return StakedSettingsSize
}

func (obj *StakedSettings) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteDiscriminator(StakedSettingsDiscriminator); err != nil {
		return err
	}
	for _, key := range []ed25519.PublicKey{obj.Key, obj.MarginfiGroup, obj.Oracle} {
		if err := e.WriteKey(key); err != nil {
			return err
		}
	}
	if err := e.WriteI80F48(obj.AssetWeightInit); err != nil {
		return err
	}
	if err := e.WriteI80F48(obj.AssetWeightMaint); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.DepositLimit); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.TotalAssetValueInitLimit); err != nil {
		return err
	}
	if err := e.WriteUint16(obj.OracleMaxAge); err != nil {
		return err
	}
	if err := e.WriteUint8(uint8(obj.RiskTier)); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Pad0[:]); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Reserved0[:]); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Reserved1[:]); err != nil {
		return err
	}
	return e.WriteBytes(obj.Reserved2[:])
}

func (obj *StakedSettings) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = d.ReadDiscriminator(StakedSettingsDiscriminator); err != nil {
		return err
	}
	for _, key := range []*ed25519.PublicKey{&obj.Key, &obj.MarginfiGroup, &obj.Oracle} {
		if *key, err = d.ReadKey(); err != nil {
			return err
		}
	}
	if obj.AssetWeightInit, err = d.ReadI80F48(); err != nil {
		return err
	}
	if obj.AssetWeightMaint, err = d.ReadI80F48(); err != nil {
		return err
	}
	if obj.DepositLimit, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.TotalAssetValueInitLimit, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.OracleMaxAge, err = d.ReadUint16(); err != nil {
		return err
	}
	var raw uint8
	if raw, err = d.ReadUint8(); err != nil {
		return err
	}
	obj.RiskTier = RiskTier(raw)

	if err = d.ReadFixed(obj.Pad0[:]); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Reserved0[:]); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Reserved1[:]); err != nil {
		return err
	}
	return d.ReadFixed(obj.Reserved2[:])
}

func (obj *StakedSettings) Unmarshal(data []byte) error {
	_, err := binary.Decode(data, 0, obj)
	return err
}

func (obj *StakedSettings) String() string {
	return fmt.Sprintf(
		"StakedSettings{key=%s,group=%s,oracle=%s,asset_weight_init=%s,asset_weight_maint=%s,deposit_limit=%d,risk_tier=%s}",
		base58.Encode(obj.Key),
		base58.Encode(obj.MarginfiGroup),
		base58.Encode(obj.Oracle),
		obj.AssetWeightInit,
		obj.AssetWeightMaint,
		obj.DepositLimit,
		obj.RiskTier,
	)
}
