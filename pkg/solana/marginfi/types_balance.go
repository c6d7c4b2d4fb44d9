package marginfi

import (
	"crypto/ed25519"
	"fmt"
	"math"

	"github.com/mr-tron/base58"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const MaxLendingAccountBalances = 16

const BalanceSize = (1 + // active
	32 + // bank_pk
	1 + // bank_asset_tag
	6 + // pad0
	16 + // asset_shares
	16 + // liability_shares
	16 + // emissions_outstanding
	8 + // last_update
	8) // padding

// Balance is a single bank position inside a LendingAccount.
type Balance struct {
	Active               uint8
	BankPk               ed25519.PublicKey
	BankAssetTag         uint8
	Pad0                 [6]byte
	AssetShares          binary.I80F48
	LiabilityShares      binary.I80F48
	EmissionsOutstanding binary.I80F48
	LastUpdate           uint64
	Padding              [8]byte
}

func (obj *Balance) IsActive() bool {
	return obj.Active != 0
}

func (obj *Balance) Size() int {
	return BalanceSize
}

func (obj *Balance) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteUint8(obj.Active); err != nil {
		return err
	}
	if err := e.WriteKey(obj.BankPk); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.BankAssetTag); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Pad0[:]); err != nil {
		return err
	}
	if err := e.WriteI80F48(obj.AssetShares); err != nil {
		return err
	}
	if err := e.WriteI80F48(obj.LiabilityShares); err != nil {
		return err
	}
	if err := e.WriteI80F48(obj.EmissionsOutstanding); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.LastUpdate); err != nil {
		return err
	}
	return e.WriteBytes(obj.Padding[:])
}

func (obj *Balance) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.Active, err = d.ReadUint8(); err != nil {
		return err
	}
	if obj.BankPk, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.BankAssetTag, err = d.ReadUint8(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Pad0[:]); err != nil {
		return err
	}
	if obj.AssetShares, err = d.ReadI80F48(); err != nil {
		return err
	}
	if obj.LiabilityShares, err = d.ReadI80F48(); err != nil {
		return err
	}
	if obj.EmissionsOutstanding, err = d.ReadI80F48(); err != nil {
		return err
	}
	if obj.LastUpdate, err = d.ReadUint64(); err != nil {
		return err
	}
	return d.ReadFixed(obj.Padding[:])
}

func (obj *Balance) String() string {
	return fmt.Sprintf(
		"Balance{active=%d,bank=%s,asset_tag=%d,asset_shares=%s,liability_shares=%s,emissions_outstanding=%s,last_update=%d}",
		obj.Active,
		base58.Encode(obj.BankPk),
		obj.BankAssetTag,
		obj.AssetShares,
		obj.LiabilityShares,
		obj.EmissionsOutstanding,
		obj.LastUpdate,
	)
}

const LendingAccountSize = (MaxLendingAccountBalances*BalanceSize + // balances
	64) // padding

type LendingAccount struct {
	Balances [MaxLendingAccountBalances]Balance
	Padding  [64]byte
}

func (obj *LendingAccount) Size() int {
	return LendingAccountSize
}

func (obj *LendingAccount) MarshalBinaryTo(e *binary.Encoder) error {
	if err := binary.WriteArray(e, obj.Balances[:], MaxLendingAccountBalances, binary.WriteRecord[Balance]); err != nil {
		return err
	}
	return e.WriteBytes(obj.Padding[:])
}

func (obj *LendingAccount) UnmarshalBinaryFrom(d *binary.Decoder) error {
	if err := binary.ReadArrayInto(d, obj.Balances[:], BalanceSize, binary.ReadRecord[Balance]); err != nil {
		return err
	}
	return d.ReadFixed(obj.Padding[:])
}

const (
	HealthCacheFlagHealthy  uint32 = 1 << 0
	HealthCacheFlagEngineOk uint32 = 1 << 1
	HealthCacheFlagOracleOk uint32 = 1 << 2
)

const HealthCacheSize = (16 + // asset_value
	16 + // liability_value
	16 + // asset_value_maint
	16 + // liability_value_maint
	16 + // asset_value_equity
	16 + // liability_value_equity
	8 + // timestamp
	4 + // flags
	4 + // mrgn_err
	MaxLendingAccountBalances*8 + // prices
	4 + // internal_err
	1 + // err_index
	1 + // program_version
	2 + // pad0
	4 + // internal_liq_err
	4 + // internal_bankruptcy_err
	32 + // reserved0
	16) // reserved1

// HealthCache is the risk engine's view of a MarginfiAccount as of the last
// health pulse.
type HealthCache struct {
	AssetValue           binary.I80F48
	LiabilityValue       binary.I80F48
	AssetValueMaint      binary.I80F48
	LiabilityValueMaint  binary.I80F48
	AssetValueEquity     binary.I80F48
	LiabilityValueEquity binary.I80F48

	Timestamp int64
	Flags     uint32
	MrgnErr   uint32

	// Each entry is an f64 stored as bytes, indexed like LendingAccount.Balances.
	Prices [MaxLendingAccountBalances][8]byte

	InternalErr           uint32
	ErrIndex              uint8
	ProgramVersion        uint8
	Pad0                  [2]byte
	InternalLiqErr        uint32
	InternalBankruptcyErr uint32
	Reserved0             [32]byte
	Reserved1             [16]byte
}

func (obj *HealthCache) IsHealthy() bool {
	return obj.Flags&HealthCacheFlagHealthy != 0
}

// Price returns the price the risk engine used for the balance at index.
func (obj *HealthCache) Price(index int) float64 {
	p := obj.Prices[index]
	var bits uint64
	for i := len(p) - 1; i >= 0; i-- {
		bits = bits<<8 | uint64(p[i])
	}
	return math.Float64frombits(bits)
}

func (obj *HealthCache) Size() int {
	return HealthCacheSize
}

func (obj *HealthCache) MarshalBinaryTo(e *binary.Encoder) error {
	for _, v := range []binary.I80F48{
		obj.AssetValue,
		obj.LiabilityValue,
		obj.AssetValueMaint,
		obj.LiabilityValueMaint,
		obj.AssetValueEquity,
		obj.LiabilityValueEquity,
	} {
		if err := e.WriteI80F48(v); err != nil {
			return err
		}
	}
	if err := e.WriteInt64(obj.Timestamp); err != nil {
		return err
	}
	if err := e.WriteUint32(obj.Flags); err != nil {
		return err
	}
	if err := e.WriteUint32(obj.MrgnErr); err != nil {
		return err
	}
	for i := range obj.Prices {
		if err := e.WriteBytes(obj.Prices[i][:]); err != nil {
			return err
		}
	}
	if err := e.WriteUint32(obj.InternalErr); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.ErrIndex); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.ProgramVersion); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Pad0[:]); err != nil {
		return err
	}
	if err := e.WriteUint32(obj.InternalLiqErr); err != nil {
		return err
	}
	if err := e.WriteUint32(obj.InternalBankruptcyErr); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Reserved0[:]); err != nil {
		return err
	}
	return e.WriteBytes(obj.Reserved1[:])
}

func (obj *HealthCache) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	for _, dst := range []*binary.I80F48{
		&obj.AssetValue,
		&obj.LiabilityValue,
		&obj.AssetValueMaint,
		&obj.LiabilityValueMaint,
		&obj.AssetValueEquity,
		&obj.LiabilityValueEquity,
	} {
		if *dst, err = d.ReadI80F48(); err != nil {
			return err
		}
	}
	if obj.Timestamp, err = d.ReadInt64(); err != nil {
		return err
	}
	if obj.Flags, err = d.ReadUint32(); err != nil {
		return err
	}
	if obj.MrgnErr, err = d.ReadUint32(); err != nil {
		return err
	}
	for i := range obj.Prices {
		if err = d.ReadFixed(obj.Prices[i][:]); err != nil {
			return err
		}
	}
	if obj.InternalErr, err = d.ReadUint32(); err != nil {
		return err
	}
	if obj.ErrIndex, err = d.ReadUint8(); err != nil {
		return err
	}
	if obj.ProgramVersion, err = d.ReadUint8(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Pad0[:]); err != nil {
		return err
	}
	if obj.InternalLiqErr, err = d.ReadUint32(); err != nil {
		return err
	}
	if obj.InternalBankruptcyErr, err = d.ReadUint32(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Reserved0[:]); err != nil {
		return err
	}
	return d.ReadFixed(obj.Reserved1[:])
}
