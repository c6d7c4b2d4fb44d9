package marinade

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var (
	DepositStakeAccountEventDiscriminator = binary.EventDiscriminator("DepositStakeAccountEvent")
	ConfigMarinadeEventDiscriminator      = binary.EventDiscriminator("ConfigMarinadeEvent")
)

const DepositStakeAccountEventSize = (8 + // discriminator
	32 + // state
	32 + // stake
	8 + // delegated
	32 + // withdrawer
	4 + // stake_index
	32 + // validator
	4 + // validator_index
	8 + // validator_active_balance
	8 + // total_active_balance
	8 + // user_msol_balance
	8 + // msol_minted
	8 + // total_virtual_staked_lamports
	8) // msol_supply

type DepositStakeAccountEvent struct {
	State                      ed25519.PublicKey
	Stake                      ed25519.PublicKey
	Delegated                  uint64
	Withdrawer                 ed25519.PublicKey
	StakeIndex                 uint32
	Validator                  ed25519.PublicKey
	ValidatorIndex             uint32
	ValidatorActiveBalance     uint64
	TotalActiveBalance         uint64
	UserMsolBalance            uint64
	MsolMinted                 uint64
	TotalVirtualStakedLamports uint64
	MsolSupply                 uint64
}

func (obj *DepositStakeAccountEvent) Size() int {
	return DepositStakeAccountEventSize
}

func (obj *DepositStakeAccountEvent) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteDiscriminator(DepositStakeAccountEventDiscriminator); err != nil {
		return err
	}
	if err := e.WriteKey(obj.State); err != nil {
		return err
	}
	if err := e.WriteKey(obj.Stake); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.Delegated); err != nil {
		return err
	}
	if err := e.WriteKey(obj.Withdrawer); err != nil {
		return err
	}
	if err := e.WriteUint32(obj.StakeIndex); err != nil {
		return err
	}
	if err := e.WriteKey(obj.Validator); err != nil {
		return err
	}
	if err := e.WriteUint32(obj.ValidatorIndex); err != nil {
		return err
	}
	for _, v := range []uint64{
		obj.ValidatorActiveBalance,
		obj.TotalActiveBalance,
		obj.UserMsolBalance,
		obj.MsolMinted,
		obj.TotalVirtualStakedLamports,
		obj.MsolSupply,
	} {
		if err := e.WriteUint64(v); err != nil {
			return err
		}
	}
	return nil
}

func (obj *DepositStakeAccountEvent) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = d.ReadDiscriminator(DepositStakeAccountEventDiscriminator); err != nil {
		return err
	}
	if obj.State, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.Stake, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.Delegated, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.Withdrawer, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.StakeIndex, err = d.ReadUint32(); err != nil {
		return err
	}
	if obj.Validator, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.ValidatorIndex, err = d.ReadUint32(); err != nil {
		return err
	}
	for _, dst := range []*uint64{
		&obj.ValidatorActiveBalance,
		&obj.TotalActiveBalance,
		&obj.UserMsolBalance,
		&obj.MsolMinted,
		&obj.TotalVirtualStakedLamports,
		&obj.MsolSupply,
	} {
		if *dst, err = d.ReadUint64(); err != nil {
			return err
		}
	}
	return nil
}

func (obj *DepositStakeAccountEvent) Unmarshal(data []byte) error {
	_, err := binary.Decode(data, 0, obj)
	return err
}

func (obj *DepositStakeAccountEvent) String() string {
	return fmt.Sprintf(
		"DepositStakeAccountEvent{state=%s,stake=%s,delegated=%d,validator=%s,msol_minted=%d,msol_supply=%d}",
		base58.Encode(obj.State),
		base58.Encode(obj.Stake),
		obj.Delegated,
		base58.Encode(obj.Validator),
		obj.MsolMinted,
		obj.MsolSupply,
	)
}

// U64ValueChange, BoolValueChange, FeeValueChange and FeeCentsValueChange
// record a setting's value before and after a config change.
type U64ValueChange struct {
	Old uint64
	New uint64
}

func (obj *U64ValueChange) Size() int {
	return 16
}

func (obj *U64ValueChange) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteUint64(obj.Old); err != nil {
		return err
	}
	return e.WriteUint64(obj.New)
}

func (obj *U64ValueChange) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.Old, err = d.ReadUint64(); err != nil {
		return err
	}
	obj.New, err = d.ReadUint64()
	return err
}

type BoolValueChange struct {
	Old bool
	New bool
}

func (obj *BoolValueChange) Size() int {
	return 2
}

func (obj *BoolValueChange) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteBool(obj.Old); err != nil {
		return err
	}
	return e.WriteBool(obj.New)
}

func (obj *BoolValueChange) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.Old, err = d.ReadBool(); err != nil {
		return err
	}
	obj.New, err = d.ReadBool()
	return err
}

type FeeValueChange struct {
	Old Fee
	New Fee
}

func (obj *FeeValueChange) Size() int {
	return 2 * FeeSize
}

func (obj *FeeValueChange) MarshalBinaryTo(e *binary.Encoder) error {
	if err := obj.Old.MarshalBinaryTo(e); err != nil {
		return err
	}
	return obj.New.MarshalBinaryTo(e)
}

func (obj *FeeValueChange) UnmarshalBinaryFrom(d *binary.Decoder) error {
	if err := obj.Old.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	return obj.New.UnmarshalBinaryFrom(d)
}

type FeeCentsValueChange struct {
	Old FeeCents
	New FeeCents
}

func (obj *FeeCentsValueChange) Size() int {
	return 2 * FeeCentsSize
}

func (obj *FeeCentsValueChange) MarshalBinaryTo(e *binary.Encoder) error {
	if err := obj.Old.MarshalBinaryTo(e); err != nil {
		return err
	}
	return obj.New.MarshalBinaryTo(e)
}

func (obj *FeeCentsValueChange) UnmarshalBinaryFrom(d *binary.Decoder) error {
	if err := obj.Old.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	return obj.New.UnmarshalBinaryFrom(d)
}

// ConfigMarinadeEvent is emitted by config_marinade. Only the settings that
// were part of the call are present.
type ConfigMarinadeEvent struct {
	State                             ed25519.PublicKey
	RewardsFeeChange                  *FeeValueChange
	SlotsForStakeDeltaChange          *U64ValueChange
	MinStakeChange                    *U64ValueChange
	MinDepositChange                  *U64ValueChange
	MinWithdrawChange                 *U64ValueChange
	StakingSolCapChange               *U64ValueChange
	LiquiditySolCapChange             *U64ValueChange
	WithdrawStakeAccountEnabledChange *BoolValueChange
	DelayedUnstakeFeeChange           *FeeCentsValueChange
	WithdrawStakeAccountFeeChange     *FeeCentsValueChange
	MaxStakeMovedPerEpochChange       *FeeValueChange
}

func (obj *ConfigMarinadeEvent) u64Changes() []*U64ValueChange {
	return []*U64ValueChange{
		obj.SlotsForStakeDeltaChange,
		obj.MinStakeChange,
		obj.MinDepositChange,
		obj.MinWithdrawChange,
		obj.StakingSolCapChange,
		obj.LiquiditySolCapChange,
	}
}

func (obj *ConfigMarinadeEvent) Size() int {
	size := 8 + 32 + binary.OptionSize(obj.RewardsFeeChange, 2*FeeSize)
	for _, change := range obj.u64Changes() {
		size += binary.OptionSize(change, 16)
	}
	return size +
		binary.OptionSize(obj.WithdrawStakeAccountEnabledChange, 2) +
		binary.OptionSize(obj.DelayedUnstakeFeeChange, 2*FeeCentsSize) +
		binary.OptionSize(obj.WithdrawStakeAccountFeeChange, 2*FeeCentsSize) +
		binary.OptionSize(obj.MaxStakeMovedPerEpochChange, 2*FeeSize)
}

func (obj *ConfigMarinadeEvent) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteDiscriminator(ConfigMarinadeEventDiscriminator); err != nil {
		return err
	}
	if err := e.WriteKey(obj.State); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.RewardsFeeChange, binary.WriteRecord[FeeValueChange]); err != nil {
		return err
	}
	for _, change := range obj.u64Changes() {
		if err := binary.WriteOption(e, change, binary.WriteRecord[U64ValueChange]); err != nil {
			return err
		}
	}
	if err := binary.WriteOption(e, obj.WithdrawStakeAccountEnabledChange, binary.WriteRecord[BoolValueChange]); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.DelayedUnstakeFeeChange, binary.WriteRecord[FeeCentsValueChange]); err != nil {
		return err
	}
	if err := binary.WriteOption(e, obj.WithdrawStakeAccountFeeChange, binary.WriteRecord[FeeCentsValueChange]); err != nil {
		return err
	}
	return binary.WriteOption(e, obj.MaxStakeMovedPerEpochChange, binary.WriteRecord[FeeValueChange])
}

func (obj *ConfigMarinadeEvent) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = d.ReadDiscriminator(ConfigMarinadeEventDiscriminator); err != nil {
		return err
	}
	if obj.State, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.RewardsFeeChange, err = binary.ReadOption(d, binary.ReadRecord[FeeValueChange]); err != nil {
		return err
	}
	for _, dst := range []**U64ValueChange{
		&obj.SlotsForStakeDeltaChange,
		&obj.MinStakeChange,
		&obj.MinDepositChange,
		&obj.MinWithdrawChange,
		&obj.StakingSolCapChange,
		&obj.LiquiditySolCapChange,
	} {
		if *dst, err = binary.ReadOption(d, binary.ReadRecord[U64ValueChange]); err != nil {
			return err
		}
	}
	if obj.WithdrawStakeAccountEnabledChange, err = binary.ReadOption(d, binary.ReadRecord[BoolValueChange]); err != nil {
		return err
	}
	if obj.DelayedUnstakeFeeChange, err = binary.ReadOption(d, binary.ReadRecord[FeeCentsValueChange]); err != nil {
		return err
	}
	if obj.WithdrawStakeAccountFeeChange, err = binary.ReadOption(d, binary.ReadRecord[FeeCentsValueChange]); err != nil {
		return err
	}
	obj.MaxStakeMovedPerEpochChange, err = binary.ReadOption(d, binary.ReadRecord[FeeValueChange])
	return err
}

func (obj *ConfigMarinadeEvent) Unmarshal(data []byte) error {
	_, err := binary.Decode(data, 0, obj)
	return err
}
