package marinade

import (
	"crypto/ed25519"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const ListSize = (32 + // account
	4 + // item_size
	4 + // count
	32 + // reserved1
	4) // reserved2

// List points at an account holding fixed size items, such as the stake or
// validator list.
type List struct {
	Account   ed25519.PublicKey
	ItemSize  uint32
	Count     uint32
	Reserved1 ed25519.PublicKey
	Reserved2 uint32
}

func (obj *List) Size() int {
	return ListSize
}

func (obj *List) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteKey(obj.Account); err != nil {
		return err
	}
	if err := e.WriteUint32(obj.ItemSize); err != nil {
		return err
	}
	if err := e.WriteUint32(obj.Count); err != nil {
		return err
	}
	if err := e.WriteKey(obj.Reserved1); err != nil {
		return err
	}
	return e.WriteUint32(obj.Reserved2)
}

func (obj *List) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.Account, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.ItemSize, err = d.ReadUint32(); err != nil {
		return err
	}
	if obj.Count, err = d.ReadUint32(); err != nil {
		return err
	}
	if obj.Reserved1, err = d.ReadKey(); err != nil {
		return err
	}
	obj.Reserved2, err = d.ReadUint32()
	return err
}

const StakeSystemSize = (ListSize + // stake_list
	8 + // delayed_unstake_cooling_down
	1 + // stake_deposit_bump_seed
	1 + // stake_withdraw_bump_seed
	8 + // slots_for_stake_delta
	8 + // last_stake_delta_epoch
	8 + // min_stake
	4) // extra_stake_delta_runs

type StakeSystem struct {
	StakeList                 List
	DelayedUnstakeCoolingDown uint64
	StakeDepositBumpSeed      uint8
	StakeWithdrawBumpSeed     uint8
	SlotsForStakeDelta        uint64
	LastStakeDeltaEpoch       uint64
	MinStake                  uint64
	ExtraStakeDeltaRuns       uint32
}

func (obj *StakeSystem) Size() int {
	return StakeSystemSize
}

func (obj *StakeSystem) MarshalBinaryTo(e *binary.Encoder) error {
	if err := obj.StakeList.MarshalBinaryTo(e); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.DelayedUnstakeCoolingDown); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.StakeDepositBumpSeed); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.StakeWithdrawBumpSeed); err != nil {
		return err
	}
	for _, v := range []uint64{obj.SlotsForStakeDelta, obj.LastStakeDeltaEpoch, obj.MinStake} {
		if err := e.WriteUint64(v); err != nil {
			return err
		}
	}
	return e.WriteUint32(obj.ExtraStakeDeltaRuns)
}

func (obj *StakeSystem) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = obj.StakeList.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	if obj.DelayedUnstakeCoolingDown, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.StakeDepositBumpSeed, err = d.ReadUint8(); err != nil {
		return err
	}
	if obj.StakeWithdrawBumpSeed, err = d.ReadUint8(); err != nil {
		return err
	}
	for _, dst := range []*uint64{&obj.SlotsForStakeDelta, &obj.LastStakeDeltaEpoch, &obj.MinStake} {
		if *dst, err = d.ReadUint64(); err != nil {
			return err
		}
	}
	obj.ExtraStakeDeltaRuns, err = d.ReadUint32()
	return err
}

const ValidatorSystemSize = (ListSize + // validator_list
	32 + // manager_authority
	4 + // total_validator_score
	8 + // total_active_balance
	1) // auto_add_validator_enabled

type ValidatorSystem struct {
	ValidatorList           List
	ManagerAuthority        ed25519.PublicKey
	TotalValidatorScore     uint32
	TotalActiveBalance      uint64
	AutoAddValidatorEnabled uint8
}

func (obj *ValidatorSystem) Size() int {
	return ValidatorSystemSize
}

func (obj *ValidatorSystem) MarshalBinaryTo(e *binary.Encoder) error {
	if err := obj.ValidatorList.MarshalBinaryTo(e); err != nil {
		return err
	}
	if err := e.WriteKey(obj.ManagerAuthority); err != nil {
		return err
	}
	if err := e.WriteUint32(obj.TotalValidatorScore); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.TotalActiveBalance); err != nil {
		return err
	}
	return e.WriteUint8(obj.AutoAddValidatorEnabled)
}

func (obj *ValidatorSystem) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = obj.ValidatorList.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	if obj.ManagerAuthority, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.TotalValidatorScore, err = d.ReadUint32(); err != nil {
		return err
	}
	if obj.TotalActiveBalance, err = d.ReadUint64(); err != nil {
		return err
	}
	obj.AutoAddValidatorEnabled, err = d.ReadUint8()
	return err
}

const LiqPoolSize = (32 + // lp_mint
	1 + // lp_mint_authority_bump_seed
	1 + // sol_leg_bump_seed
	1 + // msol_leg_authority_bump_seed
	32 + // msol_leg
	8 + // lp_liquidity_target
	FeeSize + // lp_max_fee
	FeeSize + // lp_min_fee
	FeeSize + // treasury_cut
	8 + // lp_supply
	8 + // lent_from_sol_leg
	8) // liquidity_sol_cap

// LiqPool is the SOL/mSOL pool backing liquid unstakes.
type LiqPool struct {
	LpMint                   ed25519.PublicKey
	LpMintAuthorityBumpSeed  uint8
	SolLegBumpSeed           uint8
	MsolLegAuthorityBumpSeed uint8
	MsolLeg                  ed25519.PublicKey
	LpLiquidityTarget        uint64
	LpMaxFee                 Fee
	LpMinFee                 Fee
	TreasuryCut              Fee
	LpSupply                 uint64
	LentFromSolLeg           uint64
	LiquiditySolCap          uint64
}

func (obj *LiqPool) Size() int {
	return LiqPoolSize
}

func (obj *LiqPool) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteKey(obj.LpMint); err != nil {
		return err
	}
	for _, v := range []uint8{obj.LpMintAuthorityBumpSeed, obj.SolLegBumpSeed, obj.MsolLegAuthorityBumpSeed} {
		if err := e.WriteUint8(v); err != nil {
			return err
		}
	}
	if err := e.WriteKey(obj.MsolLeg); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.LpLiquidityTarget); err != nil {
		return err
	}
	for _, fee := range []*Fee{&obj.LpMaxFee, &obj.LpMinFee, &obj.TreasuryCut} {
		if err := fee.MarshalBinaryTo(e); err != nil {
			return err
		}
	}
	for _, v := range []uint64{obj.LpSupply, obj.LentFromSolLeg, obj.LiquiditySolCap} {
		if err := e.WriteUint64(v); err != nil {
			return err
		}
	}
	return nil
}

func (obj *LiqPool) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if obj.LpMint, err = d.ReadKey(); err != nil {
		return err
	}
	for _, dst := range []*uint8{&obj.LpMintAuthorityBumpSeed, &obj.SolLegBumpSeed, &obj.MsolLegAuthorityBumpSeed} {
		if *dst, err = d.ReadUint8(); err != nil {
			return err
		}
	}
	if obj.MsolLeg, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.LpLiquidityTarget, err = d.ReadUint64(); err != nil {
		return err
	}
	for _, fee := range []*Fee{&obj.LpMaxFee, &obj.LpMinFee, &obj.TreasuryCut} {
		if err = fee.UnmarshalBinaryFrom(d); err != nil {
			return err
		}
	}
	for _, dst := range []*uint64{&obj.LpSupply, &obj.LentFromSolLeg, &obj.LiquiditySolCap} {
		if *dst, err = d.ReadUint64(); err != nil {
			return err
		}
	}
	return nil
}
