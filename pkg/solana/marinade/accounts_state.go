package marinade

import (
	"crypto/ed25519"
	"fmt"
	"math/big"

	"github.com/mr-tron/base58"
	"github.com/shopspring/decimal"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const StateSize = (8 + // discriminator
	32 + // msol_mint
	32 + // admin_authority
	32 + // operational_sol_account
	32 + // treasury_msol_account
	1 + // reserve_bump_seed
	1 + // msol_mint_authority_bump_seed
	8 + // rent_exempt_for_token_acc
	FeeSize + // reward_fee
	StakeSystemSize + // stake_system
	ValidatorSystemSize + // validator_system
	LiqPoolSize + // liq_pool
	8 + // available_reserve_balance
	8 + // msol_supply
	8 + // msol_price
	8 + // circulating_ticket_count
	8 + // circulating_ticket_balance
	8 + // lent_from_reserve
	8 + // min_deposit
	8 + // min_withdraw
	8 + // staking_sol_cap
	8 + // emergency_cooling_down
	32 + // pause_authority
	1 + // paused
	FeeCentsSize + // delayed_unstake_fee
	FeeCentsSize + // withdraw_stake_account_fee
	1 + // withdraw_stake_account_enabled
	8 + // last_stake_move_epoch
	8 + // stake_moved
	FeeSize) // max_stake_moved_per_epoch

const (
	StateMsolMintOffset       = 8
	StateAdminAuthorityOffset = 40
	StateReserveBumpOffset    = 136
	StateRewardFeeOffset      = 146
)

// MsolPriceDenominator scales State.MsolPrice.
const MsolPriceDenominator = 1 << 32

var StateDiscriminator = binary.Discriminator{216, 146, 107, 94, 104, 75, 182, 177}

// State is the single Marinade state account. The on-chain account is
// allocated larger than StateSize, and the tail is ignored.
type State struct {
	MsolMint                    ed25519.PublicKey
	AdminAuthority              ed25519.PublicKey
	OperationalSolAccount       ed25519.PublicKey
	TreasuryMsolAccount         ed25519.PublicKey
	ReserveBumpSeed             uint8
	MsolMintAuthorityBumpSeed   uint8
	RentExemptForTokenAcc       uint64
	RewardFee                   Fee
	StakeSystem                 StakeSystem
	ValidatorSystem             ValidatorSystem
	LiqPool                     LiqPool
	AvailableReserveBalance     uint64
	MsolSupply                  uint64
	MsolPrice                   uint64
	CirculatingTicketCount      uint64
	CirculatingTicketBalance    uint64
	LentFromReserve             uint64
	MinDeposit                  uint64
	MinWithdraw                 uint64
	StakingSolCap               uint64
	EmergencyCoolingDown        uint64
	PauseAuthority              ed25519.PublicKey
	Paused                      bool
	DelayedUnstakeFee           FeeCents
	WithdrawStakeAccountFee     FeeCents
	WithdrawStakeAccountEnabled bool
	LastStakeMoveEpoch          uint64
	StakeMoved                  uint64
	MaxStakeMovedPerEpoch       Fee
}

func (obj *State) Size() int {
	return StateSize
}

func (obj *State) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteDiscriminator(StateDiscriminator); err != nil {
		return err
	}
	for _, key := range []ed25519.PublicKey{obj.MsolMint, obj.AdminAuthority, obj.OperationalSolAccount, obj.TreasuryMsolAccount} {
		if err := e.WriteKey(key); err != nil {
			return err
		}
	}
	if err := e.WriteUint8(obj.ReserveBumpSeed); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.MsolMintAuthorityBumpSeed); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.RentExemptForTokenAcc); err != nil {
		return err
	}
	if err := obj.RewardFee.MarshalBinaryTo(e); err != nil {
		return err
	}
	if err := obj.StakeSystem.MarshalBinaryTo(e); err != nil {
		return err
	}
	if err := obj.ValidatorSystem.MarshalBinaryTo(e); err != nil {
		return err
	}
	if err := obj.LiqPool.MarshalBinaryTo(e); err != nil {
		return err
	}
	for _, v := range []uint64{
		obj.AvailableReserveBalance,
		obj.MsolSupply,
		obj.MsolPrice,
		obj.CirculatingTicketCount,
		obj.CirculatingTicketBalance,
		obj.LentFromReserve,
		obj.MinDeposit,
		obj.MinWithdraw,
		obj.StakingSolCap,
		obj.EmergencyCoolingDown,
	} {
		if err := e.WriteUint64(v); err != nil {
			return err
		}
	}
	if err := e.WriteKey(obj.PauseAuthority); err != nil {
		return err
	}
	if err := e.WriteBool(obj.Paused); err != nil {
		return err
	}
	if err := obj.DelayedUnstakeFee.MarshalBinaryTo(e); err != nil {
		return err
	}
	if err := obj.WithdrawStakeAccountFee.MarshalBinaryTo(e); err != nil {
		return err
	}
	if err := e.WriteBool(obj.WithdrawStakeAccountEnabled); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.LastStakeMoveEpoch); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.StakeMoved); err != nil {
		return err
	}
	return obj.MaxStakeMovedPerEpoch.MarshalBinaryTo(e)
}

func (obj *State) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = d.ReadDiscriminator(StateDiscriminator); err != nil {
		return err
	}
	for _, dst := range []*ed25519.PublicKey{&obj.MsolMint, &obj.AdminAuthority, &obj.OperationalSolAccount, &obj.TreasuryMsolAccount} {
		if *dst, err = d.ReadKey(); err != nil {
			return err
		}
	}
	if obj.ReserveBumpSeed, err = d.ReadUint8(); err != nil {
		return err
	}
	if obj.MsolMintAuthorityBumpSeed, err = d.ReadUint8(); err != nil {
		return err
	}
	if obj.RentExemptForTokenAcc, err = d.ReadUint64(); err != nil {
		return err
	}
	if err = obj.RewardFee.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	if err = obj.StakeSystem.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	if err = obj.ValidatorSystem.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	if err = obj.LiqPool.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	for _, dst := range []*uint64{
		&obj.AvailableReserveBalance,
		&obj.MsolSupply,
		&obj.MsolPrice,
		&obj.CirculatingTicketCount,
		&obj.CirculatingTicketBalance,
		&obj.LentFromReserve,
		&obj.MinDeposit,
		&obj.MinWithdraw,
		&obj.StakingSolCap,
		&obj.EmergencyCoolingDown,
	} {
		if *dst, err = d.ReadUint64(); err != nil {
			return err
		}
	}
	if obj.PauseAuthority, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.Paused, err = d.ReadBool(); err != nil {
		return err
	}
	if err = obj.DelayedUnstakeFee.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	if err = obj.WithdrawStakeAccountFee.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	if obj.WithdrawStakeAccountEnabled, err = d.ReadBool(); err != nil {
		return err
	}
	if obj.LastStakeMoveEpoch, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.StakeMoved, err = d.ReadUint64(); err != nil {
		return err
	}
	return obj.MaxStakeMovedPerEpoch.UnmarshalBinaryFrom(d)
}

func (obj *State) Unmarshal(data []byte) error {
	_, err := binary.Decode(data, 0, obj)
	return err
}

// TotalLamportsUnderControl is the SOL held across active stake, cooling down
// stake and the reserve.
func (obj *State) TotalLamportsUnderControl() uint64 {
	return obj.ValidatorSystem.TotalActiveBalance +
		obj.StakeSystem.DelayedUnstakeCoolingDown +
		obj.EmergencyCoolingDown +
		obj.AvailableReserveBalance
}

// TotalVirtualStakedLamports is the SOL backing circulating mSOL, excluding
// lamports already owed to open tickets.
func (obj *State) TotalVirtualStakedLamports() uint64 {
	total := obj.TotalLamportsUnderControl()
	if total < obj.CirculatingTicketBalance {
		return 0
	}
	return total - obj.CirculatingTicketBalance
}

// SolPrice is the SOL value of one mSOL. A state with no mSOL supply prices
// it at 1.
func (obj *State) SolPrice() decimal.Decimal {
	if obj.MsolSupply == 0 {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromBigInt(new(big.Int).SetUint64(obj.TotalVirtualStakedLamports()), 0).
		Div(decimal.NewFromBigInt(new(big.Int).SetUint64(obj.MsolSupply), 0))
}

// StoredMsolPrice returns the msol_price field, which the program refreshes
// at each epoch update.
func (obj *State) StoredMsolPrice() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(obj.MsolPrice), 0).
		Div(decimal.NewFromInt(MsolPriceDenominator))
}

func (obj *State) String() string {
	return fmt.Sprintf(
		"State{msol_mint=%s,admin_authority=%s,msol_supply=%d,msol_price=%s,available_reserve_balance=%d,total_active_balance=%d,circulating_ticket_balance=%d,reward_fee=%s,paused=%v}",
		base58.Encode(obj.MsolMint),
		base58.Encode(obj.AdminAuthority),
		obj.MsolSupply,
		obj.StoredMsolPrice(),
		obj.AvailableReserveBalance,
		obj.ValidatorSystem.TotalActiveBalance,
		obj.CirculatingTicketBalance,
		obj.RewardFee,
		obj.Paused,
	)
}
