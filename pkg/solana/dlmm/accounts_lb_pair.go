package dlmm

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/shopspring/decimal"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const (
	BinArrayBitmapSize = 16
)

const LbPairSize = (8 + // discriminator
	StaticParametersSize + // parameters
	VariableParametersSize + // v_parameters
	1 + // bump_seed
	2 + // bin_step_seed
	1 + // pair_type
	4 + // active_id
	2 + // bin_step
	1 + // status
	1 + // require_base_factor_seed
	2 + // base_factor_seed
	1 + // activation_type
	1 + // creator_pool_on_off_control
	32 + // token_x_mint
	32 + // token_y_mint
	32 + // reserve_x
	32 + // reserve_y
	ProtocolFeeSize + // protocol_fee
	32 + // padding1
	NumRewards*RewardInfoSize + // reward_infos
	32 + // oracle
	BinArrayBitmapSize*8 + // bin_array_bitmap
	8 + // last_updated_at
	32 + // padding2
	32 + // pre_activation_swap_address
	32 + // base_key
	8 + // activation_point
	8 + // pre_activation_duration
	8 + // padding3
	8 + // padding4
	32 + // creator
	1 + // token_mint_x_program_flag
	1 + // token_mint_y_program_flag
	22) // reserved

const (
	LbPairActiveIdOffset   = 76
	LbPairTokenXMintOffset = 88
	LbPairTokenYMintOffset = 120
	LbPairOracleOffset     = 552
)

var LbPairDiscriminator = binary.Discriminator{33, 11, 49, 98, 181, 101, 177, 13}

type PairType uint8

const (
	PairTypePermissionless PairType = iota
	PairTypePermission
	PairTypeCustomizablePermissionless
	PairTypePermissionlessV2
)

type PairStatus uint8

const (
	PairStatusEnabled PairStatus = iota
	PairStatusDisabled
)

type ActivationType uint8

const (
	ActivationTypeSlot ActivationType = iota
	ActivationTypeTimestamp
)

// LbPair is a liquidity book pair. Enum fields keep the raw on-chain byte so
// accounts written by newer program versions still decode.
type LbPair struct {
	Parameters               StaticParameters
	VParameters              VariableParameters
	BumpSeed                 [1]byte
	BinStepSeed              [2]byte
	PairType                 PairType
	ActiveId                 int32
	BinStep                  uint16
	Status                   PairStatus
	RequireBaseFactorSeed    uint8
	BaseFactorSeed           [2]byte
	ActivationType           ActivationType
	CreatorPoolOnOffControl  uint8
	TokenXMint               ed25519.PublicKey
	TokenYMint               ed25519.PublicKey
	ReserveX                 ed25519.PublicKey
	ReserveY                 ed25519.PublicKey
	ProtocolFee              ProtocolFee
	Padding1                 [32]byte
	RewardInfos              [NumRewards]RewardInfo
	Oracle                   ed25519.PublicKey
	BinArrayBitmap           [BinArrayBitmapSize]uint64
	LastUpdatedAt            int64
	Padding2                 [32]byte
	PreActivationSwapAddress ed25519.PublicKey
	BaseKey                  ed25519.PublicKey
	ActivationPoint          uint64
	PreActivationDuration    uint64
	Padding3                 [8]byte
	Padding4                 uint64
	Creator                  ed25519.PublicKey
	TokenMintXProgramFlag    uint8
	TokenMintYProgramFlag    uint8
	Reserved                 [22]byte
}

func (obj *LbPair) Size() int {
	return LbPairSize
}

func (obj *LbPair) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteDiscriminator(LbPairDiscriminator); err != nil {
		return err
	}
	if err := obj.Parameters.MarshalBinaryTo(e); err != nil {
		return err
	}
	if err := obj.VParameters.MarshalBinaryTo(e); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.BumpSeed[:]); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.BinStepSeed[:]); err != nil {
		return err
	}
	if err := e.WriteUint8(uint8(obj.PairType)); err != nil {
		return err
	}
	if err := e.WriteInt32(obj.ActiveId); err != nil {
		return err
	}
	if err := e.WriteUint16(obj.BinStep); err != nil {
		return err
	}
	if err := e.WriteUint8(uint8(obj.Status)); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.RequireBaseFactorSeed); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.BaseFactorSeed[:]); err != nil {
		return err
	}
	if err := e.WriteUint8(uint8(obj.ActivationType)); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.CreatorPoolOnOffControl); err != nil {
		return err
	}
	for _, key := range []ed25519.PublicKey{obj.TokenXMint, obj.TokenYMint, obj.ReserveX, obj.ReserveY} {
		if err := e.WriteKey(key); err != nil {
			return err
		}
	}
	if err := obj.ProtocolFee.MarshalBinaryTo(e); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Padding1[:]); err != nil {
		return err
	}
	if err := binary.WriteArray(e, obj.RewardInfos[:], NumRewards, binary.WriteRecord[RewardInfo]); err != nil {
		return err
	}
	if err := e.WriteKey(obj.Oracle); err != nil {
		return err
	}
	if err := binary.WriteArray(e, obj.BinArrayBitmap[:], BinArrayBitmapSize, (*binary.Encoder).WriteUint64); err != nil {
		return err
	}
	if err := e.WriteInt64(obj.LastUpdatedAt); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Padding2[:]); err != nil {
		return err
	}
	if err := e.WriteKey(obj.PreActivationSwapAddress); err != nil {
		return err
	}
	if err := e.WriteKey(obj.BaseKey); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.ActivationPoint); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.PreActivationDuration); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Padding3[:]); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.Padding4); err != nil {
		return err
	}
	if err := e.WriteKey(obj.Creator); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.TokenMintXProgramFlag); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.TokenMintYProgramFlag); err != nil {
		return err
	}
	return e.WriteBytes(obj.Reserved[:])
}

func (obj *LbPair) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = d.ReadDiscriminator(LbPairDiscriminator); err != nil {
		return err
	}
	if err = obj.Parameters.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	if err = obj.VParameters.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.BumpSeed[:]); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.BinStepSeed[:]); err != nil {
		return err
	}

	var raw uint8
	if raw, err = d.ReadUint8(); err != nil {
		return err
	}
	obj.PairType = PairType(raw)

	if obj.ActiveId, err = d.ReadInt32(); err != nil {
		return err
	}
	if obj.BinStep, err = d.ReadUint16(); err != nil {
		return err
	}
	if raw, err = d.ReadUint8(); err != nil {
		return err
	}
	obj.Status = PairStatus(raw)

	if obj.RequireBaseFactorSeed, err = d.ReadUint8(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.BaseFactorSeed[:]); err != nil {
		return err
	}
	if raw, err = d.ReadUint8(); err != nil {
		return err
	}
	obj.ActivationType = ActivationType(raw)

	if obj.CreatorPoolOnOffControl, err = d.ReadUint8(); err != nil {
		return err
	}
	for _, dst := range []*ed25519.PublicKey{&obj.TokenXMint, &obj.TokenYMint, &obj.ReserveX, &obj.ReserveY} {
		if *dst, err = d.ReadKey(); err != nil {
			return err
		}
	}
	if err = obj.ProtocolFee.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Padding1[:]); err != nil {
		return err
	}
	if err = binary.ReadArrayInto(d, obj.RewardInfos[:], RewardInfoSize, binary.ReadRecord[RewardInfo]); err != nil {
		return err
	}
	if obj.Oracle, err = d.ReadKey(); err != nil {
		return err
	}
	if err = binary.ReadArrayInto(d, obj.BinArrayBitmap[:], 8, (*binary.Decoder).ReadUint64); err != nil {
		return err
	}
	if obj.LastUpdatedAt, err = d.ReadInt64(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Padding2[:]); err != nil {
		return err
	}
	if obj.PreActivationSwapAddress, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.BaseKey, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.ActivationPoint, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.PreActivationDuration, err = d.ReadUint64(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Padding3[:]); err != nil {
		return err
	}
	if obj.Padding4, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.Creator, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.TokenMintXProgramFlag, err = d.ReadUint8(); err != nil {
		return err
	}
	if obj.TokenMintYProgramFlag, err = d.ReadUint8(); err != nil {
		return err
	}
	return d.ReadFixed(obj.Reserved[:])
}

func (obj *LbPair) Unmarshal(data []byte) error {
	_, err := binary.Decode(data, 0, obj)
	return err
}

func (obj *LbPair) IsEnabled() bool {
	return obj.Status == PairStatusEnabled
}

// ActiveBinArrayIndex is the index of the bin array holding the active bin.
func (obj *LbPair) ActiveBinArrayIndex() int64 {
	return BinIdToBinArrayIndex(obj.ActiveId)
}

// ActivePrice is the price of the active bin in Y per X, adjusted for the
// decimals of both mints.
func (obj *LbPair) ActivePrice(decimalsX, decimalsY int32) decimal.Decimal {
	return BinPrice(obj.BinStep, obj.ActiveId, decimalsX, decimalsY)
}

// TokenXProgram resolves the token program owning the X mint.
func (obj *LbPair) TokenXProgram() ed25519.PublicKey {
	return tokenProgramForFlag(obj.TokenMintXProgramFlag)
}

func (obj *LbPair) TokenYProgram() ed25519.PublicKey {
	return tokenProgramForFlag(obj.TokenMintYProgramFlag)
}

func tokenProgramForFlag(flag uint8) ed25519.PublicKey {
	if flag == 1 {
		return TOKEN_2022_PROGRAM_ID
	}
	return SPL_TOKEN_PROGRAM_ID
}

func (obj *LbPair) String() string {
	return fmt.Sprintf(
		"LbPair{pair_type=%d,active_id=%d,bin_step=%d,status=%d,token_x_mint=%s,token_y_mint=%s,reserve_x=%s,reserve_y=%s,oracle=%s,activation_type=%d,activation_point=%d}",
		obj.PairType,
		obj.ActiveId,
		obj.BinStep,
		obj.Status,
		base58.Encode(obj.TokenXMint),
		base58.Encode(obj.TokenYMint),
		base58.Encode(obj.ReserveX),
		base58.Encode(obj.ReserveY),
		base58.Encode(obj.Oracle),
		obj.ActivationType,
		obj.ActivationPoint,
	)
}
