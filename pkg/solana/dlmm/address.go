package dlmm

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
)

var (
	PositionPrefix         = []byte("position")
	OraclePrefix           = []byte("oracle")
	BinArrayPrefix         = []byte("bin_array")
	BitmapPrefix           = []byte("bitmap")
	PresetParameterPrefix  = []byte("preset_parameter")
	PresetParameter2Prefix = []byte("preset_parameter2")
	EventAuthorityPrefix   = []byte("__event_authority")
)

// sortMints orders a mint pair the way the program does when seeding pair
// addresses, so either token order derives the same pair.
func sortMints(a, b ed25519.PublicKey) (minMint, maxMint ed25519.PublicKey) {
	if bytes.Compare(a, b) <= 0 {
		return a, b
	}
	return b, a
}

type GetLbPairAddressArgs struct {
	TokenXMint ed25519.PublicKey
	TokenYMint ed25519.PublicKey
	BinStep    uint16
	BaseFactor uint16
}

// GetLbPairAddress derives a permissionless pair created from a preset
// parameter.
func GetLbPairAddress(args *GetLbPairAddressArgs) (ed25519.PublicKey, uint8, error) {
	minMint, maxMint := sortMints(args.TokenXMint, args.TokenYMint)
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		minMint,
		maxMint,
		solana.Uint16Seed(args.BinStep),
		solana.Uint16Seed(args.BaseFactor),
	)
}

type GetPermissionLbPairAddressArgs struct {
	Base       ed25519.PublicKey
	TokenXMint ed25519.PublicKey
	TokenYMint ed25519.PublicKey
	BinStep    uint16
}

func GetPermissionLbPairAddress(args *GetPermissionLbPairAddressArgs) (ed25519.PublicKey, uint8, error) {
	minMint, maxMint := sortMints(args.TokenXMint, args.TokenYMint)
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		args.Base,
		minMint,
		maxMint,
		solana.Uint16Seed(args.BinStep),
	)
}

// GetCustomizablePermissionlessLbPairAddress derives the single customizable
// pair allowed per mint pair.
func GetCustomizablePermissionlessLbPairAddress(tokenXMint, tokenYMint ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	minMint, maxMint := sortMints(tokenXMint, tokenYMint)
	return solana.FindProgramAddressAndBump(PROGRAM_ID, ILM_BASE_KEY, minMint, maxMint)
}

type GetPositionAddressArgs struct {
	LbPair     ed25519.PublicKey
	Base       ed25519.PublicKey
	LowerBinId int32
	Width      int32
}

// GetPositionAddress derives a PDA position. Positions created with
// initialize_position are keypair accounts instead.
func GetPositionAddress(args *GetPositionAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		PositionPrefix,
		args.LbPair,
		args.Base,
		solana.Int32Seed(args.LowerBinId),
		solana.Int32Seed(args.Width),
	)
}

func GetOracleAddress(lbPair ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, OraclePrefix, lbPair)
}

func GetBinArrayAddress(lbPair ed25519.PublicKey, index int64) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, BinArrayPrefix, lbPair, solana.Int64Seed(index))
}

// GetBinArrayAddresses derives every bin array covering an inclusive bin
// range, in ascending index order.
func GetBinArrayAddresses(lbPair ed25519.PublicKey, lowerBinId, upperBinId int32) ([]ed25519.PublicKey, error) {
	indexes := BinArrayIndexes(lowerBinId, upperBinId)

	addresses := make([]ed25519.PublicKey, 0, len(indexes))
	for _, index := range indexes {
		address, _, err := GetBinArrayAddress(lbPair, index)
		if err != nil {
			return nil, errors.Wrapf(err, "bin array %d", index)
		}
		addresses = append(addresses, address)
	}
	return addresses, nil
}

func GetBinArrayBitmapExtensionAddress(lbPair ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, BitmapPrefix, lbPair)
}

// GetReserveAddress derives the pair's token account for one of its mints.
func GetReserveAddress(lbPair, mint ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, lbPair, mint)
}

func GetRewardVaultAddress(lbPair ed25519.PublicKey, rewardIndex uint64) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, lbPair, solana.Uint64Seed(rewardIndex))
}

// GetPresetParameterAddress derives the legacy preset parameter account keyed
// by bin step and base factor.
func GetPresetParameterAddress(binStep, baseFactor uint16) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		PresetParameterPrefix,
		solana.Uint16Seed(binStep),
		solana.Uint16Seed(baseFactor),
	)
}

func GetPresetParameter2Address(index uint16) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, PresetParameter2Prefix, solana.Uint16Seed(index))
}

func GetEventAuthorityAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(PROGRAM_ID, EventAuthorityPrefix)
}
