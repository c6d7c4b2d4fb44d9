package marginfi

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

const (
	BankFlagEmissionsBorrowActive           uint64 = 1 << 0
	BankFlagEmissionsLendingActive          uint64 = 1 << 1
	BankFlagPermissionlessBadDebtSettlement uint64 = 1 << 2
	BankFlagFreezeSettings                  uint64 = 1 << 3
)

const (
	bankEmodeSettingsSize = 424
	bankCacheSize         = 160
)

const BankSize = (8 + // discriminator
	32 + // mint
	1 + // mint_decimals
	32 + // group
	7 + // pad0
	16 + // asset_share_value
	16 + // liability_share_value
	32 + // liquidity_vault
	1 + // liquidity_vault_bump
	1 + // liquidity_vault_authority_bump
	32 + // insurance_vault
	1 + // insurance_vault_bump
	1 + // insurance_vault_authority_bump
	4 + // pad1
	16 + // collected_insurance_fees_outstanding
	32 + // fee_vault
	1 + // fee_vault_bump
	1 + // fee_vault_authority_bump
	6 + // pad2
	16 + // collected_group_fees_outstanding
	16 + // total_liability_shares
	16 + // total_asset_shares
	8 + // last_update
	BankConfigSize + // config
	8 + // flags
	8 + // emissions_rate
	16 + // emissions_remaining
	32 + // emissions_mint
	16 + // collected_program_fees_outstanding
	bankEmodeSettingsSize + // emode
	32 + // fees_destination_account
	bankCacheSize + // cache
	4 + // lending_position_count
	4 + // borrowing_position_count
	16 + // padding0
	304) // padding1

const (
	BankMintOffset  = 8
	BankGroupOffset = 41
)

var BankDiscriminator = binary.Discriminator{142, 49, 166, 242, 50, 66, 97, 188}

// Bank is a single asset pool inside a MarginfiGroup. The emode settings and
// the bank cache are carried as raw bytes.
type Bank struct {
	Mint         ed25519.PublicKey
	MintDecimals uint8
	Group        ed25519.PublicKey
	Pad0         [7]byte

	AssetShareValue     binary.I80F48
	LiabilityShareValue binary.I80F48

	LiquidityVault              ed25519.PublicKey
	LiquidityVaultBump          uint8
	LiquidityVaultAuthorityBump uint8
	InsuranceVault              ed25519.PublicKey
	InsuranceVaultBump          uint8
	InsuranceVaultAuthorityBump uint8
	Pad1                        [4]byte

	CollectedInsuranceFeesOutstanding binary.I80F48

	FeeVault              ed25519.PublicKey
	FeeVaultBump          uint8
	FeeVaultAuthorityBump uint8
	Pad2                  [6]byte

	CollectedGroupFeesOutstanding binary.I80F48
	TotalLiabilityShares          binary.I80F48
	TotalAssetShares              binary.I80F48
	LastUpdate                    int64

	Config BankConfig
	Flags  uint64

	EmissionsRate                   uint64
	EmissionsRemaining              binary.I80F48
	EmissionsMint                   ed25519.PublicKey
	CollectedProgramFeesOutstanding binary.I80F48

	Emode                  [bankEmodeSettingsSize]byte
	FeesDestinationAccount ed25519.PublicKey
	Cache                  [bankCacheSize]byte

	LendingPositionCount   int32
	BorrowingPositionCount int32
	Padding0               [16]byte
	Padding1               [304]byte
}

func (obj *Bank) HasFlag(flag uint64) bool {
	return obj.Flags&flag == flag
}

func (obj *Bank) Size() int {
	return BankSize
}

func (obj *Bank) MarshalBinaryTo(e *binary.Encoder) error {
	if err := e.WriteDiscriminator(BankDiscriminator); err != nil {
		return err
	}
	if err := e.WriteKey(obj.Mint); err != nil {
		return err
	}
	if err := e.WriteUint8(obj.MintDecimals); err != nil {
		return err
	}
	if err := e.WriteKey(obj.Group); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Pad0[:]); err != nil {
		return err
	}
	if err := e.WriteI80F48(obj.AssetShareValue); err != nil {
		return err
	}
	if err := e.WriteI80F48(obj.LiabilityShareValue); err != nil {
		return err
	}
	if err := writeVault(e, obj.LiquidityVault, obj.LiquidityVaultBump, obj.LiquidityVaultAuthorityBump); err != nil {
		return err
	}
	if err := writeVault(e, obj.InsuranceVault, obj.InsuranceVaultBump, obj.InsuranceVaultAuthorityBump); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Pad1[:]); err != nil {
		return err
	}
	if err := e.WriteI80F48(obj.CollectedInsuranceFeesOutstanding); err != nil {
		return err
	}
	if err := writeVault(e, obj.FeeVault, obj.FeeVaultBump, obj.FeeVaultAuthorityBump); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Pad2[:]); err != nil {
		return err
	}
	for _, v := range []binary.I80F48{
		obj.CollectedGroupFeesOutstanding,
		obj.TotalLiabilityShares,
		obj.TotalAssetShares,
	} {
		if err := e.WriteI80F48(v); err != nil {
			return err
		}
	}
	if err := e.WriteInt64(obj.LastUpdate); err != nil {
		return err
	}
	if err := obj.Config.MarshalBinaryTo(e); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.Flags); err != nil {
		return err
	}
	if err := e.WriteUint64(obj.EmissionsRate); err != nil {
		return err
	}
	if err := e.WriteI80F48(obj.EmissionsRemaining); err != nil {
		return err
	}
	if err := e.WriteKey(obj.EmissionsMint); err != nil {
		return err
	}
	if err := e.WriteI80F48(obj.CollectedProgramFeesOutstanding); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Emode[:]); err != nil {
		return err
	}
	if err := e.WriteKey(obj.FeesDestinationAccount); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Cache[:]); err != nil {
		return err
	}
	if err := e.WriteInt32(obj.LendingPositionCount); err != nil {
		return err
	}
	if err := e.WriteInt32(obj.BorrowingPositionCount); err != nil {
		return err
	}
	if err := e.WriteBytes(obj.Padding0[:]); err != nil {
		return err
	}
	return e.WriteBytes(obj.Padding1[:])
}

func (obj *Bank) UnmarshalBinaryFrom(d *binary.Decoder) (err error) {
	if err = d.ReadDiscriminator(BankDiscriminator); err != nil {
		return err
	}
	if obj.Mint, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.MintDecimals, err = d.ReadUint8(); err != nil {
		return err
	}
	if obj.Group, err = d.ReadKey(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Pad0[:]); err != nil {
		return err
	}
	if obj.AssetShareValue, err = d.ReadI80F48(); err != nil {
		return err
	}
	if obj.LiabilityShareValue, err = d.ReadI80F48(); err != nil {
		return err
	}
	if obj.LiquidityVault, obj.LiquidityVaultBump, obj.LiquidityVaultAuthorityBump, err = readVault(d); err != nil {
		return err
	}
	if obj.InsuranceVault, obj.InsuranceVaultBump, obj.InsuranceVaultAuthorityBump, err = readVault(d); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Pad1[:]); err != nil {
		return err
	}
	if obj.CollectedInsuranceFeesOutstanding, err = d.ReadI80F48(); err != nil {
		return err
	}
	if obj.FeeVault, obj.FeeVaultBump, obj.FeeVaultAuthorityBump, err = readVault(d); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Pad2[:]); err != nil {
		return err
	}
	for _, v := range []*binary.I80F48{
		&obj.CollectedGroupFeesOutstanding,
		&obj.TotalLiabilityShares,
		&obj.TotalAssetShares,
	} {
		if *v, err = d.ReadI80F48(); err != nil {
			return err
		}
	}
	if obj.LastUpdate, err = d.ReadInt64(); err != nil {
		return err
	}
	if err = obj.Config.UnmarshalBinaryFrom(d); err != nil {
		return err
	}
	if obj.Flags, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.EmissionsRate, err = d.ReadUint64(); err != nil {
		return err
	}
	if obj.EmissionsRemaining, err = d.ReadI80F48(); err != nil {
		return err
	}
	if obj.EmissionsMint, err = d.ReadKey(); err != nil {
		return err
	}
	if obj.CollectedProgramFeesOutstanding, err = d.ReadI80F48(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Emode[:]); err != nil {
		return err
	}
	if obj.FeesDestinationAccount, err = d.ReadKey(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Cache[:]); err != nil {
		return err
	}
	if obj.LendingPositionCount, err = d.ReadInt32(); err != nil {
		return err
	}
	if obj.BorrowingPositionCount, err = d.ReadInt32(); err != nil {
		return err
	}
	if err = d.ReadFixed(obj.Padding0[:]); err != nil {
		return err
	}
	return d.ReadFixed(obj.Padding1[:])
}

func (obj *Bank) Unmarshal(data []byte) error {
	_, err := binary.Decode(data, 0, obj)
	return err
}

func (obj *Bank) String() string {
	return fmt.Sprintf(
		"Bank{mint=%s,mint_decimals=%d,group=%s,asset_share_value=%s,liability_share_value=%s,total_asset_shares=%s,total_liability_shares=%s,operational_state=%s,flags=%d}",
		base58.Encode(obj.Mint),
		obj.MintDecimals,
		base58.Encode(obj.Group),
		obj.AssetShareValue,
		obj.LiabilityShareValue,
		obj.TotalAssetShares,
		obj.TotalLiabilityShares,
		obj.Config.OperationalState,
		obj.Flags,
	)
}

func writeVault(e *binary.Encoder, vault ed25519.PublicKey, bump, authorityBump uint8) error {
	if err := e.WriteKey(vault); err != nil {
		return err
	}
	if err := e.WriteUint8(bump); err != nil {
		return err
	}
	return e.WriteUint8(authorityBump)
}

func readVault(d *binary.Decoder) (vault ed25519.PublicKey, bump, authorityBump uint8, err error) {
	if vault, err = d.ReadKey(); err != nil {
		return
	}
	if bump, err = d.ReadUint8(); err != nil {
		return
	}
	authorityBump, err = d.ReadUint8()
	return
}
