package main

import (
	"bytes"
	"crypto/ed25519"
	"sort"
	"strconv"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/dlmm"
	"github.com/code-payments/solana-program-clients/pkg/solana/marginfi"
	"github.com/code-payments/solana-program-clients/pkg/solana/marinade"
)

var errUnknownProgram = errors.New("unknown program")

type deriveFunc func(args []string) (ed25519.PublicKey, uint8, error)

// pdaKind is a program derived address the CLI knows how to compute.
type pdaKind struct {
	usage  string
	args   int
	derive deriveFunc
}

// scanFilterFunc builds getProgramAccounts filters from the scan flags.
type scanFilterFunc func(parent, owner ed25519.PublicKey) ([]solana.Filter, error)

type program struct {
	name   string
	id     ed25519.PublicKey
	errors *solana.ErrorRegistry
	pdas   map[string]pdaKind
	scans  map[string]scanFilterFunc
}

func (p *program) pdaKinds() []string {
	kinds := make([]string, 0, len(p.pdas))
	for kind := range p.pdas {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func (p *program) scanKinds() []string {
	kinds := make([]string, 0, len(p.scans))
	for kind := range p.scans {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

var programs = []*program{
	{
		name:   "marginfi",
		id:     marginfi.PROGRAM_ID,
		errors: marginfi.Errors,
		pdas:   marginfiPdas(),
		scans: map[string]scanFilterFunc{
			"account": func(group, authority ed25519.PublicKey) ([]solana.Filter, error) {
				return marginfi.MarginfiAccountFilters(group, authority), nil
			},
			"bank": func(group, _ ed25519.PublicKey) ([]solana.Filter, error) {
				if len(group) == 0 {
					return nil, errors.New("bank scans require --parent <group>")
				}
				return marginfi.BankFilters(group), nil
			},
		},
	},
	{
		name:   "marinade",
		id:     marinade.PROGRAM_ID,
		errors: marinade.Errors,
		pdas:   marinadePdas(),
		scans: map[string]scanFilterFunc{
			"ticket": func(_, beneficiary ed25519.PublicKey) ([]solana.Filter, error) {
				return marinade.TicketAccountFilters(beneficiary), nil
			},
		},
	},
	{
		name:   "dlmm",
		id:     dlmm.PROGRAM_ID,
		errors: dlmm.Errors,
		pdas:   dlmmPdas(),
		scans: map[string]scanFilterFunc{
			"position": func(lbPair, owner ed25519.PublicKey) ([]solana.Filter, error) {
				return dlmm.PositionFilters(lbPair, owner), nil
			},
			"lb-pair": func(_, _ ed25519.PublicKey) ([]solana.Filter, error) {
				return dlmm.LbPairFilters(nil, nil), nil
			},
			"bin-array": func(lbPair, _ ed25519.PublicKey) ([]solana.Filter, error) {
				if len(lbPair) == 0 {
					return nil, errors.New("bin-array scans require --parent <lb_pair>")
				}
				return dlmm.BinArrayFilters(lbPair), nil
			},
		},
	},
}

// lookupProgram accepts a program name or its base58 id.
func lookupProgram(nameOrId string) (*program, error) {
	for _, p := range programs {
		if strings.EqualFold(p.name, nameOrId) || base58.Encode(p.id) == nameOrId {
			return p, nil
		}
	}
	return nil, errors.Wrap(errUnknownProgram, nameOrId)
}

func programForOwner(owner ed25519.PublicKey) (*program, bool) {
	for _, p := range programs {
		if bytes.Equal(p.id, owner) {
			return p, true
		}
	}
	return nil, false
}

func parseKey(value string) (ed25519.PublicKey, error) {
	decoded, err := base58.Decode(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid address %q", value)
	}
	if len(decoded) != ed25519.PublicKeySize {
		return nil, errors.Errorf("invalid address %q: %d bytes", value, len(decoded))
	}
	return decoded, nil
}

// parseOptionalKey treats an empty value as absent.
func parseOptionalKey(value string) (ed25519.PublicKey, error) {
	if len(value) == 0 {
		return nil, nil
	}
	return parseKey(value)
}

func parseUint16(value string) (uint16, error) {
	v, err := strconv.ParseUint(value, 10, 16)
	return uint16(v), errors.Wrapf(err, "invalid u16 %q", value)
}

func parseInt32(value string) (int32, error) {
	v, err := strconv.ParseInt(value, 10, 32)
	return int32(v), errors.Wrapf(err, "invalid i32 %q", value)
}

func parseUint64(value string) (uint64, error) {
	v, err := strconv.ParseUint(value, 10, 64)
	return v, errors.Wrapf(err, "invalid u64 %q", value)
}

func parseInt64(value string) (int64, error) {
	v, err := strconv.ParseInt(value, 10, 64)
	return v, errors.Wrapf(err, "invalid i64 %q", value)
}

// parseErrorCode accepts decimal or 0x prefixed hex, the two forms program
// logs and explorers print.
func parseErrorCode(value string) (uint32, error) {
	v, err := strconv.ParseUint(value, 0, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid error code %q", value)
	}
	return uint32(v), nil
}

// keyArgs derives an address from n base58 keys.
func keyArgs(n int, usage string, derive func(keys []ed25519.PublicKey) (ed25519.PublicKey, uint8, error)) pdaKind {
	return pdaKind{
		usage: usage,
		args:  n,
		derive: func(args []string) (ed25519.PublicKey, uint8, error) {
			keys := make([]ed25519.PublicKey, len(args))
			for i, arg := range args {
				key, err := parseKey(arg)
				if err != nil {
					return nil, 0, err
				}
				keys[i] = key
			}
			return derive(keys)
		},
	}
}

func marginfiPdas() map[string]pdaKind {
	vault := func(vaultType marginfi.BankVaultType, authority bool) pdaKind {
		return keyArgs(1, "<bank>", func(keys []ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
			args := &marginfi.GetBankVaultAddressArgs{Bank: keys[0], VaultType: vaultType}
			if authority {
				return marginfi.GetBankVaultAuthorityAddress(args)
			}
			return marginfi.GetBankVaultAddress(args)
		})
	}

	return map[string]pdaKind{
		"bank": {
			usage: "<group> <mint> <seed>",
			args:  3,
			derive: func(args []string) (ed25519.PublicKey, uint8, error) {
				group, err := parseKey(args[0])
				if err != nil {
					return nil, 0, err
				}
				mint, err := parseKey(args[1])
				if err != nil {
					return nil, 0, err
				}
				seed, err := parseUint64(args[2])
				if err != nil {
					return nil, 0, err
				}
				return marginfi.GetBankAddress(&marginfi.GetBankAddressArgs{Group: group, Mint: mint, Seed: seed})
			},
		},
		"liquidity-vault":           vault(marginfi.BankVaultTypeLiquidity, false),
		"liquidity-vault-authority": vault(marginfi.BankVaultTypeLiquidity, true),
		"insurance-vault":           vault(marginfi.BankVaultTypeInsurance, false),
		"insurance-vault-authority": vault(marginfi.BankVaultTypeInsurance, true),
		"fee-vault":                 vault(marginfi.BankVaultTypeFee, false),
		"fee-vault-authority":       vault(marginfi.BankVaultTypeFee, true),
		"emissions-auth": keyArgs(2, "<bank> <emissions_mint>", func(keys []ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
			return marginfi.GetEmissionsAuthAddress(&marginfi.GetEmissionsAddressArgs{Bank: keys[0], EmissionsMint: keys[1]})
		}),
		"emissions-token-account": keyArgs(2, "<bank> <emissions_mint>", func(keys []ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
			return marginfi.GetEmissionsTokenAccountAddress(&marginfi.GetEmissionsAddressArgs{Bank: keys[0], EmissionsMint: keys[1]})
		}),
		"fee-state": keyArgs(0, "", func([]ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
			return marginfi.GetFeeStateAddress()
		}),
		"staked-settings": keyArgs(1, "<group>", func(keys []ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
			return marginfi.GetStakedSettingsAddress(&marginfi.GetStakedSettingsAddressArgs{Group: keys[0]})
		}),
	}
}

// Marinade addresses are all seeded by the state account, which defaults to
// mainnet when omitted.
func marinadePdas() map[string]pdaKind {
	stateSeeded := func(derive func(state ed25519.PublicKey) (ed25519.PublicKey, uint8, error)) pdaKind {
		return pdaKind{
			usage: "[state]",
			args:  -1,
			derive: func(args []string) (ed25519.PublicKey, uint8, error) {
				if len(args) > 1 {
					return nil, 0, errors.New("expected at most one state address")
				}

				var state ed25519.PublicKey
				if len(args) == 1 {
					var err error
					if state, err = parseKey(args[0]); err != nil {
						return nil, 0, err
					}
				}
				return derive(state)
			},
		}
	}

	return map[string]pdaKind{
		"reserve":                     stateSeeded(marinade.GetReserveAddress),
		"msol-mint-authority":         stateSeeded(marinade.GetMsolMintAuthorityAddress),
		"liq-pool-sol-leg":            stateSeeded(marinade.GetLiqPoolSolLegAddress),
		"liq-pool-msol-leg-authority": stateSeeded(marinade.GetLiqPoolMsolLegAuthorityAddress),
		"lp-mint-authority":           stateSeeded(marinade.GetLpMintAuthorityAddress),
		"stake-deposit-authority":     stateSeeded(marinade.GetStakeDepositAuthorityAddress),
		"stake-withdraw-authority":    stateSeeded(marinade.GetStakeWithdrawAuthorityAddress),
		"duplication-flag": keyArgs(2, "<state> <validator_vote>", func(keys []ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
			return marinade.GetDuplicationFlagAddress(&marinade.GetDuplicationFlagAddressArgs{State: keys[0], ValidatorVote: keys[1]})
		}),
	}
}

func dlmmPdas() map[string]pdaKind {
	return map[string]pdaKind{
		"lb-pair": {
			usage: "<token_x_mint> <token_y_mint> <bin_step> <base_factor>",
			args:  4,
			derive: func(args []string) (ed25519.PublicKey, uint8, error) {
				x, err := parseKey(args[0])
				if err != nil {
					return nil, 0, err
				}
				y, err := parseKey(args[1])
				if err != nil {
					return nil, 0, err
				}
				binStep, err := parseUint16(args[2])
				if err != nil {
					return nil, 0, err
				}
				baseFactor, err := parseUint16(args[3])
				if err != nil {
					return nil, 0, err
				}
				return dlmm.GetLbPairAddress(&dlmm.GetLbPairAddressArgs{
					TokenXMint: x,
					TokenYMint: y,
					BinStep:    binStep,
					BaseFactor: baseFactor,
				})
			},
		},
		"permission-lb-pair": {
			usage: "<base> <token_x_mint> <token_y_mint> <bin_step>",
			args:  4,
			derive: func(args []string) (ed25519.PublicKey, uint8, error) {
				keys := make([]ed25519.PublicKey, 3)
				for i := range keys {
					key, err := parseKey(args[i])
					if err != nil {
						return nil, 0, err
					}
					keys[i] = key
				}
				binStep, err := parseUint16(args[3])
				if err != nil {
					return nil, 0, err
				}
				return dlmm.GetPermissionLbPairAddress(&dlmm.GetPermissionLbPairAddressArgs{
					Base:       keys[0],
					TokenXMint: keys[1],
					TokenYMint: keys[2],
					BinStep:    binStep,
				})
			},
		},
		"customizable-lb-pair": keyArgs(2, "<token_x_mint> <token_y_mint>", func(keys []ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
			return dlmm.GetCustomizablePermissionlessLbPairAddress(keys[0], keys[1])
		}),
		"position": {
			usage: "<lb_pair> <base> <lower_bin_id> <width>",
			args:  4,
			derive: func(args []string) (ed25519.PublicKey, uint8, error) {
				lbPair, err := parseKey(args[0])
				if err != nil {
					return nil, 0, err
				}
				base, err := parseKey(args[1])
				if err != nil {
					return nil, 0, err
				}
				lower, err := parseInt32(args[2])
				if err != nil {
					return nil, 0, err
				}
				width, err := parseInt32(args[3])
				if err != nil {
					return nil, 0, err
				}
				return dlmm.GetPositionAddress(&dlmm.GetPositionAddressArgs{
					LbPair:     lbPair,
					Base:       base,
					LowerBinId: lower,
					Width:      width,
				})
			},
		},
		"oracle": keyArgs(1, "<lb_pair>", func(keys []ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
			return dlmm.GetOracleAddress(keys[0])
		}),
		"bin-array": {
			usage: "<lb_pair> <index>",
			args:  2,
			derive: func(args []string) (ed25519.PublicKey, uint8, error) {
				lbPair, err := parseKey(args[0])
				if err != nil {
					return nil, 0, err
				}
				index, err := parseInt64(args[1])
				if err != nil {
					return nil, 0, err
				}
				return dlmm.GetBinArrayAddress(lbPair, index)
			},
		},
		"bitmap-extension": keyArgs(1, "<lb_pair>", func(keys []ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
			return dlmm.GetBinArrayBitmapExtensionAddress(keys[0])
		}),
		"reserve": keyArgs(2, "<lb_pair> <mint>", func(keys []ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
			return dlmm.GetReserveAddress(keys[0], keys[1])
		}),
		"reward-vault": {
			usage: "<lb_pair> <reward_index>",
			args:  2,
			derive: func(args []string) (ed25519.PublicKey, uint8, error) {
				lbPair, err := parseKey(args[0])
				if err != nil {
					return nil, 0, err
				}
				index, err := parseUint64(args[1])
				if err != nil {
					return nil, 0, err
				}
				return dlmm.GetRewardVaultAddress(lbPair, index)
			},
		},
		"preset-parameter": {
			usage: "<bin_step> <base_factor>",
			args:  2,
			derive: func(args []string) (ed25519.PublicKey, uint8, error) {
				binStep, err := parseUint16(args[0])
				if err != nil {
					return nil, 0, err
				}
				baseFactor, err := parseUint16(args[1])
				if err != nil {
					return nil, 0, err
				}
				return dlmm.GetPresetParameterAddress(binStep, baseFactor)
			},
		},
		"preset-parameter2": {
			usage: "<index>",
			args:  1,
			derive: func(args []string) (ed25519.PublicKey, uint8, error) {
				index, err := parseUint16(args[0])
				if err != nil {
					return nil, 0, err
				}
				return dlmm.GetPresetParameter2Address(index)
			},
		},
		"event-authority": keyArgs(0, "", func([]ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
			return dlmm.GetEventAuthorityAddress()
		}),
	}
}
