package dlmm

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
)

var (
	ErrInvalidProgram         = errors.New("invalid program id")
	ErrInvalidAccountData     = errors.New("unexpected account data")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

// EVENT_AUTHORITY is the PDA the program self-invokes through to emit
// events. See GetEventAuthorityAddress.
var EVENT_AUTHORITY = ed25519.PublicKey(mustBase58Decode("D1ZN9Wj1fRSUQfCjhvnu1hqDMT7hzjzBBpi12nVniYD6"))

// ILM_BASE_KEY seeds customizable permissionless pairs.
var ILM_BASE_KEY = ed25519.PublicKey(mustBase58Decode("MFGQxwAmB91SwuYX36okv2Qmdc9aMuHTwWGUrp4AtB1"))

var (
	SYSTEM_PROGRAM_ID     = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))
	SPL_TOKEN_PROGRAM_ID  = ed25519.PublicKey(mustBase58Decode("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"))
	TOKEN_2022_PROGRAM_ID = ed25519.PublicKey(mustBase58Decode("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"))
	SYSVAR_RENT_PUBKEY    = ed25519.PublicKey(mustBase58Decode("SysvarRent111111111111111111111111111111111"))
)

const (
	MaxBinPerArray    = 70
	MaxBinPerPosition = 70
	NumRewards        = 2
	BasisPointMax     = 10_000
)
