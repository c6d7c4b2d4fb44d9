package marinade

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
	PROGRAM_ADDRESS = mustBase58Decode("MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

// Mainnet deployment
var (
	STATE_ADDRESS = ed25519.PublicKey(mustBase58Decode("8szGkuLTAux9XMgZ2vtY39jVSowEcpBfFfD8hXSEqdGC"))
	MSOL_MINT     = ed25519.PublicKey(mustBase58Decode("mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So"))
)

var (
	SYSTEM_PROGRAM_ID    = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))
	SPL_TOKEN_PROGRAM_ID = ed25519.PublicKey(mustBase58Decode("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"))
	STAKE_PROGRAM_ID     = ed25519.PublicKey(mustBase58Decode("Stake11111111111111111111111111111111111111"))
	SYSVAR_CLOCK_PUBKEY  = ed25519.PublicKey(mustBase58Decode("SysvarC1ock11111111111111111111111111111111"))
	SYSVAR_RENT_PUBKEY   = ed25519.PublicKey(mustBase58Decode("SysvarRent111111111111111111111111111111111"))
)
