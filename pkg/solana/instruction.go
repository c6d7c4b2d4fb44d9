package solana

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

// AccountMeta is an account passed to an instruction along with the
// privileges the instruction needs on it.
type AccountMeta struct {
	PublicKey  ed25519.PublicKey
	IsSigner   bool
	IsWritable bool
}

func NewWritableAccountMeta(pub ed25519.PublicKey) AccountMeta {
	return AccountMeta{
		PublicKey:  pub,
		IsWritable: true,
	}
}

func NewReadonlyAccountMeta(pub ed25519.PublicKey) AccountMeta {
	return AccountMeta{
		PublicKey: pub,
	}
}

func NewWritableSignerAccountMeta(pub ed25519.PublicKey) AccountMeta {
	return AccountMeta{
		PublicKey:  pub,
		IsSigner:   true,
		IsWritable: true,
	}
}

func NewReadonlySignerAccountMeta(pub ed25519.PublicKey) AccountMeta {
	return AccountMeta{
		PublicKey: pub,
		IsSigner:  true,
	}
}

func (m AccountMeta) String() string {
	access := "r"
	if m.IsWritable {
		access = "w"
	}
	if m.IsSigner {
		access += "s"
	}
	return fmt.Sprintf("%s(%s)", base58.Encode(m.PublicKey), access)
}

// Instruction represents a transaction instruction. Accounts are kept in the
// order the program expects them.
type Instruction struct {
	Program  ed25519.PublicKey
	Accounts []AccountMeta
	Data     []byte
}

// NewInstruction creates a new instruction.
func NewInstruction(program ed25519.PublicKey, data []byte, accounts ...AccountMeta) Instruction {
	return Instruction{
		Program:  program,
		Data:     data,
		Accounts: accounts,
	}
}
