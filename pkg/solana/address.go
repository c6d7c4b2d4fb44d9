package solana

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"math"

	"github.com/jdgcs/ed25519/edwards25519"
	"github.com/pkg/errors"
)

const (
	maxSeeds      = 16
	maxSeedLength = 32
)

var (
	ErrTooManySeeds          = errors.New("too many seeds")
	ErrMaxSeedLengthExceeded = errors.New("max seed length exceeded")

	ErrInvalidPublicKey = errors.New("invalid public key")
	ErrNoViableBumpSeed = errors.New("no viable bump seed")
)

var programHashCtor = sha256.New

var pdaMarker = []byte("ProgramDerivedAddress")

// CreateProgramAddress hashes seeds, program and the PDA marker into an
// address. Addresses must lie off the ed25519 curve so that no private key
// exists for them; an on-curve hash yields ErrInvalidPublicKey.
func CreateProgramAddress(program ed25519.PublicKey, seeds ...[]byte) (ed25519.PublicKey, error) {
	if len(seeds) > maxSeeds {
		return nil, ErrTooManySeeds
	}
	for _, seed := range seeds {
		if len(seed) > maxSeedLength {
			return nil, ErrMaxSeedLengthExceeded
		}
	}

	h := programHashCtor()
	for _, part := range append(append([][]byte{}, seeds...), program, pdaMarker) {
		if _, err := h.Write(part); err != nil {
			return nil, errors.Wrap(err, "hash seed")
		}
	}

	var pub [ed25519.PublicKeySize]byte
	copy(pub[:], h.Sum(nil))

	// x/crypto keeps its point decoding internal, so the curve check goes
	// through the edwards25519 fork.
	var point edwards25519.ExtendedGroupElement
	if point.FromBytes(&pub) {
		return nil, ErrInvalidPublicKey
	}
	return pub[:], nil
}

// FindProgramAddressAndBump searches bump seeds downward from 255 and returns
// the first off-curve address with its bump. Programs store that bump and
// expect it when re-deriving the address.
func FindProgramAddressAndBump(program ed25519.PublicKey, seeds ...[]byte) (ed25519.PublicKey, uint8, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)

	for bump := math.MaxUint8; bump > 0; bump-- {
		withBump[len(seeds)] = []byte{uint8(bump)}

		pub, err := CreateProgramAddress(program, withBump...)
		switch err {
		case nil:
			return pub, uint8(bump), nil
		case ErrInvalidPublicKey:
			continue
		default:
			return nil, 0, err
		}
	}
	return nil, 0, ErrNoViableBumpSeed
}

// FindProgramAddress is FindProgramAddressAndBump without the bump.
func FindProgramAddress(program ed25519.PublicKey, seeds ...[]byte) (ed25519.PublicKey, error) {
	pub, _, err := FindProgramAddressAndBump(program, seeds...)
	return pub, err
}

// Seed helpers for the little-endian integer seeds programs commonly use.

func Uint16Seed(v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return b[:]
}

func Int32Seed(v int32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	return b[:]
}

func Uint64Seed(v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b[:]
}

func Int64Seed(v int64) []byte {
	return Uint64Seed(uint64(v))
}
