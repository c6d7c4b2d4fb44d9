package decoder

import (
	"crypto/ed25519"
	"sort"
	"sync"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
	"github.com/code-payments/solana-program-clients/pkg/solana/dlmm"
	"github.com/code-payments/solana-program-clients/pkg/solana/marginfi"
	"github.com/code-payments/solana-program-clients/pkg/solana/marinade"
)

var (
	ErrUnknownAccount    = errors.New("unknown account type")
	ErrAlreadyRegistered = errors.New("account type already registered")
)

// DecodeFunc decodes the full data of an account, discriminator included.
type DecodeFunc func(data []byte) (interface{}, error)

// Decoded is an account decoded by a Registry.
type Decoded struct {
	Program ed25519.PublicKey
	Name    string
	Value   interface{}
}

type entry struct {
	name   string
	decode DecodeFunc
}

// Registry maps an owning program and account discriminator to a decoder.
type Registry struct {
	mu       sync.RWMutex
	programs map[string]map[binary.Discriminator]entry
}

func NewRegistry() *Registry {
	return &Registry{
		programs: make(map[string]map[binary.Discriminator]entry),
	}
}

// Register adds an account type owned by program.
func (r *Registry) Register(program ed25519.PublicKey, discriminator binary.Discriminator, name string, decode DecodeFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := base58.Encode(program)
	byDiscriminator, ok := r.programs[key]
	if !ok {
		byDiscriminator = make(map[binary.Discriminator]entry)
		r.programs[key] = byDiscriminator
	}

	if existing, ok := byDiscriminator[discriminator]; ok {
		return errors.Wrapf(ErrAlreadyRegistered, "%s as %s", name, existing.name)
	}

	byDiscriminator[discriminator] = entry{name: name, decode: decode}
	return nil
}

// Decode identifies data by its owner and leading discriminator and decodes it.
func (r *Registry) Decode(owner ed25519.PublicKey, data []byte) (*Decoded, error) {
	if len(data) < binary.DiscriminatorSize {
		return nil, errors.Wrap(ErrUnknownAccount, "data shorter than discriminator")
	}

	var discriminator binary.Discriminator
	copy(discriminator[:], data)

	r.mu.RLock()
	e, ok := r.programs[base58.Encode(owner)][discriminator]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAccount, "owner %s discriminator %x", base58.Encode(owner), discriminator[:])
	}

	value, err := e.decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", e.name)
	}

	return &Decoded{
		Program: owner,
		Name:    e.name,
		Value:   value,
	}, nil
}

// Names lists the registered account type names for a program, sorted.
func (r *Registry) Names(program ed25519.PublicKey) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for _, e := range r.programs[base58.Encode(program)] {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}

type unmarshaler interface {
	Unmarshal(data []byte) error
}

// decodeAs adapts an account type's Unmarshal to a DecodeFunc.
func decodeAs[T any, PT interface {
	*T
	unmarshaler
}]() DecodeFunc {
	return func(data []byte) (interface{}, error) {
		var v T
		if err := PT(&v).Unmarshal(data); err != nil {
			return nil, err
		}
		return &v, nil
	}
}

// DefaultRegistry knows every account type of the supported programs.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	for _, registration := range []struct {
		program       ed25519.PublicKey
		discriminator binary.Discriminator
		name          string
		decode        DecodeFunc
	}{
		{marginfi.PROGRAM_ID, marginfi.MarginfiGroupDiscriminator, "marginfi.MarginfiGroup", decodeAs[marginfi.MarginfiGroup]()},
		{marginfi.PROGRAM_ID, marginfi.MarginfiAccountDiscriminator, "marginfi.MarginfiAccount", decodeAs[marginfi.MarginfiAccount]()},
		{marginfi.PROGRAM_ID, marginfi.BankDiscriminator, "marginfi.Bank", decodeAs[marginfi.Bank]()},
		{marginfi.PROGRAM_ID, marginfi.FeeStateDiscriminator, "marginfi.FeeState", decodeAs[marginfi.FeeState]()},
		{marginfi.PROGRAM_ID, marginfi.StakedSettingsDiscriminator, "marginfi.StakedSettings", decodeAs[marginfi.StakedSettings]()},

		{marinade.PROGRAM_ID, marinade.StateDiscriminator, "marinade.State", decodeAs[marinade.State]()},
		{marinade.PROGRAM_ID, marinade.TicketAccountDataDiscriminator, "marinade.TicketAccountData", decodeAs[marinade.TicketAccountData]()},

		{dlmm.PROGRAM_ID, dlmm.LbPairDiscriminator, "dlmm.LbPair", decodeAs[dlmm.LbPair]()},
		{dlmm.PROGRAM_ID, dlmm.PositionV2Discriminator, "dlmm.PositionV2", decodeAs[dlmm.PositionV2]()},
		{dlmm.PROGRAM_ID, dlmm.BinArrayDiscriminator, "dlmm.BinArray", decodeAs[dlmm.BinArray]()},
		{dlmm.PROGRAM_ID, dlmm.PresetParameter2Discriminator, "dlmm.PresetParameter2", decodeAs[dlmm.PresetParameter2]()},
	} {
		if err := r.Register(registration.program, registration.discriminator, registration.name, registration.decode); err != nil {
			panic(err)
		}
	}

	return r
}
