package solana

import (
	"bytes"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// maxMemcmpBytes is the largest comparison the RPC nodes accept.
const maxMemcmpBytes = 128

var ErrFilterTooLarge = errors.New("memcmp filter exceeds 128 bytes")

// Filter narrows a getProgramAccounts query. Exactly one of DataSize and
// Memcmp is set.
type Filter struct {
	DataSize *uint64      `json:"dataSize,omitempty"`
	Memcmp   *MemcmpValue `json:"memcmp,omitempty"`
}

// MemcmpValue matches accounts whose data contains the base58 encoded Bytes at
// Offset.
type MemcmpValue struct {
	Offset uint64 `json:"offset"`
	Bytes  string `json:"bytes"`

	raw []byte
}

func DataSizeFilter(size uint64) Filter {
	return Filter{DataSize: &size}
}

func MemcmpFilter(offset uint64, value []byte) (Filter, error) {
	if len(value) > maxMemcmpBytes {
		return Filter{}, ErrFilterTooLarge
	}

	raw := make([]byte, len(value))
	copy(raw, value)

	return Filter{
		Memcmp: &MemcmpValue{
			Offset: offset,
			Bytes:  base58.Encode(value),
			raw:    raw,
		},
	}, nil
}

// MustMemcmpFilter panics on values over the size limit, which only happens
// with programmer error.
func MustMemcmpFilter(offset uint64, value []byte) Filter {
	f, err := MemcmpFilter(offset, value)
	if err != nil {
		panic(err)
	}
	return f
}

// Matches evaluates the filter locally against account data, the same way an
// RPC node would.
func (f Filter) Matches(data []byte) bool {
	switch {
	case f.DataSize != nil:
		return uint64(len(data)) == *f.DataSize
	case f.Memcmp != nil:
		value := f.Memcmp.raw
		if value == nil {
			decoded, err := base58.Decode(f.Memcmp.Bytes)
			if err != nil {
				return false
			}
			value = decoded
		}

		if f.Memcmp.Offset > uint64(len(data)) || uint64(len(data))-f.Memcmp.Offset < uint64(len(value)) {
			return false
		}
		return bytes.Equal(data[f.Memcmp.Offset:f.Memcmp.Offset+uint64(len(value))], value)
	default:
		return false
	}
}

// MatchesAll reports whether every filter matches data.
func MatchesAll(data []byte, filters ...Filter) bool {
	for _, f := range filters {
		if !f.Matches(data) {
			return false
		}
	}
	return true
}
