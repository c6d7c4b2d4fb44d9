package snapshot

import (
	"bytes"
	"crypto/ed25519"

	"github.com/cockroachdb/pebble"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/binary"
)

var (
	ErrNotFound     = errors.New("snapshot entry not found")
	ErrStopIterate  = errors.New("stop iteration")
	ErrInvalidEntry = errors.New("invalid snapshot entry")
)

const keySeparator = '/'

// Store persists raw program accounts so a scan can be decoded again without
// going back to the RPC node. Keys are "<program>/<address>", both base58.
type Store struct {
	log *logrus.Entry
	db  *pebble.DB
}

// Open opens or creates a store in dir.
func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open snapshot store at %s", dir)
	}

	return &Store{
		log: logrus.StandardLogger().WithField("type", "solana/snapshot"),
		db:  db,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores a single account, replacing any earlier observation.
func (s *Store) Put(entry *Entry) error {
	key, val, err := marshalEntry(entry)
	if err != nil {
		return err
	}
	return s.db.Set(key, val, pebble.Sync)
}

// PutAll stores entries in a single atomic batch.
func (s *Store) PutAll(entries ...*Entry) error {
	if len(entries) == 0 {
		return nil
	}

	batch := s.db.NewBatch()
	defer batch.Close()

	for _, entry := range entries {
		key, val, err := marshalEntry(entry)
		if err != nil {
			return err
		}
		if err := batch.Set(key, val, nil); err != nil {
			return err
		}
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"method":  "PutAll",
		"entries": len(entries),
	}).Debug("stored snapshot batch")
	return nil
}

// Get returns the stored account, or ErrNotFound.
func (s *Store) Get(program, address ed25519.PublicKey) (*Entry, error) {
	key := entryKey(program, address)

	raw, closer, err := s.db.Get(key)
	if err == pebble.ErrNotFound {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	defer closer.Close()

	return unmarshalEntry(key, raw)
}

// Delete removes an account. Deleting an absent account is not an error.
func (s *Store) Delete(program, address ed25519.PublicKey) error {
	return s.db.Delete(entryKey(program, address), pebble.Sync)
}

// Iterate calls fn for every stored account of program in key order. Returning
// ErrStopIterate from fn ends the iteration without error.
func (s *Store) Iterate(program ed25519.PublicKey, fn func(*Entry) error) error {
	prefix := programPrefix(program)

	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		entry, err := unmarshalEntry(iter.Key(), iter.Value())
		if err != nil {
			return err
		}

		if err := fn(entry); err == ErrStopIterate {
			return nil
		} else if err != nil {
			return err
		}
	}
	return iter.Error()
}

// Count returns the number of stored accounts for program.
func (s *Store) Count(program ed25519.PublicKey) (int, error) {
	var count int
	err := s.Iterate(program, func(*Entry) error {
		count++
		return nil
	})
	return count, err
}

func programPrefix(program ed25519.PublicKey) []byte {
	return append([]byte(base58.Encode(program)), keySeparator)
}

func entryKey(program, address ed25519.PublicKey) []byte {
	return append(programPrefix(program), base58.Encode(address)...)
}

// prefixUpperBound returns the smallest key greater than every key starting
// with prefix.
func prefixUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

func marshalEntry(entry *Entry) (key, val []byte, err error) {
	if len(entry.Program) != ed25519.PublicKeySize || len(entry.Address) != ed25519.PublicKeySize {
		return nil, nil, errors.Wrap(ErrInvalidEntry, "program and address are required")
	}
	if !bytes.Equal(entry.Account.Owner, entry.Program) && len(entry.Account.Owner) != 0 {
		return nil, nil, errors.Wrapf(ErrInvalidEntry, "account %s is owned by %s", base58.Encode(entry.Address), base58.Encode(entry.Account.Owner))
	}

	val, err = binary.Encode(&value{
		slot:       entry.Slot,
		lamports:   entry.Account.Lamports,
		executable: entry.Account.Executable,
		data:       entry.Account.Data,
	})
	if err != nil {
		return nil, nil, err
	}
	return entryKey(entry.Program, entry.Address), val, nil
}

func unmarshalEntry(key, raw []byte) (*Entry, error) {
	sep := bytes.IndexByte(key, keySeparator)
	if sep < 0 {
		return nil, errors.Wrapf(ErrInvalidEntry, "malformed key %q", key)
	}

	program, err := base58.Decode(string(key[:sep]))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidEntry, "malformed program in key %q", key)
	}
	address, err := base58.Decode(string(key[sep+1:]))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidEntry, "malformed address in key %q", key)
	}

	var v value
	if _, err := binary.Decode(raw, 0, &v); err != nil {
		return nil, errors.Wrapf(err, "decode entry %q", key)
	}

	return &Entry{
		Program: program,
		Address: address,
		Slot:    v.slot,
		Account: solana.AccountInfo{
			Data:       v.data,
			Owner:      program,
			Lamports:   v.lamports,
			Executable: v.executable,
		},
	}, nil
}
