package solana

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// AnchorErrorCodeOffset is where Anchor programs start numbering their custom
// errors.
const AnchorErrorCodeOffset = 6000

var ErrUnknownErrorCode = errors.New("unknown program error code")

const (
	transactionErrorInstructionError = "InstructionError"
	instructionErrorCustom           = "Custom"
)

// CustomError is the numerical error returned by a non-system program.
type CustomError int

func (c CustomError) Error() string {
	return fmt.Sprintf("custom program error: %x", int(c))
}

// InstructionError indicates an instruction returned an error in a transaction.
type InstructionError struct {
	Index int
	Err   error
}

func (i InstructionError) Error() string {
	return fmt.Sprintf("Error processing Instruction %d: %v", i.Index, i.Err)
}

func (i InstructionError) CustomError() *CustomError {
	ce, ok := i.Err.(CustomError)
	if ok {
		return &ce
	}

	return nil
}

// TransactionError is a parsed "err" value from transaction metadata.
type TransactionError struct {
	key              string
	instructionError *InstructionError
}

func (t TransactionError) Error() string {
	if t.instructionError != nil {
		return t.instructionError.Error()
	}
	return t.key
}

func (t TransactionError) ErrorKey() string {
	return t.key
}

func (t TransactionError) InstructionError() *InstructionError {
	return t.instructionError
}

// ParseTransactionError parses the JSON error returned in the "err" field of
// transaction metadata. It accepts either an already decoded value or raw JSON.
func ParseTransactionError(raw interface{}) (*TransactionError, error) {
	if raw == nil {
		return nil, nil
	}

	if b, ok := raw.([]byte); ok {
		d := json.NewDecoder(bytes.NewReader(b))
		d.UseNumber()

		var decoded interface{}
		if err := d.Decode(&decoded); err != nil {
			return nil, errors.Wrap(err, "invalid transaction error json")
		}
		return ParseTransactionError(decoded)
	}

	switch t := raw.(type) {
	case string:
		return &TransactionError{key: t}, nil
	case map[string]interface{}:
		if len(t) != 1 {
			return nil, errors.Errorf("invalid transaction result size: %d", len(t))
		}

		var k string
		var v interface{}
		for k, v = range t {
		}

		if k != transactionErrorInstructionError {
			return &TransactionError{key: k}, nil
		}

		instructionErr, err := parseInstructionError(v)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse instruction error")
		}

		return &TransactionError{
			key:              transactionErrorInstructionError,
			instructionError: &instructionErr,
		}, nil
	default:
		return nil, errors.New("unhandled error type")
	}
}

func parseInstructionError(v interface{}) (e InstructionError, err error) {
	values, ok := v.([]interface{})
	if !ok {
		return e, errors.New("unexpected instruction error format")
	}

	if len(values) != 2 {
		return e, errors.Errorf("unexpected entries in InstructionError tuple: %d", len(values))
	}

	e.Index, err = parseJSONNumber(values[0])
	if err != nil {
		return e, err
	}

	switch t := values[1].(type) {
	case string:
		e.Err = errors.New(t)
	case map[string]interface{}:
		if len(t) != 1 {
			return e, errors.Errorf("invalid instruction result size: %d", len(t))
		}

		var k string
		var v interface{}
		for k, v = range t {
		}

		if k != instructionErrorCustom {
			e.Err = errors.New(k)
			break
		}

		code, err := parseJSONNumber(v)
		if err != nil {
			return e, errors.Wrap(err, "invalid custom error code")
		}

		e.Err = CustomError(code)
	default:
		return e, errors.New("unexpected instruction error value")
	}

	return e, nil
}

func parseJSONNumber(v interface{}) (int, error) {
	switch t := v.(type) {
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, errors.Errorf("non int64 value: %v", v)
		}
		return int(n), nil
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, errors.Errorf("non numeric value: %v", v)
		}
		return int(n), nil
	case float64:
		return int(t), nil
	}

	return 0, errors.Errorf("non numeric value: %v", v)
}

// ErrorDescriptor names a single program error code.
type ErrorDescriptor struct {
	Name    string
	Message string
}

// ProgramError is a custom error code resolved against a program's error
// table. Codes the table doesn't know about resolve to the unknown variant.
type ProgramError struct {
	Program ed25519.PublicKey
	Code    uint32
	Name    string
	Message string

	known bool
}

func (e ProgramError) Unknown() bool {
	return !e.known
}

func (e ProgramError) Error() string {
	if !e.known {
		return fmt.Sprintf("unknown program error %d (0x%x)", e.Code, e.Code)
	}
	return fmt.Sprintf("%s (%d): %s", e.Name, e.Code, e.Message)
}

// ErrorRegistry is a dense table of program errors numbered from an offset.
type ErrorRegistry struct {
	program ed25519.PublicKey
	offset  uint32
	entries []ErrorDescriptor
	byName  map[string]uint32
}

func NewErrorRegistry(program ed25519.PublicKey, offset uint32, entries []ErrorDescriptor) *ErrorRegistry {
	r := &ErrorRegistry{
		program: program,
		offset:  offset,
		entries: entries,
		byName:  make(map[string]uint32, len(entries)),
	}
	for i, entry := range entries {
		r.byName[entry.Name] = offset + uint32(i)
	}
	return r
}

func (r *ErrorRegistry) Program() ed25519.PublicKey {
	return r.program
}

func (r *ErrorRegistry) Len() int {
	return len(r.entries)
}

// Lookup never fails. Unknown codes are returned as the unknown variant.
func (r *ErrorRegistry) Lookup(code uint32) ProgramError {
	e := ProgramError{
		Program: r.program,
		Code:    code,
		Name:    "Unknown",
	}

	if code < r.offset || code-r.offset >= uint32(len(r.entries)) {
		return e
	}

	entry := r.entries[code-r.offset]
	e.Name = entry.Name
	e.Message = entry.Message
	e.known = true
	return e
}

// LookupStrict returns ErrUnknownErrorCode for codes outside the table.
func (r *ErrorRegistry) LookupStrict(code uint32) (ProgramError, error) {
	e := r.Lookup(code)
	if e.Unknown() {
		return e, errors.Wrapf(ErrUnknownErrorCode, "program %s code %d", base58.Encode(r.program), code)
	}
	return e, nil
}

func (r *ErrorRegistry) LookupName(name string) (ProgramError, bool) {
	code, ok := r.byName[name]
	if !ok {
		return ProgramError{}, false
	}
	return r.Lookup(code), true
}

// ResolveProgramError maps a failed instruction to a program error, using the
// registry for the program that executed it. It returns false when the
// instruction didn't fail with a custom error.
func ResolveProgramError(ie *InstructionError, program ed25519.PublicKey, registries ...*ErrorRegistry) (ProgramError, bool) {
	if ie == nil {
		return ProgramError{}, false
	}

	custom := ie.CustomError()
	if custom == nil || *custom < 0 {
		return ProgramError{}, false
	}

	for _, r := range registries {
		if bytes.Equal(r.program, program) {
			return r.Lookup(uint32(*custom)), true
		}
	}

	return ProgramError{
		Program: program,
		Code:    uint32(*custom),
		Name:    "Unknown",
	}, true
}
