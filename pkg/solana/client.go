package solana

import (
	"crypto/ed25519"
	"encoding/base64"
	"time"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/ybbus/jsonrpc"

	"github.com/code-payments/solana-program-clients/pkg/rate"
	"github.com/code-payments/solana-program-clients/pkg/retry"
	"github.com/code-payments/solana-program-clients/pkg/retry/backoff"
)

const (
	// Reference: https://github.com/solana-labs/solana/blob/71e9958e061493d7545bd28d4ac7a85aaed6ffbb/client/src/rpc_custom_error.rs#L11
	rpcNodeUnhealthyCode = -32005

	// MaxAccountsPerRequest is the getMultipleAccounts limit enforced by RPC nodes.
	MaxAccountsPerRequest = 100
)

type Commitment struct {
	Commitment string `json:"commitment"`
}

const (
	confirmationStatusProcessed = "processed"
	confirmationStatusConfirmed = "confirmed"
	confirmationStatusFinalized = "finalized"
)

var (
	CommitmentProcessed = Commitment{Commitment: confirmationStatusProcessed}
	CommitmentConfirmed = Commitment{Commitment: confirmationStatusConfirmed}
	CommitmentFinalized = Commitment{Commitment: confirmationStatusFinalized}
)

// CommitmentFromName parses processed, confirmed or finalized.
func CommitmentFromName(name string) (Commitment, error) {
	switch name {
	case confirmationStatusProcessed:
		return CommitmentProcessed, nil
	case confirmationStatusConfirmed:
		return CommitmentConfirmed, nil
	case confirmationStatusFinalized:
		return CommitmentFinalized, nil
	}
	return Commitment{}, errors.Errorf("unknown commitment: %s", name)
}

var (
	ErrNoAccountInfo = errors.New("no account info")
)

// AccountInfo contains the Solana account information (not to be confused with a TokenAccount)
type AccountInfo struct {
	Data       []byte
	Owner      ed25519.PublicKey
	Lamports   uint64
	Executable bool
}

// KeyedAccount is an account returned from a program account query.
type KeyedAccount struct {
	PublicKey ed25519.PublicKey
	Account   AccountInfo
}

// Client provides read access to program accounts through the Solana JSON
// RPC API.
//
// Reference: https://docs.solana.com/apps/jsonrpc-api
type Client interface {
	GetAccountInfo(ed25519.PublicKey, Commitment) (AccountInfo, error)
	GetMultipleAccounts([]ed25519.PublicKey, Commitment) ([]*AccountInfo, uint64, error)
	GetProgramAccounts(program ed25519.PublicKey, commitment Commitment, filters ...Filter) ([]KeyedAccount, uint64, error)
	GetMinimumBalanceForRentExemption(size uint64) (lamports uint64, err error)
	GetSlot(Commitment) (uint64, error)
}

var (
	errRateLimited  = errors.New("rate limited")
	errServiceError = errors.New("service error")
)

type rpcAccount struct {
	Lamports   uint64   `json:"lamports"`
	Owner      string   `json:"owner"`
	Data       []string `json:"data"`
	Executable bool     `json:"executable"`
}

func (a *rpcAccount) toAccountInfo() (accountInfo AccountInfo, err error) {
	accountInfo.Owner, err = base58.Decode(a.Owner)
	if err != nil {
		return accountInfo, errors.Wrap(err, "invalid base58 encoded owner")
	}

	if len(a.Data) == 0 {
		return accountInfo, errors.New("missing account data")
	}

	accountInfo.Data, err = base64.StdEncoding.DecodeString(a.Data[0])
	if err != nil {
		return accountInfo, errors.Wrap(err, "invalid base64 encoded data")
	}

	accountInfo.Lamports = a.Lamports
	accountInfo.Executable = a.Executable

	return accountInfo, nil
}

type accountConfig struct {
	Commitment string   `json:"commitment"`
	Encoding   string   `json:"encoding"`
	Filters    []Filter `json:"filters,omitempty"`

	WithContext bool `json:"withContext,omitempty"`
}

type client struct {
	log     *logrus.Entry
	client  jsonrpc.RPCClient
	retrier retry.Retrier
	limiter rate.Limiter
}

// New returns a client using the specified endpoint.
func New(endpoint string) Client {
	return NewWithRPCOptions(endpoint, nil, &rate.NoLimiter{})
}

// NewWithRPCOptions returns a client configured with the specified RPC options.
// Requests are throttled per RPC method by the limiter, and throttled requests
// back off the same way as a 429 from the node would.
func NewWithRPCOptions(endpoint string, opts *jsonrpc.RPCClientOpts, limiter rate.Limiter) Client {
	return &client{
		log:    logrus.StandardLogger().WithField("type", "solana/client"),
		client: jsonrpc.NewClientWithOpts(endpoint, opts),
		retrier: retry.NewRetrier(
			retry.RetriableErrors(errRateLimited, errServiceError),
			retry.Limit(3),
			retry.BackoffWithJitter(backoff.BinaryExponential(time.Second), 10*time.Second, 0.1),
		),
		limiter: limiter,
	}
}

func (c *client) call(out interface{}, method string, params ...interface{}) error {
	_, err := c.retrier.Retry(func() error {
		allowed, err := c.limiter.Allow(method)
		if err != nil {
			return errors.Wrap(err, "failed to check rate limit")
		}
		if !allowed {
			c.log.WithField("method", method).Debug("throttled locally")
			return errRateLimited
		}

		err = c.client.CallFor(out, method, params...)
		if err == nil {
			return nil
		}

		return c.handleRpcError(method, err)
	})

	return err
}

func (c *client) handleRpcError(method string, err error) error {
	rpcErr, ok := err.(*jsonrpc.RPCError)
	if !ok {
		return err
	}
	if rpcErr.Code == 429 {
		c.log.WithField("method", method).Error("rate limited")
		return errRateLimited
	}
	if rpcErr.Code >= 500 || rpcErr.Code == rpcNodeUnhealthyCode {
		return errServiceError
	}

	return err
}

func (c *client) GetMinimumBalanceForRentExemption(dataSize uint64) (lamports uint64, err error) {
	if err := c.call(&lamports, "getMinimumBalanceForRentExemption", dataSize); err != nil {
		return 0, errors.Wrapf(err, "getMinimumBalanceForRentExemption() failed to send request")
	}

	return lamports, nil
}

func (c *client) GetSlot(commitment Commitment) (slot uint64, err error) {
	// note: we have to wrap the commitment in an []interface{} otherwise the
	//       solana RPC node complains. Technically this is a violation of the
	//       JSON RPC v2.0 spec.
	if err := c.call(&slot, "getSlot", []interface{}{commitment}); err != nil {
		return 0, errors.Wrapf(err, "getSlot() failed to send request")
	}

	return slot, nil
}

func (c *client) GetAccountInfo(account ed25519.PublicKey, commitment Commitment) (accountInfo AccountInfo, err error) {
	var resp struct {
		Value *rpcAccount `json:"value"`
	}

	config := accountConfig{
		Commitment: commitment.Commitment,
		Encoding:   "base64",
	}
	if err := c.call(&resp, "getAccountInfo", base58.Encode(account), config); err != nil {
		return accountInfo, errors.Wrap(err, "getAccountInfo() failed to send request")
	}

	if resp.Value == nil {
		return accountInfo, ErrNoAccountInfo
	}

	return resp.Value.toAccountInfo()
}

// GetMultipleAccounts returns one entry per requested key, in order. Accounts
// that don't exist are nil. Keys beyond MaxAccountsPerRequest are fetched in
// several requests, and the returned slot is the lowest one they were served
// at.
func (c *client) GetMultipleAccounts(accounts []ed25519.PublicKey, commitment Commitment) ([]*AccountInfo, uint64, error) {
	config := accountConfig{
		Commitment: commitment.Commitment,
		Encoding:   "base64",
	}

	var slot uint64
	result := make([]*AccountInfo, 0, len(accounts))
	for i, chunk := range lo.Chunk(accounts, MaxAccountsPerRequest) {
		var resp struct {
			Context struct {
				Slot uint64 `json:"slot"`
			} `json:"context"`
			Value []*rpcAccount `json:"value"`
		}

		encoded := lo.Map(chunk, func(key ed25519.PublicKey, _ int) string {
			return base58.Encode(key)
		})
		if err := c.call(&resp, "getMultipleAccounts", encoded, config); err != nil {
			return nil, 0, errors.Wrap(err, "getMultipleAccounts() failed to send request")
		}

		if len(resp.Value) != len(chunk) {
			return nil, 0, errors.Errorf("getMultipleAccounts() returned %d accounts, expected %d", len(resp.Value), len(chunk))
		}

		if i == 0 || resp.Context.Slot < slot {
			slot = resp.Context.Slot
		}

		for j, value := range resp.Value {
			if value == nil {
				result = append(result, nil)
				continue
			}

			accountInfo, err := value.toAccountInfo()
			if err != nil {
				return nil, 0, errors.Wrapf(err, "invalid account %s", base58.Encode(chunk[j]))
			}
			result = append(result, &accountInfo)
		}
	}

	return result, slot, nil
}

// GetProgramAccounts returns every account owned by program that matches all
// filters, along with the slot the query was served at.
func (c *client) GetProgramAccounts(program ed25519.PublicKey, commitment Commitment, filters ...Filter) ([]KeyedAccount, uint64, error) {
	config := accountConfig{
		Commitment:  commitment.Commitment,
		Encoding:    "base64",
		Filters:     filters,
		WithContext: true,
	}

	var resp struct {
		Context struct {
			Slot uint64 `json:"slot"`
		} `json:"context"`
		Value []struct {
			PubKey  string     `json:"pubkey"`
			Account rpcAccount `json:"account"`
		} `json:"value"`
	}
	if err := c.call(&resp, "getProgramAccounts", base58.Encode(program), config); err != nil {
		return nil, 0, errors.Wrap(err, "getProgramAccounts() failed to send request")
	}

	res := make([]KeyedAccount, 0, len(resp.Value))
	for _, value := range resp.Value {
		key, err := base58.Decode(value.PubKey)
		if err != nil {
			return nil, 0, errors.Wrap(err, "invalid base58 encoded account key")
		}

		accountInfo, err := value.Account.toAccountInfo()
		if err != nil {
			return nil, 0, errors.Wrapf(err, "invalid account %s", value.PubKey)
		}

		res = append(res, KeyedAccount{
			PublicKey: key,
			Account:   accountInfo,
		})
	}
	return res, resp.Context.Slot, nil
}
