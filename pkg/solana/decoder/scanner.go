package decoder

import (
	"context"
	"crypto/ed25519"
	"time"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/code-payments/solana-program-clients/pkg/metrics"
	"github.com/code-payments/solana-program-clients/pkg/rate"
	"github.com/code-payments/solana-program-clients/pkg/retry"
	"github.com/code-payments/solana-program-clients/pkg/retry/backoff"
	"github.com/code-payments/solana-program-clients/pkg/solana"
)

const (
	metricsStructName = "solana.decoder.scanner"

	maxRateLimitBackoff = time.Hour
)

var errRateLimited = errors.New("rate limited")

// Account is a fetched account and, when its type is known, its decoded form.
type Account struct {
	Address ed25519.PublicKey
	Info    solana.AccountInfo
	Decoded *Decoded
}

// Failure is an account that was fetched but could not be decoded.
type Failure struct {
	Address ed25519.PublicKey
	Info    solana.AccountInfo
	Err     error
}

// ScanResult holds the outcome of a scan. Accounts and Failures keep the order
// in which the RPC node returned the accounts.
type ScanResult struct {
	Accounts []*Account
	Failures []*Failure

	// Missing lists requested keys that have no account on chain.
	Missing []ed25519.PublicKey

	// Slot is the slot the accounts were read at. When a scan spans several
	// requests it is the lowest slot any of them was served at. Accounts
	// decoded without a fetch leave it zero.
	Slot uint64
}

// Scanner fetches program accounts and decodes them with a Registry.
type Scanner struct {
	log      *logrus.Entry
	conf     *conf
	client   solana.Client
	registry *Registry
	limiter  rate.Limiter
}

func NewScanner(client solana.Client, registry *Registry, configProvider ConfigProvider) *Scanner {
	conf := configProvider()

	return &Scanner{
		log:      logrus.StandardLogger().WithField("type", "solana/decoder"),
		conf:     conf,
		client:   client,
		registry: registry,
		limiter:  rate.FromRate(conf.rpcRateLimit.Get(context.Background())),
	}
}

// ScanKeys fetches the given accounts in batches and decodes them. Accounts
// that fail to decode are reported as failures and never abort the scan; an
// RPC error does.
func (s *Scanner) ScanKeys(ctx context.Context, commitment solana.Commitment, keys ...ed25519.PublicKey) (*ScanResult, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "ScanKeys")
	defer tracer.End()

	batchSize := int(s.conf.batchSize.Get(ctx))
	if batchSize <= 0 || batchSize > solana.MaxAccountsPerRequest {
		batchSize = solana.MaxAccountsPerRequest
	}

	tracer.AddAttribute("keys", len(keys))
	tracer.AddAttribute("batch_size", batchSize)

	var fetched []solana.KeyedAccount
	var missing []ed25519.PublicKey
	var slot uint64
	for i, batch := range lo.Chunk(keys, batchSize) {
		if err := s.waitForRate(ctx, "getMultipleAccounts"); err != nil {
			tracer.OnError(err)
			return nil, err
		}

		infos, batchSlot, err := s.client.GetMultipleAccounts(batch, commitment)
		if err != nil {
			err = errors.Wrapf(err, "batch %d", i)
			tracer.OnError(err)
			return nil, err
		}
		if len(infos) != len(batch) {
			err = errors.Errorf("batch %d: requested %d accounts, received %d", i, len(batch), len(infos))
			tracer.OnError(err)
			return nil, err
		}
		if i == 0 || batchSlot < slot {
			slot = batchSlot
		}

		for j, info := range infos {
			if info == nil {
				missing = append(missing, batch[j])
				continue
			}
			fetched = append(fetched, solana.KeyedAccount{PublicKey: batch[j], Account: *info})
		}
	}

	res, err := s.decodeAll(ctx, fetched)
	if err != nil {
		tracer.OnError(err)
		return nil, err
	}
	res.Missing = missing
	res.Slot = slot
	return res, nil
}

// ScanProgram fetches every account owned by program that matches filters and
// decodes them.
func (s *Scanner) ScanProgram(ctx context.Context, program ed25519.PublicKey, commitment solana.Commitment, filters ...solana.Filter) (*ScanResult, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, "ScanProgram")
	defer tracer.End()

	tracer.AddAttribute("program", base58.Encode(program))

	if err := s.waitForRate(ctx, "getProgramAccounts"); err != nil {
		tracer.OnError(err)
		return nil, err
	}

	accounts, slot, err := s.client.GetProgramAccounts(program, commitment, filters...)
	if err != nil {
		tracer.OnError(err)
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"method":   "ScanProgram",
		"program":  base58.Encode(program),
		"slot":     slot,
		"accounts": len(accounts),
	}).Debug("fetched program accounts")

	res, err := s.decodeAll(ctx, accounts)
	if err != nil {
		tracer.OnError(err)
		return nil, err
	}
	res.Slot = slot
	return res, nil
}

// Decode runs already fetched accounts through the registry, with the same
// failure handling as a scan.
func (s *Scanner) Decode(ctx context.Context, accounts ...solana.KeyedAccount) (*ScanResult, error) {
	return s.decodeAll(ctx, accounts)
}

func (s *Scanner) decodeAll(ctx context.Context, accounts []solana.KeyedAccount) (*ScanResult, error) {
	concurrency := int(s.conf.concurrency.Get(ctx))
	if concurrency <= 0 {
		concurrency = 1
	}

	decoded := make([]*Decoded, len(accounts))
	failures := make([]error, len(accounts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i := range accounts {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			account := &accounts[i]
			decoded[i], failures[i] = s.registry.Decode(account.Account.Owner, account.Account.Data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	skipUnknown := s.conf.skipUnknown.Get(ctx)

	res := &ScanResult{}
	for i, account := range accounts {
		if skipUnknown && errors.Is(failures[i], ErrUnknownAccount) {
			continue
		}
		if failures[i] != nil {
			s.log.WithError(failures[i]).WithFields(logrus.Fields{
				"method":  "decodeAll",
				"account": base58.Encode(account.PublicKey),
				"owner":   base58.Encode(account.Account.Owner),
			}).Warn("skipping undecodable account")

			res.Failures = append(res.Failures, &Failure{
				Address: account.PublicKey,
				Info:    account.Account,
				Err:     failures[i],
			})
			continue
		}

		res.Accounts = append(res.Accounts, &Account{
			Address: account.PublicKey,
			Info:    account.Account,
			Decoded: decoded[i],
		})
	}
	return res, nil
}

// waitForRate blocks until the limiter admits a call to method.
func (s *Scanner) waitForRate(ctx context.Context, method string) error {
	_, err := retry.Retry(
		func() error {
			allowed, err := s.limiter.Allow(method)
			if err != nil {
				return errors.Wrap(err, "rate limiter")
			}
			if !allowed {
				return errRateLimited
			}
			return nil
		},
		retry.RetriableErrors(errRateLimited),
		retry.ContextBackoff(ctx, backoff.Constant(s.conf.rateLimitBackoff.Get(ctx)), maxRateLimitBackoff),
	)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
