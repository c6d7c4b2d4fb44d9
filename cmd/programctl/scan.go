package main

import (
	"context"
	"crypto/ed25519"
	"strings"
	"time"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/code-payments/solana-program-clients/pkg/metrics"
	"github.com/code-payments/solana-program-clients/pkg/solana"
	"github.com/code-payments/solana-program-clients/pkg/solana/decoder"
	"github.com/code-payments/solana-program-clients/pkg/solana/snapshot"
)

type scanOptions struct {
	kind     string
	owner    string
	parent   string
	keys     []string
	storeDir string
	offline  bool
}

var scanOpts scanOptions

var scanCmd = &cobra.Command{
	Use:   "scan <program>",
	Short: "Fetch and decode a program's accounts",
	Long: `Fetch a program's accounts, either by address with --keys or by account kind,
and decode them. Accounts that cannot be decoded are reported and skipped.

With --store the raw accounts are saved to a snapshot directory, and --offline
decodes a previously saved snapshot without contacting the RPC node.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := lookupProgram(args[0])
		if err != nil {
			return err
		}

		res, err := runScan(commandContext(cmd), p, &scanOpts)
		if err != nil {
			return err
		}

		for _, account := range res.Accounts {
			printf(cmd, "%s %s\n", account.Decoded.Name, base58.Encode(account.Address))
		}
		for _, failure := range res.Failures {
			printf(cmd, "undecodable %s: %v\n", base58.Encode(failure.Address), failure.Err)
		}
		for _, missing := range res.Missing {
			printf(cmd, "missing %s\n", base58.Encode(missing))
		}
		return nil
	},
}

func init() {
	addScanFlags(scanCmd, &scanOpts)
	scanCmd.Flags().BoolVar(&scanOpts.offline, "offline", false, "decode the snapshot in --store instead of fetching")
}

func addScanFlags(cmd *cobra.Command, opts *scanOptions) {
	flags := cmd.Flags()
	flags.StringVar(&opts.kind, "kind", "", "account kind to select with program filters")
	flags.StringVar(&opts.owner, "owner", "", "narrow the kind to accounts of this owner or authority")
	flags.StringVar(&opts.parent, "parent", "", "narrow the kind to a parent account (marginfi group, dlmm pair)")
	flags.StringSliceVar(&opts.keys, "keys", nil, "fetch these addresses instead of querying the program")
	flags.StringVar(&opts.storeDir, "store", "", "snapshot directory")
}

func runScan(ctx context.Context, p *program, opts *scanOptions) (*decoder.ScanResult, error) {
	ctx, txn := metrics.StartTransaction(ctx, "programctl scan "+p.name)
	defer txn.End()

	txn.AddAttribute("kind", opts.kind)
	txn.AddAttribute("offline", opts.offline)

	res, err := scan(ctx, p, opts)
	txn.OnError(err)
	return res, err
}

func scan(ctx context.Context, p *program, opts *scanOptions) (*decoder.ScanResult, error) {
	log := logrus.StandardLogger().WithFields(logrus.Fields{
		"type":    "programctl/scan",
		"program": p.name,
		"kind":    opts.kind,
	})

	var store *snapshot.Store
	if len(opts.storeDir) > 0 {
		var err error
		if store, err = snapshot.Open(opts.storeDir); err != nil {
			return nil, err
		}
		defer store.Close()
	}

	if opts.offline {
		if store == nil {
			return nil, errors.New("--offline requires --store")
		}
		return replaySnapshot(ctx, store, p)
	}

	client, err := newClient()
	if err != nil {
		return nil, err
	}
	commitment, err := commitment()
	if err != nil {
		return nil, err
	}

	scanner := decoder.NewScanner(client, decoder.DefaultRegistry(), decoder.WithEnvConfigs())

	start := time.Now()

	var res *decoder.ScanResult
	if len(opts.keys) > 0 {
		keys := make([]ed25519.PublicKey, 0, len(opts.keys))
		for _, value := range opts.keys {
			key, err := parseKey(value)
			if err != nil {
				return nil, err
			}
			keys = append(keys, key)
		}
		res, err = scanner.ScanKeys(ctx, commitment, keys...)
	} else {
		var filters []solana.Filter
		if filters, err = scanFilters(p, opts); err != nil {
			return nil, err
		}
		res, err = scanner.ScanProgram(ctx, p.id, commitment, filters...)
	}
	if err != nil {
		return nil, err
	}

	metrics.RecordDuration(ctx, "programctl.scan.duration", time.Since(start))
	metrics.RecordCount(ctx, "programctl.scan.decoded", uint64(len(res.Accounts)))
	metrics.RecordCount(ctx, "programctl.scan.failed", uint64(len(res.Failures)))

	log.WithFields(logrus.Fields{
		"decoded": len(res.Accounts),
		"failed":  len(res.Failures),
		"missing": len(res.Missing),
	}).Info("scan complete")

	if store == nil {
		return res, nil
	}

	if err := saveSnapshot(store, res); err != nil {
		return nil, err
	}

	log.WithField("slot", res.Slot).Info("snapshot saved")
	return res, nil
}

func scanFilters(p *program, opts *scanOptions) ([]solana.Filter, error) {
	if len(opts.kind) == 0 {
		return nil, nil
	}

	build, ok := p.scans[opts.kind]
	if !ok {
		return nil, errors.Errorf("unknown %s scan kind %q, expected one of: %s", p.name, opts.kind, strings.Join(p.scanKinds(), ", "))
	}

	owner, err := parseOptionalKey(opts.owner)
	if err != nil {
		return nil, err
	}
	parent, err := parseOptionalKey(opts.parent)
	if err != nil {
		return nil, err
	}
	return build(parent, owner)
}

// saveSnapshot stores every fetched account, including the ones that failed
// to decode, at the slot the scan read them.
func saveSnapshot(store *snapshot.Store, res *decoder.ScanResult) error {
	entries := make([]*snapshot.Entry, 0, len(res.Accounts)+len(res.Failures))
	for _, account := range res.Accounts {
		entries = append(entries, &snapshot.Entry{
			Program: account.Info.Owner,
			Address: account.Address,
			Slot:    res.Slot,
			Account: account.Info,
		})
	}
	for _, failure := range res.Failures {
		entries = append(entries, &snapshot.Entry{
			Program: failure.Info.Owner,
			Address: failure.Address,
			Slot:    res.Slot,
			Account: failure.Info,
		})
	}
	return store.PutAll(entries...)
}

func replaySnapshot(ctx context.Context, store *snapshot.Store, p *program) (*decoder.ScanResult, error) {
	var accounts []solana.KeyedAccount
	var slot uint64
	err := store.Iterate(p.id, func(entry *snapshot.Entry) error {
		if len(accounts) == 0 || entry.Slot < slot {
			slot = entry.Slot
		}
		accounts = append(accounts, entry.KeyedAccount())
		return nil
	})
	if err != nil {
		return nil, err
	}

	scanner := decoder.NewScanner(nil, decoder.DefaultRegistry(), decoder.WithEnvConfigs())
	res, err := scanner.Decode(ctx, accounts...)
	if err != nil {
		return nil, err
	}
	res.Slot = slot
	return res, nil
}
