package main

import (
	"crypto/ed25519"
	"encoding/base64"
	"io"
	"os"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/code-payments/solana-program-clients/pkg/solana/decoder"
)

var (
	decodeFileOwner string

	decodeCmd = &cobra.Command{
		Use:   "decode <address>",
		Short: "Fetch and decode a program account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := parseKey(args[0])
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			commitment, err := commitment()
			if err != nil {
				return err
			}

			info, err := client.GetAccountInfo(address, commitment)
			if err != nil {
				return errors.Wrapf(err, "get account %s", args[0])
			}

			return printDecoded(cmd, decoder.DefaultRegistry(), address, info.Owner, info.Data)
		},
	}

	decodeFileCmd = &cobra.Command{
		Use:   "decode-file <path|->",
		Short: "Decode base64 account data read from a file or stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := lookupProgram(decodeFileOwner)
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			encoded, err := io.ReadAll(r)
			if err != nil {
				return err
			}
			data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(encoded)))
			if err != nil {
				return errors.Wrap(err, "invalid base64 account data")
			}

			return printDecoded(cmd, decoder.DefaultRegistry(), nil, owner.id, data)
		},
	}
)

func init() {
	decodeFileCmd.Flags().StringVar(&decodeFileOwner, "owner", "", "owning program name or id")
	_ = decodeFileCmd.MarkFlagRequired("owner")
}

func printDecoded(cmd *cobra.Command, registry *decoder.Registry, address, owner ed25519.PublicKey, data []byte) error {
	decoded, err := registry.Decode(owner, data)
	if err != nil {
		return err
	}

	if len(address) > 0 {
		printf(cmd, "%s %s\n", decoded.Name, base58.Encode(address))
	} else {
		printf(cmd, "%s\n", decoded.Name)
	}
	printf(cmd, "%v\n", decoded.Value)
	return nil
}
