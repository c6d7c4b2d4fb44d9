package main

import (
	"crypto/ed25519"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var pdaCmd = &cobra.Command{
	Use:   "pda <program> <kind> [args...]",
	Short: "Derive a program address",
	Long: `Derive a program address and its bump seed.

Run with only a program to list the kinds it supports.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := lookupProgram(args[0])
		if err != nil {
			return err
		}

		if len(args) == 1 {
			for _, kind := range p.pdaKinds() {
				printf(cmd, "%s %s\n", kind, p.pdas[kind].usage)
			}
			return nil
		}

		address, bump, err := derivePda(p, args[1], args[2:])
		if err != nil {
			return err
		}

		printf(cmd, "%s %d\n", base58.Encode(address), bump)
		return nil
	},
}

func derivePda(p *program, kind string, args []string) (ed25519.PublicKey, uint8, error) {
	k, ok := p.pdas[kind]
	if !ok {
		return nil, 0, errors.Errorf("unknown %s address kind %q, expected one of: %s", p.name, kind, strings.Join(p.pdaKinds(), ", "))
	}
	if k.args >= 0 && len(args) != k.args {
		return nil, 0, errors.Errorf("usage: pda %s %s %s", p.name, kind, k.usage)
	}
	return k.derive(args)
}
