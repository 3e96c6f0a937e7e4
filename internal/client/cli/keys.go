package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/todokeeper/internal/address"
	"github.com/dmitrijs2005/todokeeper/internal/cryptox"
	"github.com/dmitrijs2005/todokeeper/internal/identity"
)

func newKeygenCommand(opts *RootOptions) *cobra.Command {
	var seal bool

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new owner key pair",
		Long: `Generate a new owner key pair and write it to --key.

The file is never overwritten. With --seal the private key is encrypted
under a passphrase.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pass []byte
			if seal {
				p, err := opts.passphrase(cmd, true)
				if err != nil {
					return err
				}
				if len(p) == 0 {
					return fmt.Errorf("empty passphrase")
				}
				pass = p
				defer cryptox.Wipe(pass)
			}

			kp, err := identity.GenerateKeyPair()
			if err != nil {
				return err
			}
			if err := identity.SaveKeyPair(opts.Config.KeyFile, kp, pass); err != nil {
				return err
			}

			if opts.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"owner":    kp.Public,
					"key_file": opts.Config.KeyFile,
					"sealed":   seal,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "owner %s\nsaved to %s\n", kp.Public, opts.Config.KeyFile)
			return nil
		},
	}

	cmd.Flags().BoolVar(&seal, "seal", false, "protect the private key with a passphrase")
	return cmd
}

func newWhoamiCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the owner of the current key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := identity.LoadOwner(opts.Config.KeyFile)
			if err != nil {
				return err
			}
			if opts.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"owner": owner})
			}
			fmt.Fprintln(cmd.OutOrStdout(), owner)
			return nil
		},
	}
}

func newAddrCommand(opts *RootOptions) *cobra.Command {
	var ownerHex string

	cmd := &cobra.Command{
		Use:   "addr [seq]",
		Short: "Derive counter or record addresses locally",
		Long: `Derive an address without contacting the server.

With no argument it prints the owner's counter address; with a sequence
number it prints that record's address. --owner selects another owner.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				owner identity.Owner
				err   error
			)
			if ownerHex != "" {
				owner, err = identity.ParseOwner(ownerHex)
			} else {
				owner, err = identity.LoadOwner(opts.Config.KeyFile)
			}
			if err != nil {
				return err
			}

			d, err := address.NewDeriver(1)
			if err != nil {
				return err
			}

			kind := "counter"
			var derived address.Derived
			if len(args) == 0 {
				derived, err = d.Counter(owner)
			} else {
				seq, perr := parseSeq(args[0])
				if perr != nil {
					return perr
				}
				kind = "record " + strconv.FormatUint(seq, 10)
				derived, err = d.Record(owner, seq)
			}
			if err != nil {
				return err
			}

			if opts.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"owner":   owner,
					"kind":    kind,
					"address": derived.Address,
					"bump":    derived.Bump,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (bump %d)\n", kind, derived.Address, derived.Bump)
			return nil
		},
	}

	cmd.Flags().StringVar(&ownerHex, "owner", "", "owner public key in hex")
	return cmd
}

func parseSeq(s string) (uint64, error) {
	seq, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid sequence number %q", s)
	}
	return seq, nil
}
