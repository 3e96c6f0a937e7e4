package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"google.golang.org/grpc"

	"github.com/dmitrijs2005/todokeeper/internal/client/client"
	"github.com/dmitrijs2005/todokeeper/internal/client/config"
	"github.com/dmitrijs2005/todokeeper/internal/cryptox"
	"github.com/dmitrijs2005/todokeeper/internal/identity"
)

// PassphraseEnv names the environment variable consulted before prompting.
const PassphraseEnv = "TODOKEEPER_PASSPHRASE"

// Dialer opens a client for the configured server. key may be nil.
type Dialer func(cfg *config.Config, key *identity.KeyPair) (client.Client, error)

// RootOptions holds global flags and the seams commands reach the outside
// world through.
type RootOptions struct {
	Config     config.Config
	ConfigPath string
	JSON       bool

	// OutputTTY is true when stdout is a terminal; otherwise output is JSON.
	OutputTTY bool

	Dial         Dialer
	Stdin        io.Reader
	StdinFd      int
	IsTerminal   func(fd int) bool
	ReadPassword func(fd int) ([]byte, error)
	Getenv       func(string) string
}

// DefaultOptions wires the real terminal, environment and gRPC transport.
func DefaultOptions() *RootOptions {
	opts := &RootOptions{
		Dial:         DialOptions(),
		Stdin:        os.Stdin,
		StdinFd:      int(os.Stdin.Fd()),
		OutputTTY:    term.IsTerminal(int(os.Stdout.Fd())),
		IsTerminal:   term.IsTerminal,
		ReadPassword: term.ReadPassword,
		Getenv:       os.Getenv,
	}
	opts.Config.LoadDefaults()
	return opts
}

// NewRootCommand creates the todoctl command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(DefaultOptions())
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todoctl",
		Short:         "todoctl manages your todokeeper records",
		Long:          "A client for todokeeper: a per-owner todo store whose records live at addresses derived from your public key.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.applyConfigFile(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.ConfigPath, "config", "", "JSON config file")
	f.StringVarP(&opts.Config.ServerEndpointAddr, "server", "s", opts.Config.ServerEndpointAddr, "server address")
	f.StringVarP(&opts.Config.KeyFile, "key", "k", opts.Config.KeyFile, "owner key file")
	f.DurationVar(&opts.Config.Timeout, "timeout", opts.Config.Timeout, "per-command timeout")
	f.DurationVar(&opts.Config.TokenTTL, "token-ttl", opts.Config.TokenTTL, "lifetime of signed access tokens")
	f.BoolVar(&opts.JSON, "json", false, "print JSON even on a terminal")

	cmd.AddCommand(
		newKeygenCommand(opts),
		newWhoamiCommand(opts),
		newAddrCommand(opts),
		newPingCommand(opts),
		newInitCommand(opts),
		newCounterCommand(opts),
		newAddCommand(opts),
		newDoneCommand(opts),
		newEditCommand(opts),
		newRmCommand(opts),
		newShowCommand(opts),
		newLsCommand(opts),
	)
	return cmd
}

// applyConfigFile loads --config underneath any flags set explicitly.
func (o *RootOptions) applyConfigFile(cmd *cobra.Command) error {
	if o.ConfigPath == "" {
		return nil
	}

	fromFlags := o.Config
	if err := o.Config.LoadFile(o.ConfigPath); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("server") {
		o.Config.ServerEndpointAddr = fromFlags.ServerEndpointAddr
	}
	if flags.Changed("key") {
		o.Config.KeyFile = fromFlags.KeyFile
	}
	if flags.Changed("timeout") {
		o.Config.Timeout = fromFlags.Timeout
	}
	if flags.Changed("token-ttl") {
		o.Config.TokenTTL = fromFlags.TokenTTL
	}
	return nil
}

func (o *RootOptions) jsonOutput() bool {
	return o.JSON || !o.OutputTTY
}

func (o *RootOptions) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if o.Config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.Config.Timeout)
}

// passphrase returns the key file passphrase from the environment or the
// terminal. confirm asks twice.
func (o *RootOptions) passphrase(cmd *cobra.Command, confirm bool) ([]byte, error) {
	if v := o.Getenv(PassphraseEnv); v != "" {
		return []byte(v), nil
	}
	if !o.IsTerminal(o.StdinFd) {
		return nil, fmt.Errorf("%w: set %s", identity.ErrPassphraseRequired, PassphraseEnv)
	}

	w := cmd.ErrOrStderr()
	fmt.Fprint(w, "Passphrase: ")
	p, err := o.ReadPassword(o.StdinFd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	if !confirm {
		return p, nil
	}

	fmt.Fprint(w, "Repeat passphrase: ")
	again, err := o.ReadPassword(o.StdinFd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	defer cryptox.Wipe(again)
	if !bytes.Equal(p, again) {
		cryptox.Wipe(p)
		return nil, fmt.Errorf("passphrases do not match")
	}
	return p, nil
}

func (o *RootOptions) loadKey(cmd *cobra.Command) (*identity.KeyPair, error) {
	sealed, err := identity.KeyFileSealed(o.Config.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("%w (run 'todoctl keygen' first)", err)
	}
	var pass []byte
	if sealed {
		if pass, err = o.passphrase(cmd, false); err != nil {
			return nil, err
		}
		defer cryptox.Wipe(pass)
	}
	return identity.LoadKeyPair(o.Config.KeyFile, pass)
}

// withClient loads the owner key, dials and runs fn under the command
// timeout.
func (o *RootOptions) withClient(cmd *cobra.Command, needKey bool, fn func(ctx context.Context, c client.Client) error) error {
	var key *identity.KeyPair
	if needKey {
		k, err := o.loadKey(cmd)
		if err != nil {
			return err
		}
		key = k
	}

	c, err := o.Dial(&o.Config, key)
	if err != nil {
		return fmt.Errorf("connect %s: %w", o.Config.ServerEndpointAddr, err)
	}
	defer c.Close()

	ctx, cancel := o.context(cmd)
	defer cancel()
	return fn(ctx, c)
}

// DialOptions returns a gRPC Dialer that passes extra dial options, such as
// a custom context dialer.
func DialOptions(opts ...grpc.DialOption) Dialer {
	return func(cfg *config.Config, key *identity.KeyPair) (client.Client, error) {
		return client.NewGRPCClient(cfg.ServerEndpointAddr, key, cfg.TokenTTL, opts...)
	}
}
