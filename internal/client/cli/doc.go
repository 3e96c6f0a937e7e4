// Package cli implements todoctl, the command-line client for todokeeper.
//
// Every command that touches the server signs its own access token with
// the owner key from --key, so the CLI keeps no session state. Key files
// may be sealed with a passphrase; it is read from TODOKEEPER_PASSPHRASE
// or prompted for on the terminal.
package cli
