// Package client talks to a todokeeper server over gRPC.
//
// GRPCClient signs a fresh access token with the owner's private key for
// every call, so there is no login step and nothing to refresh. Status
// errors from the server are mapped back to the todo and common sentinel
// errors, so callers match them with errors.Is.
package client
