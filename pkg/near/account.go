package near

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	NetworkTestnet = "testnet"
	NetworkMainnet = "mainnet"
)

// accountRe follows the NEAR account-id grammar: dot-separated parts of
// lowercase alphanumerics joined by single '-' or '_'.
var accountRe = regexp.MustCompile(`^(?:[a-z\d]+[-_])*[a-z\d]+(?:\.(?:[a-z\d]+[-_])*[a-z\d]+)*$`)

// AccountSuffix returns the top-level account suffix for a network.
func AccountSuffix(network string) string {
	if network == NetworkMainnet {
		return ".near"
	}
	return ".testnet"
}

// ValidateNetwork rejects anything but testnet or mainnet.
func ValidateNetwork(network string) error {
	switch network {
	case NetworkTestnet, NetworkMainnet:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownNetwork, network)
	}
}

// ValidAccountID reports whether id is a well-formed account on network.
func ValidAccountID(id, network string) bool {
	if len(id) < 2 || len(id) > 64 {
		return false
	}
	return accountRe.MatchString(id) && strings.HasSuffix(id, AccountSuffix(network))
}
