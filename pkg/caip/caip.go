// Package caip validates and builds CAIP-2 chain identifiers and CAIP-10
// account identifiers.
package caip

import (
	"errors"
	"regexp"
	"strings"
)

var (
	hexAddressRE = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	caip2RE      = regexp.MustCompile(`^[^:]+:[^:]+$`)
	caip10RE     = regexp.MustCompile(`^[^:]+:[^:]+:[^:]+$`)
)

// ErrInvalidAccountID is returned by Parse for values that are not CAIP-10.
var ErrInvalidAccountID = errors.New("caip: invalid account id")

// AccountID is a parsed CAIP-10 identifier.
type AccountID struct {
	Namespace string
	Reference string
	Address   string
}

// ChainID returns the CAIP-2 part of the account identifier.
func (a AccountID) ChainID() string {
	return ChainID(a.Namespace, a.Reference)
}

// String renders the identifier in namespace:reference:address form.
func (a AccountID) String() string {
	return a.Namespace + ":" + a.Reference + ":" + a.Address
}

// ChainID joins a namespace and reference into a CAIP-2 identifier.
func ChainID(namespace, reference string) string {
	return namespace + ":" + reference
}

// IsHexAddress reports whether value is a 0x-prefixed 20 byte hex address.
func IsHexAddress(value string) bool {
	return hexAddressRE.MatchString(value)
}

// IsCAIP2 reports whether value has the namespace:reference shape.
func IsCAIP2(value string) bool {
	return caip2RE.MatchString(value)
}

// IsCAIP10 reports whether value has the namespace:reference:address shape.
func IsCAIP10(value string) bool {
	return caip10RE.MatchString(value)
}

// Parse splits a CAIP-10 identifier into its parts.
func Parse(value string) (AccountID, error) {
	if !IsCAIP10(value) {
		return AccountID{}, ErrInvalidAccountID
	}
	parts := strings.SplitN(value, ":", 3)
	return AccountID{Namespace: parts[0], Reference: parts[1], Address: parts[2]}, nil
}

// AddressValue accepts either a hex address or a CAIP-10 identifier and
// returns it unchanged.
func AddressValue(value any) (string, bool) {
	str, _ := value.(string)
	if IsHexAddress(str) || IsCAIP10(str) {
		return str, true
	}
	return "", false
}

// ToCAIP10 returns value when it already is CAIP-10, or combines a hex address
// with a CAIP-2 chain id. Any other combination reports false.
func ToCAIP10(value, chainID any) (string, bool) {
	raw, _ := value.(string)
	if IsCAIP10(raw) {
		return raw, true
	}
	chain, _ := chainID.(string)
	if IsHexAddress(raw) && IsCAIP2(chain) {
		return chain + ":" + raw, true
	}
	return "", false
}
