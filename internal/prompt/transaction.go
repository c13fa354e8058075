package prompt

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-insightui/pkg/caip"
	"github.com/goliatone/go-insightui/pkg/insight"
)

// Chain is a selectable CAIP-2 network.
type Chain struct {
	Name string
	ID   string
}

// KnownChains are offered by AskTransaction before falling back to free input.
var KnownChains = []Chain{
	{Name: "Ethereum Mainnet", ID: "eip155:1"},
	{Name: "OP Mainnet", ID: "eip155:10"},
	{Name: "BNB Smart Chain", ID: "eip155:56"},
	{Name: "Polygon", ID: "eip155:137"},
	{Name: "Base", ID: "eip155:8453"},
	{Name: "Arbitrum One", ID: "eip155:42161"},
	{Name: "Linea", ID: "eip155:59144"},
}

const otherChain = "Other (enter a CAIP-2 id)"

// AskTransaction fills in whichever of tx's fields are empty. Fields that are
// already set are validated but never prompted for.
func AskTransaction(ctx context.Context, driver Driver, tx insight.Transaction) (insight.Transaction, error) {
	if driver == nil {
		return tx, errors.New("prompt: driver is nil")
	}

	var err error
	if tx.To == "" {
		tx.To, err = driver.Input(ctx, InputConfig{
			Message:   "Recipient address",
			Help:      "0x-prefixed hex address or CAIP-10 account id",
			Validator: ValidateAddress,
		})
		if err != nil {
			return tx, err
		}
	} else if err := ValidateAddress(tx.To); err != nil {
		return tx, err
	}

	if tx.Origin == "" {
		tx.Origin, err = driver.Input(ctx, InputConfig{
			Message:   "Dapp origin",
			Default:   "https://metamask.github.io",
			Validator: ValidateOrigin,
		})
		if err != nil {
			return tx, err
		}
	} else if err := ValidateOrigin(tx.Origin); err != nil {
		return tx, err
	}

	if tx.ChainID == "" {
		tx.ChainID, err = askChain(ctx, driver)
		if err != nil {
			return tx, err
		}
	} else if !caip.IsCAIP2(tx.ChainID) {
		return tx, fmt.Errorf("prompt: invalid chain id %q", tx.ChainID)
	}

	return tx, nil
}

func askChain(ctx context.Context, driver Driver) (string, error) {
	options := make([]string, 0, len(KnownChains)+1)
	for _, chain := range KnownChains {
		options = append(options, fmt.Sprintf("%s (%s)", chain.Name, chain.ID))
	}
	options = append(options, otherChain)

	idx, err := driver.Select(ctx, SelectConfig{
		Message: "Chain",
		Options: options,
	})
	if err != nil {
		return "", err
	}
	if idx >= 0 && idx < len(KnownChains) {
		return KnownChains[idx].ID, nil
	}
	if idx != len(KnownChains) {
		return "", fmt.Errorf("prompt: invalid chain selection %d", idx)
	}

	return driver.Input(ctx, InputConfig{
		Message:   "CAIP-2 chain id",
		Help:      "namespace:reference, e.g. eip155:1",
		Validator: ValidateChainID,
	})
}

// ValidateAddress accepts 0x-prefixed hex addresses and CAIP-10 account ids.
func ValidateAddress(value string) error {
	value = strings.TrimSpace(value)
	if caip.IsHexAddress(value) || caip.IsCAIP10(value) {
		return nil
	}
	return fmt.Errorf("prompt: %q is not a hex address or CAIP-10 account id", value)
}

// ValidateOrigin requires an absolute http(s) URL.
func ValidateOrigin(value string) error {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return fmt.Errorf("prompt: %q is not an http(s) origin", value)
	}
	return nil
}

// ValidateChainID requires a CAIP-2 chain id.
func ValidateChainID(value string) error {
	if caip.IsCAIP2(strings.TrimSpace(value)) {
		return nil
	}
	return fmt.Errorf("prompt: %q is not a CAIP-2 chain id", value)
}
