package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire keys that must be present and non-null when decoding a payload.
var (
	profileRequired = []string{"name", "experience", "currency", "timezone"}
	accountRequired = []string{"name", "type", "initialBalance", "currentBalance", "broker", "leverage"}
	tradeRequired   = []string{
		"accountId", "symbol", "type", "entryPrice", "takeProfit", "stopLoss",
		"lotSize", "volume", "profit", "commission", "date",
	}
)

// requireFields fails when data is not a JSON object or lacks one of names.
// An explicit null counts as missing.
func requireFields(data []byte, names []string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, name := range names {
		v, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return fmt.Errorf("missing field %s", name)
		}
	}
	return nil
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	type profile Profile
	if err := requireFields(data, profileRequired); err != nil {
		return err
	}
	return json.Unmarshal(data, (*profile)(p))
}

func (a *Account) UnmarshalJSON(data []byte) error {
	type account Account
	if err := requireFields(data, accountRequired); err != nil {
		return err
	}
	return json.Unmarshal(data, (*account)(a))
}

func (t *Trade) UnmarshalJSON(data []byte) error {
	type trade Trade
	if err := requireFields(data, tradeRequired); err != nil {
		return err
	}
	return json.Unmarshal(data, (*trade)(t))
}
