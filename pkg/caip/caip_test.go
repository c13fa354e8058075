package caip

import (
	"strings"
	"testing"
)

func hex40(ch string) string {
	return "0x" + strings.Repeat(ch, 40)
}

func TestAddressValue(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  string
		ok    bool
	}{
		{name: "hex", value: hex40("a"), want: hex40("a"), ok: true},
		{name: "mixed case hex", value: "0x" + strings.Repeat("aB", 20), want: "0x" + strings.Repeat("aB", 20), ok: true},
		{name: "caip10", value: "eip155:1:" + hex40("b"), want: "eip155:1:" + hex40("b"), ok: true},
		{name: "too short", value: "0x123", ok: false},
		{name: "missing prefix", value: strings.Repeat("a", 40), ok: false},
		{name: "caip2 only", value: "eip155:1", ok: false},
		{name: "four parts", value: "a:b:c:d", ok: false},
		{name: "not a string", value: 42, ok: false},
		{name: "nil", value: nil, ok: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, ok := AddressValue(tc.value)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("AddressValue(%v) = %q, %v; want %q, %v", tc.value, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestToCAIP10(t *testing.T) {
	cases := []struct {
		name    string
		value   any
		chainID any
		want    string
		ok      bool
	}{
		{name: "hex plus chain", value: hex40("2"), chainID: "eip155:1", want: "eip155:1:" + hex40("2"), ok: true},
		{name: "already caip10", value: "eip155:137:" + hex40("3"), want: "eip155:137:" + hex40("3"), ok: true},
		{name: "caip10 ignores chain", value: "eip155:137:" + hex40("3"), chainID: "eip155:1", want: "eip155:137:" + hex40("3"), ok: true},
		{name: "hex without chain", value: hex40("1"), ok: false},
		{name: "hex with bad chain", value: hex40("1"), chainID: "eip155", ok: false},
		{name: "hex with numeric chain", value: hex40("1"), chainID: 1, ok: false},
		{name: "short hex", value: "0x12", chainID: "eip155:1", ok: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ToCAIP10(tc.value, tc.chainID)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ToCAIP10(%v, %v) = %q, %v; want %q, %v", tc.value, tc.chainID, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestParse(t *testing.T) {
	id, err := Parse("eip155:1:" + hex40("c"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id.Namespace != "eip155" || id.Reference != "1" || id.Address != hex40("c") {
		t.Fatalf("unexpected parts: %+v", id)
	}
	if id.ChainID() != "eip155:1" {
		t.Fatalf("chain id: got %q", id.ChainID())
	}
	if id.String() != "eip155:1:"+hex40("c") {
		t.Fatalf("round trip: got %q", id.String())
	}

	if _, err := Parse(hex40("c")); err != ErrInvalidAccountID {
		t.Fatalf("expected ErrInvalidAccountID, got %v", err)
	}
}
