// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package vm

import (
	"fmt"
	"strings"

	"github.com/ash-center/ash-cli/sdk/constants"
	"github.com/ava-labs/avalanchego/ids"
	avagoconstants "github.com/ava-labs/avalanchego/utils/constants"
)

type Kind int64

const (
	Unresolved Kind = iota
	PlatformVM
	AvalancheVM
	Coreth
	SubnetEVM
	EVM
	Custom
)

const (
	PlatformVMName  = "PlatformVM"
	AvalancheVMName = "AvalancheVM"
	CorethName      = "Coreth"
	SubnetEVMName   = "SubnetEVM"
	EVMName         = "EVM"
	CustomName      = "Custom"
)

// Aliases registered by avalanchego for the VMs it ships with
const (
	PlatformAlias  = "platform"
	AVMAlias       = "avm"
	EVMAlias       = "evm"
	SubnetEVMAlias = "subnetevm"
)

// SubnetEVMID is the VM ID subnet-evm registers under
var SubnetEVMID = ids.ID{'s', 'u', 'b', 'n', 'e', 't', 'e', 'v', 'm'}

// Type is the virtual machine a blockchain runs.
// Custom types carry the name they were found under.
type Type struct {
	Kind Kind
	Name string
}

func NewCustom(name string) Type {
	return Type{Kind: Custom, Name: name}
}

// Parse maps a configured VM type to a Type. Unknown names are kept as Custom,
// the empty string is Unresolved.
func Parse(s string) Type {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Type{}
	case strings.EqualFold(s, PlatformVMName):
		return Type{Kind: PlatformVM}
	case strings.EqualFold(s, AvalancheVMName), strings.EqualFold(s, "AVM"):
		return Type{Kind: AvalancheVM}
	case strings.EqualFold(s, CorethName):
		return Type{Kind: Coreth}
	case strings.EqualFold(s, SubnetEVMName):
		return Type{Kind: SubnetEVM}
	case strings.EqualFold(s, EVMName):
		return Type{Kind: EVM}
	}
	return NewCustom(s)
}

func (t Type) String() string {
	switch t.Kind {
	case PlatformVM:
		return PlatformVMName
	case AvalancheVM:
		return AvalancheVMName
	case Coreth:
		return CorethName
	case SubnetEVM:
		return SubnetEVMName
	case EVM:
		return EVMName
	case Custom:
		if t.Name == "" {
			return CustomName
		}
		return t.Name
	}
	return ""
}

func (t Type) IsResolved() bool {
	return t.Kind != Unresolved
}

// IsEVM tells whether the chain speaks the Ethereum JSON-RPC API
func (t Type) IsEVM() bool {
	switch t.Kind {
	case Coreth, SubnetEVM, EVM:
		return true
	}
	return false
}

// EndpointSuffix is appended to /ext/bc/{blockchainID} to reach the chain API
func (t Type) EndpointSuffix() string {
	if t.IsEVM() {
		return constants.EVMRPCEndpointSuffix
	}
	return ""
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	*t = Parse(string(text))
	return nil
}

// FromID resolves the VMs avalanchego ships with from their well known IDs
func FromID(vmID ids.ID) (Type, bool) {
	switch vmID {
	case avagoconstants.PlatformVMID:
		return Type{Kind: PlatformVM}, true
	case avagoconstants.AVMID:
		return Type{Kind: AvalancheVM}, true
	case avagoconstants.EVMID:
		return Type{Kind: Coreth}, true
	case SubnetEVMID:
		return Type{Kind: SubnetEVM}, true
	}
	return Type{}, false
}

// FromAliases resolves a VM from the aliases a node registered it under.
// Without aliases the VM ID itself names the custom type.
func FromAliases(vmID ids.ID, aliases []string) Type {
	for _, alias := range aliases {
		switch strings.ToLower(alias) {
		case PlatformAlias:
			return Type{Kind: PlatformVM}
		case AVMAlias:
			return Type{Kind: AvalancheVM}
		case EVMAlias:
			return Type{Kind: Coreth}
		case SubnetEVMAlias:
			return Type{Kind: SubnetEVM}
		}
	}
	for _, alias := range aliases {
		if strings.Contains(strings.ToLower(alias), EVMAlias) {
			return Type{Kind: EVM}
		}
	}
	if len(aliases) > 0 {
		return NewCustom(aliases[0])
	}
	return NewCustom(vmID.String())
}

// VMID derives the ID avalanchego assigns to a VM registered under [vmName]
func VMID(vmName string) (ids.ID, error) {
	if len(vmName) > ids.IDLen {
		return ids.Empty, fmt.Errorf("VM name must be <= %d bytes, found %d", ids.IDLen, len(vmName))
	}
	b := make([]byte, ids.IDLen)
	copy(b, []byte(vmName))
	return ids.ToID(b)
}
