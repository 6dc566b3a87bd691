// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"github.com/ava-labs/avalanchego/ids"
)

type SubnetType string

const (
	PrimaryNetworkSubnet SubnetType = "PrimaryNetwork"
	GeneralSubnet        SubnetType = "Subnet"
)

type Subnet struct {
	ID          ids.ID        `json:"id"`
	Type        SubnetType    `json:"subnetType"`
	ControlKeys []string      `json:"controlKeys"`
	Threshold   uint32        `json:"threshold"`
	Blockchains []*Blockchain `json:"blockchains"`
	Validators  []*Validator  `json:"validators"`
}

func (s *Subnet) IsPrimaryNetwork() bool {
	return s.Type == PrimaryNetworkSubnet
}

func (s *Subnet) GetBlockchain(id ids.ID) (*Blockchain, error) {
	if chain := s.findBlockchain(id); chain != nil {
		return chain, nil
	}
	return nil, &NotFoundError{Kind: BlockchainKind, Key: id.String(), Parent: s.ID.String()}
}

func (s *Subnet) GetBlockchainByName(name string) (*Blockchain, error) {
	for _, chain := range s.Blockchains {
		if chain.Name == name {
			return chain, nil
		}
	}
	return nil, &NotFoundError{Kind: BlockchainKind, Key: name, Parent: s.ID.String()}
}

func (s *Subnet) GetValidator(nodeID ids.NodeID) (*Validator, error) {
	if validator := s.findValidator(nodeID); validator != nil {
		return validator, nil
	}
	return nil, &NotFoundError{Kind: ValidatorKind, Key: nodeID.String(), Parent: s.ID.String()}
}

func (s *Subnet) findBlockchain(id ids.ID) *Blockchain {
	for _, chain := range s.Blockchains {
		if chain.ID == id {
			return chain
		}
	}
	return nil
}

func (s *Subnet) findValidator(nodeID ids.NodeID) *Validator {
	for _, validator := range s.Validators {
		if validator.NodeID == nodeID {
			return validator
		}
	}
	return nil
}
