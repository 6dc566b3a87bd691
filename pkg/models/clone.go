// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import "slices"

// Clone returns a deep copy of the network tree
func (n *Network) Clone() *Network {
	if n == nil {
		return nil
	}
	clone := *n
	clone.Subnets = cloneEach(n.Subnets, (*Subnet).Clone)
	return &clone
}

func (s *Subnet) Clone() *Subnet {
	if s == nil {
		return nil
	}
	clone := *s
	clone.ControlKeys = slices.Clone(s.ControlKeys)
	clone.Blockchains = cloneEach(s.Blockchains, func(b *Blockchain) *Blockchain {
		c := *b
		return &c
	})
	clone.Validators = cloneEach(s.Validators, (*Validator).Clone)
	return &clone
}

func (v *Validator) Clone() *Validator {
	if v == nil {
		return nil
	}
	clone := *v
	clone.StakeAmount = clonePtr(v.StakeAmount)
	clone.PotentialReward = clonePtr(v.PotentialReward)
	clone.DelegationFee = clonePtr(v.DelegationFee)
	clone.Uptime = clonePtr(v.Uptime)
	clone.Connected = clonePtr(v.Connected)
	clone.DelegatorCount = clonePtr(v.DelegatorCount)
	clone.DelegatorWeight = clonePtr(v.DelegatorWeight)
	clone.ValidationRewardOwner = v.ValidationRewardOwner.Clone()
	clone.DelegationRewardOwner = v.DelegationRewardOwner.Clone()
	if v.Delegators != nil {
		clone.Delegators = make([]Delegator, len(v.Delegators))
		for i, d := range v.Delegators {
			d.PotentialReward = clonePtr(d.PotentialReward)
			d.RewardOwner = d.RewardOwner.Clone()
			clone.Delegators[i] = d
		}
	}
	return &clone
}

func (o *OutputOwners) Clone() *OutputOwners {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Addresses = slices.Clone(o.Addresses)
	return &clone
}

func cloneEach[T any](s []*T, clone func(*T) *T) []*T {
	if s == nil {
		return nil
	}
	out := make([]*T, len(s))
	for i, e := range s {
		out[i] = clone(e)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
