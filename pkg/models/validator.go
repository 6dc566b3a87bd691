// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"time"

	"github.com/ava-labs/avalanchego/ids"
)

// OutputOwners is who can spend a reward output, and from when
type OutputOwners struct {
	Locktime  uint64   `json:"locktime"`
	Threshold uint32   `json:"threshold"`
	Addresses []string `json:"addresses"`
}

type Delegator struct {
	TxID            ids.ID        `json:"txID"`
	NodeID          ids.NodeID    `json:"nodeID"`
	StartTime       uint64        `json:"startTime"`
	EndTime         uint64        `json:"endTime"`
	StakeAmount     uint64        `json:"stakeAmount"`
	PotentialReward *uint64       `json:"potentialReward,omitempty"`
	RewardOwner     *OutputOwners `json:"rewardOwner,omitempty"`
}

// Validator is a node currently validating a Subnet.
// Pointer fields are only reported for Primary Network validators.
type Validator struct {
	TxID                  ids.ID        `json:"txID"`
	NodeID                ids.NodeID    `json:"nodeID"`
	SubnetID              ids.ID        `json:"subnetID"`
	StartTime             uint64        `json:"startTime"`
	EndTime               uint64        `json:"endTime"`
	Weight                uint64        `json:"weight"`
	StakeAmount           *uint64       `json:"stakeAmount,omitempty"`
	PotentialReward       *uint64       `json:"potentialReward,omitempty"`
	DelegationFee         *float32      `json:"delegationFee,omitempty"`
	Uptime                *float32      `json:"uptime,omitempty"`
	Connected             *bool         `json:"connected,omitempty"`
	DelegatorCount        *uint64       `json:"delegatorCount,omitempty"`
	DelegatorWeight       *uint64       `json:"delegatorWeight,omitempty"`
	ValidationRewardOwner *OutputOwners `json:"validationRewardOwner,omitempty"`
	DelegationRewardOwner *OutputOwners `json:"delegationRewardOwner,omitempty"`
	Delegators            []Delegator   `json:"delegators,omitempty"`
}

func (v *Validator) Start() time.Time {
	return time.Unix(int64(v.StartTime), 0).UTC()
}

func (v *Validator) End() time.Time {
	return time.Unix(int64(v.EndTime), 0).UTC()
}
