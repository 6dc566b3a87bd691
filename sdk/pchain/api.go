// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package pchain

import (
	"github.com/ash-center/ash-cli/pkg/models"

	"github.com/ava-labs/avalanchego/ids"
	avajson "github.com/ava-labs/avalanchego/utils/json"
)

// Wire shapes of the platform API. Numbers travel as quoted strings.

type apiSubnet struct {
	ID          ids.ID         `json:"id"`
	ControlKeys []string       `json:"controlKeys"`
	Threshold   avajson.Uint32 `json:"threshold"`
}

type getSubnetsArgs struct {
	IDs []ids.ID `json:"ids"`
}

type getSubnetsReply struct {
	Subnets []apiSubnet `json:"subnets"`
}

type apiBlockchain struct {
	ID       ids.ID `json:"id"`
	Name     string `json:"name"`
	SubnetID ids.ID `json:"subnetID"`
	VMID     ids.ID `json:"vmID"`
}

type getBlockchainsReply struct {
	Blockchains []apiBlockchain `json:"blockchains"`
}

type apiOwner struct {
	Locktime  avajson.Uint64 `json:"locktime"`
	Threshold avajson.Uint32 `json:"threshold"`
	Addresses []string       `json:"addresses"`
}

type apiDelegator struct {
	TxID            ids.ID          `json:"txID"`
	NodeID          ids.NodeID      `json:"nodeID"`
	StartTime       avajson.Uint64  `json:"startTime"`
	EndTime         avajson.Uint64  `json:"endTime"`
	Weight          avajson.Uint64  `json:"weight"`
	StakeAmount     *avajson.Uint64 `json:"stakeAmount,omitempty"`
	PotentialReward *avajson.Uint64 `json:"potentialReward,omitempty"`
	RewardOwner     *apiOwner       `json:"rewardOwner,omitempty"`
}

type apiValidator struct {
	TxID                  ids.ID           `json:"txID"`
	NodeID                ids.NodeID       `json:"nodeID"`
	StartTime             avajson.Uint64   `json:"startTime"`
	EndTime               avajson.Uint64   `json:"endTime"`
	Weight                avajson.Uint64   `json:"weight"`
	StakeAmount           *avajson.Uint64  `json:"stakeAmount,omitempty"`
	PotentialReward       *avajson.Uint64  `json:"potentialReward,omitempty"`
	DelegationFee         *avajson.Float32 `json:"delegationFee,omitempty"`
	Uptime                *avajson.Float32 `json:"uptime,omitempty"`
	Connected             *bool            `json:"connected,omitempty"`
	DelegatorCount        *avajson.Uint64  `json:"delegatorCount,omitempty"`
	DelegatorWeight       *avajson.Uint64  `json:"delegatorWeight,omitempty"`
	ValidationRewardOwner *apiOwner        `json:"validationRewardOwner,omitempty"`
	DelegationRewardOwner *apiOwner        `json:"delegationRewardOwner,omitempty"`
	Delegators            []apiDelegator   `json:"delegators,omitempty"`
}

type getCurrentValidatorsArgs struct {
	SubnetID ids.ID       `json:"subnetID"`
	NodeIDs  []ids.NodeID `json:"nodeIDs"`
}

type getCurrentValidatorsReply struct {
	Validators []apiValidator `json:"validators"`
}

type getHeightReply struct {
	Height avajson.Uint64 `json:"height"`
}

func (s apiSubnet) toModel() *models.Subnet {
	subnetType := models.GeneralSubnet
	if s.ID == ids.Empty {
		subnetType = models.PrimaryNetworkSubnet
	}
	controlKeys := s.ControlKeys
	if controlKeys == nil {
		controlKeys = []string{}
	}
	return &models.Subnet{
		ID:          s.ID,
		Type:        subnetType,
		ControlKeys: controlKeys,
		Threshold:   uint32(s.Threshold),
		Blockchains: []*models.Blockchain{},
		Validators:  []*models.Validator{},
	}
}

func (b apiBlockchain) toModel() *models.Blockchain {
	return &models.Blockchain{
		ID:       b.ID,
		Name:     b.Name,
		SubnetID: b.SubnetID,
		VMID:     b.VMID,
	}
}

func (o *apiOwner) toModel() *models.OutputOwners {
	if o == nil {
		return nil
	}
	return &models.OutputOwners{
		Locktime:  uint64(o.Locktime),
		Threshold: uint32(o.Threshold),
		Addresses: o.Addresses,
	}
}

func (d apiDelegator) toModel() models.Delegator {
	stake := uint64(d.Weight)
	if d.StakeAmount != nil {
		stake = uint64(*d.StakeAmount)
	}
	return models.Delegator{
		TxID:            d.TxID,
		NodeID:          d.NodeID,
		StartTime:       uint64(d.StartTime),
		EndTime:         uint64(d.EndTime),
		StakeAmount:     stake,
		PotentialReward: uint64Ptr(d.PotentialReward),
		RewardOwner:     d.RewardOwner.toModel(),
	}
}

func (v apiValidator) toModel(subnetID ids.ID) *models.Validator {
	validator := &models.Validator{
		TxID:                  v.TxID,
		NodeID:                v.NodeID,
		SubnetID:              subnetID,
		StartTime:             uint64(v.StartTime),
		EndTime:               uint64(v.EndTime),
		Weight:                uint64(v.Weight),
		StakeAmount:           uint64Ptr(v.StakeAmount),
		PotentialReward:       uint64Ptr(v.PotentialReward),
		DelegationFee:         float32Ptr(v.DelegationFee),
		Uptime:                float32Ptr(v.Uptime),
		Connected:             v.Connected,
		DelegatorCount:        uint64Ptr(v.DelegatorCount),
		DelegatorWeight:       uint64Ptr(v.DelegatorWeight),
		ValidationRewardOwner: v.ValidationRewardOwner.toModel(),
		DelegationRewardOwner: v.DelegationRewardOwner.toModel(),
	}
	// older nodes report the stake instead of the weight
	if validator.Weight == 0 && validator.StakeAmount != nil {
		validator.Weight = *validator.StakeAmount
	}
	for _, delegator := range v.Delegators {
		validator.Delegators = append(validator.Delegators, delegator.toModel())
	}
	return validator
}

func uint64Ptr(v *avajson.Uint64) *uint64 {
	if v == nil {
		return nil
	}
	u := uint64(*v)
	return &u
}

func float32Ptr(v *avajson.Float32) *float32 {
	if v == nil {
		return nil
	}
	f := float32(*v)
	return &f
}
