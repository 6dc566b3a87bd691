// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"github.com/ash-center/ash-cli/pkg/vm"
	"github.com/ash-center/ash-cli/sdk/constants"

	"github.com/ava-labs/avalanchego/ids"
)

type Blockchain struct {
	ID       ids.ID  `json:"id"`
	Name     string  `json:"name"`
	SubnetID ids.ID  `json:"subnetID"`
	VMID     ids.ID  `json:"vmID"`
	VMType   vm.Type `json:"vmType"`
	RPCURL   string  `json:"rpcUrl"`
}

// BlockchainRPCURL is where a node at [baseURL] serves the API of blockchain [id]
func BlockchainRPCURL(baseURL string, id ids.ID, vmType vm.Type) string {
	return baseURL + constants.BlockchainAPIPrefix + id.String() + vmType.EndpointSuffix()
}
