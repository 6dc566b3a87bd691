// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package node

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/sdk/jsonrpc"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/staking"
	"github.com/spf13/afero"
)

// ServerErrorCode is returned by avalanchego for API level failures
const ServerErrorCode = -32000

const notValidatorMessage = "node is not a validator"

var errNoCertificate = errors.New("no PEM certificate found")

type InfoClient interface {
	GetNodeID(ctx context.Context) (ids.NodeID, error)
	GetNodeIP(ctx context.Context) (netip.AddrPort, error)
	GetNodeVersion(ctx context.Context) (models.NodeVersions, error)
	GetNetworkName(ctx context.Context) (string, error)
	Uptime(ctx context.Context) (models.NodeUptime, error)
	IsBootstrapped(ctx context.Context, chain string) (bool, error)
}

// UpdateInfo fills [node] from its info API. Uptime is left empty when the
// node does not validate the Primary Network.
func UpdateInfo(ctx context.Context, node *models.Node, client InfoClient) error {
	endpoint := node.HTTPEndpoint()
	nodeID, err := client.GetNodeID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get ID of node %s: %w", endpoint, err)
	}
	nodeIP, err := client.GetNodeIP(ctx)
	if err != nil {
		return fmt.Errorf("failed to get IP of node %s: %w", endpoint, err)
	}
	versions, err := client.GetNodeVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get version of node %s: %w", endpoint, err)
	}
	networkName, err := client.GetNetworkName(ctx)
	if err != nil {
		return fmt.Errorf("failed to get network of node %s: %w", endpoint, err)
	}
	uptime, err := client.Uptime(ctx)
	switch {
	case IsNotValidatorError(err):
		uptime = models.NodeUptime{}
	case err != nil:
		return fmt.Errorf("failed to get uptime of node %s: %w", endpoint, err)
	}

	node.ID = nodeID
	node.PublicIP = nodeIP.Addr()
	node.StakingPort = nodeIP.Port()
	node.Versions = versions
	node.Network = networkName
	node.Uptime = uptime
	return nil
}

func IsNotValidatorError(err error) bool {
	var rpcErr *jsonrpc.RPCError
	return errors.As(err, &rpcErr) &&
		rpcErr.Code == ServerErrorCode &&
		strings.Contains(rpcErr.Message, notValidatorMessage)
}

// CheckChainBootstrapping reports whether [chain] (ID or alias) is done bootstrapping on the node
func CheckChainBootstrapping(ctx context.Context, node *models.Node, client InfoClient, chain string) (bool, error) {
	bootstrapped, err := client.IsBootstrapped(ctx, chain)
	if err != nil {
		return false, fmt.Errorf("failed to get %s chain bootstrapping of node %s: %w", chain, node.HTTPEndpoint(), err)
	}
	return bootstrapped, nil
}

// NodeIDFromCert computes the node ID of the first certificate of a PEM bundle
func NodeIDFromCert(pemBytes []byte) (ids.NodeID, error) {
	for {
		var block *pem.Block
		block, pemBytes = pem.Decode(pemBytes)
		if block == nil {
			return ids.EmptyNodeID, errNoCertificate
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return ids.EmptyNodeID, fmt.Errorf("invalid staking certificate: %w", err)
		}
		return ids.NodeIDFromCert(&staking.Certificate{Raw: cert.Raw, PublicKey: cert.PublicKey}), nil
	}
}

func NodeIDFromCertFile(fs afero.Fs, path string) (ids.NodeID, error) {
	pemBytes, err := afero.ReadFile(fs, path)
	if err != nil {
		return ids.EmptyNodeID, err
	}
	nodeID, err := NodeIDFromCert(pemBytes)
	if err != nil {
		return ids.EmptyNodeID, fmt.Errorf("%s: %w", path, err)
	}
	return nodeID, nil
}
