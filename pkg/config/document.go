// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/ash-center/ash-cli/pkg/console"
	"github.com/ash-center/ash-cli/pkg/models"
	"github.com/ash-center/ash-cli/pkg/vm"

	"github.com/ava-labs/avalanchego/ids"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// Document is the YAML layout of a configuration file.
// IDs are kept as CB58 strings and checked when the document is converted.
type Document struct {
	AvalancheNetworks []NetworkDocument `yaml:"avalancheNetworks"`
	AshConsole        *console.Config   `yaml:"ashConsole,omitempty"`
}

type NetworkDocument struct {
	Name    string           `yaml:"name"`
	Subnets []SubnetDocument `yaml:"subnets"`
}

type SubnetDocument struct {
	ID          string               `yaml:"id"`
	SubnetType  string               `yaml:"subnetType,omitempty"`
	ControlKeys []string             `yaml:"controlKeys"`
	Threshold   uint32               `yaml:"threshold"`
	Blockchains []BlockchainDocument `yaml:"blockchains"`
}

type BlockchainDocument struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	VMID   string `yaml:"vmID,omitempty"`
	VMType string `yaml:"vmType,omitempty"`
	RPCURL string `yaml:"rpcUrl,omitempty"`
}

// ParseDocument decodes a YAML document. An empty document has no networks.
func ParseDocument(data []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return doc, nil
}

func (d *Document) Marshal() ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Networks converts and checks every network of the document
func (d *Document) Networks() ([]*models.Network, error) {
	networks := make([]*models.Network, 0, len(d.AvalancheNetworks))
	seen := map[string]bool{}
	for _, networkDoc := range d.AvalancheNetworks {
		if networkDoc.Name == "" {
			return nil, errors.New("network without name")
		}
		if seen[networkDoc.Name] {
			return nil, fmt.Errorf("duplicate network %s", networkDoc.Name)
		}
		seen[networkDoc.Name] = true
		network, err := networkDoc.toModel()
		if err != nil {
			return nil, fmt.Errorf("network %s: %w", networkDoc.Name, err)
		}
		networks = append(networks, network)
	}
	return networks, nil
}

func (n NetworkDocument) toModel() (*models.Network, error) {
	network := &models.Network{
		Name:             n.Name,
		PrimaryNetworkID: ids.Empty,
		Subnets:          make([]*models.Subnet, 0, len(n.Subnets)),
	}
	for i, subnetDoc := range n.Subnets {
		subnet, err := subnetDoc.toModel()
		if err != nil {
			return nil, fmt.Errorf("subnet #%d: %w", i, err)
		}
		if _, err := network.GetSubnet(subnet.ID); err == nil {
			return nil, fmt.Errorf("duplicate subnet ID %s", subnet.ID)
		}
		network.Subnets = append(network.Subnets, subnet)
	}
	if _, err := network.PrimaryNetwork(); err != nil {
		return nil, fmt.Errorf("missing Primary Network subnet %s", network.PrimaryNetworkID)
	}
	// A network without P-Chain entry loads but cannot be refreshed
	if pChain, err := network.PChain(); err == nil && pChain.RPCURL == "" {
		return nil, errors.New("P-Chain has no rpcUrl")
	}
	return network, nil
}

func (s SubnetDocument) toModel() (*models.Subnet, error) {
	if s.ID == "" {
		return nil, errors.New("missing subnet id")
	}
	subnetID, err := ids.FromString(s.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid subnet id %q: %w", s.ID, err)
	}
	subnetType, err := parseSubnetType(s.SubnetType, subnetID)
	if err != nil {
		return nil, fmt.Errorf("subnet %s: %w", s.ID, err)
	}
	controlKeys := s.ControlKeys
	if controlKeys == nil {
		controlKeys = []string{}
	}
	subnet := &models.Subnet{
		ID:          subnetID,
		Type:        subnetType,
		ControlKeys: controlKeys,
		Threshold:   s.Threshold,
		Blockchains: make([]*models.Blockchain, 0, len(s.Blockchains)),
		Validators:  []*models.Validator{},
	}
	for i, chainDoc := range s.Blockchains {
		chain, err := chainDoc.toModel(subnetID)
		if err != nil {
			return nil, fmt.Errorf("subnet %s: blockchain #%d: %w", s.ID, i, err)
		}
		if _, err := subnet.GetBlockchain(chain.ID); err == nil {
			return nil, fmt.Errorf("subnet %s: duplicate blockchain ID %s", s.ID, chain.ID)
		}
		subnet.Blockchains = append(subnet.Blockchains, chain)
	}
	return subnet, nil
}

func parseSubnetType(s string, subnetID ids.ID) (models.SubnetType, error) {
	switch s {
	case "":
		if subnetID == ids.Empty {
			return models.PrimaryNetworkSubnet, nil
		}
		return models.GeneralSubnet, nil
	case string(models.PrimaryNetworkSubnet), string(models.GeneralSubnet):
		return models.SubnetType(s), nil
	}
	return "", fmt.Errorf("invalid subnetType %q", s)
}

func (b BlockchainDocument) toModel(subnetID ids.ID) (*models.Blockchain, error) {
	if b.ID == "" {
		return nil, errors.New("missing blockchain id")
	}
	chainID, err := ids.FromString(b.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid blockchain id %q: %w", b.ID, err)
	}
	vmID := ids.Empty
	if b.VMID != "" {
		vmID, err = ids.FromString(b.VMID)
		if err != nil {
			return nil, fmt.Errorf("invalid vmID %q: %w", b.VMID, err)
		}
	}
	if b.RPCURL != "" {
		u, err := url.Parse(b.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("invalid rpcUrl %q: %w", b.RPCURL, err)
		}
		if !u.IsAbs() {
			return nil, fmt.Errorf("invalid rpcUrl %q: URL must be absolute", b.RPCURL)
		}
	}
	return &models.Blockchain{
		ID:       chainID,
		Name:     b.Name,
		SubnetID: subnetID,
		VMID:     vmID,
		VMType:   vm.Parse(b.VMType),
		RPCURL:   b.RPCURL,
	}, nil
}

// DocumentFromRegistry is the inverse of loading: validators are not part of it
func DocumentFromRegistry(registry *models.Registry) *Document {
	doc := &Document{
		AvalancheNetworks: make([]NetworkDocument, 0, len(registry.Networks)),
		AshConsole:        registry.Console,
	}
	for _, network := range registry.Networks {
		networkDoc := NetworkDocument{
			Name:    network.Name,
			Subnets: make([]SubnetDocument, 0, len(network.Subnets)),
		}
		for _, subnet := range network.Subnets {
			subnetDoc := SubnetDocument{
				ID:          subnet.ID.String(),
				SubnetType:  string(subnet.Type),
				ControlKeys: subnet.ControlKeys,
				Threshold:   subnet.Threshold,
				Blockchains: make([]BlockchainDocument, 0, len(subnet.Blockchains)),
			}
			if subnetDoc.ControlKeys == nil {
				subnetDoc.ControlKeys = []string{}
			}
			for _, chain := range subnet.Blockchains {
				chainDoc := BlockchainDocument{
					ID:     chain.ID.String(),
					Name:   chain.Name,
					VMType: chain.VMType.String(),
					RPCURL: chain.RPCURL,
				}
				if chain.VMID != ids.Empty {
					chainDoc.VMID = chain.VMID.String()
				}
				subnetDoc.Blockchains = append(subnetDoc.Blockchains, chainDoc)
			}
			networkDoc.Subnets = append(networkDoc.Subnets, subnetDoc)
		}
		doc.AvalancheNetworks = append(doc.AvalancheNetworks, networkDoc)
	}
	return doc
}
