// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package vmcmd

import (
	"github.com/ash-center/ash-cli/pkg/cobrautils"
	"github.com/ash-center/ash-cli/pkg/ux"
	"github.com/ash-center/ash-cli/pkg/vm"

	"github.com/spf13/cobra"
)

// ash avalanche vm id
func newIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "id [vmName]",
		Short: "Compute the VM ID of a VM name",
		Long:  `The vm id command prints the VM ID derived from a VM name of at most 32 bytes.`,
		RunE:  vmID,
		Args:  cobrautils.ExactArgs(1),
	}
}

func vmID(_ *cobra.Command, args []string) error {
	id, err := vm.VMID(args[0])
	if err != nil {
		return err
	}
	if app.JSONOutput() {
		return ux.Logger.PrintJSON(map[string]string{"name": args[0], "vmID": id.String()})
	}
	ux.Logger.PrintToUser("%s", id)
	return nil
}
