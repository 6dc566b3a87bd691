// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/units"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/require"
)

func TestFormatAVAX(t *testing.T) {
	tests := []struct {
		nAVAX    uint64
		expected string
	}{
		{0, "0 AVAX"},
		{units.Avax, "1 AVAX"},
		{2000*units.Avax + units.Avax/2, "2,000.5 AVAX"},
		{1, "0.000000001 AVAX"},
		{1_234_567 * units.MilliAvax, "1,234.567 AVAX"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, FormatAVAX(tt.nAVAX))
	}
}

func TestConvertToStringWithThousandSeparator(t *testing.T) {
	require.Equal(t, "1_000_000", ConvertToStringWithThousandSeparator(1_000_000))
	require.Equal(t, "999", ConvertToStringWithThousandSeparator(999))
}

func TestUserLog(t *testing.T) {
	require := require.New(t)
	out := &bytes.Buffer{}
	ul := NewUserLog(logging.NoLog{}, out)
	require.Same(ul, Logger)

	ul.PrintToUser("network %s", "fuji")
	require.NoError(ul.PrintJSON(map[string]int{"subnets": 2}))
	require.Equal("network fuji\n{\n  \"subnets\": 2\n}\n", out.String())

	out.Reset()
	tbl := DefaultTable("subnets", table.Row{"ID", "Type"})
	tbl.AppendRow(table.Row{"11111111111111111111111111111111LpoYY", "PrimaryNetwork"})
	ul.PrintTable(tbl)
	require.Contains(out.String(), "SUBNETS")
	require.Contains(out.String(), "PrimaryNetwork")
}

func TestSpinWithoutWriter(t *testing.T) {
	require := require.New(t)
	ul := NewUserLog(logging.NoLog{}, &bytes.Buffer{})
	require.Nil(ul.NewUserSpinner())

	calls := 0
	require.NoError(ul.Spin("refreshing", func() error {
		calls++
		return nil
	}))
	errBoom := errors.New("boom")
	require.ErrorIs(ul.Spin("refreshing", func() error {
		calls++
		return errBoom
	}), errBoom)
	require.Equal(2, calls)
}
