// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "time"

const (
	DefaultPerms755 = 0o755

	BaseDirName           = ".ash"
	LogDir                = "logs"
	LogNameMain           = "ash"
	DefaultConfigFileName = "ash.yml"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	DefaultLogLevel = "error"
	DefaultNetwork  = "mainnet"
	DefaultRetries  = 3
	DefaultTimeout  = 30 * time.Second

	DefaultNodeHTTPHost = "127.0.0.1"
)
