// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/units"
	"github.com/fatih/color"
)

var Logger *UserLog

type UserLog struct {
	log    logging.Logger
	Writer io.Writer
	// SpinnerWriter receives progress spinners, none are shown when nil
	SpinnerWriter io.Writer
}

// NewUserLog sets the user facing logger used by the commands
func NewUserLog(log logging.Logger, userwriter io.Writer) *UserLog {
	if log == nil {
		log = logging.NoLog{}
	}
	Logger = &UserLog{
		log:    log,
		Writer: userwriter,
	}
	return Logger
}

// PrintToUser prints msg directly on the screen, but also to log file
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	ul.print(fmt.Sprintf(msg, args...) + "\n")
}

func (ul *UserLog) print(msg string) {
	if ul != nil {
		fmt.Fprint(ul.Writer, msg)
		ul.log.Info(strings.TrimSuffix(msg, "\n"))
	} else {
		fmt.Print(msg)
	}
}

// Info prints to the log file
func (ul *UserLog) Info(msg string, args ...interface{}) {
	ul.log.Info(fmt.Sprintf(msg, args...))
}

// Error prints to the log file
func (ul *UserLog) Error(msg string, args ...interface{}) {
	ul.log.Error(fmt.Sprintf(msg, args...))
}

// GreenCheckmarkToUser prints a green checkmark to the user before the message
func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	checkmark := "✓" // Unicode for checkmark symbol
	green := color.New(color.FgHiGreen).SprintFunc()
	ul.PrintToUser(green(checkmark)+" "+msg, args...)
}

func (ul *UserLog) RedXToUser(msg string, args ...interface{}) {
	xmark := "✗" // Unicode for X symbol
	red := color.New(color.FgHiRed).SprintFunc()
	ul.PrintToUser(red(xmark)+" "+msg, args...)
}

func (ul *UserLog) PrintLineSeparator() {
	ul.PrintToUser("==============================================")
}

// PrintJSON writes [v] as indented JSON, for --json output
func (ul *UserLog) PrintJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	ul.print(string(out) + "\n")
	return nil
}

func ConvertToStringWithThousandSeparator(input uint64) string {
	p := message.NewPrinter(language.English)
	s := p.Sprintf("%d", input)
	return strings.ReplaceAll(s, ",", "_")
}

// FormatAVAX renders a nAVAX amount in AVAX, e.g. 2,000.5 AVAX
func FormatAVAX(nAVAX uint64) string {
	p := message.NewPrinter(language.English)
	whole := p.Sprintf("%d", nAVAX/units.Avax)
	frac := nAVAX % units.Avax
	if frac == 0 {
		return whole + " AVAX"
	}
	decimals := strings.TrimRight(fmt.Sprintf("%09d", frac), "0")
	return whole + "." + decimals + " AVAX"
}

// Colorize highlights values in human readable output
func Colorize(v interface{}) string {
	return color.New(color.FgHiCyan).Sprint(v)
}
