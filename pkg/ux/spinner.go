// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"fmt"
	"io"
	"sync"

	"github.com/chelnak/ysmrr"
	"github.com/chelnak/ysmrr/pkg/animations"
	"github.com/chelnak/ysmrr/pkg/colors"
)

type UserSpinner struct {
	spinner ysmrr.SpinnerManager
	log     *UserLog
	started bool
	mutex   sync.Mutex
}

func newSpinner(writer io.Writer) ysmrr.SpinnerManager {
	return ysmrr.NewSpinnerManager(
		ysmrr.WithAnimation(animations.Dots),
		ysmrr.WithSpinnerColor(colors.FgHiBlue),
		ysmrr.WithWriter(writer),
	)
}

// NewUserSpinner returns nil when the user log has no spinner writer
func (ul *UserLog) NewUserSpinner() *UserSpinner {
	if ul == nil || ul.SpinnerWriter == nil {
		return nil
	}
	return &UserSpinner{spinner: newSpinner(ul.SpinnerWriter), log: ul}
}

func (us *UserSpinner) Stop() {
	if us == nil {
		return
	}
	us.mutex.Lock()
	defer us.mutex.Unlock()
	if us.started {
		us.spinner.Stop()
	}
}

func (us *UserSpinner) SpinToUser(msg string, args ...interface{}) *ysmrr.Spinner {
	if us == nil {
		return nil
	}
	formattedMsg := fmt.Sprintf(msg, args...)
	us.log.Info("%s", formattedMsg+" [Spinner Start]")
	sp := us.spinner.AddSpinner(formattedMsg)
	us.mutex.Lock()
	if !us.started {
		us.spinner.Start()
		us.started = true
	}
	us.mutex.Unlock()
	return sp
}

func (us *UserSpinner) SpinFailWithError(s *ysmrr.Spinner, err error) {
	if s == nil {
		return
	}
	s.UpdateMessage(fmt.Sprintf("%s err:%v", s.GetMessage(), err))
	s.Error()
	us.log.Info("%s", s.GetMessage()+" [Spinner Err]")
}

func (us *UserSpinner) SpinComplete(s *ysmrr.Spinner) {
	if s == nil || s.IsComplete() {
		return
	}
	s.Complete()
	us.log.Info("%s", s.GetMessage()+" [Spinner Complete]")
}

// Spin runs [f] behind a spinner showing [msg]
func (ul *UserLog) Spin(msg string, f func() error) error {
	spinner := ul.NewUserSpinner()
	defer spinner.Stop()
	sp := spinner.SpinToUser("%s", msg)
	if err := f(); err != nil {
		spinner.SpinFailWithError(sp, err)
		return err
	}
	spinner.SpinComplete(sp)
	return nil
}
