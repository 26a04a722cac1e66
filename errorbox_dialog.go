//go:build !nodialog
// +build !nodialog

package main

import (
	"github.com/sqweek/dialog"

	"github.com/milk9111/stagerunner/common"
)

func errorBox(err error) {
	dialog.Message("%s", err.Error()).Title(common.Title).Error()
}
