//go:build nodialog
// +build nodialog

package main

// errorBox is a no-op in builds without native dialogs; the error is already
// logged.
func errorBox(error) {}
