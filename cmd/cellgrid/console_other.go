//go:build !windows

package main

// initConsole is a no-op: other terminals already expect UTF-8
func initConsole() {}
