//go:build windows

package main

import "syscall"

var (
	modkernel32            = syscall.NewLazyDLL("kernel32.dll")
	procSetConsoleOutputCP = modkernel32.NewProc("SetConsoleOutputCP")
)

const cpUTF8 = 65001

// initConsole switches the console output code page to UTF-8 so the
// box-drawing characters print correctly.
func initConsole() {
	procSetConsoleOutputCP.Call(cpUTF8)
}
