//go:build linux || darwin

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// rawMode puts stdin into unbuffered, echo-free mode so single-step keys
// arrive one at a time, and returns a function that restores the previous
// terminal state.
func rawMode() func() {
	fd := int(os.Stdin.Fd())
	saved, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		panic(err)
	}

	raw := *saved
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		panic(err)
	}

	return func() {
		_ = unix.IoctlSetTermios(fd, ioctlWriteTermios, saved)
	}
}
