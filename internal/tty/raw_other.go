//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package tty

import "golang.org/x/term"

type savedMode = *term.State

func makeRaw(fd uintptr) (savedMode, error) {
	return term.MakeRaw(int(fd))
}

func restore(fd uintptr, saved savedMode) error {
	return term.Restore(int(fd), saved)
}
