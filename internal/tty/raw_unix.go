//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package tty

import (
	"fmt"

	"golang.org/x/sys/unix"
)

type savedMode = unix.Termios

func makeRaw(fd uintptr) (savedMode, error) {
	t, err := unix.IoctlGetTermios(int(fd), ioctlReadTermios)
	if err != nil {
		return savedMode{}, fmt.Errorf("get termios: %w", err)
	}
	saved := *t

	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag &^= unix.CSIZE | unix.PARENB
	t.Cflag |= unix.CS8
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(int(fd), ioctlWriteTermios, t); err != nil {
		return savedMode{}, fmt.Errorf("set termios: %w", err)
	}
	return saved, nil
}

func restore(fd uintptr, saved savedMode) error {
	if err := unix.IoctlSetTermios(int(fd), ioctlWriteTermios, &saved); err != nil {
		return fmt.Errorf("restore termios: %w", err)
	}
	return nil
}
