//go:build linux

package thread

import "golang.org/x/sys/unix"

func currentID() ID {
	return ID(unix.Gettid())
}
