//go:build windows

package thread

import "golang.org/x/sys/windows"

func currentID() ID {
	return ID(windows.GetCurrentThreadId())
}
