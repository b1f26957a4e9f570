//go:build unix

package window

import (
	"bytes"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const (
	reportTimeout = 100 * time.Millisecond
	reportMaxLen  = 128
)

func query(fd int) Terminal {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return Terminal{}
	}
	return Terminal{
		Cols:        int(ws.Col),
		Rows:        int(ws.Row),
		PixelWidth:  int(ws.Xpixel),
		PixelHeight: int(ws.Ypixel),
	}
}

// reportTTY sends request to the controlling terminal in raw mode and waits
// briefly for the reply.
func reportTTY(request, prefix string) (float32, float32, bool) {
	fd, err := unix.Open("/dev/tty", unix.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return 0, 0, false
	}
	defer unix.Close(fd)

	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, 0, false
	}
	defer term.Restore(fd, state)

	if _, err := unix.Write(fd, []byte(request)); err != nil {
		return 0, 0, false
	}

	var reply []byte
	chunk := make([]byte, reportMaxLen)
	deadline := time.Now().Add(reportTimeout)
	for len(reply) < reportMaxLen {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, int(remaining.Milliseconds())+1)
		if err != nil || n <= 0 {
			break
		}
		read, err := unix.Read(fd, chunk)
		if err != nil || read <= 0 {
			break
		}
		reply = append(reply, chunk[:read]...)
		if bytes.IndexByte(reply, 't') >= 0 {
			break
		}
	}
	return parseReport(string(reply), prefix)
}
