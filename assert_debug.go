//go:build debug

package outbuf

import "fmt"

func checkRoom(b *Buffer, n int) {
	if b.pos+n > len(b.buffer) {
		panic(fmt.Sprintf("outbuf: appending %d bytes at position %d overruns capacity %d",
			n, b.pos, len(b.buffer)))
	}
}
