//go:build !debug

package outbuf

// Release builds leave appends entirely unchecked, the caller guarantees
// room. See assert_debug.go.
func checkRoom(b *Buffer, n int) {}
