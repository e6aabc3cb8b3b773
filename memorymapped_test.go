package outbuf

import (
	"os"
	"path"
	"testing"
)

func TestMemoryMappedBuffer(t *testing.T) {
	filename := "outbuf_memorymappedbuffer_test.tmp"
	loc := path.Join(os.TempDir(), filename)

	if _, err := os.Stat(loc); err == nil {
		err = os.Remove(loc)
		if err != nil {
			t.Error("Cannot proceed with test as cannot remove the old file")
			return
		}
	}

	b, err := NewMemoryMappedBuffer(loc, 15)
	if err != nil {
		t.Error("Cannot proceed with test as cannot create buffer\n", err)
		return
	}

	if _, err = os.Stat(loc); err != nil {
		t.Errorf("No file created at %v despite the buffer being initialized", loc)
		return
	}

	b.AddUint8(0x01)
	b.AddUint32(0x00000002)
	b.AddBytes([]byte{0xAA, 0xBB, 0xCC, 0xDD})
	b.AddUint16(0x0003)
	b.AddString("test")

	if err = b.Flush(); err != nil {
		t.Error("Cannot sync the mapping\n", err)
		return
	}

	data, err := os.ReadFile(loc)
	if err != nil {
		t.Error("Cannot read data from the memory mapped file")
		return
	}

	e := []byte{
		0x01,
		0x00, 0x00, 0x00, 0x02,
		0xAA, 0xBB, 0xCC, 0xDD,
		0x00, 0x03,
		0x74, 0x65, 0x73, 0x74,
	}

	for i := 0; i < 15; i++ {
		if data[i] != e[i] {
			t.Errorf("pos: %v, expected: %v, got %v", i, e[i], data[i])
		}
	}

	if err = b.Unmap(true); err != nil {
		t.Error(err)
	}

	if b.Size() != 0 || b.Cap() != 0 {
		t.Error("expected an unmapped buffer to be inert")
	}

	// a second Unmap is a no-op
	if err = b.Unmap(true); err != nil {
		t.Error(err)
	}

	if _, err := os.Stat(loc); err == nil {
		t.Error("Memory mapped file not getting deleted on Unmap")
	}
}

func TestMemoryMappedBufferReplacesFile(t *testing.T) {
	loc := path.Join(os.TempDir(), "outbuf_memorymappedbuffer_replace_test.tmp")

	if err := os.WriteFile(loc, []byte("stale"), 0644); err != nil {
		t.Error("Cannot proceed with test as cannot create the old file")
		return
	}

	b, err := NewMemoryMappedBuffer(loc, 4)
	if err != nil {
		t.Error("Cannot create a buffer over an existing file\n", err)
		return
	}

	if b.Cap() != 4 {
		t.Errorf("expected the mapping to have capacity 4, got %v", b.Cap())
	}

	if err = b.Unmap(true); err != nil {
		t.Error(err)
	}
}
