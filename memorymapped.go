package outbuf

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// MemoryMappedBuffer is a Buffer whose backing memory is a memory mapped
// file, so that a reader process can observe the frame as it is assembled.
type MemoryMappedBuffer struct {
	*Buffer
	loc string // location of the memory mapped file
	m   mmap.MMap
}

// NewMemoryMappedBuffer will create and return a new instance of a
// MemoryMappedBuffer, replacing any file previously at loc.
func NewMemoryMappedBuffer(loc string, capacity uint32) (*MemoryMappedBuffer, error) {
	if _, err := os.Stat(loc); err == nil {
		if err = os.Remove(loc); err != nil {
			return nil, errors.Wrap(err, "could not remove the previous mapping file")
		}
	}

	f, err := os.OpenFile(loc, os.O_CREATE|os.O_RDWR|os.O_EXCL, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "could not create the mapping file")
	}
	defer f.Close()

	l, err := f.Write(make([]byte, capacity))
	if err != nil {
		return nil, errors.Wrap(err, "could not initialize the mapping file")
	}
	if l < int(capacity) {
		return nil, errors.Errorf("could not initialize %d bytes", capacity)
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return nil, errors.Wrap(err, "could not memory map the file")
	}

	if logging {
		logger.Info("mapped a buffer into memory",
			zap.String("module", "mmap"),
			zap.String("location", loc),
			zap.Uint32("capacity", capacity),
		)
	}

	return &MemoryMappedBuffer{NewSlice(m), loc, m}, nil
}

// Flush syncs the mapping so the backing file reflects every append made
// so far.
func (b *MemoryMappedBuffer) Flush() error {
	return errors.Wrap(b.m.Flush(), "could not sync the mapping")
}

// Unmap will manually delete the memory mapping of a mapped buffer,
// optionally removing the backing file. The embedded Buffer is left in
// the same inert state as a moved-from Buffer; calling Unmap again is a
// no-op.
func (b *MemoryMappedBuffer) Unmap(removefile bool) error {
	if b.m == nil {
		return nil
	}

	if err := b.m.Unmap(); err != nil {
		return errors.Wrap(err, "could not unmap the buffer")
	}

	b.m = nil
	b.pos = 0
	b.buffer = nil

	if removefile {
		if err := os.Remove(b.loc); err != nil {
			return errors.Wrap(err, "could not remove the mapping file")
		}
	}

	if logging {
		logger.Info("unmapped a buffer",
			zap.String("module", "mmap"),
			zap.String("location", b.loc),
		)
	}

	return nil
}
