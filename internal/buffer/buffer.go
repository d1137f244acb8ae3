package buffer

import (
	"fmt"
	"io"
	"os"
)

// Buffer is the read-only byte sequence being viewed. It is loaded once
// and never modified afterwards.
type Buffer struct {
	filename string
	data     []byte
}

func FromBytes(name string, data []byte) *Buffer {
	return &Buffer{
		filename: name,
		data:     data,
	}
}

func Open(filename string) (*Buffer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}

	return &Buffer{
		filename: filename,
		data:     data,
	}, nil
}

func (b *Buffer) Filename() string {
	return b.filename
}

func (b *Buffer) Size() int {
	return len(b.data)
}

// Window returns the bytes from offset to the end of the buffer. An offset
// past the end yields an empty window rather than an out of range slice.
func (b *Buffer) Window(offset int) []byte {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.data) {
		offset = len(b.data)
	}
	return b.data[offset:]
}

