package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
)

// Sink stores generated files under a name and returns where they went.
type Sink interface {
	Put(name string, data []byte) (string, error)
}

// DirSink writes files into a directory, optionally snappy framed (.sz).
type DirSink struct {
	Dir      string
	Compress bool
}

func NewDirSink(dir string, compress bool) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &DirSink{Dir: dir, Compress: compress}, nil
}

func (d *DirSink) Put(name string, data []byte) (string, error) {
	path := filepath.Join(d.Dir, name)
	if !d.Compress {
		return path, os.WriteFile(path, data, 0644)
	}

	path += ".sz"
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	w := snappy.NewBufferedWriter(f)
	if _, err := w.Write(data); err != nil {
		f.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
