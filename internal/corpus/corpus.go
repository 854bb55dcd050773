// Package corpus loads real text inputs for searches and benchmarks.
// Files are memory-mapped read-only; generated corpora can be cached on
// disk in a chunked, snappy-compressed format.
package corpus

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Corpus is an immutable, mmap'd text file.
type Corpus struct {
	path string
	file *os.File
	data mmap.MMap
}

// Open memory-maps a text file.
func Open(path string) (*Corpus, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus %s: %w", path, err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if stat.Size() == 0 {
		file.Close()
		return nil, fmt.Errorf("corpus file is empty: %s", path)
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to mmap corpus %s: %w", path, err)
	}

	return &Corpus{path: path, file: file, data: data}, nil
}

// Path returns the corpus file path.
func (c *Corpus) Path() string { return c.path }

// Len returns the corpus size in bytes.
func (c *Corpus) Len() int { return len(c.data) }

// Text returns the corpus contents. The copy keeps the string valid
// after Close.
func (c *Corpus) Text() string {
	return string(c.data)
}

// Close unmaps and closes the corpus file.
func (c *Corpus) Close() error {
	if err := c.data.Unmap(); err != nil {
		c.file.Close()
		return err
	}
	return c.file.Close()
}
