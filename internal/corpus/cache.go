package corpus

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"
)

const cacheMagic = "SMC1"

// cacheChunkSize bounds memory per chunk during encode and decode.
const cacheChunkSize = 1 << 16

// WriteCache writes text to path as a chunked, snappy-compressed cache
// file.
func WriteCache(path, text string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create cache %s: %w", path, err)
	}

	if _, err := file.WriteString(cacheMagic); err != nil {
		file.Close()
		return err
	}

	lenBuf := make([]byte, 8)
	binary.BigEndian.PutUint64(lenBuf, uint64(len(text)))
	if _, err := file.Write(lenBuf); err != nil {
		file.Close()
		return err
	}

	for i := 0; i < len(text); i += cacheChunkSize {
		end := i + cacheChunkSize
		if end > len(text) {
			end = len(text)
		}

		compressed := snappy.Encode(nil, []byte(text[i:end]))

		if err := binary.Write(file, binary.BigEndian, uint32(len(compressed))); err != nil {
			file.Close()
			return err
		}
		if _, err := file.Write(compressed); err != nil {
			file.Close()
			return err
		}
	}

	return file.Close()
}

// ReadCache loads a cache file written by WriteCache.
func ReadCache(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open cache %s: %w", path, err)
	}
	defer file.Close()

	header := make([]byte, len(cacheMagic)+8)
	if _, err := io.ReadFull(file, header); err != nil {
		return "", fmt.Errorf("failed to read cache header: %w", err)
	}
	if string(header[:len(cacheMagic)]) != cacheMagic {
		return "", fmt.Errorf("invalid cache magic in %s", path)
	}
	total := binary.BigEndian.Uint64(header[len(cacheMagic):])

	out := make([]byte, 0, total)
	lenBuf := make([]byte, 4)
	for {
		if _, err := io.ReadFull(file, lenBuf); err == io.EOF {
			break
		} else if err != nil {
			return "", fmt.Errorf("failed to read chunk length: %w", err)
		}

		compressed := make([]byte, binary.BigEndian.Uint32(lenBuf))
		if _, err := io.ReadFull(file, compressed); err != nil {
			return "", fmt.Errorf("failed to read chunk: %w", err)
		}

		chunk, err := snappy.Decode(nil, compressed)
		if err != nil {
			return "", fmt.Errorf("failed to decompress chunk: %w", err)
		}
		out = append(out, chunk...)
	}

	if uint64(len(out)) != total {
		return "", fmt.Errorf("cache %s truncated: got %d bytes, want %d", path, len(out), total)
	}
	return string(out), nil
}
