package phrasetop

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultBufferSize is the transfer buffer used when copying bytes from
// the source into split files. Splits can be far larger than this; the
// buffer is what bounds memory during splitting, not the split size.
const DefaultBufferSize = 8 * 1024

// SplitFile divides the file at srcPath into count contiguous byte-range
// files under workDir, named split.<index>.txt with a 1-based index. Each
// of the first count splits holds exactly size/count bytes; if the size
// does not divide evenly, one extra split holds the trailing remainder.
// Concatenating the split files in index order reproduces the source
// byte-for-byte.
//
// The source is opened read-only and never modified. Any open or write
// failure aborts the whole operation; splits already written are left
// behind.
func SplitFile(srcPath, workDir string, count, bufSize int) ([]Split, error) {
	if count <= 0 {
		return nil, ErrInvalidSplitCount
	}
	if bufSize <= 0 {
		return nil, ErrInvalidBufferSize
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat source: %w", err)
	}
	size := info.Size()

	if err := os.MkdirAll(workDir, 0755); err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}

	bytesPerSplit := size / int64(count)
	remainder := size % int64(count)

	buf := make([]byte, bufSize)
	splits := make([]Split, 0, count+1)
	var offset int64

	for i := 1; i <= count; i++ {
		sp := Split{
			Index:  i,
			Offset: offset,
			Length: bytesPerSplit,
			Path:   splitPath(workDir, i),
		}
		if err := writeSplit(src, sp.Path, sp.Length, buf); err != nil {
			return nil, fmt.Errorf("write split %d: %w", i, err)
		}
		splits = append(splits, sp)
		offset += bytesPerSplit
	}

	if remainder > 0 {
		sp := Split{
			Index:  count + 1,
			Offset: offset,
			Length: remainder,
			Path:   splitPath(workDir, count+1),
		}
		if err := writeSplit(src, sp.Path, sp.Length, buf); err != nil {
			return nil, fmt.Errorf("write split %d: %w", sp.Index, err)
		}
		splits = append(splits, sp)
	}

	return splits, nil
}

func splitPath(workDir string, index int) string {
	return filepath.Join(workDir, fmt.Sprintf("split.%d.txt", index))
}

// writeSplit copies exactly n bytes from src into a new file at path,
// transferring at most len(buf) bytes at a time. n == 0 produces an
// empty file.
func writeSplit(src io.Reader, path string, n int64, buf []byte) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}

	for n > 0 {
		chunk := int64(len(buf))
		if chunk > n {
			chunk = n
		}
		read, rerr := io.ReadFull(src, buf[:chunk])
		if read > 0 {
			if _, werr := dst.Write(buf[:read]); werr != nil {
				dst.Close()
				return werr
			}
			n -= int64(read)
		}
		if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
			// Source shrank underneath us; the split stays short.
			break
		}
		if rerr != nil {
			dst.Close()
			return rerr
		}
	}

	return dst.Close()
}
