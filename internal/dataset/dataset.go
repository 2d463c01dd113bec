// Package dataset obtains and opens the Greek corpus data file. The
// published corpus ships as a zip archive holding one tab-separated
// CSV; local mirrors may keep it xz-compressed instead. Ensure
// downloads and unpacks on first use, Open reads any of the supported
// on-disk forms.
package dataset

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/interlinear/core/errors"
	"github.com/FocuswithJustin/interlinear/internal/fetch"
	"github.com/FocuswithJustin/interlinear/internal/logging"
)

// DefaultCorpusURL is the published OpenGNT keyed-features archive, the
// corpus variant that carries glosses.
const DefaultCorpusURL = "https://raw.githubusercontent.com/eliranwong/OpenGNT/master/OpenGNT_keyedFeatures.csv.zip"

// CorpusFileName is the corpus CSV inside the archive.
const CorpusFileName = "OpenGNT_keyedFeatures.csv"

// Ensure returns the path of the corpus CSV under dir, downloading and
// unpacking the archive at url on first use. An already-present CSV is
// used as is.
func Ensure(ctx context.Context, client *fetch.Client, dir, url string) (string, error) {
	target := filepath.Join(dir, CorpusFileName)
	if _, err := os.Stat(target); err == nil {
		return target, nil
	}

	if url == "" {
		url = DefaultCorpusURL
	}
	logging.InfoContext(ctx, "downloading corpus", "url", url)

	data, err := client.Get(ctx, url)
	if err != nil {
		return "", err
	}

	csv, err := unpack(data, url)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.NewIO("create directory", dir, err)
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, csv, 0o644); err != nil {
		return "", errors.NewIO("write", tmp, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return "", errors.NewIO("rename", target, err)
	}

	logging.InfoContext(ctx, "corpus ready", "path", target, "bytes", len(csv))
	return target, nil
}

// unpack extracts the corpus CSV from downloaded archive bytes. Plain
// CSV payloads pass through unchanged.
func unpack(data []byte, name string) ([]byte, error) {
	switch {
	case strings.HasSuffix(name, ".zip"):
		return extractZipCSV(data)
	case strings.HasSuffix(name, ".xz"):
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.NewParse("xz", name, err.Error())
		}
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.NewParse("xz", name, err.Error())
		}
		return out, nil
	default:
		return data, nil
	}
}

// extractZipCSV returns the first .csv member of a zip archive.
func extractZipCSV(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.NewParse("zip", "", err.Error())
	}
	for _, f := range zr.File {
		if !strings.HasSuffix(strings.ToLower(f.Name), ".csv") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, errors.NewIO("read", f.Name, err)
		}
		out, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, errors.NewIO("read", f.Name, err)
		}
		return out, nil
	}
	return nil, errors.Wrap(errors.ErrNotFound, "no .csv member in archive")
}

// Open opens a corpus data file for reading. Files ending in .xz are
// decompressed transparently; files ending in .zip are read through
// their first .csv member; anything else is read as plain text.
func Open(path string) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(path, ".xz"):
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.NewIO("open", path, err)
		}
		r, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.NewParse("xz", path, err.Error())
		}
		return &wrappedCloser{Reader: r, closer: f}, nil

	case strings.HasSuffix(path, ".zip"):
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.NewIO("read", path, err)
		}
		csv, err := extractZipCSV(data)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(csv)), nil

	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.NewIO("open", path, err)
		}
		return f, nil
	}
}

// wrappedCloser closes the underlying file, not the decompressor.
type wrappedCloser struct {
	io.Reader
	closer io.Closer
}

func (w *wrappedCloser) Close() error {
	return w.closer.Close()
}
