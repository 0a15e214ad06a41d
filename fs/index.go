package fs

import (
	"context"
	"encoding/json"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/mosaic-community/sitesearch"
)

// Ensure IndexFile implements sitesearch.IndexWriter at compile time.
var _ sitesearch.IndexWriter = (*IndexFile)(nil)

// IndexFile writes the search index as a JSON file.
type IndexFile struct {
	path string
}

// NewIndexFile creates an IndexFile writing to path.
func NewIndexFile(path string) *IndexFile {
	return &IndexFile{path: path}
}

// WriteIndex writes idx atomically. When the file on disk already holds
// identical items it is left untouched and idx.GeneratedAt is set to the
// existing timestamp.
func (f *IndexFile) WriteIndex(ctx context.Context, idx *sitesearch.Index) error {
	sum, err := fingerprint(idx.Items)
	if err != nil {
		return err
	}

	if existing, err := f.read(); err == nil {
		if prev, err := fingerprint(existing.Items); err == nil && prev == sum {
			idx.GeneratedAt = existing.GeneratedAt
			return nil
		}
	}

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(f.path, append(data, '\n'))
}

// ReadIndex reads the index file.
func (f *IndexFile) ReadIndex() (*sitesearch.Index, error) {
	idx, err := f.read()
	if os.IsNotExist(err) {
		return nil, sitesearch.Errorf(sitesearch.ENOTFOUND, "index %q not found", f.path)
	}
	return idx, err
}

func (f *IndexFile) read() (*sitesearch.Index, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	var idx sitesearch.Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "malformed index %s: %v", f.path, err)
	}
	return &idx, nil
}

// fingerprint hashes the JSON encoding of items.
func fingerprint(items []*sitesearch.Record) (uint64, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}
