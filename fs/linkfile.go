package fs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/mdxport"
)

// Ensure LinkFile implements mdxport.LinkStore at compile time.
var _ mdxport.LinkStore = (*LinkFile)(nil)

// LinkFile stores links as an indented JSON array of strings.
type LinkFile struct {
	path string
}

// NewLinkFile creates a LinkFile backed by the file at path.
func NewLinkFile(path string) *LinkFile {
	return &LinkFile{path: path}
}

// Path returns the backing file path.
func (f *LinkFile) Path() string {
	return f.path
}

// Load reads the links in file order.
// Returns ENOTFOUND if the file does not exist.
func (f *LinkFile) Load(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, mdxport.Errorf(mdxport.ENOTFOUND, "link file %q not found", f.path)
	} else if err != nil {
		return nil, err
	}

	var links []string
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, mdxport.Errorf(mdxport.EINVALID, "link file %q is not a JSON list of strings: %v", f.path, err)
	}
	if links == nil {
		links = []string{}
	}
	return links, nil
}

// Save writes the links with four-space indentation, replacing the file.
func (f *LinkFile) Save(ctx context.Context, links []string) error {
	if links == nil {
		links = []string{}
	}

	data, err := json.MarshalIndent(links, "", "    ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(f.path, append(data, '\n'), 0644)
}
