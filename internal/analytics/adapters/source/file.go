// Package source loads the sales table from a file path or URL.
package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"sales-analytics-service/internal/analytics/core/domain"
	"sales-analytics-service/internal/analytics/core/ports"
)

// File reads the dataset from a local path or an http(s) URL on every Load.
type File struct {
	location string
	client   *http.Client
}

var _ ports.DatasetSource = (*File)(nil)

func NewFile(location string, client *http.Client) *File {
	if client == nil {
		client = http.DefaultClient
	}
	return &File{location: location, client: client}
}

func (f *File) Load(ctx context.Context) (*domain.Table, error) {
	name, data, err := f.read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrDatasetUnavailable, err)
	}

	t, err := Decode(name, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ports.ErrDatasetUnavailable, f.location, err)
	}
	return t, nil
}

func (f *File) read(ctx context.Context) (string, []byte, error) {
	if !isURL(f.location) {
		data, err := os.ReadFile(f.location)
		return f.location, data, err
	}

	u, err := url.Parse(f.location)
	if err != nil {
		return "", nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.location, nil)
	if err != nil {
		return "", nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("GET %s: status %d", f.location, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, err
	}
	return u.Path, data, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
