package workout

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"
)

// Source provides the raw workouts CSV document. One fetch attempt, no
// retries: a failed fetch leaves the dashboard in its terminal error state.
type Source interface {
	FetchCSV(ctx context.Context) (io.ReadCloser, error)
}

type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) FetchCSV(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workouts csv: %w", err)
	}
	return f, nil
}

type HTTPSource struct {
	url        string
	httpClient *http.Client
}

func NewHTTPSource(url string, httpClient *http.Client) *HTTPSource {
	return &HTTPSource{
		url:        url,
		httpClient: httpClient,
	}
}

func (s *HTTPSource) FetchCSV(ctx context.Context) (io.ReadCloser, error) {
	log.Debugf("fetching workouts csv: %s", s.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch workouts csv: unexpected status %d", resp.StatusCode)
	}

	return resp.Body, nil
}
