// Package selfupdate replaces the terminalist binary on disk with the
// latest published version. The replacement is write-temp-then-rename: the
// original file stays fully intact unless every step succeeds, which
// matters because the running process may have been started from it.
package selfupdate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	latest "github.com/tcnksm/go-latest"
)

// ErrFetch indicates the new binary could not be downloaded. The on-disk
// file is untouched when this is returned.
var ErrFetch = errors.New("fetch failed")

// maxBinaryBytes is the upper bound on the downloaded binary size (100 MB).
// Guards against a misconfigured source URL streaming unbounded data.
const maxBinaryBytes = 100 << 20

// Updater downloads the published binary and atomically swaps it over the
// file at scriptPath.
type Updater struct {
	scriptPath string
	sourceURL  string
	client     *http.Client
	logger     *log.Logger
	maxBytes   int64
}

// NewUpdater returns an updater that replaces the file at scriptPath with
// the bytes served at sourceURL.
func NewUpdater(scriptPath, sourceURL string, logger *log.Logger) *Updater {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Updater{
		scriptPath: scriptPath,
		sourceURL:  sourceURL,
		client:     &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
		maxBytes:   maxBinaryBytes,
	}
}

// Update fetches the latest binary and renames it over the current one,
// preserving the original file's permission bits. The temp file is created
// in the same directory as the target so the final os.Rename is an atomic
// same-filesystem move. The running process is unaffected; the new version
// takes effect on the next invocation.
func (u *Updater) Update(ctx context.Context) error {
	// Capture the original permissions before anything else; they are
	// reapplied to the replacement.
	info, err := os.Stat(u.scriptPath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", u.scriptPath, err)
	}

	u.logger.Debug("fetching update", "url", u.sourceURL)

	body, err := u.fetch(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	targetDir := filepath.Dir(u.scriptPath)
	tmpPath, err := writeTemp(targetDir, body, u.maxBytes)
	if err != nil {
		return err
	}

	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := os.Chmod(tmpPath, info.Mode()); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, u.scriptPath); err != nil {
		return fmt.Errorf("failed to replace %s: %w", u.scriptPath, err)
	}
	renamed = true

	u.logger.Debug("update applied", "path", u.scriptPath)
	return nil
}

// fetch GETs the source URL. Transport errors and non-200 responses both
// wrap ErrFetch so callers can present a single failure kind.
func (u *Updater) fetch(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid source URL %s: %v", ErrFetch, u.sourceURL, err)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetch, u.sourceURL, resp.Status)
	}

	return resp.Body, nil
}

// writeTemp streams body into a fresh temp file in dir and returns its
// path. On any failure the partial file is removed and an ErrFetch-wrapped
// error is returned, since a truncated download must never reach the
// rename step. A body larger than maxBytes is a failure, not a truncation:
// one extra byte is read past the limit to tell the two apart.
func writeTemp(dir string, body io.Reader, maxBytes int64) (_ string, err error) {
	tmp, err := os.CreateTemp(dir, "terminalist-update-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}

	defer func() {
		if closeErr := tmp.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	var written int64
	if written, err = io.Copy(tmp, io.LimitReader(body, maxBytes+1)); err != nil {
		return "", fmt.Errorf("%w: writing download: %v", ErrFetch, err)
	}
	if written > maxBytes {
		err = fmt.Errorf("%w: download exceeds %d bytes", ErrFetch, maxBytes)
		return "", err
	}

	return tmp.Name(), nil
}

// CheckRelease asks GitHub whether a newer release than version exists.
// Purely informational; callers treat errors as "no answer" and move on.
func CheckRelease(owner, repo, version string) (*latest.CheckResponse, error) {
	githubTag := &latest.GithubTag{
		Owner:      owner,
		Repository: repo,
	}
	return latest.Check(githubTag, version)
}
