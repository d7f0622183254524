package downloadHelper

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-getter"
	"github.com/pkg/errors"
)

// StatusError reports a download that reached the server but did not
// succeed.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("download of %s failed with HTTP status %s", e.URL, e.Status)
}

// Download streams src into the file dst. Whatever was written to dst is
// removed again if the download fails.
func Download(ctx context.Context, src string, dst string, timeout time.Duration) error {
	client := resty.New()
	client.SetTimeout(timeout)

	response, err := client.R().
		SetContext(ctx).
		SetOutput(dst).
		Get(src)
	if err != nil {
		removePartial(dst)
		return errors.Wrapf(err, "failed to download %s", src)
	}

	if !response.IsSuccess() {
		removePartial(dst)
		status := response.Status()
		if status == "" {
			status = fmt.Sprintf("%d %s", response.StatusCode(), http.StatusText(response.StatusCode()))
		}
		return &StatusError{URL: src, StatusCode: response.StatusCode(), Status: status}
	}

	return nil
}

// Extract unpacks every entry of the zip archive src below the directory dst,
// creating intermediate directories as needed. Entries already written stay
// in place if a later one fails.
func Extract(src string, dst string) error {
	decompressor := new(getter.ZipDecompressor)
	if err := decompressor.Decompress(dst, src, true, 0); err != nil {
		return errors.Wrapf(err, "failed to extract %s into %s", src, dst)
	}

	return nil
}

func removePartial(path string) {
	_ = os.Remove(path)
}
