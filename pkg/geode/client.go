// Package geode talks to the Geode SDK index to find the latest loader
// release and where to download it.
package geode

import (
	"context"
	"fmt"
	"time"

	"github.com/IceWhaleTech/CasaOS-GeodeInstaller/model"
	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	ErrAPI               = errors.New("geode api returned an error")
	ErrMalformedResponse = errors.New("malformed geode api response")
	ErrUnexpectedStatus  = errors.New("unexpected http status")
)

type Client struct {
	loaderAPI        string
	releaseURLFormat string
	http             *resty.Client
}

// NewClient returns a client for the loader version endpoint at loaderAPI.
// releaseURLFormat receives the release tag as its only argument, see
// common.GeodeReleaseURLFormat.
func NewClient(loaderAPI string, releaseURLFormat string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")

	return &Client{
		loaderAPI:        loaderAPI,
		releaseURLFormat: releaseURLFormat,
		http:             client,
	}
}

// LatestTag returns the tag of the latest loader release.
func (c *Client) LatestTag(ctx context.Context) (string, error) {
	response, err := c.http.R().SetContext(ctx).Get(c.loaderAPI)
	if err != nil {
		return "", errors.Wrapf(err, "failed to request %s", c.loaderAPI)
	}

	if response.StatusCode() != 200 {
		return "", errors.Wrapf(ErrUnexpectedStatus, "GET %s returned %d", c.loaderAPI, response.StatusCode())
	}

	var body model.LoaderVersionResponse
	if err := json.Unmarshal(response.Body(), &body); err != nil {
		return "", errors.Wrapf(ErrMalformedResponse, "%s: %s", c.loaderAPI, err.Error())
	}

	if body.Error != "" {
		return "", errors.Wrap(ErrAPI, body.Error)
	}

	if body.Payload == nil {
		return "", errors.Wrap(ErrMalformedResponse, "payload is missing")
	}

	if body.Payload.Tag == "" {
		return "", errors.Wrap(ErrMalformedResponse, "payload has no tag")
	}

	return body.Payload.Tag, nil
}

// DownloadURL returns the Windows release archive URL for tag.
func (c *Client) DownloadURL(tag string) string {
	return fmt.Sprintf(c.releaseURLFormat, tag)
}

// LatestDownloadURL resolves the latest tag and returns its archive URL.
func (c *Client) LatestDownloadURL(ctx context.Context) (string, error) {
	tag, err := c.LatestTag(ctx)
	if err != nil {
		return "", err
	}

	return c.DownloadURL(tag), nil
}
