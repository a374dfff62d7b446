// Package remote fetches the dialogue document and the images it references.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/younwookim/showcase/internal/domain/entity"
	"github.com/younwookim/showcase/internal/infrastructure/assets"
)

// maxBody caps every response body read
const maxBody = 8 << 20

// Client talks to the dialogue endpoint and registers converted images
type Client struct {
	http     *http.Client
	endpoint string
	assets   *assets.Registry
}

// NewClient creates a client for endpoint that registers images in reg
func NewClient(endpoint string, timeout time.Duration, reg *assets.Registry) *Client {
	return &Client{
		http:     &http.Client{Timeout: timeout},
		endpoint: endpoint,
		assets:   reg,
	}
}

// FetchScript downloads and decodes the dialogue document. It is not retried.
func (c *Client) FetchScript(ctx context.Context) (*entity.Script, error) {
	body, err := c.get(ctx, c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dialogue: %w", err)
	}
	defer body.Close()

	var script entity.Script
	if err := json.NewDecoder(io.LimitReader(body, maxBody)).Decode(&script); err != nil {
		return nil, fmt.Errorf("failed to parse dialogue: %w", err)
	}
	return &script, nil
}

// ConvertImage downloads url, decodes it, converts it to an RGBA bitmap no
// larger than maxSize on either side (0 keeps the original size) and
// registers it under name.
func (c *Client) ConvertImage(ctx context.Context, name, url string, maxSize int) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to fetch image %s: %w", name, err)
	}
	defer body.Close()

	src, _, err := image.Decode(io.LimitReader(body, maxBody))
	if err != nil {
		return fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	c.assets.Put(name, ToBitmap(src, maxSize))
	return nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// ToBitmap copies src into a new RGBA image, scaling it down so neither side
// exceeds maxSize. Aspect ratio is kept.
func ToBitmap(src image.Image, maxSize int) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst
	}

	if w >= h {
		h = max(1, h*maxSize/w)
		w = maxSize
	} else {
		w = max(1, w*maxSize/h)
		h = maxSize
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
