// Package report hosts the HTML-to-PDF engines behind the PDF export sink.
package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Paper describes the printed page, in inches.
type Paper struct {
	Width, Height           float64
	MarginTop, MarginBottom float64
	MarginLeft, MarginRight float64
	Landscape               bool
	PrintBackground         bool
}

// A4 is the default report paper.
var A4 = Paper{
	Width: 8.27, Height: 11.7,
	MarginTop: 0.4, MarginBottom: 0.4, MarginLeft: 0.4, MarginRight: 0.4,
	PrintBackground: true,
}

// Client wraps interactions with the Gotenberg API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	paper      Paper
}

// NewClient constructs a new client printing on A4.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		paper: A4,
	}
}

// WithPaper returns a copy of the client printing on p.
func (c *Client) WithPaper(p Paper) *Client {
	cp := *c
	cp.paper = p
	return &cp
}

// Ping checks if the remote Gotenberg service is available.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("gotenberg returned status %d", resp.StatusCode)
	}
	return nil
}

// RenderHTML converts raw HTML into a PDF document using Gotenberg.
func (c *Client) RenderHTML(ctx context.Context, html string) ([]byte, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(part, html); err != nil {
		return nil, err
	}
	for field, value := range c.paper.formFields() {
		if err := writer.WriteField(field, value); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/forms/chromium/convert/html", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("render failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return io.ReadAll(resp.Body)
}

func (p Paper) formFields() map[string]string {
	inches := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return map[string]string{
		"paperWidth":      inches(p.Width),
		"paperHeight":     inches(p.Height),
		"marginTop":       inches(p.MarginTop),
		"marginBottom":    inches(p.MarginBottom),
		"marginLeft":      inches(p.MarginLeft),
		"marginRight":     inches(p.MarginRight),
		"landscape":       strconv.FormatBool(p.Landscape),
		"printBackground": strconv.FormatBool(p.PrintBackground),
	}
}
