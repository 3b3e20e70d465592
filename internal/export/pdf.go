package export

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/odyssey-erp/supplierdesk/internal/document"
)

// HTMLRenderer converts a standalone HTML page into PDF bytes.
type HTMLRenderer interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

// DocumentHTML produces the printable HTML page of a document.
type DocumentHTML interface {
	DocumentHTML(doc document.Document) (string, error)
}

// PDFSink prints documents through an HTML-to-PDF engine. Concurrent exports of
// the same document share one engine call, and finished bodies are cached by the
// hash of their HTML.
type PDFSink struct {
	engineName string
	engine     HTMLRenderer
	pages      DocumentHTML
	cache      *ArtifactCache
	timeout    time.Duration
	group      singleflight.Group
}

const defaultRenderTimeout = 30 * time.Second

// NewPDFSink wires an engine and the document page template. cache may be nil.
func NewPDFSink(engineName string, engine HTMLRenderer, pages DocumentHTML, cache *ArtifactCache) *PDFSink {
	return &PDFSink{engineName: engineName, engine: engine, pages: pages, cache: cache, timeout: defaultRenderTimeout}
}

// WithTimeout bounds a shared render. Non-positive values keep the default.
func (s *PDFSink) WithTimeout(timeout time.Duration) *PDFSink {
	if timeout > 0 {
		s.timeout = timeout
	}
	return s
}

// Render implements Sink.
func (s *PDFSink) Render(ctx context.Context, doc document.Document) (Artifact, error) {
	if s == nil || s.engine == nil || s.pages == nil {
		return Artifact{}, &SinkError{Sink: "pdf", Err: errors.New("pdf engine not configured")}
	}
	html, err := s.pages.DocumentHTML(doc)
	if err != nil {
		return Artifact{}, &SinkError{Sink: "pdf", Err: fmt.Errorf("render template: %w", err)}
	}

	sum := sha256.Sum256([]byte(html))
	digest := hex.EncodeToString(sum[:])
	body, err := s.once(ctx, digest, func(ctx context.Context) ([]byte, error) {
		return s.cache.Fetch(ctx, s.cache.Key(s.engineName, digest), func(ctx context.Context) ([]byte, error) {
			return s.engine.RenderHTML(ctx, html)
		})
	})
	if err != nil {
		return Artifact{}, &SinkError{Sink: s.engineName, Err: err}
	}

	return Artifact{
		ID:          uuid.NewString(),
		Filename:    filename(doc.Name, KindPDF),
		ContentType: "application/pdf",
		Kind:        KindPDF,
		Body:        body,
	}, nil
}

// once runs fn for the first caller of key and hands its result to everyone who
// joins meanwhile. The shared run outlives any one caller's cancellation; each
// caller still stops waiting when its own ctx ends.
func (s *PDFSink) once(ctx context.Context, key string, fn func(context.Context) ([]byte, error)) ([]byte, error) {
	resultChan := s.group.DoChan(key, func() (interface{}, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		return fn(shared)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultChan:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}
