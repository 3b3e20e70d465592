// Package export turns document descriptions into downloadable artifacts.
package export

import (
	"context"
	"fmt"

	"github.com/odyssey-erp/supplierdesk/internal/document"
)

// Kind names the artifact format.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindJSON Kind = "json"
)

// Artifact is an exported file ready for download.
type Artifact struct {
	ID          string
	Filename    string
	ContentType string
	Kind        Kind
	Body        []byte
}

// Sink renders a document description into an artifact. Sinks never see the
// record stores.
type Sink interface {
	Render(ctx context.Context, doc document.Document) (Artifact, error)
}

// SinkError wraps a failure raised inside a sink.
type SinkError struct {
	Sink string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Sink, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

func filename(name string, kind Kind) string {
	if name == "" {
		name = "export"
	}
	return name + "." + string(kind)
}
