package export

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/odyssey-erp/supplierdesk/internal/document"
)

// JSONSink serialises the document description itself.
type JSONSink struct{}

// Render implements Sink.
func (JSONSink) Render(_ context.Context, doc document.Document) (Artifact, error) {
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Artifact{}, &SinkError{Sink: "json", Err: err}
	}
	return jsonArtifact(doc.Name, body), nil
}

// SnapshotJSON serialises a full store snapshot as a JSON array of records.
func SnapshotJSON[R any](name string, records []R) (Artifact, error) {
	if records == nil {
		records = []R{}
	}
	body, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return Artifact{}, &SinkError{Sink: "json", Err: err}
	}
	return jsonArtifact(name, body), nil
}

func jsonArtifact(name string, body []byte) Artifact {
	return Artifact{
		ID:          uuid.NewString(),
		Filename:    filename(name, KindJSON),
		ContentType: "application/json",
		Kind:        KindJSON,
		Body:        body,
	}
}
