package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-insightui/pkg/schema"
)

// LoadPayload reads a JSON or YAML fixture and decodes it into a UI payload.
// Testing helpers fail the test on error to keep contract tests concise.
func LoadPayload(t *testing.T, path string) schema.Payload {
	t.Helper()

	payload, err := LoadPayloadFromPath(path)
	if err != nil {
		t.Fatalf("load payload: %v", err)
	}
	return payload
}

// LoadPayloadFromPath returns a Payload without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadPayloadFromPath(path string) (schema.Payload, error) {
	if path == "" {
		return schema.Payload{}, errors.New("testsupport: payload path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Payload{}, fmt.Errorf("testsupport: read payload: %w", err)
	}
	doc, err := schema.NewDocument(schema.SourceFromFile(path), data)
	if err != nil {
		return schema.Payload{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	payload, err := schema.DecodeDocument(doc)
	if err != nil {
		return schema.Payload{}, fmt.Errorf("testsupport: decode payload: %w", err)
	}
	return payload, nil
}

// MustDecodeElements decodes an inline JSON element list.
func MustDecodeElements(t *testing.T, raw string) []schema.Element {
	t.Helper()

	var elements []schema.Element
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		t.Fatalf("decode elements: %v", err)
	}
	return elements
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
