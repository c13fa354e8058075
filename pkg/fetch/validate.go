package fetch

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openAPIDescription []byte

const payloadSchemaName = "UiPayload"

var (
	schemaOnce    sync.Once
	payloadSchema *openapi3.Schema
	schemaErr     error
)

// OpenAPIDescription returns the embedded description of the address info
// endpoint.
func OpenAPIDescription() []byte {
	return append([]byte(nil), openAPIDescription...)
}

func loadPayloadSchema() (*openapi3.Schema, error) {
	schemaOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(openAPIDescription)
		if err != nil {
			schemaErr = fmt.Errorf("fetch: load openapi description: %w", err)
			return
		}
		if err := doc.Validate(context.Background(), openapi3.DisableExamplesValidation()); err != nil {
			schemaErr = fmt.Errorf("fetch: validate openapi description: %w", err)
			return
		}
		ref := doc.Components.Schemas[payloadSchemaName]
		if ref == nil || ref.Value == nil {
			schemaErr = fmt.Errorf("fetch: schema %s not found", payloadSchemaName)
			return
		}
		payloadSchema = ref.Value
	})
	return payloadSchema, schemaErr
}

// ValidatePayload checks a generically decoded JSON value against the payload
// shape: a ui array of elements with string types, children made of strings or
// typed objects, and an optional string severity.
func ValidatePayload(value any) error {
	schema, err := loadPayloadSchema()
	if err != nil {
		return err
	}
	if err := schema.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, flattenSchemaError(err))
	}
	return nil
}

func flattenSchemaError(err error) error {
	var multi openapi3.MultiError
	if errors.As(err, &multi) && len(multi) > 0 {
		return multi[0]
	}
	return err
}
