// Package schemas provides JSON Schema validation for externally observable
// payloads: API responses served to clients and detail records accepted from
// the metadata provider.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed movie_details.schema.json
var movieDetailsSchema []byte

//go:embed recommendations_page.schema.json
var recommendationsPageSchema []byte

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

func validate(schema, document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return fmt.Errorf("schema validation could not run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, re := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return verr
}

// ValidateMovieDetails checks a TMDB movie detail payload.
func ValidateMovieDetails(document []byte) error {
	return validate(movieDetailsSchema, document)
}

// ValidateRecommendationsPage checks a recommendations page API response.
func ValidateRecommendationsPage(document []byte) error {
	return validate(recommendationsPageSchema, document)
}
