// internal/common/validation/schema.go
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// matchRequestSchema is the boundary contract for POST /api/v1/match.
// Coordinates and delivery type are checked here before the body is decoded
// into a typed query; everything past this point works with structured types.
var matchRequestSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"user_latitude", "user_longitude", "delivery_type"},
	"properties": map[string]interface{}{
		"user_latitude": map[string]interface{}{
			"type":    "number",
			"minimum": -90,
			"maximum": 90,
		},
		"user_longitude": map[string]interface{}{
			"type":    "number",
			"minimum": -180,
			"maximum": 180,
		},
		"delivery_type": map[string]interface{}{
			"type": "string",
			"enum": []interface{}{"instant", "scheduled"},
		},
		"preferred_cuisine": map[string]interface{}{
			"type": "string",
		},
		"max_distance_km": map[string]interface{}{
			"type":             "number",
			"exclusiveMinimum": true,
			"minimum":          0,
		},
		"user_id": map[string]interface{}{
			"type": "string",
		},
	},
	"additionalProperties": false,
}

// ValidateMatchRequest validates a raw request body against the match
// request schema. Returns nil when valid, or an error listing every
// violated constraint.
func ValidateMatchRequest(body []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(matchRequestSchema)
	documentLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("request is not valid JSON: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("request validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}
