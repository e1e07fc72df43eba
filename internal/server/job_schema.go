// internal/server/job_schema.go
package server

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apperrors "jobportal-gateway/internal/common/errors"
)

// jobPostingSchema describes the shape the post-job form must produce before
// the gateway forwards it upstream.
var jobPostingSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"title":       map[string]interface{}{"type": "string", "minLength": 1},
		"description": map[string]interface{}{"type": "string", "minLength": 1},
		"location":    map[string]interface{}{"type": "string"},
		"country":     map[string]interface{}{"type": "string"},
		"state":       map[string]interface{}{"type": "string"},
		"city":        map[string]interface{}{"type": "string"},
		"requirements": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string"},
		},
		"type": map[string]interface{}{
			"type": "string",
			"enum": []string{"full-time", "part-time", "contract", "internship"},
		},
		"experience": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"min": map[string]interface{}{"type": "integer", "minimum": 0},
				"max": map[string]interface{}{"type": "integer", "minimum": 0},
			},
			"required": []string{"min", "max"},
		},
		"salary": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"min":      map[string]interface{}{"type": "integer"},
				"max":      map[string]interface{}{"type": "integer"},
				"currency": map[string]interface{}{"type": "string"},
			},
		},
	},
	"required": []string{"title", "description", "type", "experience"},
}

// validateJobPayload checks a raw post-job body against the posting schema
// and folds all violations into one validation error.
func validateJobPayload(raw []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(jobPostingSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return apperrors.NewValidationFailedError(err.Error())
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return apperrors.NewValidationFailedError(strings.Join(details, "; "))
}

func jsonUnmarshal(raw []byte, out interface{}) error {
	return json.Unmarshal(raw, out)
}
