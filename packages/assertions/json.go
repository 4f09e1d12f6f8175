package assertions

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/expect/packages/assert"
	"github.com/abdul-hamid-achik/expect/packages/report"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// Document is a JSON document held as text or bytes.
type Document interface {
	~string | ~[]byte
}

// JSONPath returns a subject for the value at a gjson path inside a JSON
// document. Numbers are float64, objects map[string]any and arrays []any.
// A missing path fails the returned subject.
//
//	assertions.IsEqualTo(assertions.JSONPath(body, "user.age"), any(30.0))
func JSONPath[D Document](s assert.Subject[D], path string) assert.Subject[any] {
	return assert.Transform(s, "."+path, func(actual D) (any, error) {
		doc := string(actual)
		if !gjson.Valid(doc) {
			return nil, report.Expected("to be valid JSON but was:" + report.Show(doc))
		}
		result := gjson.Get(doc, path)
		if !result.Exists() {
			return nil, report.Expected("to exist")
		}
		return result.Value(), nil
	})
}

// MatchesSchema asserts the document is valid against a JSON Schema given as
// text.
func MatchesSchema[D Document](s assert.Subject[D], schema string) {
	s.Given(func(actual D) error {
		result, err := gojsonschema.Validate(
			gojsonschema.NewStringLoader(schema),
			gojsonschema.NewStringLoader(string(actual)),
		)
		if err != nil {
			return fmt.Errorf("schema validation error: %w", err)
		}
		if result.Valid() {
			return nil
		}

		var errors []string
		for _, desc := range result.Errors() {
			errors = append(errors, desc.String())
		}
		return report.Expected("to match schema but:\n " + strings.Join(errors, "\n "))
	})
}
