package assertions

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// textDiff returns a unified diff when both values are multi-line strings,
// otherwise "". maxLines caps the diff; zero means no cap.
func textDiff(expected, actual any, maxLines int) string {
	e, ok := multiline(expected)
	if !ok {
		return ""
	}
	a, ok := multiline(actual)
	if !ok {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(e),
		B:        difflib.SplitLines(a),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  1,
	})
	if err != nil || diff == "" {
		return ""
	}

	lines := strings.Split(strings.TrimSuffix(diff, "\n"), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		more := len(lines) - maxLines
		lines = append(lines[:maxLines], fmt.Sprintf("... (%d more lines)", more))
	}
	return "diff:\n" + strings.Join(lines, "\n")
}

func multiline(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.String {
		return "", false
	}
	s := rv.String()
	return s, strings.Contains(s, "\n")
}
