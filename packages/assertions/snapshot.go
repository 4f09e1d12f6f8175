package assertions

import (
	"github.com/abdul-hamid-achik/expect/packages/assert"
	"github.com/abdul-hamid-achik/expect/packages/report"
	"github.com/abdul-hamid-achik/expect/packages/snapshot"
)

// MatchesSnapshot asserts the value equals the snapshot stored under name in
// suite. Values are compared after a JSON round trip.
func MatchesSnapshot[T any](s assert.Subject[T], suite *snapshot.Suite, name string) {
	s.Given(func(actual T) error {
		result := suite.Compare(name, actual)
		if result.Passed {
			return nil
		}
		if result.Message != snapshot.MessageMismatch {
			return report.Expected("to match snapshot " + report.Show(name) + " but " + result.Message)
		}
		return report.Expected("to match snapshot " + report.Show(name) + ":" +
			report.Show(result.Expected, "<>") + " but was:" + report.Show(result.Actual, "<>"))
	})
}
