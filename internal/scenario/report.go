package scenario

import (
	"fmt"
	"io"
)

// Summary counts passed and failed scenarios.
type Summary struct {
	Passed int
	Failed int
}

// Report writes one line per result and an indented line per failure.
func Report(w io.Writer, results []*Result) (Summary, error) {
	var sum Summary
	for _, res := range results {
		status := "PASS"
		if res.Passed() {
			sum.Passed++
		} else {
			status = "FAIL"
			sum.Failed++
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", status, res.Name); err != nil {
			return sum, err
		}
		for _, step := range res.Steps {
			for _, f := range step.Failures {
				if _, err := fmt.Fprintf(w, "    step %d (%s): %s\n", step.Index, step.Action, f); err != nil {
					return sum, err
				}
			}
		}
	}
	return sum, nil
}
