package schedule

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// closeDate is the end_date a superseded assignment receives: one day
// before the new period begins, so periods never overlap.
func closeDate(newStart time.Time) time.Time {
	return newStart.AddDate(0, 0, -1)
}

// backdated reports whether a new start date would close the open period
// before its own start. Reassignment is forward-only.
func backdated(openStart, newStart time.Time) bool {
	return !newStart.After(openStart)
}

// deriveStatus classifies a history row: a period is active while it has no
// end date or its end date has not passed yet. Scanned end dates are midnight
// DATE values, so the comparison is on calendar dates, not instants.
func deriveStatus(endDate *time.Time, today time.Time) string {
	if endDate == nil || endDate.Format(dateLayout) >= today.Format(dateLayout) {
		return "active"
	}
	return "completed"
}

func reduceOutcomes(outcomes []Outcome) (assigned, skipped int) {
	for _, o := range outcomes {
		if o.Assigned {
			assigned++
		} else {
			skipped++
		}
	}
	return assigned, skipped
}

func assignMessage(templateName string, assigned, skipped int) string {
	msg := fmt.Sprintf("График %q назначен %d сотрудникам", templateName, assigned)
	if skipped > 0 {
		msg += fmt.Sprintf(", пропущено %d сотрудников", skipped)
	}
	return msg
}
