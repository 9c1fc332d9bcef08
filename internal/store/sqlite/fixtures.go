package sqlite

import (
	"fmt"
	"time"

	"github.com/rsoler/chores-tui/internal/task"
)

// CreateFixturesDatabase creates a test database with realistic sample data.
func CreateFixturesDatabase(dbPath string) error {
	// Initialize empty database
	if err := Initialize(dbPath); err != nil {
		return fmt.Errorf("initializing fixtures database: %w", err)
	}

	// Open database to add test data
	ts, err := Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening fixtures database: %w", err)
	}
	defer ts.Close()

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	twoHoursAgo := now.Add(-2 * time.Hour)

	fixtures := []task.Task{
		// Pending chores
		{
			Description:     "Water plants",
			DurationMinutes: 10,
			PeriodMinutes:   1440, // daily
			Importance:      task.ImportanceMedium,
			State:           task.StatePending,
		},
		{
			Description:     "Clean bathroom",
			DurationMinutes: 45,
			PeriodMinutes:   10080, // weekly
			Importance:      task.ImportanceHigh,
			State:           task.StatePending,
		},
		{
			Description:     "Take out recycling",
			DurationMinutes: 5,
			PeriodMinutes:   4320, // every 3 days
			Importance:      task.ImportanceLow,
			State:           task.StatePending,
		},
		{
			Description:     "Review budget",
			DurationMinutes: 30,
			PeriodMinutes:   20160, // every 2 weeks
			Importance:      task.ImportanceHigh,
			State:           task.StatePending,
		},

		// Recently completed chores
		{
			Description:     "Do laundry",
			DurationMinutes: 60,
			PeriodMinutes:   10080,
			Importance:      task.ImportanceMedium,
			State:           task.StateUpToDate,
			LastCompletedAt: &yesterday,
		},
		{
			Description:     "Feed sourdough starter",
			DurationMinutes: 5,
			PeriodMinutes:   720, // every 12 hours
			Importance:      task.ImportanceHigh,
			State:           task.StateUpToDate,
			LastCompletedAt: &twoHoursAgo,
		},
	}

	for _, t := range fixtures {
		if _, err := ts.Add(t); err != nil {
			return fmt.Errorf("adding fixture %q: %w", t.Description, err)
		}
	}

	return nil
}
