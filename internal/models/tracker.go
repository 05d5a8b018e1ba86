package models

import "time"

// TaskStatus constants matching the backend TimeTrackerState status enum
const (
	StatusInProgress = "inProgress"
	StatusPaused     = "paused"
	StatusCompleted  = "completed"
)

// Overtime holds the overtime flag and the designer-supplied reason
type Overtime struct {
	IsOverTime bool   `json:"isOverTime"`
	Reason     string `json:"reason,omitempty"`
}

// TrackerProject is the project reference embedded in a tracker
type TrackerProject struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	CustomerName string `json:"customerName"`
}

// TimeTracker represents one designer's time allocation against one project.
// All computed fields (totalTimeSpend in particular) are owned by the
// backend; the client never mutates them locally.
type TimeTracker struct {
	ID                 string         `json:"_id"`
	TotalTimeSpend     int64          `json:"totalTimeSpend"`     // seconds
	MaximumTimeSeconds int64          `json:"maximumTimeSeconds"` // seconds
	OverTime           Overtime       `json:"overTime"`
	Project            TrackerProject `json:"project"`
}

// TimeRemaining returns the remaining budget in seconds. Negative means
// the tracker is in overtime.
func (t *TimeTracker) TimeRemaining() int64 {
	return t.MaximumTimeSeconds - t.TotalTimeSpend
}

// IsOvertime reports whether the accumulated time exceeds the budget.
func (t *TimeTracker) IsOvertime() bool {
	return t.TimeRemaining() < 0
}

// DisplayRemaining returns the value to render for the remaining/overtime
// cell: the absolute remaining time in seconds.
func (t *TimeTracker) DisplayRemaining() int64 {
	remaining := t.TimeRemaining()
	if remaining < 0 {
		return -remaining
	}
	return remaining
}

// TimeTrackerState is one named unit of work ("task") within a tracker
type TimeTrackerState struct {
	ID        string     `json:"_id"`
	Tracker   string     `json:"tracker"`
	Tag       string     `json:"tag"`
	Note      string     `json:"note,omitempty"`
	Status    string     `json:"status"`
	Duration  int64      `json:"duration"` // seconds, sum of session durations
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}

// IsRunning reports whether the task currently has an open session
func (s *TimeTrackerState) IsRunning() bool {
	return s.Status == StatusInProgress
}

// TimeTrackerSession is one contiguous interval of active work under a
// task. EndTime absent means the session is still open.
type TimeTrackerSession struct {
	ID        string     `json:"_id"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Duration  int64      `json:"duration"` // seconds, computed server-side on close
}

// DesignerProfile holds the display identity of a designer
type DesignerProfile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Name      string `json:"name"`
}

// Designer is the designer reference embedded in admin tracker rows
type Designer struct {
	ID      string          `json:"_id"`
	Profile DesignerProfile `json:"profile"`
}

// AdminTimeTracker is the enriched read-only projection used by the admin
// dashboard. It is denormalized server-side; its shape is independent of
// TimeTracker and must not be assumed to match it.
type AdminTimeTracker struct {
	ID                 string   `json:"_id"`
	ProjectName        string   `json:"projectName"`
	Customer           string   `json:"customer"`
	Designer           Designer `json:"designer"`
	HourlyRate         float64  `json:"hourlyRate"`
	Earnings           float64  `json:"earnings"`
	Budget             float64  `json:"budget"`
	TotalTimeSpend     int64    `json:"totalTimeSpend"`
	MaximumTimeSeconds int64    `json:"maximumTimeSeconds"`
	OverTime           Overtime `json:"overTime"`
}

// TimeRemaining returns the remaining budget in seconds for the admin view.
func (t *AdminTimeTracker) TimeRemaining() int64 {
	return t.MaximumTimeSeconds - t.TotalTimeSpend
}

// IsOvertime reports whether the accumulated time exceeds the budget.
func (t *AdminTimeTracker) IsOvertime() bool {
	return t.TimeRemaining() < 0
}

// DateRange is a half-open text date filter used by the admin search.
// Empty strings mean unbounded.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
