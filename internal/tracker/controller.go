package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/studiofront/designer-console/internal/models"

	"go.uber.org/zap"
)

// Guard errors raised before any gateway call is issued
var (
	ErrTagRequired        = errors.New("task tag is required")
	ErrTaskNotFound       = errors.New("task not found in tracker")
	ErrTaskNotRunning     = errors.New("task is not in progress")
	ErrTaskNotPaused      = errors.New("task is not paused")
	ErrTaskPaused         = errors.New("task is paused: resume it before ending")
	ErrTaskCompleted      = errors.New("task is already completed")
	ErrTransitionInFlight = errors.New("another transition for this task is still in flight")
)

// Gateway is the slice of the remote API the controller needs. Reads
// degrade to empty results; writes return errors.
type Gateway interface {
	GetTracker(ctx context.Context, trackerID string) *models.TimeTracker
	ListTasks(ctx context.Context, trackerID string) []models.TimeTrackerState
	ListTaskSessions(ctx context.Context, taskID string) []models.TimeTrackerSession
	CreateTask(ctx context.Context, trackerID, tag, note string) (*models.TimeTrackerState, error)
	PauseTask(ctx context.Context, taskID string) (*models.TimeTrackerState, error)
	ResumeTask(ctx context.Context, taskID string) (*models.TimeTrackerState, error)
	EndTask(ctx context.Context, taskID string) (*models.TimeTrackerState, error)
	SetOvertimeReason(ctx context.Context, trackerID, reason string) (*models.TimeTracker, error)
}

// Controller drives one tracker's tasks through their legal transitions
// and keeps the in-memory projection consistent with the server. The
// server owns all computed fields: every successful mutation triggers a
// full reload rather than a local patch.
type Controller struct {
	gateway   Gateway
	trackerID string
	logger    *zap.Logger

	mu       sync.RWMutex
	summary  *models.TimeTracker
	tasks    []models.TimeTrackerState
	sessions map[string][]models.TimeTrackerSession // loaded logs of expanded tasks
	expanded map[string]struct{}
	inflight map[string]struct{} // taskID (or tracker ID for create) -> transition outstanding
}

// NewController creates a controller for one tracker
func NewController(gateway Gateway, trackerID string, logger *zap.Logger) *Controller {
	return &Controller{
		gateway:   gateway,
		trackerID: trackerID,
		logger:    logger,
		sessions:  make(map[string][]models.TimeTrackerSession),
		expanded:  make(map[string]struct{}),
		inflight:  make(map[string]struct{}),
	}
}

// Refresh reloads the tracker summary, task list, and any expanded
// session logs from the server.
func (c *Controller) Refresh(ctx context.Context) {
	c.reloadAll(ctx)
}

// CreateTask opens a new task. The tag must be non-empty after trimming;
// validation failures never reach the gateway. On success the full
// projection is reloaded: the server computes durations and totals.
func (c *Controller) CreateTask(ctx context.Context, tag, note string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ErrTagRequired
	}

	if err := c.begin(c.trackerID); err != nil {
		return err
	}
	defer c.end(c.trackerID)

	if _, err := c.gateway.CreateTask(ctx, c.trackerID, tag, strings.TrimSpace(note)); err != nil {
		c.logger.Error("Failed to create task",
			zap.String("tracker_id", c.trackerID),
			zap.String("tag", tag),
			zap.Error(err),
		)
		return err
	}

	c.logger.Info("Task created",
		zap.String("tracker_id", c.trackerID),
		zap.String("tag", tag),
	)

	c.reloadAll(ctx)
	return nil
}

// Pause stops the task's open session. Only valid while in progress.
func (c *Controller) Pause(ctx context.Context, taskID string) error {
	task, err := c.findTask(taskID)
	if err != nil {
		return err
	}
	if task.Status != models.StatusInProgress {
		return ErrTaskNotRunning
	}

	return c.transition(ctx, taskID, "pause", c.gateway.PauseTask)
}

// Resume opens a new session under a paused task
func (c *Controller) Resume(ctx context.Context, taskID string) error {
	task, err := c.findTask(taskID)
	if err != nil {
		return err
	}
	if task.Status != models.StatusPaused {
		return ErrTaskNotPaused
	}

	return c.transition(ctx, taskID, "resume", c.gateway.ResumeTask)
}

// End closes the task terminally. A paused task must be resumed first:
// the server contract for ending a paused task is undefined, so the
// guard rejects it locally without issuing a call.
func (c *Controller) End(ctx context.Context, taskID string) error {
	task, err := c.findTask(taskID)
	if err != nil {
		return err
	}
	switch task.Status {
	case models.StatusPaused:
		return ErrTaskPaused
	case models.StatusCompleted:
		return ErrTaskCompleted
	}

	return c.transition(ctx, taskID, "end", c.gateway.EndTask)
}

// transition runs one guarded state change: single-flight per task,
// mutate, then reload everything as one unit of work. A failed call
// leaves the displayed state untouched.
func (c *Controller) transition(ctx context.Context, taskID, action string, call func(context.Context, string) (*models.TimeTrackerState, error)) error {
	if err := c.begin(taskID); err != nil {
		return err
	}
	defer c.end(taskID)

	if _, err := call(ctx, taskID); err != nil {
		c.logger.Error("Task transition failed",
			zap.String("task_id", taskID),
			zap.String("action", action),
			zap.Error(err),
		)
		return err
	}

	c.logger.Info("Task transition applied",
		zap.String("task_id", taskID),
		zap.String("action", action),
	)

	c.reloadAll(ctx)
	return nil
}

// SetOvertimeReason records the overtime reason on the tracker
func (c *Controller) SetOvertimeReason(ctx context.Context, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("overtime reason must not be empty")
	}

	updated, err := c.gateway.SetOvertimeReason(ctx, c.trackerID, reason)
	if err != nil {
		c.logger.Error("Failed to set overtime reason",
			zap.String("tracker_id", c.trackerID),
			zap.Error(err),
		)
		return err
	}

	c.mu.Lock()
	c.summary = updated
	c.mu.Unlock()

	return nil
}

// ExpandSessions marks a task's session log as visible and loads it.
// Once expanded, the log is re-fetched on every reload after a
// transition. Concurrent expansions of the same task collapse into one
// fetch.
func (c *Controller) ExpandSessions(ctx context.Context, taskID string) []models.TimeTrackerSession {
	key := "sessions:" + taskID

	c.mu.Lock()
	c.expanded[taskID] = struct{}{}
	if loaded, ok := c.sessions[taskID]; ok {
		c.mu.Unlock()
		return loaded
	}
	if _, pending := c.inflight[key]; pending {
		c.mu.Unlock()
		return nil
	}
	c.inflight[key] = struct{}{}
	c.mu.Unlock()

	log := c.gateway.ListTaskSessions(ctx, taskID)

	c.mu.Lock()
	delete(c.inflight, key)
	c.sessions[taskID] = log
	c.mu.Unlock()

	return log
}

// CollapseSessions hides a task's session log
func (c *Controller) CollapseSessions(taskID string) {
	c.mu.Lock()
	delete(c.expanded, taskID)
	delete(c.sessions, taskID)
	c.mu.Unlock()
}

// reloadAll refreshes summary and tasks concurrently: they land in
// disjoint state, so completion order is irrelevant. Session logs of
// expanded tasks are refreshed alongside. Returns once everything has
// settled, so the caller can turn off its loading indicator.
func (c *Controller) reloadAll(ctx context.Context) {
	c.mu.RLock()
	expanded := make([]string, 0, len(c.expanded))
	for taskID := range c.expanded {
		expanded = append(expanded, taskID)
	}
	c.mu.RUnlock()

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		if summary := c.gateway.GetTracker(ctx, c.trackerID); summary != nil {
			c.mu.Lock()
			c.summary = summary
			c.mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		tasks := c.gateway.ListTasks(ctx, c.trackerID)
		c.mu.Lock()
		c.tasks = tasks
		c.mu.Unlock()
	}()

	for _, taskID := range expanded {
		wg.Add(1)
		go func(taskID string) {
			defer wg.Done()
			log := c.gateway.ListTaskSessions(ctx, taskID)
			c.mu.Lock()
			c.sessions[taskID] = log
			c.mu.Unlock()
		}(taskID)
	}

	wg.Wait()
}

// begin claims the single-flight slot for a task. Duplicate concurrent
// invocations would create duplicate session boundaries server-side.
func (c *Controller) begin(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.inflight[key]; busy {
		return ErrTransitionInFlight
	}
	c.inflight[key] = struct{}{}
	return nil
}

func (c *Controller) end(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, key)
}

func (c *Controller) findTask(taskID string) (*models.TimeTrackerState, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.tasks {
		if c.tasks[i].ID == taskID {
			task := c.tasks[i]
			return &task, nil
		}
	}
	return nil, ErrTaskNotFound
}

// Summary returns the current tracker summary, nil before the first load
func (c *Controller) Summary() *models.TimeTracker {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.summary == nil {
		return nil
	}
	summary := *c.summary
	return &summary
}

// Tasks returns a snapshot of the task list
func (c *Controller) Tasks() []models.TimeTrackerState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.TimeTrackerState, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Sessions returns the loaded session log of a task, nil when the log is
// not expanded or not yet loaded.
func (c *Controller) Sessions(taskID string) []models.TimeTrackerSession {
	c.mu.RLock()
	defer c.mu.RUnlock()

	log, ok := c.sessions[taskID]
	if !ok {
		return nil
	}
	out := make([]models.TimeTrackerSession, len(log))
	copy(out, log)
	return out
}
