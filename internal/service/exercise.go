package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/andresmz/exercise-tracker/internal/model"
	"github.com/andresmz/exercise-tracker/internal/repository"
)

// DateLayout is the normalized rendering used for every stored activity
// date, e.g. "Wed May 01 2024". Storage and range filtering both operate on
// this format.
const DateLayout = "Mon Jan 02 2006"

// InvalidDateString is stored when a supplied date cannot be parsed.
// Malformed dates are kept, not rejected — the permissiveness is part of
// the contract, so don't "fix" it with strict validation.
const InvalidDateString = "Invalid Date"

// inputLayouts are the accepted formats for dates arriving from clients
// (and for re-parsing stored dates when filtering).
var inputLayouts = []string{
	"2006-01-02",
	DateLayout,
	time.RFC3339,
}

// ExerciseService records activities against users and serves filtered logs.
//
// It depends on the user repository (not just the activity repository)
// because every operation must resolve the owning user first: an activity
// without a valid owner cannot be created, and a log has no meaning without
// its user.
type ExerciseService struct {
	activities repository.ActivityRepository
	users      repository.UserRepository
	logger     *slog.Logger
}

func NewExerciseService(activities repository.ActivityRepository, users repository.UserRepository, logger *slog.Logger) *ExerciseService {
	return &ExerciseService{
		activities: activities,
		users:      users,
		logger:     logger,
	}
}

// Add records a new exercise for the given user.
//
// duration and date arrive as raw text and are coerced, never rejected:
// a non-numeric duration stores model.InvalidDuration, an unparseable date
// stores InvalidDateString, and a missing date means "today". The NotFound
// from an unknown userID propagates as-is; that is the only failure a
// well-formed request can hit.
//
// The returned view echoes the owning user's ID in _id (not the
// activity's) — callers read the response as the user plus the new
// exercise fields.
func (s *ExerciseService) Add(ctx context.Context, userID, description, duration, date string) (*model.ExerciseResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	activity := &model.Activity{
		Description: description,
		Duration:    coerceInt(duration),
		Date:        normalizeDate(date),
		Username:    user.Username,
		UserID:      user.ID,
	}

	if err := s.activities.Create(ctx, activity); err != nil {
		s.logger.Error("failed to create activity",
			slog.String("userId", user.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating activity: %w", err)
	}

	s.logger.Info("activity created",
		slog.String("id", activity.ID),
		slog.String("userId", user.ID),
		slog.String("date", activity.Date),
	)

	return &model.ExerciseResult{
		Username:    user.Username,
		Description: activity.Description,
		Duration:    activity.Duration,
		Date:        activity.Date,
		UserID:      user.ID,
	}, nil
}

// Logs returns the user's activities filtered by an optional inclusive date
// range and truncated to an optional limit.
//
// All of the user's activities are fetched and filtered here rather than in
// SQL: dates are stored as normalized strings, so range comparison needs
// them re-parsed as calendar dates. Filter semantics:
//
//   - from keeps entries on/after it, to keeps entries on/before it;
//   - an entry whose stored date cannot be re-parsed (i.e. "Invalid Date")
//     never satisfies a bound, so it disappears once a bound is given;
//   - a bound that itself cannot be parsed excludes everything;
//   - limit truncates AFTER filtering, preserving retrieval order; a
//     non-numeric limit truncates to zero entries.
//
// Empty strings mean "not provided".
func (s *ExerciseService) Logs(ctx context.Context, userID, from, to, limit string) (*model.LogView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	activities, err := s.activities.ListByUser(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to list activities",
			slog.String("userId", user.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing activities: %w", err)
	}

	var fromDate, toDate time.Time
	var fromOK, toOK bool
	if from != "" {
		fromDate, fromOK = parseDate(from)
	}
	if to != "" {
		toDate, toOK = parseDate(to)
	}

	entries := []model.LogEntry{}
	for _, a := range activities {
		if from != "" || to != "" {
			d, ok := parseDate(a.Date)
			if from != "" && (!ok || !fromOK || d.Before(fromDate)) {
				continue
			}
			if to != "" && (!ok || !toOK || d.After(toDate)) {
				continue
			}
		}
		entries = append(entries, model.LogEntry{
			Description: a.Description,
			Duration:    a.Duration,
			Date:        a.Date,
		})
	}

	if limit != "" {
		n := coerceInt(limit)
		if n < 0 {
			n = 0
		}
		if n < len(entries) {
			entries = entries[:n]
		}
	}

	return &model.LogView{
		UserID:   user.ID,
		Username: user.Username,
		Count:    len(entries),
		Log:      entries,
	}, nil
}

// coerceInt is a best-effort integer parse: it reads an optional sign and
// the leading run of digits, ignoring anything after them ("45" → 45,
// "45.9" → 45). When no leading integer exists it returns
// model.InvalidDuration rather than an error — malformed numbers are
// stored, not rejected.
func coerceInt(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	n := 0
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		digits++
		i++
	}
	if digits == 0 {
		return model.InvalidDuration
	}
	if neg {
		n = -n
	}
	return n
}

// normalizeDate maps a raw client date to the stored rendering: today when
// empty, the fixed DateLayout rendering when parseable, InvalidDateString
// otherwise.
func normalizeDate(date string) string {
	if date == "" {
		return time.Now().Format(DateLayout)
	}
	if t, ok := parseDate(date); ok {
		return t.Format(DateLayout)
	}
	return InvalidDateString
}

// parseDate tries each accepted layout in order.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
