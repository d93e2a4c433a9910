package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	errorvalues "github.com/limbo/habitmon/internal/error_values"
	"github.com/limbo/habitmon/pkg/httputil"
)

var (
	badRequestErrors = []error{
		errorvalues.ErrValidation,
		errorvalues.ErrSelfInvite,
		errorvalues.ErrInvalidDate,
		errorvalues.ErrUnknownBallTier,
	}
	notFoundErrors = []error{
		errorvalues.ErrHabitNotFound,
		errorvalues.ErrSharedHabitNotFound,
		errorvalues.ErrUserNotFound,
		errorvalues.ErrProfileNotFound,
	}
	conflictErrors = []error{
		errorvalues.ErrAlreadyCompleted,
		errorvalues.ErrSharedHabitExists,
		errorvalues.ErrWrongActor,
		errorvalues.ErrNotParticipant,
		errorvalues.ErrInvalidTransition,
		errorvalues.ErrNotEnoughBalls,
		errorvalues.ErrStaleSharedHabit,
		errorvalues.ErrUserExists,
		errorvalues.ErrProfileExists,
	}
)

// statusFor maps service error to response status. Unknown errors are persistence failures
func statusFor(err error) int {
	switch {
	case isAny(err, badRequestErrors):
		return http.StatusBadRequest
	case isAny(err, notFoundErrors):
		return http.StatusNotFound
	case isAny(err, conflictErrors):
		return http.StatusConflict
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// writeServiceError logs err and responds with its status. Internal details are not exposed
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, status, "internal error", nil)
		return
	}
	logger.Error(op+" error: "+err.Error(), slog.Int("status", status))
	httputil.WriteErrorResponse(w, status, err.Error(), nil)
}

const maxDateSkewDays = 1

// todayFromRequest reads client's local date from "date" query parameter.
// Server's local date is used when parameter is missing.
func todayFromRequest(r *http.Request) (civil.Date, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return civil.DateOf(time.Now()), nil
	}
	d, err := civil.ParseDate(raw)
	if err != nil {
		return civil.Date{}, errorvalues.ErrInvalidDate
	}
	// client's zone may put it a day off server's date, never more
	server := civil.DateOf(time.Now())
	if d.DaysSince(server) > maxDateSkewDays || server.DaysSince(d) > maxDateSkewDays {
		return civil.Date{}, errorvalues.ErrInvalidDate
	}
	return d, nil
}
