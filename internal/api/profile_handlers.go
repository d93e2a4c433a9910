package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/habitmon/internal/service"
	"github.com/limbo/habitmon/pkg/httputil"
)

type HabitTextRequest struct {
	Text string `json:"text"`
}

type BoostRequest struct {
	// Null clears the boost
	HabitID *uuid.UUID `json:"habit_id"`
}

type AvatarRequest struct {
	Avatar string `json:"avatar"`
}

type CaptureRequest struct {
	Ball string `json:"ball"`
}

// userDay resolves authenticated username and client's date. Writes error response on failure
func userDay(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (string, civil.Date, bool) {
	username, err := GetUsernameFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return "", civil.Date{}, false
	}
	today, err := todayFromRequest(r)
	if err != nil {
		logger.Error(op + " error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		return "", civil.Date{}, false
	}
	return username, today, true
}

func pathID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid id in path value", nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, dst any) bool {
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Error(op + " error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, today, ok := userDay(w, r, logger, "get profile")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	profile, err := s.profileService.Get(ctx, username, today)
	if err != nil {
		writeServiceError(w, logger, "get profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
}

func (s *Server) GetLevel(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, today, ok := userDay(w, r, logger, "get level")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	info, err := s.profileService.Level(ctx, username, today)
	if err != nil {
		writeServiceError(w, logger, "get level", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, info)
}

func (s *Server) AddHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, today, ok := userDay(w, r, logger, "add habit")
	if !ok {
		return
	}
	var req HabitTextRequest
	if !decodeBody(w, r, logger, "add habit", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habit, err := s.profileService.AddHabit(ctx, username, today, &service.AddHabitRequest{Text: req.Text})
	if err != nil {
		writeServiceError(w, logger, "add habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
}

func (s *Server) AddProgressionHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, today, ok := userDay(w, r, logger, "add progression habit")
	if !ok {
		return
	}
	parentID, ok := pathID(w, r, logger, "add progression habit")
	if !ok {
		return
	}
	var req HabitTextRequest
	if !decodeBody(w, r, logger, "add progression habit", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habit, err := s.profileService.AddProgressionHabit(ctx, username, today, &service.AddProgressionHabitRequest{
		ParentID: parentID,
		Text:     req.Text,
	})
	if err != nil {
		writeServiceError(w, logger, "add progression habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
}

func (s *Server) RemoveHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, today, ok := userDay(w, r, logger, "remove habit")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "remove habit")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.profileService.RemoveHabit(ctx, username, today, id); err != nil {
		writeServiceError(w, logger, "remove habit", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (s *Server) CompleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, today, ok := userDay(w, r, logger, "complete habit")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "complete habit")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	res, err := s.profileService.CompleteHabit(ctx, username, today, id)
	if err != nil {
		writeServiceError(w, logger, "complete habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	if res.LeveledUp() {
		logger.Info("level up", slog.Int("level", res.LevelAfter))
	}
}

func (s *Server) SetBoostedHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, today, ok := userDay(w, r, logger, "set boost")
	if !ok {
		return
	}
	var req BoostRequest
	if !decodeBody(w, r, logger, "set boost", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.profileService.SetBoostedHabit(ctx, username, today, req.HabitID); err != nil {
		writeServiceError(w, logger, "set boost", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (s *Server) SetAvatar(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, today, ok := userDay(w, r, logger, "set avatar")
	if !ok {
		return
	}
	var req AvatarRequest
	if !decodeBody(w, r, logger, "set avatar", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.profileService.SetAvatar(ctx, username, today, &service.SetAvatarRequest{Avatar: req.Avatar}); err != nil {
		writeServiceError(w, logger, "set avatar", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (s *Server) Capture(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, today, ok := userDay(w, r, logger, "capture")
	if !ok {
		return
	}
	var req CaptureRequest
	if !decodeBody(w, r, logger, "capture", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	item, err := s.profileService.Capture(ctx, username, today, req.Ball)
	if err != nil {
		writeServiceError(w, logger, "capture", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, item)
}

func (s *Server) ClaimStreakRewards(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, today, ok := userDay(w, r, logger, "claim streak rewards")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	reward, err := s.profileService.ClaimStreakRewards(ctx, username, today)
	if err != nil {
		writeServiceError(w, logger, "claim streak rewards", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reward)
}

func (s *Server) SyncProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, err := GetUsernameFromContext(r)
	if err != nil {
		logger.Error("sync error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.profileService.Sync(ctx, username); err != nil {
		writeServiceError(w, logger, "sync", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (s *Server) PullProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, err := GetUsernameFromContext(r)
	if err != nil {
		logger.Error("pull error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	profile, err := s.profileService.Pull(ctx, username)
	if err != nil {
		writeServiceError(w, logger, "pull", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
}
