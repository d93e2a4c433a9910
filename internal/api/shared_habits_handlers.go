package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitmon/internal/service"
	"github.com/limbo/habitmon/pkg/entity"
	"github.com/limbo/habitmon/pkg/httputil"
)

type InviteRequest struct {
	Invitee string `json:"invitee"`
	Text    string `json:"text"`
}

type RespondRequest struct {
	Accept bool `json:"accept"`
}

type CompleteSharedResponse struct {
	SharedHabit *entity.SharedHabit `json:"shared_habit"`
	Rewarded    bool                `json:"rewarded"`
}

func (s *Server) ListSharedHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, today, ok := userDay(w, r, logger, "list shared habits")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	list, err := s.sharedService.List(ctx, username, today)
	if err != nil {
		writeServiceError(w, logger, "list shared habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"shared_habits": list,
	})
}

func (s *Server) InviteSharedHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, err := GetUsernameFromContext(r)
	if err != nil {
		logger.Error("invite error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req InviteRequest
	if !decodeBody(w, r, logger, "invite", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	sh, err := s.sharedService.Invite(ctx, username, &service.InviteRequest{
		Invitee: req.Invitee,
		Text:    req.Text,
	})
	if err != nil {
		writeServiceError(w, logger, "invite", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, sh)
	logger.Info("shared habit invitation", slog.String("invitee", sh.Invitee))
}

func (s *Server) RespondSharedHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, err := GetUsernameFromContext(r)
	if err != nil {
		logger.Error("respond error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, ok := pathID(w, r, logger, "respond")
	if !ok {
		return
	}
	var req RespondRequest
	if !decodeBody(w, r, logger, "respond", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	sh, err := s.sharedService.Respond(ctx, username, id, req.Accept)
	if err != nil {
		writeServiceError(w, logger, "respond", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, sh)
}

func (s *Server) CancelSharedHabit(w http.ResponseWriter, r *http.Request) {
	s.sharedTransition(w, r, "cancel", s.sharedService.Cancel)
}

func (s *Server) ArchiveSharedHabit(w http.ResponseWriter, r *http.Request) {
	s.sharedTransition(w, r, "archive", s.sharedService.Archive)
}

func (s *Server) CompleteSharedHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, today, ok := userDay(w, r, logger, "complete shared habit")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "complete shared habit")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	sh, rewarded, err := s.sharedService.Complete(ctx, username, id, today)
	if err != nil {
		writeServiceError(w, logger, "complete shared habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CompleteSharedResponse{
		SharedHabit: sh,
		Rewarded:    rewarded,
	})
}

func (s *Server) sharedTransition(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	apply func(ctx context.Context, actor string, id uuid.UUID) (*entity.SharedHabit, error),
) {
	logger := GetLoggerFromCtx(r.Context())
	username, err := GetUsernameFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, ok := pathID(w, r, logger, op)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	sh, err := apply(ctx, username, id)
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, sh)
}
