package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"moodprobe/domain/belief"
	"moodprobe/domain/core"
	apperrors "moodprobe/internal/errors"
)

type createSessionRequest struct {
	Criteria *belief.TerminationCriteria `json:"termination_criteria,omitempty"`
}

type responseRequest struct {
	QuestionID  string `json:"question_id"`
	OptionValue int    `json:"option_value"`
}

type metricsResponse struct {
	Metrics         belief.ConfidenceMetrics `json:"confidence_metrics"`
	QuestionsAsked  int                      `json:"questions_asked"`
	ShouldTerminate bool                     `json:"should_terminate"`
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, apperrors.CodeInvalidInput, "malformed request body")
			return
		}
	}
	sess, err := s.service.CreateSession(r.Context(), req.Criteria)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.logger.Info("session %s created (max %d questions)", sess.ID, sess.Criteria.MaxQuestions)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"session_id":           sess.ID,
		"termination_criteria": sess.Criteria,
		"confidence_metrics":   sess.Metrics,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, apperrors.CodeInvalidInput, err.Error())
		return
	}
	sess, err := s.service.GetSession(r.Context(), id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleNextQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, apperrors.CodeInvalidInput, err.Error())
		return
	}
	q, err := s.service.NextQuestion(r.Context(), id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	if q == nil {
		// Bank exhausted: the host should force resolution.
		writeJSON(w, http.StatusOK, map[string]interface{}{"question": nil, "exhausted": true})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"question": q, "exhausted": false})
}

func (s *Server) handleSubmitResponse(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, apperrors.CodeInvalidInput, err.Error())
		return
	}
	var req responseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, apperrors.CodeInvalidInput, "malformed request body")
		return
	}
	qid, err := core.ParseQuestionID(req.QuestionID)
	if err != nil {
		writeError(w, http.StatusBadRequest, apperrors.CodeInvalidInput, err.Error())
		return
	}
	metrics, err := s.service.SubmitResponse(r.Context(), id, qid, req.OptionValue)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	terminate, err := s.service.ShouldTerminate(r.Context(), id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	sess, err := s.service.GetSession(r.Context(), id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metricsResponse{
		Metrics:         metrics,
		QuestionsAsked:  len(sess.History),
		ShouldTerminate: terminate,
	})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, apperrors.CodeInvalidInput, err.Error())
		return
	}
	profile, err := s.service.Resolve(r.Context(), id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.logger.Info("session %s resolved to %s (confidence %.2f)", id, profile.Primary.ID, profile.Confidence)
	writeJSON(w, http.StatusOK, profile)
}

func sessionID(r *http.Request) (core.SessionID, error) {
	return core.ParseSessionID(chi.URLParam(r, "sessionID"))
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case core.IsNotFoundError(err):
		writeError(w, http.StatusNotFound, apperrors.CodeNotFound, err.Error())
	case core.IsInvalidResponseError(err):
		writeError(w, http.StatusUnprocessableEntity, apperrors.CodeInvalidInput, err.Error())
	case errors.Is(err, core.ErrSessionNotTerminated):
		writeError(w, http.StatusConflict, apperrors.CodeNotTerminated, err.Error())
	case errors.Is(err, core.ErrSessionTerminated):
		writeError(w, http.StatusConflict, apperrors.CodeTerminated, err.Error())
	default:
		s.logger.Error("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, apperrors.CodeInternal, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Error: message})
}
