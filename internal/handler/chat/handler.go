package chat

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/solenechen/empath/internal/analysis/emotion"
	"github.com/solenechen/empath/internal/service/bot"
	chatservice "github.com/solenechen/empath/internal/service/chat"
	"github.com/solenechen/empath/pkg/utils"
)

// Handler exposes the conversation pipeline over HTTP.
type Handler struct {
	botSvc *bot.Service
}

// New creates the chat handler.
func New(botSvc *bot.Service) *Handler {
	return &Handler{botSvc: botSvc}
}

// RegisterRoutes mounts the chat endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Post("/session/{sessionID}/message", h.handleMessage)
	r.Get("/session/{sessionID}/transcript", h.handleTranscript)
	r.Get("/session/{sessionID}/analytics", h.handleAnalytics)
	r.Get("/session/{sessionID}/summary", h.handleSummary)
	r.Get("/session/{sessionID}/stream", h.handleStream)
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CulturalContext string `json:"culturalContext"`
	}

	// An empty body is fine: the session falls back to the default context.
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var cultural emotion.Context
	if payload.CulturalContext != "" {
		parsed, ok := emotion.ParseContext(payload.CulturalContext)
		if !ok {
			utils.RespondError(w, http.StatusBadRequest, "unknown cultural context")
			return
		}
		cultural = parsed
	}

	session, err := h.botSvc.CreateSession(r.Context(), cultural)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		Text            string `json:"text"`
		CulturalContext string `json:"culturalContext"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var override emotion.Context
	if payload.CulturalContext != "" {
		parsed, ok := emotion.ParseContext(payload.CulturalContext)
		if !ok {
			utils.RespondError(w, http.StatusBadRequest, "unknown cultural context")
			return
		}
		override = parsed
	}

	turn, err := h.botSvc.ProcessTurn(r.Context(), sessionID, payload.Text, override)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, turn)
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	turns, err := h.botSvc.Transcript(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, turns)
}

func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	window := 0
	if raw := r.URL.Query().Get("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondError(w, http.StatusBadRequest, "invalid window value")
			return
		}
		window = parsed
	}

	analytics, err := h.botSvc.Analytics(r.Context(), sessionID, window)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, analytics)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	summary, err := h.botSvc.Summary(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, summary)
}

// handleStream processes one message and emits the pipeline stages as SSE
// events, so the front-end can show classification before the reply.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	message := r.URL.Query().Get("message")
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	turn, err := h.botSvc.ProcessTurn(r.Context(), sessionID, message, "")
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.SetupSSEHeaders(w)
	utils.SendSSEEvent(w, flusher, "classification", turn.Classification)
	utils.SendSSEEvent(w, flusher, "response", map[string]string{
		"text":         turn.Response,
		"responseType": turn.ResponseType,
	})
	if turn.FollowUp != "" {
		utils.SendSSEEvent(w, flusher, "followUp", map[string]string{"text": turn.FollowUp})
	}
	utils.SendSSEEvent(w, flusher, "done", map[string]int{"turnIndex": turn.Index})
}

func respondServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, chatservice.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, chatservice.ErrUnknownContext):
		status = http.StatusBadRequest
	}
	utils.RespondError(w, status, err.Error())
}
