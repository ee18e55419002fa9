package handler

import (
	"encoding/json"
	"net/http"

	"github.com/karenpiper/movievibe/internal/service"
)

type OnboardingHandler struct {
	svc *service.OnboardingService
}

func NewOnboardingHandler(svc *service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{svc: svc}
}

func (h *OnboardingHandler) writeSession(w http.ResponseWriter, session *service.Session) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"session":           session,
		"current_movie":     session.CurrentMovie(),
		"current_dimension": session.CurrentDimension(),
	})
}

// @Summary Iniciar sesión de calibración
// @Tags onboarding
// @Produce json
// @Success 200 {object} service.Session
// @Security BearerAuth
// @Router /onboarding/start [post]
func (h *OnboardingHandler) Start(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	session, err := h.svc.Start(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeSession(w, session)
}

// @Summary Pasar de la bienvenida a la valoración
// @Tags onboarding
// @Produce json
// @Success 200 {object} service.Session
// @Security BearerAuth
// @Router /onboarding/begin [post]
func (h *OnboardingHandler) Begin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	session, err := h.svc.Begin(UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeSession(w, session)
}

type answerRequest struct {
	Value int `json:"value"`
}

// @Summary Responder la dimensión en curso (1-5)
// @Tags onboarding
// @Accept json
// @Produce json
// @Param body body answerRequest true "valor 1-5"
// @Success 200 {object} service.Session
// @Security BearerAuth
// @Router /onboarding/answer [post]
func (h *OnboardingHandler) Answer(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.svc.AnswerDimension(UserIDFromContext(r.Context()), req.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeSession(w, session)
}

type overallRequest struct {
	Overall int `json:"overall"`
}

// @Summary Cerrar la película en curso con estrellas 1-5
// @Tags onboarding
// @Accept json
// @Produce json
// @Param body body overallRequest true "estrellas 1-5"
// @Success 200 {object} service.Session
// @Security BearerAuth
// @Router /onboarding/overall [post]
func (h *OnboardingHandler) Overall(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req overallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.svc.SubmitOverall(UserIDFromContext(r.Context()), req.Overall)
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeSession(w, session)
}

// @Summary Saltear la película en curso
// @Tags onboarding
// @Produce json
// @Success 200 {object} service.Session
// @Security BearerAuth
// @Router /onboarding/skip [post]
func (h *OnboardingHandler) Skip(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	session, err := h.svc.Skip(UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeSession(w, session)
}

// @Summary Analizar la sesión y obtener el perfil de gustos
// @Tags onboarding
// @Produce json
// @Success 200 {object} models.OnboardingResult
// @Security BearerAuth
// @Router /onboarding/finish [post]
func (h *OnboardingHandler) Finish(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	result, err := h.svc.Finish(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(result)
}

// @Summary Estado de calibración del usuario
// @Tags onboarding
// @Produce json
// @Success 200 {object} map[string]any
// @Security BearerAuth
// @Router /onboarding/status [get]
func (h *OnboardingHandler) Status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	doc, err := h.svc.Completed(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"completed": doc != nil,
		"result":    doc,
	})
}

// @Summary Descartar la calibración guardada
// @Tags onboarding
// @Success 204
// @Security BearerAuth
// @Router /onboarding [delete]
func (h *OnboardingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context(), UserIDFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
