// internal/adapters/http_server/handlers.go
package httpserver

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"reviews_carousel/internal/app"
	"reviews_carousel/internal/domain"
	"reviews_carousel/internal/render"
)

type Handlers struct {
	W        *app.Widget
	Settings *app.Settings
	Themes   *app.ThemeService
	Doc      *render.Document
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.page)

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/reviews", h.getReviews)
		r.Post("/reviews/next", h.next)
		r.Post("/reviews/previous", h.previous)
		r.Post("/reviews/pages/{index}", h.goTo)
		r.Post("/reviews/refresh", h.refresh)
		r.Put("/viewport", h.resize)
		r.Get("/summary", h.summary)
		r.Get("/status", h.status)

		r.Get("/config", h.getConfig)
		r.Put("/config", h.putConfig)
		r.Delete("/config", h.deleteConfig)
		r.Post("/config/fallback", h.useFallback)

		r.Get("/themes", h.listThemes)
		r.Get("/theme", h.getTheme)
		r.Put("/theme", h.putTheme)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body
}

// wantsHTML is true for plain form posts from the widget page.
func wantsHTML(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data")
}

// afterMutation redirects form posts back to the page and answers API calls with the view.
func (h *Handlers) afterMutation(w http.ResponseWriter, r *http.Request, moved bool) {
	if wantsHTML(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Moved bool            `json:"moved"`
		View  domain.PageView `json:"view"`
	}{moved, h.W.View()})
}

func (h *Handlers) page(w http.ResponseWriter, r *http.Request) {
	st, err := h.Settings.Status(r.Context())
	if err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Settings Unavailable", err.Error())
		return
	}
	var buf bytes.Buffer
	if err := render.WriteHTML(&buf, render.Page{
		Snapshot:   h.Doc.Snapshot(),
		Theme:      h.Themes.Info(),
		UsingDummy: st.UsingFallback,
	}); err != nil {
		log.Error().Err(err).Msg("render widget page failed")
		writeProblem(w, http.StatusInternalServerError, "Render Failed", "")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Error().Err(err).Msg("failed to write page body")
	}
}

func (h *Handlers) getReviews(w http.ResponseWriter, r *http.Request) {
	etag, body := calcETagAndBody(h.Doc.Snapshot())
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getReviews body")
	}
}

func (h *Handlers) next(w http.ResponseWriter, r *http.Request) {
	h.afterMutation(w, r, h.W.Next())
}

func (h *Handlers) previous(w http.ResponseWriter, r *http.Request) {
	h.afterMutation(w, r, h.W.Previous())
}

// goTo silently ignores out-of-range pages; only a non-numeric index is a client error.
func (h *Handlers) goTo(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Page", "index must be an integer")
		return
	}
	h.afterMutation(w, r, h.W.GoTo(i))
}

func (h *Handlers) refresh(w http.ResponseWriter, r *http.Request) {
	res := h.W.Refresh(r.Context())
	if wantsHTML(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if res.Err != nil {
		writeProblem(w, http.StatusBadGateway, "Load Failed", res.Err.Error())
		return
	}
	if res.Empty() {
		writeProblem(w, http.StatusNotFound, "No Reviews", domain.ErrEmptyResult.Error())
		return
	}
	out := struct {
		Origin  app.Origin      `json:"origin"`
		Cause   string          `json:"fallbackCause,omitempty"`
		Summary domain.Summary  `json:"summary"`
		View    domain.PageView `json:"view"`
	}{Origin: res.Origin, Summary: h.W.Summary(), View: h.W.View()}
	if res.Cause != nil {
		out.Cause = res.Cause.Error()
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) resize(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Width int `json:"width"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Width <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid Viewport", "width must be a positive integer")
		return
	}
	size := h.W.Resize(in.Width)
	writeJSON(w, http.StatusOK, struct {
		PageSize int             `json:"pageSize"`
		View     domain.PageView `json:"view"`
	}{size, h.W.View()})
}

func (h *Handlers) summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.W.Summary())
}

func (h *Handlers) status(w http.ResponseWriter, r *http.Request) {
	st, err := h.W.Status(r.Context())
	if err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Settings Unavailable", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *Handlers) getConfig(w http.ResponseWriter, r *http.Request) {
	st, err := h.Settings.Status(r.Context())
	if err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Settings Unavailable", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *Handlers) putConfig(w http.ResponseWriter, r *http.Request) {
	var in struct {
		APIKey  string `json:"apiKey"`
		PlaceID string `json:"placeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "expected JSON with apiKey and placeId")
		return
	}
	if err := h.Settings.Save(r.Context(), in.APIKey, in.PlaceID); err != nil {
		if errors.Is(err, domain.ErrConfigIncomplete) {
			writeProblem(w, http.StatusUnprocessableEntity, "Incomplete Configuration", err.Error())
			return
		}
		writeProblem(w, http.StatusServiceUnavailable, "Settings Unavailable", err.Error())
		return
	}
	h.getConfig(w, r)
}

func (h *Handlers) deleteConfig(w http.ResponseWriter, r *http.Request) {
	if err := h.Settings.Clear(r.Context()); err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Settings Unavailable", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) useFallback(w http.ResponseWriter, r *http.Request) {
	h.Settings.UseFallback()
	h.getConfig(w, r)
}

func (h *Handlers) listThemes(w http.ResponseWriter, r *http.Request) {
	out := make([]domain.Transition, 0, len(domain.Themes))
	for _, t := range domain.Themes {
		out = append(out, t.Transition())
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Themes.Info())
}

// putTheme accepts either {"theme":"light"} or {"shortcut":2}.
func (h *Handlers) putTheme(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Theme    string `json:"theme"`
		Shortcut int    `json:"shortcut"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "expected JSON with theme or shortcut")
		return
	}

	var (
		tr      domain.Transition
		changed bool
		err     error
	)
	if in.Shortcut != 0 {
		tr, changed, err = h.Themes.SwitchByShortcut(r.Context(), in.Shortcut)
	} else {
		var t domain.Theme
		if t, err = domain.ParseTheme(in.Theme); err == nil {
			tr, changed, err = h.Themes.Switch(r.Context(), t)
		}
	}
	if err != nil {
		if errors.Is(err, domain.ErrUnknownTheme) {
			writeProblem(w, http.StatusBadRequest, "Unknown Theme", err.Error())
			return
		}
		writeProblem(w, http.StatusServiceUnavailable, "Settings Unavailable", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Changed    bool              `json:"changed"`
		Transition domain.Transition `json:"transition"`
	}{changed, tr})
}
