// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"camping_arequita/internal/app"
	"camping_arequita/internal/domain"
	"camping_arequita/internal/i18n"
)

type Handlers struct {
	G     *app.Gateway
	Lang  *app.PrefStore
	Theme *app.PrefStore
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/hero-images", h.heroImages)
	s.mux.Get("/v1/accommodations", h.listAccommodations)
	s.mux.Get("/v1/accommodations/featured", h.featuredAccommodations)
	s.mux.Get("/v1/testimonials", h.listTestimonials)
	s.mux.Post("/v1/pre-reservations", h.createPreReservation)
	s.mux.Post("/v1/suggestions", h.createSuggestion)
	s.mux.Get("/v1/translations", h.translations)
	s.mux.Get("/v1/preferences", h.getPreferences)
	s.mux.Put("/v1/preferences", h.putPreferences)
}

// lang resolves the request language: explicit param, then Accept-Language,
// then the stored preference.
func (h *Handlers) lang(r *http.Request) domain.Language {
	if p := r.URL.Query().Get("lang"); domain.ValidLanguage(p) {
		return domain.Language(p)
	}
	al := strings.ToLower(r.Header.Get("Accept-Language"))
	for _, l := range domain.Languages() {
		if strings.HasPrefix(al, string(l)) {
			return l
		}
	}
	return domain.Language(h.Lang.Get())
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
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// decorate mirrors the active preferences onto the response, the way the
// web client mirrors them onto the document element.
func (h *Handlers) decorate(w http.ResponseWriter, lang domain.Language) {
	w.Header().Set("Content-Language", string(lang))
	w.Header().Set("X-Theme", h.Theme.Get())
}

// ---- reads ----

func (h *Handlers) heroImages(w http.ResponseWriter, r *http.Request) {
	imgs := h.G.HeroImages(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"images": imgs})
}

func (h *Handlers) listAccommodations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lang := h.lang(r)

	criteria := app.DefaultCriteria()
	criteria.Query = q.Get("q")
	if t := q.Get("type"); t != "" {
		if t != domain.TypeAll && !domain.ValidType(t) {
			writeProblem(w, http.StatusBadRequest, "Invalid type", "type must be all, cabin, motorhome or camping")
			return
		}
		criteria.Type = t
	}
	if v := q.Get("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid min_price", "min_price must be a non-negative number")
			return
		}
		criteria.PriceFloor = f
	}
	if v := q.Get("max_price"); v != "" {
		// zero is rejected rather than passed through: the pipeline treats a
		// non-positive ceiling as "use the default bound"
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 || f < criteria.PriceFloor {
			writeProblem(w, http.StatusBadRequest, "Invalid max_price", "max_price must be a positive number >= min_price")
			return
		}
		criteria.PriceCeiling = f
	}
	switch q.Get("sort") {
	case "", string(app.SortPriceAsc):
		criteria.Sort = app.SortPriceAsc
	case string(app.SortPriceDesc):
		criteria.Sort = app.SortPriceDesc
	default:
		writeProblem(w, http.StatusBadRequest, "Invalid sort", "sort must be price-low or price-high")
		return
	}

	// A query that simply names a type in the page's language ("Cabañas",
	// "Camping Plots") acts as a type filter instead of a text match.
	if criteria.Type == domain.TypeAll && criteria.Query != "" {
		for _, t := range []domain.AccommodationType{domain.TypeCabin, domain.TypeMotorhome, domain.TypeCamping} {
			if strings.EqualFold(strings.TrimSpace(criteria.Query), i18n.TypeLabel(t, lang)) {
				criteria.Type = string(t)
				criteria.Query = ""
				break
			}
		}
	}

	// The backend gets q/type as hints, but the full local pipeline always
	// runs; server-side filtering is an optimization, not a dependency.
	base := h.G.Services(r.Context(), lang, criteria.Query, criteria.Type)
	items := app.Search(base, criteria)

	resp := map[string]any{"items": items, "count": len(items)}
	etag, body := calcETagAndBody(resp)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	h.decorate(w, lang)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write accommodations body")
	}
}

func (h *Handlers) featuredAccommodations(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)
	items := h.G.FeaturedServices(r.Context(), lang)
	h.decorate(w, lang)
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (h *Handlers) listTestimonials(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lang := h.lang(r)

	page := 1
	if v := q.Get("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			writeProblem(w, http.StatusBadRequest, "Invalid page", "page must be a positive integer")
			return
		}
		page = p
	}
	perPage := 8
	if v := q.Get("per_page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 || p > 50 {
			writeProblem(w, http.StatusBadRequest, "Invalid per_page", "per_page must be an integer between 1 and 50")
			return
		}
		perPage = p
	}

	out := h.G.Testimonials(r.Context(), lang, q.Get("service_id"), page, perPage)
	h.decorate(w, lang)
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) translations(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)
	resp := map[string]any{"lang": lang, "strings": i18n.Table(lang)}
	etag, body := calcETagAndBody(resp)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	h.decorate(w, lang)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write translations body")
	}
}

// ---- writes ----

func (h *Handlers) createPreReservation(w http.ResponseWriter, r *http.Request) {
	var req domain.PreReservation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be a pre-reservation JSON object")
		return
	}
	if !domain.ValidLanguage(req.Lang) {
		req.Lang = h.Lang.Get()
	}

	ack, err := h.G.SubmitPreReservation(r.Context(), req)
	if err != nil {
		h.writeSubmitError(w, err, "pre-reservation", domain.Language(req.Lang))
		return
	}
	if ack == nil {
		ack = domain.Ack{"status": "ok"}
	}
	writeJSON(w, http.StatusCreated, ack)
}

func (h *Handlers) createSuggestion(w http.ResponseWriter, r *http.Request) {
	var req domain.Suggestion
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be a suggestion JSON object")
		return
	}
	if !domain.ValidLanguage(req.Lang) {
		req.Lang = h.Lang.Get()
	}

	ack, err := h.G.SubmitSuggestion(r.Context(), req)
	if err != nil {
		h.writeSubmitError(w, err, "suggestion", domain.Language(req.Lang))
		return
	}
	if ack == nil {
		ack = domain.Ack{"status": "ok"}
	}
	writeJSON(w, http.StatusCreated, ack)
}

func (h *Handlers) writeSubmitError(w http.ResponseWriter, err error, what string, lang domain.Language) {
	var verr *app.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": verr.Fields})
	case errors.Is(err, app.ErrSubmissionInFlight):
		writeProblem(w, http.StatusConflict, "Already submitting", "an identical submission is still in flight")
	default:
		log.Error().Err(err).Str("form", what).Msg("submission failed")
		writeProblem(w, http.StatusBadGateway, "Submission failed", i18n.T("error", lang))
	}
}

// ---- preferences ----

func (h *Handlers) getPreferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"language": h.Lang.Get(),
		"theme":    h.Theme.Get(),
	})
}

func (h *Handlers) putPreferences(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Language string `json:"language"`
		Theme    string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be a preferences JSON object")
		return
	}
	if body.Language != "" {
		if err := h.Lang.Set(r.Context(), body.Language); err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid language", "language must be one of es, en, pt, zh")
			return
		}
	}
	if body.Theme != "" {
		if err := h.Theme.Set(r.Context(), body.Theme); err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid theme", "theme must be emerald or forest")
			return
		}
	}
	h.getPreferences(w, r)
}
