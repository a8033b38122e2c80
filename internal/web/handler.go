package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/CryptoCardia/pilotroom-web/internal/checkout"
	"github.com/CryptoCardia/pilotroom-web/internal/middleware"
	"github.com/CryptoCardia/pilotroom-web/internal/pilots"
	"github.com/CryptoCardia/pilotroom-web/internal/resources"
	"github.com/CryptoCardia/pilotroom-web/internal/submissions"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxFormBytes = 64 << 10

const (
	msgSubmitted        = "Submitted! We'll be in touch."
	msgSubmitFailed     = "Submission failed. Please try again."
	msgCompanyRequired  = "Enter your company name before paying the listing fee."
	msgPaymentsDisabled = "Payments are not available right now."
	msgCheckoutFailed   = "Checkout failed. Please try again."
)

var pageFiles = map[View]string{
	ViewBrowse:    "browse.html",
	ViewCreate:    "create.html",
	ViewResources: "resources.html",
	ViewSuccess:   "success.html",
}

var pageTitles = map[View]string{
	ViewBrowse:    "Active Pilots",
	ViewCreate:    "Create Pilot Listing",
	ViewResources: "Pilot Resources",
	ViewSuccess:   "Payment received",
}

type page struct {
	View  View
	Title string
	Data  interface{}
}

type browseData struct {
	Selection  pilots.FilterSelection
	Visibility Visibility
	ToggleURL  string
	ClearURL   string
	Options    filterOptions
	Items      []pilots.ListingView
	Total      int
}

type flash struct {
	OK      bool
	Message string
}

type createData struct {
	Form    submissions.PilotSubmission
	Options formOptions
	Flash   *flash
	Fee     string
}

type resourcesData struct {
	Artifacts []resources.Artifact
	Note      resources.Note
}

type Handler struct {
	pilots      *pilots.Service
	submissions *submissions.Service
	checkout    *checkout.Service
	pages       map[View]*template.Template
	log         *slog.Logger
}

func NewHandler(p *pilots.Service, s *submissions.Service, c *checkout.Service, log *slog.Logger) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &Handler{
		pilots:      p,
		submissions: s,
		checkout:    c,
		pages:       pages,
		log:         log,
	}, nil
}

func parsePages() (map[View]*template.Template, error) {
	funcs := template.FuncMap{
		"badgeCSS":  badgeCSS,
		"checkMark": checkMark,
	}
	pages := make(map[View]*template.Template, len(pageFiles))
	for view, file := range pageFiles {
		t, err := template.New("layout").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		pages[view] = t
	}
	return pages, nil
}

func (h *Handler) Browse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel := pilots.SelectionFromQuery(q)
	vis := visibilityFromQuery(q)
	items := h.pilots.Browse(sel)
	h.logWithRequest(r).Info("web browse: ok", slog.Int("count", len(items)), slog.String("visibility", string(vis)))
	h.render(w, r, http.StatusOK, ViewBrowse, browseData{
		Selection:  sel,
		Visibility: vis,
		ToggleURL:  browseURL(sel, vis.Toggle()),
		ClearURL:   browseURL(pilots.DefaultSelection(), vis),
		Options:    newFilterOptions(sel),
		Items:      items,
		Total:      h.pilots.Total(),
	})
}

func (h *Handler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderCreate(w, r, http.StatusOK, submissions.NewForm(), nil)
}

func (h *Handler) CreateSubmit(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	form, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	outcome, _, err := h.submissions.Submit(ctx, form)
	if err != nil {
		log.Error("web create: email error", slog.String("error", err.Error()))
		h.renderCreate(w, r, http.StatusInternalServerError, form, &flash{Message: msgSubmitFailed})
		return
	}

	log.Info("web create: ok", slog.String("outcome", string(outcome)))
	h.renderCreate(w, r, http.StatusOK, submissions.NewForm(), &flash{OK: true, Message: msgSubmitted})
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	form, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	if !h.checkout.Enabled() {
		log.Error("web checkout: payments not configured")
		h.renderCreate(w, r, http.StatusInternalServerError, form, &flash{Message: msgPaymentsDisabled})
		return
	}
	if strings.TrimSpace(form.Company) == "" {
		log.Warn("web checkout: missing company")
		h.renderCreate(w, r, http.StatusBadRequest, form, &flash{Message: msgCompanyRequired})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	url, err := h.checkout.CreateSession(ctx, form.Company)
	if err != nil {
		msg := msgCheckoutFailed
		if errors.Is(err, checkout.ErrNotConfigured) {
			msg = msgPaymentsDisabled
		}
		log.Error("web checkout: session error", slog.String("error", err.Error()))
		h.renderCreate(w, r, http.StatusInternalServerError, form, &flash{Message: msg})
		return
	}

	log.Info("web checkout: redirect")
	http.Redirect(w, r, url, http.StatusSeeOther)
}

func (h *Handler) Resources(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, ViewResources, resourcesData{
		Artifacts: resources.Artifacts(),
		Note:      resources.WhyStandardized(),
	})
}

func (h *Handler) Success(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, ViewSuccess, nil)
}

func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) (submissions.PilotSubmission, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.logWithRequest(r).Warn("web form: invalid body")
		http.Error(w, "invalid form", http.StatusBadRequest)
		return submissions.PilotSubmission{}, false
	}
	return submissions.FormFromValues(r.PostForm), true
}

func (h *Handler) renderCreate(w http.ResponseWriter, r *http.Request, status int, form submissions.PilotSubmission, f *flash) {
	h.render(w, r, status, ViewCreate, createData{
		Form:    form,
		Options: newFormOptions(form),
		Flash:   f,
		Fee:     formatFee(checkout.ListingPriceCents),
	})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, view View, data interface{}) {
	t, ok := h.pages[view]
	if !ok {
		h.logWithRequest(r).Error("web render: unknown view", slog.String("view", string(view)))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page{View: view, Title: pageTitles[view], Data: data}); err != nil {
		h.logWithRequest(r).Error("web render: template error", slog.String("view", string(view)), slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func formatFee(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
