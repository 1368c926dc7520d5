package portfolio

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/aging-atlas/pkg/adapters"
	"github.com/de-tools/aging-atlas/pkg/models/api"
	"github.com/de-tools/aging-atlas/pkg/models/domain"
	"github.com/de-tools/aging-atlas/pkg/services/aging"
)

// Query defaults of the series endpoint.
const (
	defaultSheet     = domain.SheetPSD
	defaultBucket    = domain.Bucket1To5
	defaultYearFrom  = 2024
	defaultYearTo    = 2026
	defaultMonthFrom = 1
	defaultMonthTo   = 12
)

type Handler struct {
	explorer aging.Explorer
}

func NewHandler(explorer aging.Explorer) *Handler {
	return &Handler{explorer: explorer}
}

func (h *Handler) ListSheets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, adapters.MapCatalog(domain.Sheets, domain.Buckets))
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sheet := stringParam(r, "sheet", string(defaultSheet))

	products, err := h.explorer.ListProducts(ctx, sheet)
	if err != nil {
		writeError(w, r, err, "failed to list products")
		return
	}
	writeJSON(w, r, http.StatusOK, api.Products{Products: products})
}

func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := domain.SeriesQuery{
		Sheet:     stringParam(r, "sheet", string(defaultSheet)),
		Product:   r.URL.Query().Get("product"),
		Bucket:    stringParam(r, "bucket", string(defaultBucket)),
		YearFrom:  intParam(r, "year_from", defaultYearFrom),
		YearTo:    intParam(r, "year_to", defaultYearTo),
		MonthFrom: intParam(r, "month_from", defaultMonthFrom),
		MonthTo:   intParam(r, "month_to", defaultMonthTo),
	}

	series, err := h.explorer.GetSeries(ctx, q)
	if err != nil {
		writeError(w, r, err, "failed to get series")
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapSeries(series))
}

func (h *Handler) GetSheetMetadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sheet := chi.URLParam(r, "sheet")

	meta, err := h.explorer.GetSheetMetadata(ctx, sheet)
	if err != nil {
		writeError(w, r, err, "failed to get sheet metadata")
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapSheetMetadata(meta))
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	values := r.URL.Query()
	q := domain.DashboardQuery{
		Sheet:     values.Get("sheet"),
		Product:   values.Get("product"),
		Bucket:    values.Get("bucket"),
		YearFrom:  optionalIntParam(r, "year_from"),
		YearTo:    optionalIntParam(r, "year_to"),
		MonthFrom: optionalIntParam(r, "month_from"),
		MonthTo:   optionalIntParam(r, "month_to"),
	}

	view, err := h.explorer.GetDashboard(ctx, q)
	if err != nil {
		writeError(w, r, err, "failed to build dashboard")
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapDashboard(view))
}

func stringParam(r *http.Request, name, fallback string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return fallback
}

// intParam falls back on absent and non-integer values alike.
func intParam(r *http.Request, name string, fallback int) int {
	if v := optionalIntParam(r, name); v != nil {
		return *v
	}
	return fallback
}

func optionalIntParam(r *http.Request, name string) *int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return nil
	}
	return &v
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)
	writeJSON(w, r, http.StatusInternalServerError, api.Error{Error: err.Error()})
}
