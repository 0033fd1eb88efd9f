// Package server exposes the estimation engine over HTTP: a server-rendered
// form plus a small JSON API.
package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/swcost/cocomo-estimate/internal/catalog"
	"github.com/swcost/cocomo-estimate/internal/config"
	"github.com/swcost/cocomo-estimate/internal/engine"
)

//go:embed templates/index.html.tmpl
var templateFiles embed.FS

type handler struct {
	logger   *zap.Logger
	defaults config.FormDefaults
	version  string
	tmpl     *template.Template
}

// NewHandler constructs the HTTP handler that serves the web UI and the
// estimation API. defaults prefill the form when no values have been
// submitted yet.
func NewHandler(logger *zap.Logger, defaults config.FormDefaults, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	tmpl := template.Must(template.ParseFS(templateFiles, "templates/index.html.tmpl"))

	h := &handler{logger: logger, defaults: defaults, version: trimmedVersion, tmpl: tmpl}

	mux := http.NewServeMux()

	// Web form (GET) and form submission (POST)
	mux.HandleFunc("/", h.handleIndex)

	// Estimation API endpoint for programmatic callers
	mux.HandleFunc("/api/estimate", h.handleEstimate)

	// Catalog endpoint so clients can build their own selection controls
	mux.HandleFunc("/api/catalog", h.handleCatalog)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.renderPage(w, h.defaultFormValues(), nil, "")
	case http.MethodPost:
		h.handleFormSubmit(w, r)
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if err := r.ParseForm(); err != nil {
		h.renderPage(w, h.defaultFormValues(), nil, fmt.Sprintf("failed to parse form: %v", err))
		return
	}

	values := readFormValues(r)
	input, err := values.toInput()
	if err != nil {
		h.logger.Warn("form input rejected",
			zap.String("op", "server.handleFormSubmit"),
			zap.String("error", err.Error()),
		)
		h.renderPage(w, values, nil, err.Error())
		return
	}

	result, err := engine.Estimate(input)
	if err != nil {
		h.logger.Warn("estimate rejected",
			zap.String("op", "server.handleFormSubmit"),
			zap.String("error", err.Error()),
		)
		h.renderPage(w, values, nil, err.Error())
		return
	}

	h.logger.Info("estimate computed",
		zap.String("op", "server.handleFormSubmit"),
		zap.String("mode", string(input.Mode)),
		zap.Float64("sizeKloc", input.SizeKLOC),
		zap.Duration("duration", time.Since(start)),
	)

	h.renderPage(w, values, result, "")
}

type estimateRequest struct {
	SizeKloc         float64            `json:"sizeKloc"`
	Mode             string             `json:"mode"`
	Drivers          map[string]float64 `json:"drivers"`
	MonthlyLaborCost float64            `json:"monthlyLaborCost"`
}

type estimateResponse struct {
	EffortPersonMonths float64 `json:"effortPersonMonths"`
	DurationMonths     float64 `json:"durationMonths"`
	AverageStaffing    float64 `json:"averageStaffing"`
	TotalCost          float64 `json:"totalCost"`
	EAF                float64 `json:"eaf"`
	SizeKloc           float64 `json:"sizeKloc"`
	Mode               string  `json:"mode"`
}

func (h *handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleEstimate")
		return
	}

	result, err := engine.Estimate(engine.Input{
		SizeKLOC:         req.SizeKloc,
		Mode:             catalog.Mode(req.Mode),
		Drivers:          req.Drivers,
		MonthlyLaborCost: req.MonthlyLaborCost,
	})
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleEstimate")
		return
	}

	h.logger.Info("estimate computed",
		zap.String("op", "server.handleEstimate"),
		zap.String("mode", req.Mode),
		zap.Float64("sizeKloc", req.SizeKloc),
		zap.Duration("duration", time.Since(start)),
	)

	h.writeJSON(w, http.StatusOK, estimateResponse{
		EffortPersonMonths: result.EffortPersonMonths,
		DurationMonths:     result.DurationMonths,
		AverageStaffing:    result.AverageStaffing,
		TotalCost:          result.TotalCost,
		EAF:                result.EAF,
		SizeKloc:           result.SizeKLOC,
		Mode:               result.Mode,
	})
}

type catalogMode struct {
	Key    string         `json:"key"`
	Name   string         `json:"name"`
	Params catalog.Params `json:"params"`
}

type catalogLevel struct {
	Code       string  `json:"code"`
	Multiplier float64 `json:"multiplier"`
}

type catalogDriver struct {
	Key     string         `json:"key"`
	Name    string         `json:"name"`
	Nominal float64        `json:"nominal"`
	Levels  []catalogLevel `json:"levels"`
}

type catalogResponse struct {
	Modes   []catalogMode   `json:"modes"`
	Drivers []catalogDriver `json:"drivers"`
}

func (h *handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	resp := catalogResponse{}
	for _, mode := range catalog.Modes() {
		params, err := catalog.ModeParams(mode)
		if err != nil {
			continue
		}
		resp.Modes = append(resp.Modes, catalogMode{
			Key:    string(mode),
			Name:   mode.DisplayName(),
			Params: params,
		})
	}
	for _, driver := range catalog.Drivers() {
		levels := make([]catalogLevel, 0, len(driver.Levels))
		for _, level := range driver.Levels {
			levels = append(levels, catalogLevel{Code: level.Code, Multiplier: level.Multiplier})
		}
		resp.Drivers = append(resp.Drivers, catalogDriver{
			Key:     driver.Key,
			Name:    driver.Name,
			Nominal: driver.Nominal,
			Levels:  levels,
		})
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("estimate request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
