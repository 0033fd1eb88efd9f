package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/swcost/cocomo-estimate/internal/catalog"
	"github.com/swcost/cocomo-estimate/internal/engine"
	"github.com/swcost/cocomo-estimate/pkg/mathutil"
	"github.com/swcost/cocomo-estimate/pkg/output"
	"github.com/swcost/cocomo-estimate/pkg/validation"
)

// formValues echoes the raw submitted strings back into the template so a
// rejected form keeps the user's entries.
type formValues struct {
	KLOC    string
	Cost    string
	Mode    string
	Drivers map[string]string // driver key -> selected multiplier as string
}

func (h *handler) defaultFormValues() formValues {
	values := formValues{
		KLOC:    strconv.FormatFloat(h.defaults.SizeKLOC, 'f', -1, 64),
		Cost:    strconv.FormatFloat(h.defaults.MonthlyLaborCost, 'f', -1, 64),
		Mode:    string(catalog.ModeOrganic),
		Drivers: make(map[string]string),
	}
	for _, driver := range catalog.Drivers() {
		values.Drivers[driver.Key] = formatMultiplier(driver.Nominal)
	}
	return values
}

func readFormValues(r *http.Request) formValues {
	values := formValues{
		KLOC:    strings.TrimSpace(r.PostFormValue("kloc")),
		Cost:    strings.TrimSpace(r.PostFormValue("cost")),
		Mode:    strings.TrimSpace(r.PostFormValue("mode")),
		Drivers: make(map[string]string),
	}
	for _, driver := range catalog.Drivers() {
		if v := strings.TrimSpace(r.PostFormValue(driver.Key)); v != "" {
			values.Drivers[driver.Key] = v
		}
	}
	return values
}

// toInput is the explicit parse-and-validate step between the loosely typed
// form submission and the engine's typed input. The engine re-validates
// everything; the checks here exist to produce friendlier messages for
// non-numeric text.
func (v formValues) toInput() (engine.Input, error) {
	kloc, err := strconv.ParseFloat(v.KLOC, 64)
	if err != nil {
		return engine.Input{}, fmt.Errorf("project size must be a number, got %q", v.KLOC)
	}
	cost, err := strconv.ParseFloat(v.Cost, 64)
	if err != nil {
		return engine.Input{}, fmt.Errorf("monthly labor cost must be a number, got %q", v.Cost)
	}

	if err := validation.ValidateMagnitude("project size (KLOC)", kloc); err != nil {
		return engine.Input{}, err
	}
	if err := validation.ValidateMagnitude("monthly labor cost", cost); err != nil {
		return engine.Input{}, err
	}

	drivers := make(map[string]float64, len(v.Drivers))
	for key, raw := range v.Drivers {
		multiplier, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return engine.Input{}, fmt.Errorf("driver %s: multiplier must be a number, got %q", key, raw)
		}
		drivers[key] = multiplier
	}

	return engine.Input{
		SizeKLOC:         kloc,
		Mode:             catalog.Mode(v.Mode),
		Drivers:          drivers,
		MonthlyLaborCost: cost,
	}, nil
}

type levelView struct {
	Code     string
	Value    string
	Label    string
	Selected bool
}

type driverView struct {
	Key    string
	Name   string
	Levels []levelView
}

type modeView struct {
	Key     string
	Name    string
	Checked bool
}

type resultView struct {
	Effort   string
	Duration string
	Staffing string
	Cost     string
	EAF      string
	KLOC     string
	Mode     string
}

type page struct {
	Version string
	Modes   []modeView
	Drivers []driverView
	Form    formValues
	Results *resultView
	Error   string
}

func (h *handler) renderPage(w http.ResponseWriter, values formValues, result *engine.Result, errMsg string) {
	data := page{
		Version: h.version,
		Modes:   buildModeViews(values.Mode),
		Drivers: buildDriverViews(values.Drivers),
		Form:    values,
		Error:   errMsg,
	}
	if result != nil {
		data.Results = buildResultView(result)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		h.logger.Error("failed to render page",
			zap.String("op", "server.renderPage"),
			zap.Error(err),
		)
	}
}

func buildModeViews(selected string) []modeView {
	views := make([]modeView, 0, 3)
	for _, mode := range catalog.Modes() {
		views = append(views, modeView{
			Key:     string(mode),
			Name:    mode.DisplayName(),
			Checked: string(mode) == selected,
		})
	}
	return views
}

func buildDriverViews(selections map[string]string) []driverView {
	views := make([]driverView, 0, len(catalog.Drivers()))
	for _, driver := range catalog.Drivers() {
		selected, ok := selections[driver.Key]
		if !ok {
			selected = formatMultiplier(driver.Nominal)
		}
		levels := make([]levelView, 0, len(driver.Levels))
		for _, level := range driver.Levels {
			value := formatMultiplier(level.Multiplier)
			levels = append(levels, levelView{
				Code:     level.Code,
				Value:    value,
				Label:    fmt.Sprintf("%s (%s)", level.Code, value),
				Selected: value == selected,
			})
		}
		views = append(views, driverView{Key: driver.Key, Name: driver.Name, Levels: levels})
	}
	return views
}

// buildResultView applies the presentation rounding: two decimals for effort,
// duration, and staffing; whole units for cost; three decimals for EAF.
func buildResultView(result *engine.Result) *resultView {
	return &resultView{
		Effort:   output.Decimal(result.EffortPersonMonths),
		Duration: output.Decimal(result.DurationMonths),
		Staffing: output.Decimal(result.AverageStaffing),
		Cost:     output.Money(result.TotalCost),
		EAF:      strconv.FormatFloat(mathutil.Round3(result.EAF), 'f', -1, 64),
		KLOC:     output.Decimal(result.SizeKLOC),
		Mode:     result.Mode,
	}
}

func formatMultiplier(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
