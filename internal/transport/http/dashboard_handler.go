package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"memberpulse/internal/analytics"
	"memberpulse/internal/charts"
	apierrors "memberpulse/internal/errors"
	"memberpulse/internal/services"
	"memberpulse/pkg/contracts/domain"
)

// DashboardHandler serves the computed dashboard model.
type DashboardHandler struct {
	service  *services.DashboardService
	logger   *slog.Logger
	validate *validator.Validate
}

// NewDashboardHandler creates the handler. A nil logger falls back to
// slog.Default().
func NewDashboardHandler(service *services.DashboardService, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	validate := validator.New()
	validate.RegisterValidation("scatterfield", func(fl validator.FieldLevel) bool {
		return analytics.IsScatterField(fl.Field().String())
	})
	return &DashboardHandler{
		service:  service,
		logger:   logger.With(slog.String("component", "dashboard_handler")),
		validate: validate,
	}
}

// Routes returns the API routes.
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/health", h.GetHealth)
	r.Get("/members", h.GetMembers)
	r.Get("/members/{id}/transactions", h.GetMemberTransactions)
	r.Get("/summary", h.GetSummary)
	r.Get("/properties", h.GetProperties)
	r.Get("/scatter", h.GetScatter)
	r.Post("/reload", h.Reload)

	return r
}

// HealthResponse reports liveness and whether a model has been built.
type HealthResponse struct {
	Status     string    `json:"status"`
	ModelReady bool      `json:"model_ready"`
	AsOf       time.Time `json:"as_of,omitempty"`
	Members    int       `json:"members,omitempty"`
}

// GetHealth handles GET /api/health.
func (h *DashboardHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "healthy"}
	if model, ok := h.service.Model(); ok {
		resp.ModelReady = true
		resp.AsOf = model.AsOf
		resp.Members = len(model.Members)
	}
	render.JSON(w, r, resp)
}

// MembersResponse carries the derived member views plus the top-N lists.
type MembersResponse struct {
	Count        int                   `json:"count"`
	Members      []domain.MemberView   `json:"members"`
	TopCollected []domain.RankedMember `json:"top_collected"`
	TopBalances  []domain.RankedMember `json:"top_balances"`
	TopHostNet   []domain.RankedMember `json:"top_host_net"`
}

// GetMembers handles GET /api/members.
func (h *DashboardHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
	model, ok := h.service.Model()
	if !ok {
		render.Render(w, r, apierrors.ErrModelNotReady)
		return
	}
	render.JSON(w, r, MembersResponse{
		Count:        len(model.Members),
		Members:      model.Members,
		TopCollected: model.TopCollected,
		TopBalances:  model.TopBalances,
		TopHostNet:   model.TopHostNet,
	})
}

// TransactionsResponse is the drill-down detail for one member.
type TransactionsResponse struct {
	MemberID     string               `json:"member_id"`
	Count        int                  `json:"count"`
	Transactions []domain.Transaction `json:"transactions"`
}

// GetMemberTransactions handles GET /api/members/{id}/transactions.
func (h *DashboardHandler) GetMemberTransactions(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.service.Model(); !ok {
		render.Render(w, r, apierrors.ErrModelNotReady)
		return
	}

	memberID := chi.URLParam(r, "id")
	transactions, ok := h.service.MemberTransactions(memberID)
	if !ok {
		render.Render(w, r, apierrors.NotFoundError("member"))
		return
	}
	render.JSON(w, r, TransactionsResponse{
		MemberID:     memberID,
		Count:        len(transactions),
		Transactions: transactions,
	})
}

// SummaryResponse carries the per-month totals and the aggregate row.
type SummaryResponse struct {
	AsOf             time.Time             `json:"as_of"`
	LatestBilledDate time.Time             `json:"latest_billed_date"`
	Months           []domain.MonthTotals  `json:"months"`
	Totals           domain.AggregateTotals `json:"totals"`
}

// GetSummary handles GET /api/summary.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	model, ok := h.service.Model()
	if !ok {
		render.Render(w, r, apierrors.ErrModelNotReady)
		return
	}
	render.JSON(w, r, SummaryResponse{
		AsOf:             model.AsOf,
		LatestBilledDate: model.LatestBilledDate,
		Months:           model.Summary,
		Totals:           model.Totals,
	})
}

// ChartGeometry is the precomputed stacked-area geometry for the gross chart.
type ChartGeometry struct {
	Areas   []charts.Area `json:"areas"`
	Ticks   []float64     `json:"ticks"`
	Ceiling float64       `json:"ceiling"`
}

// PropertiesResponse aligns every property series to the shared month axis.
type PropertiesResponse struct {
	Months         []string                `json:"months"`
	Properties     []domain.PropertySeries `json:"properties"`
	HostNetByMonth []float64               `json:"host_net_by_month"`
	GrossChart     ChartGeometry           `json:"gross_chart"`
}

// GetProperties handles GET /api/properties.
func (h *DashboardHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	model, ok := h.service.Model()
	if !ok {
		render.Render(w, r, apierrors.ErrModelNotReady)
		return
	}

	series := make([][]float64, 0, len(model.Properties))
	for _, p := range model.Properties {
		series = append(series, p.GrossValues)
	}
	areas := charts.Stack(series)

	var maxTotal float64
	if n := len(areas); n > 0 {
		for _, top := range areas[n-1].Top {
			if top > maxTotal {
				maxTotal = top
			}
		}
	}

	render.JSON(w, r, PropertiesResponse{
		Months:         model.Months,
		Properties:     model.Properties,
		HostNetByMonth: model.HostNetByMonth,
		GrossChart: ChartGeometry{
			Areas:   areas,
			Ticks:   charts.Ticks(maxTotal),
			Ceiling: charts.ScaleCeiling(maxTotal),
		},
	})
}

// ScatterRequest is the validated query for GET /api/scatter.
type ScatterRequest struct {
	X string `validate:"required,scatterfield"`
	Y string `validate:"required,scatterfield"`
}

// ScatterPoint is one member's position on the plot.
type ScatterPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ScatterResponse carries the plotted points and their correlation.
type ScatterResponse struct {
	XField      string         `json:"x_field"`
	YField      string         `json:"y_field"`
	Count       int            `json:"count"`
	Points      []ScatterPoint `json:"points"`
	Correlation float64        `json:"correlation"`
}

// GetScatter handles GET /api/scatter?x=<field>&y=<field>.
func (h *DashboardHandler) GetScatter(w http.ResponseWriter, r *http.Request) {
	model, ok := h.service.Model()
	if !ok {
		render.Render(w, r, apierrors.ErrModelNotReady)
		return
	}

	req := ScatterRequest{
		X: r.URL.Query().Get("x"),
		Y: r.URL.Query().Get("y"),
	}
	if err := h.validate.Struct(req); err != nil {
		render.Render(w, r, apierrors.NewWithDetails(
			http.StatusBadRequest,
			"VALIDATION_FAILED",
			"x and y must name numeric member fields",
			analytics.ScatterFieldNames(),
		))
		return
	}

	xs, ys := analytics.ScatterSeries(model.Members, req.X, req.Y)
	points := make([]ScatterPoint, len(xs))
	for i := range xs {
		points[i] = ScatterPoint{X: xs[i], Y: ys[i]}
	}

	render.JSON(w, r, ScatterResponse{
		XField:      req.X,
		YField:      req.Y,
		Count:       len(points),
		Points:      points,
		Correlation: charts.Pearson(xs, ys),
	})
}

// ReloadResponse summarizes a completed pipeline rerun.
type ReloadResponse struct {
	Status  string    `json:"status"`
	AsOf    time.Time `json:"as_of"`
	Members int       `json:"members"`
	Months  int       `json:"months"`
}

// Reload handles POST /api/reload: re-fetches the inputs and reruns the
// whole pipeline. Idempotent on identical inputs.
func (h *DashboardHandler) Reload(w http.ResponseWriter, r *http.Request) {
	model, err := h.service.Refresh(r.Context(), time.Time{})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "reload failed", "error", err)
		render.Render(w, r, apierrors.DataUnavailableError(err))
		return
	}
	render.JSON(w, r, ReloadResponse{
		Status:  "reloaded",
		AsOf:    model.AsOf,
		Members: len(model.Members),
		Months:  len(model.Months),
	})
}
