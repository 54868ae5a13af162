package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/perkwatch/perkwatch"
	"github.com/perkwatch/perkwatch/domain/competitor"
	"github.com/perkwatch/perkwatch/infrastructure/api/middleware"
)

// statusRunning is reported by the health endpoint.
const statusRunning = "API is running"

// Batch status values.
const (
	statusSuccess     = "success"
	statusNothingToDo = "No competitors found needing updates"
)

// CompetitorResponse is the wire shape of a competitor record.
type CompetitorResponse struct {
	ID             int64   `json:"id"`
	CompetitorName string  `json:"competitor_name"`
	ProgramSummary *string `json:"program_summary"`
}

// HealthResponse is the wire shape of the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// BatchResponse is the wire shape of a batch enrichment run.
type BatchResponse struct {
	Status             string               `json:"status"`
	TotalProcessed     int                  `json:"total_processed"`
	UpdatedCompetitors []CompetitorResponse `json:"updated_competitors"`
	FailedIDs          []int64              `json:"failed_competitor_ids,omitempty"`
}

// CompetitorsRouter handles the competitor enrichment endpoints.
type CompetitorsRouter struct {
	client *perkwatch.Client
	logger *slog.Logger
}

// NewCompetitorsRouter creates a new CompetitorsRouter.
func NewCompetitorsRouter(client *perkwatch.Client) *CompetitorsRouter {
	return &CompetitorsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for competitor endpoints.
func (cr *CompetitorsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", cr.Health)
	router.Post("/update-single/{id}", cr.UpdateSingle)
	router.Post("/update-all", cr.UpdateAll)

	return router
}

// Health handles GET /.
func (cr *CompetitorsRouter) Health(w http.ResponseWriter, _ *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, HealthResponse{Status: statusRunning})
}

// UpdateSingle handles POST /update-single/{id}. It looks up the competitor,
// generates a fresh summary, and returns the updated record.
func (cr *CompetitorsRouter) UpdateSingle(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	idStr := chi.URLParam(req, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		middleware.WriteJSON(w, http.StatusBadRequest,
			middleware.ErrorResponse{Detail: fmt.Sprintf("invalid competitor id %q", idStr)})
		return
	}

	record, err := cr.client.Competitors.Get(ctx, id)
	if err != nil {
		middleware.WriteError(w, req, err, cr.logger)
		return
	}

	updated, err := cr.client.Enrichment.Enrich(ctx, record.ID(), record.Name())
	if err != nil {
		middleware.WriteError(w, req, err, cr.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, toResponse(updated))
}

// UpdateAll handles POST /update-all. Rows are processed one at a time; a
// failed row is reported in failed_competitor_ids and does not stop the run.
func (cr *CompetitorsRouter) UpdateAll(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	result, err := cr.client.Enrichment.EnrichAll(ctx)
	if err != nil {
		middleware.WriteError(w, req, err, cr.logger)
		return
	}

	if result.Empty() {
		middleware.WriteJSON(w, http.StatusOK, HealthResponse{Status: statusNothingToDo})
		return
	}

	updated := result.Updated()
	response := BatchResponse{
		Status:             statusSuccess,
		TotalProcessed:     len(updated),
		UpdatedCompetitors: make([]CompetitorResponse, 0, len(updated)),
		FailedIDs:          result.FailedIDs(),
	}
	for _, record := range updated {
		response.UpdatedCompetitors = append(response.UpdatedCompetitors, toResponse(record))
	}

	middleware.WriteJSON(w, http.StatusOK, response)
}

func toResponse(record competitor.Competitor) CompetitorResponse {
	resp := CompetitorResponse{
		ID:             record.ID(),
		CompetitorName: record.Name(),
	}
	if record.HasSummary() {
		summary := record.Summary()
		resp.ProgramSummary = &summary
	}
	return resp
}
