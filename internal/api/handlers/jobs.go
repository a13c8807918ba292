package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

// JobsProvider defines the store methods required by the jobs handler.
type JobsProvider interface {
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
}

// JobsHandler serves the run history of scheduled jobs such as refresh.
type JobsHandler struct {
	store JobsProvider
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(s JobsProvider) *JobsHandler {
	return &JobsHandler{store: s}
}

// JobRunsInput selects a job and optionally narrows its runs by status.
type JobRunsInput struct {
	JobName string `path:"job_name" doc:"Scheduled job name (e.g. refresh)"`
	Limit   int    `query:"limit" minimum:"1" maximum:"200" default:"20"`
	Status  string `query:"status" enum:"running,succeeded,failed" doc:"Only return runs in this state"`
}

// JobRunsOutput lists runs newest first.
type JobRunsOutput struct {
	Body []domain.JobRun
}

// ListJobRuns returns recent runs of one job. The status filter applies to
// the fetched window, so fewer than limit rows may come back.
func (h *JobsHandler) ListJobRuns(ctx context.Context, input *JobRunsInput) (*JobRunsOutput, error) {
	runs, err := h.store.ListJobRuns(ctx, input.JobName, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching job history failed: " + err.Error())
	}

	out := make([]domain.JobRun, 0, len(runs))
	for i := range runs {
		if input.Status == "" || runs[i].Status == input.Status {
			out = append(out, runs[i])
		}
	}
	return &JobRunsOutput{Body: out}, nil
}

// RegisterJobRoutes registers scheduler job endpoints with the Huma API.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-job-runs",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs/{job_name}",
		Summary:     "List job runs",
		Description: "Returns recent runs of a scheduled job, newest first, with rows affected and error text.",
		Tags:        []string{"jobs"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListJobRuns)
}
