package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/questclock-backend/internal/domain"
	"github.com/heartmarshall/questclock-backend/internal/service/project"
)

type projectService interface {
	CreateProject(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	ListProjects(ctx context.Context, includeArchived bool) ([]domain.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	UpdateProject(ctx context.Context, input project.UpdateProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
	CreateTask(ctx context.Context, input project.CreateTaskInput) (*domain.Task, error)
	ListTasks(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error)
	UpdateTask(ctx context.Context, input project.UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
}

// ProjectHandler serves project and task endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "project")}
}

type createProjectRequest struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

type updateProjectRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Color    *string `json:"color" validate:"omitempty,hexcolor"`
	Archived *bool   `json:"archived"`
}

type createTaskRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

type updateTaskRequest struct {
	Title *string `json:"title" validate:"omitempty,max=200"`
	Done  *bool   `json:"done"`
}

type projectResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"createdAt"`
}

type taskResponse struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"projectId"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateProject handles POST /api/projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(r, &req, false); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.CreateProject(r.Context(), project.CreateProjectInput{Name: req.Name, Color: req.Color})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectResponse(*p))
}

// ListProjects handles GET /api/projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r)
	includeArchived := q.Bool("includeArchived")
	if err := q.Err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	projects, err := h.svc.ListProjects(r.Context(), includeArchived != nil && *includeArchived)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]projectResponse, len(projects))
	for i, p := range projects {
		out[i] = toProjectResponse(p)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetProject handles GET /api/projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(*p))
}

// UpdateProject handles PATCH /api/projects/{id}.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateProjectRequest
	if err := decodeJSON(r, &req, false); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.UpdateProject(r.Context(), project.UpdateProjectInput{
		ProjectID: id,
		Name:      req.Name,
		Color:     req.Color,
		Archived:  req.Archived,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(*p))
}

// DeleteProject handles DELETE /api/projects/{id}.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteProject(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateTask handles POST /api/projects/{id}/tasks.
func (h *ProjectHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createTaskRequest
	if err := decodeJSON(r, &req, false); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	t, err := h.svc.CreateTask(r.Context(), project.CreateTaskInput{ProjectID: projectID, Title: req.Title})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(*t))
}

// ListTasks handles GET /api/projects/{id}/tasks.
func (h *ProjectHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	tasks, err := h.svc.ListTasks(r.Context(), projectID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	writeJSON(w, http.StatusOK, out)
}

// UpdateTask handles PATCH /api/tasks/{id}.
func (h *ProjectHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateTaskRequest
	if err := decodeJSON(r, &req, false); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	t, err := h.svc.UpdateTask(r.Context(), project.UpdateTaskInput{TaskID: id, Title: req.Title, Done: req.Done})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(*t))
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (h *ProjectHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteTask(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toProjectResponse(p domain.Project) projectResponse {
	return projectResponse{ID: p.ID, Name: p.Name, Color: p.Color, Archived: p.Archived, CreatedAt: p.CreatedAt}
}

func toTaskResponse(t domain.Task) taskResponse {
	return taskResponse{ID: t.ID, ProjectID: t.ProjectID, Title: t.Title, Done: t.Done, CreatedAt: t.CreatedAt}
}
