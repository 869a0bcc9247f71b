package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tasker/internal/model"
	"tasker/internal/service"
)

// TaskHandler handles task CRUD endpoints.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// TaskRequest represents a task create or edit request.
type TaskRequest struct {
	Name    string `json:"name" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// TasksResponse represents a list of tasks.
type TasksResponse struct {
	Tasks []model.Task `json:"tasks"`
}

// CreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TaskRequest true "Task payload"
// @Success 201 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}

	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.Create(c.Request().Context(), owner.ID, req.Name, req.Content)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

// ListTasks godoc
// @Summary List the caller's tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TasksResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.List(c.Request().Context(), owner.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, TasksResponse{Tasks: tasks})
}

// GetTask godoc
// @Summary Get one of the caller's tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} model.Task
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c echo.Context) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.Get(c.Request().Context(), owner.ID, taskID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

// EditTask godoc
// @Summary Edit one of the caller's tasks
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body TaskRequest true "Task payload"
// @Success 200 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) EditTask(c echo.Context) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.Edit(c.Request().Context(), owner.ID, taskID, req.Name, req.Content)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteTask godoc
// @Summary Delete one of the caller's tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	removed, err := h.taskService.Delete(c.Request().Context(), owner.ID, taskID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: removed})
}

func taskIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnprocessableEntity, "task id must be a valid UUID")
	}
	return id, nil
}
