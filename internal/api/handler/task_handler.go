package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskdeck/todo-system/internal/api/middleware"
	"github.com/taskdeck/todo-system/internal/core/domain"
	"github.com/taskdeck/todo-system/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations. All routes sit
// behind the auth middleware; the acting owner comes from the request
// context, never from the payload.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// taskID parses the :id path parameter. A malformed id maps to the same
// not-found outcome as a nonexistent task, so the caller learns nothing
// about which ids exist.
func taskID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domain.ErrTaskNotFound
	}
	return id, nil
}

// List handles GET /tasks. Tasks come back newest-created first.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   taskResponse
// @Failure      401  {object}  errorResponse
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.ListByOwner(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTaskListResponse(tasks))
}

// Create handles POST /tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.service.Create(c.Request().Context(), user.ID, req.Title)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Update handles PUT /tasks/:id, replacing the title.
//
// @Summary      Update a task's title
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "New title"
// @Success      200   {object}  taskResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.service.Update(c.Request().Context(), id, user.ID, req.Title)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Toggle handles PATCH /tasks/:id/toggle, flipping completion.
//
// @Summary      Toggle a task's completion status
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /tasks/{id}/toggle [patch]
func (h *TaskHandler) Toggle(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.service.Toggle(c.Request().Context(), id, user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /tasks/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        id  path  string  true  "Task id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, user.ID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
