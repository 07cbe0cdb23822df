package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pluggedin/models"
	"pluggedin/store"
	"pluggedin/utils"
)

type TaskController struct {
	tasks  *store.TaskStore
	logger *log.Logger
}

func NewTaskController(tasks *store.TaskStore, logger *log.Logger) *TaskController {
	return &TaskController{tasks: tasks, logger: logger}
}

type CreateTaskRequest struct {
	MediaID uint   `json:"media_id" validate:"required"`
	Details string `json:"details" validate:"omitempty,max=500"`
	Done    bool   `json:"done"`
}

type UpdateTaskRequest struct {
	Done    *bool   `json:"done"`
	Details *string `json:"details" validate:"omitempty,max=500"`
}

// CreateTask attaches a checklist item to a media record.
func (tc *TaskController) CreateTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	task := models.Task{MediaID: req.MediaID, Details: req.Details, Done: req.Done}
	if err := tc.tasks.Create(&task); err != nil {
		tc.logger.Printf("create task failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create task",
		})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": task.ID})
}

// UpdateTask sets done/details on an existing task. Updating a missing id
// reports "Task Not Found" instead of creating a partial task.
func (tc *TaskController) UpdateTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid task id"})
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	matched, err := tc.tasks.Update(uint(id), req.Done, req.Details)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update task",
		})
	}
	if matched == 0 {
		return c.JSON(fiber.Map{"message": "Task Not Found"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "matchedCount": matched})
}

// GetTasks lists the tasks attached to the media record in the path.
func (tc *TaskController) GetTasks(c *fiber.Ctx) error {
	mediaID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid media id"})
	}
	tasks, err := tc.tasks.ListByMedia(uint(mediaID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to load tasks",
		})
	}
	return c.JSON(tasks)
}

// DeleteTask removes one task by id.
func (tc *TaskController) DeleteTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid task id"})
	}
	deleted, err := tc.tasks.Delete(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete task",
		})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "deletedCount": deleted})
}
