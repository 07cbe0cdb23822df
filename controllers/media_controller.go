package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pluggedin/models"
	"pluggedin/store"
	"pluggedin/utils"
)

type MediaController struct {
	media  *store.MediaStore
	logger *log.Logger
}

func NewMediaController(media *store.MediaStore, logger *log.Logger) *MediaController {
	return &MediaController{media: media, logger: logger}
}

type CreateMediaRequest struct {
	MediaURL    string `json:"mediaUrl" validate:"required,url"`
	AuthorEmail string `json:"authorEmail" validate:"required,email"`
	Title       string `json:"title" validate:"omitempty,max=200"`
}

type UpdateRecordRequest struct {
	ID    uint   `json:"id" validate:"required"`
	Title string `json:"title" validate:"required,max=200"`
}

// CreateRecord inserts a media record; a duplicate URL keeps the legacy
// "mediaExist" body.
func (mc *MediaController) CreateRecord(c *fiber.Ctx) error {
	var req CreateMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	media := models.MediaRecord{
		MediaURL:    req.MediaURL,
		AuthorEmail: req.AuthorEmail,
		Title:       req.Title,
	}
	created, err := mc.media.Create(&media)
	if err != nil {
		mc.logger.Printf("create record failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create record",
		})
	}
	if !created {
		return c.JSON(fiber.Map{"message": "mediaExist"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": media.ID})
}

// GetUserMedia lists records posted by the email query param.
func (mc *MediaController) GetUserMedia(c *fiber.Ctx) error {
	records, err := mc.media.ListByAuthor(c.Query("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to load media",
		})
	}
	return c.JSON(records)
}

// GetMedia returns one record by id; an absent record yields a null body.
func (mc *MediaController) GetMedia(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid media id"})
	}
	media, err := mc.media.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to load media",
		})
	}
	return c.JSON(media)
}

// UpdateRecord sets the title on an existing record. Updating a missing id
// reports "Record Not Found" instead of creating a partial record.
func (mc *MediaController) UpdateRecord(c *fiber.Ctx) error {
	var req UpdateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	matched, err := mc.media.UpdateTitle(req.ID, req.Title)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update record",
		})
	}
	if matched == 0 {
		return c.JSON(fiber.Map{"message": "Record Not Found"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "matchedCount": matched})
}

// DeleteRecord removes one record by id.
func (mc *MediaController) DeleteRecord(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid media id"})
	}
	deleted, err := mc.media.Delete(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete record",
		})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "deletedCount": deleted})
}
