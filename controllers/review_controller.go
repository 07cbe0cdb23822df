package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pluggedin/models"
	"pluggedin/store"
	"pluggedin/utils"
)

type ReviewController struct {
	reviews *store.ReviewStore
	logger  *log.Logger
}

func NewReviewController(reviews *store.ReviewStore, logger *log.Logger) *ReviewController {
	return &ReviewController{reviews: reviews, logger: logger}
}

type CreateReviewRequest struct {
	Author string `json:"author" validate:"required,max=100"`
	Text   string `json:"text" validate:"required,max=1000"`
	Rating int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

// CreateReview appends a review; reviews are never edited afterwards.
func (rc *ReviewController) CreateReview(c *fiber.Ctx) error {
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	review := models.Review{Author: req.Author, Text: req.Text, Rating: req.Rating}
	if err := rc.reviews.Create(&review); err != nil {
		rc.logger.Printf("create review failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create review",
		})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": review.ID})
}

// GetReviews lists every review in insertion order.
func (rc *ReviewController) GetReviews(c *fiber.Ctx) error {
	reviews, err := rc.reviews.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to load reviews",
		})
	}
	return c.JSON(reviews)
}
