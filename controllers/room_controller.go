package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"pluggedin/models"
	"pluggedin/store"
	"pluggedin/utils"
)

type RoomController struct {
	rooms  *store.RoomStore
	logger *log.Logger
}

func NewRoomController(rooms *store.RoomStore, logger *log.Logger) *RoomController {
	return &RoomController{rooms: rooms, logger: logger}
}

type MakeRoomRequest struct {
	RoomName string `json:"roomName" validate:"required,max=200"`
}

type StoreMessageRequest struct {
	RoomName  string    `json:"roomName" validate:"required,max=200"`
	Sender    string    `json:"sender" validate:"required,email"`
	Text      string    `json:"text" validate:"required"`
	Timestamp time.Time `json:"timestamp"`
}

// MakeRoom creates a named room with an empty history.
func (rc *RoomController) MakeRoom(c *fiber.Ctx) error {
	var req MakeRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	room := models.Room{RoomName: req.RoomName}
	created, err := rc.rooms.Create(&room)
	if err != nil {
		rc.logger.Printf("create room %s failed: %v", req.RoomName, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create room",
		})
	}
	if !created {
		return c.JSON(fiber.Map{"message": "Room Already Exists"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": room.ID})
}

// DeleteRoom removes the room named in the query param with its history.
func (rc *RoomController) DeleteRoom(c *fiber.Ctx) error {
	deleted, err := rc.rooms.DeleteByName(c.Query("roomName"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete room",
		})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "deletedCount": deleted})
}

// StoreMessage appends to the room's history, creating the room when absent.
// This is the persistence half of messaging; the websocket relay never writes
// here.
func (rc *RoomController) StoreMessage(c *fiber.Ctx) error {
	var req StoreMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := rc.rooms.AppendMessage(req.RoomName, req.Sender, req.Text, req.Timestamp); err != nil {
		rc.logger.Printf("store message in %s failed: %v", req.RoomName, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to store message",
		})
	}
	return c.JSON(fiber.Map{"acknowledged": true})
}

// GetMessages returns the history of the room named in the query param; an
// unknown room yields a null body.
func (rc *RoomController) GetMessages(c *fiber.Ctx) error {
	messages, err := rc.rooms.MessagesOf(c.Query("roomName"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to load messages",
		})
	}
	return c.JSON(messages)
}

// GetRooms lists every room with its history.
func (rc *RoomController) GetRooms(c *fiber.Ctx) error {
	rooms, err := rc.rooms.ListRooms()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to load rooms",
		})
	}
	return c.JSON(rooms)
}
