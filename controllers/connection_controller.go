package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"pluggedin/store"
	"pluggedin/utils"
)

type ConnectionController struct {
	connections *store.ConnectionStore
	logger      *log.Logger
}

func NewConnectionController(connections *store.ConnectionStore, logger *log.Logger) *ConnectionController {
	return &ConnectionController{connections: connections, logger: logger}
}

type peer struct {
	Email string `json:"email" validate:"required,email"`
}

// PairRequest is the body shape of every relationship mutation: the sender is
// the account that initiated the original request.
type PairRequest struct {
	Sender   peer `json:"sender" validate:"required"`
	Receiver peer `json:"receiver" validate:"required"`
}

// DisconnectRequest mirrors the legacy body for breaking a friendship.
type DisconnectRequest struct {
	User   peer `json:"user" validate:"required"`
	Friend peer `json:"friend" validate:"required"`
}

func (cc *ConnectionController) parsePair(c *fiber.Ctx) (*PairRequest, error) {
	var req PairRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.New("Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Connect records a pending request from sender to receiver.
func (cc *ConnectionController) Connect(c *fiber.Ctx) error {
	req, err := cc.parsePair(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := cc.connections.Connect(req.Sender.Email, req.Receiver.Email); err != nil {
		cc.logger.Printf("connect %s -> %s failed: %v", req.Sender.Email, req.Receiver.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create connection request",
		})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "status": "pending"})
}

// MakeFriend accepts a pending request and returns the shared room.
func (cc *ConnectionController) MakeFriend(c *fiber.Ctx) error {
	req, err := cc.parsePair(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	room, err := cc.connections.Accept(req.Sender.Email, req.Receiver.Email)
	if errors.Is(err, store.ErrNotPending) {
		return c.JSON(fiber.Map{"message": "No Pending Request"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to accept connection request",
		})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "room": room})
}

// CancelConnect withdraws a pending request.
func (cc *ConnectionController) CancelConnect(c *fiber.Ctx) error {
	req, err := cc.parsePair(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	err = cc.connections.Cancel(req.Sender.Email, req.Receiver.Email)
	if errors.Is(err, store.ErrNotPending) {
		return c.JSON(fiber.Map{"message": "No Pending Request"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to cancel connection request",
		})
	}
	return c.JSON(fiber.Map{"acknowledged": true})
}

// Disconnect breaks an accepted friendship.
func (cc *ConnectionController) Disconnect(c *fiber.Ctx) error {
	var req DisconnectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := cc.connections.Disconnect(req.User.Email, req.Friend.Email); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to disconnect",
		})
	}
	return c.JSON(fiber.Map{"acknowledged": true})
}

// IsPending reports whether userEmail has asked to connect with
// pendingUserEmail.
func (cc *ConnectionController) IsPending(c *fiber.Ctx) error {
	pending, err := cc.connections.IsPending(c.Query("userEmail"), c.Query("pendingUserEmail"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to check pending status",
		})
	}
	if pending {
		return c.JSON(fiber.Map{"status": "pending"})
	}
	return c.JSON(fiber.Map{"status": "not_pending"})
}

// IsFriend reports whether the two users share an accepted connection.
func (cc *ConnectionController) IsFriend(c *fiber.Ctx) error {
	friend, err := cc.connections.IsFriend(c.Query("userEmail"), c.Query("friendUserEmail"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to check friend status",
		})
	}
	if friend {
		return c.JSON(fiber.Map{"status": "friend"})
	}
	return c.JSON(fiber.Map{"status": "not_friend"})
}

// ConnectionRequests lists the incoming requests for the email query param.
func (cc *ConnectionController) ConnectionRequests(c *fiber.Ctx) error {
	requests, err := cc.connections.RequestsFor(c.Query("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to load connection requests",
		})
	}
	return c.JSON(requests)
}

// Friends lists the accepted connections for the email query param.
func (cc *ConnectionController) Friends(c *fiber.Ctx) error {
	friends, err := cc.connections.FriendsOf(c.Query("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to load friends",
		})
	}
	return c.JSON(friends)
}
