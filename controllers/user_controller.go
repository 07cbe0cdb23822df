package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pluggedin/models"
	"pluggedin/store"
	"pluggedin/utils"
)

type UserController struct {
	users  *store.UserStore
	logger *log.Logger
}

func NewUserController(users *store.UserStore, logger *log.Logger) *UserController {
	return &UserController{users: users, logger: logger}
}

type CreateUserRequest struct {
	Email       string      `json:"email" validate:"required,email"`
	DisplayName string      `json:"displayName" validate:"omitempty,max=100"`
	Role        models.Role `json:"role" validate:"omitempty,oneof=admin user"`
	PhotoURL    string      `json:"photoURL" validate:"omitempty,url"`
}

type UpdateUserRequest struct {
	DisplayName *string      `json:"displayName" validate:"omitempty,max=100"`
	Role        *models.Role `json:"role" validate:"omitempty,oneof=admin user"`
	PhotoURL    *string      `json:"photoURL" validate:"omitempty,url"`
}

// CreateUser signs the submitted profile into a session token and inserts the
// account unless it already exists. Both branches return the token; the
// duplicate branch keeps the legacy "User Already Exists" body.
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	user := models.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        req.Role,
		PhotoURL:    req.PhotoURL,
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	token, err := utils.GenerateSessionToken(&user)
	if err != nil {
		uc.logger.Printf("token generation failed for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate token",
		})
	}

	created, err := uc.users.CreateIfAbsent(&user)
	if err != nil {
		uc.logger.Printf("create user %s failed: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create user",
		})
	}
	if !created {
		return c.JSON(fiber.Map{
			"result": fiber.Map{"message": "User Already Exists"},
			"token":  token,
		})
	}

	return c.JSON(fiber.Map{
		"result": fiber.Map{"acknowledged": true, "insertedId": user.ID},
		"token":  token,
	})
}

// UpdateUser merge-patches the account keyed by the email path param.
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	email := c.Params("email")

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	fields := map[string]interface{}{}
	if req.DisplayName != nil {
		fields["display_name"] = *req.DisplayName
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.PhotoURL != nil {
		fields["photo_url"] = *req.PhotoURL
	}

	matched, err := uc.users.Patch(email, fields)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update user",
		})
	}
	if matched == 0 {
		return c.JSON(fiber.Map{"message": "User Not Found"})
	}
	return c.JSON(fiber.Map{"message": "Successfully Updated"})
}

// GetUsers lists accounts, optionally filtered by the role query param.
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	role := models.Role(c.Query("role"))
	users, err := uc.users.List(role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to list users",
		})
	}
	return c.JSON(users)
}

// GetUser returns one account by email; an absent account yields a null body.
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	user, err := uc.users.GetByEmail(c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to load user",
		})
	}
	return c.JSON(user)
}
