package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pluggedin/models"
	"pluggedin/store"
	"pluggedin/utils"
)

type TeamController struct {
	teams  *store.TeamStore
	logger *log.Logger
}

func NewTeamController(teams *store.TeamStore, logger *log.Logger) *TeamController {
	return &TeamController{teams: teams, logger: logger}
}

type CreateTeamRequest struct {
	Name    string   `json:"name" validate:"required,max=100"`
	Leader  string   `json:"leader" validate:"required,email"`
	Members []string `json:"members" validate:"omitempty,dive,email"`
}

type UpdateTeamRequest struct {
	Name    *string   `json:"name" validate:"omitempty,max=100"`
	Members *[]string `json:"members" validate:"omitempty,dive,email"`
}

// CreateTeam inserts a team; a duplicate (name, leader) pair keeps the legacy
// rejection body.
func (tc *TeamController) CreateTeam(c *fiber.Ctx) error {
	var req CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	team := models.Team{Name: req.Name, Leader: req.Leader, Members: req.Members}
	created, err := tc.teams.Create(&team)
	if err != nil {
		tc.logger.Printf("create team failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create team",
		})
	}
	if !created {
		return c.JSON(fiber.Map{
			"acknowledged": false,
			"message":      "Your Team already Exist",
		})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": team.ID})
}

// UpdateTeam merge-patches the team led by the email path param.
func (tc *TeamController) UpdateTeam(c *fiber.Ctx) error {
	leader := c.Params("email")

	var req UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	matched, err := tc.teams.PatchByLeader(leader, req.Name, req.Members)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update team",
		})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "matchedCount": matched})
}

// GetTeam returns the team led by the email path param; absent yields null.
func (tc *TeamController) GetTeam(c *fiber.Ctx) error {
	team, err := tc.teams.GetByLeader(c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to load team",
		})
	}
	return c.JSON(team)
}
