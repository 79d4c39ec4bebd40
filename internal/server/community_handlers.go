package server

import (
	"gatorkut/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateCommunity handles POST /communities
func (s *Server) CreateCommunity(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name is required"))
	}

	community := &models.Community{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     currentUserID(c),
	}
	if err := s.communityRepo.Create(c.Context(), community); err != nil {
		return respondAppError(c, err)
	}

	created, err := s.communityRepo.GetByID(c.Context(), community.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetCommunities handles GET /communities
func (s *Server) GetCommunities(c *fiber.Ctx) error {
	communities, err := s.communityRepo.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(communities)
}

// JoinCommunity handles POST /communities/:id/join. Joining twice is a no-op.
func (s *Server) JoinCommunity(c *fiber.Ctx) error {
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, getErr := s.communityRepo.GetByID(c.Context(), communityID); getErr != nil {
		return respondAppError(c, getErr)
	}

	if joinErr := s.communityRepo.Join(c.Context(), communityID, currentUserID(c)); joinErr != nil {
		return respondAppError(c, joinErr)
	}

	return c.JSON(fiber.Map{"message": "Joined community"})
}

// LeaveCommunity handles POST /communities/:id/leave. Leaving a community
// the caller never joined succeeds without effect.
func (s *Server) LeaveCommunity(c *fiber.Ctx) error {
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if leaveErr := s.communityRepo.Leave(c.Context(), communityID, currentUserID(c)); leaveErr != nil {
		return respondAppError(c, leaveErr)
	}

	return c.JSON(fiber.Map{"message": "Left community"})
}
