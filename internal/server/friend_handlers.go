package server

import (
	"gatorkut/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendFriendRequest handles POST /friends/request
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	var req struct {
		ToUsername string `json:"toUsername"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ToUsername == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("toUsername is required"))
	}

	target, err := s.userRepo.GetByUsername(ctx, req.ToUsername)
	if err != nil {
		return respondAppError(c, err)
	}
	if target == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("User", req.ToUsername))
	}
	if target.ID == userID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot send a friend request to yourself"))
	}

	// One link per user pair, in either direction.
	existing, err := s.friendRepo.GetBetweenUsers(ctx, userID, target.ID)
	if err != nil {
		return respondAppError(c, err)
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewConflictError("Friend request already exists"))
	}

	link := &models.FriendLink{
		RequesterID: userID,
		AddresseeID: target.ID,
		Status:      models.FriendLinkStatusPending,
	}
	if createErr := s.friendRepo.Create(ctx, link); createErr != nil {
		return respondAppError(c, createErr)
	}

	created, err := s.friendRepo.GetByID(ctx, link.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// AcceptFriendRequest handles POST /friends/:id/accept
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	linkID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	link, err := s.friendRepo.GetByID(ctx, linkID)
	if err != nil {
		return respondAppError(c, err)
	}

	// Only the addressee may accept.
	if link.AddresseeID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only the recipient can accept this request"))
	}
	if link.Status != models.FriendLinkStatusPending {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewConflictError("Friend request already accepted"))
	}

	if updErr := s.friendRepo.UpdateStatus(ctx, link.ID, models.FriendLinkStatusAccepted); updErr != nil {
		return respondAppError(c, updErr)
	}

	accepted, err := s.friendRepo.GetByID(ctx, link.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(accepted)
}

// GetFriendRequests handles GET /friends/requests, listing pending requests
// addressed to the caller.
func (s *Server) GetFriendRequests(c *fiber.Ctx) error {
	requests, err := s.friendRepo.GetPendingForUser(c.Context(), currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(requests)
}
