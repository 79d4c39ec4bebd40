package server

import (
	"gatorkut/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Text == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Text is required"))
	}

	// Commenting on a missing post is a 404, not an orphaned row.
	if _, getErr := s.postRepo.GetByID(c.Context(), postID); getErr != nil {
		return respondAppError(c, getErr)
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: currentUserID(c),
		Text:   req.Text,
	}
	if createErr := s.commentRepo.Create(c.Context(), comment); createErr != nil {
		return respondAppError(c, createErr)
	}

	if user, uerr := s.userRepo.GetByID(c.Context(), comment.UserID); uerr == nil {
		comment.User = *user
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /posts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentRepo.ListByPost(c.Context(), postID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(comments)
}
