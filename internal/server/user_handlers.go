package server

import (
	"gatorkut/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userRepo.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(users)
}

// GetMyProfile handles GET /users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.Context(), currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles POST /users/me. Accepts JSON or multipart form
// fields displayName/about plus an optional multipart "avatar" file.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.Context(), currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}

	var req struct {
		DisplayName string `json:"displayName" form:"displayName"`
		About       string `json:"about" form:"about"`
	}
	if err := c.BodyParser(&req); err != nil && err != fiber.ErrUnprocessableEntity {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.DisplayName != "" {
		user.DisplayName = req.DisplayName
	}
	if req.About != "" {
		user.About = req.About
	}

	if file, ferr := c.FormFile("avatar"); ferr == nil && file != nil {
		path, upErr := s.uploads.SaveMultipart(file)
		if upErr != nil {
			return respondAppError(c, upErr)
		}
		user.Avatar = path
	}

	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(user)
}
