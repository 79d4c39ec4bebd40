package server

import (
	"gatorkut/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /posts. The image can arrive either as a multipart
// "image" file or as a base64 data URI in the JSON/form "image" field; the
// multipart file wins when both are present.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Text  string `json:"text" form:"text"`
		Image string `json:"image" form:"image"`
	}
	if err := c.BodyParser(&req); err != nil && err != fiber.ErrUnprocessableEntity {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	imagePath := ""
	if file, ferr := c.FormFile("image"); ferr == nil && file != nil {
		path, upErr := s.uploads.SaveMultipart(file)
		if upErr != nil {
			return respondAppError(c, upErr)
		}
		imagePath = path
	} else if req.Image != "" {
		path, upErr := s.uploads.SaveBase64(req.Image)
		if upErr != nil {
			return respondAppError(c, upErr)
		}
		imagePath = path
	}

	post := &models.Post{
		UserID: currentUserID(c),
		Text:   req.Text,
		Image:  imagePath,
	}
	if err := s.postRepo.Create(c.Context(), post); err != nil {
		return respondAppError(c, err)
	}

	// Reload with the author joined for the response.
	created, err := s.postRepo.GetByID(c.Context(), post.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetPosts handles GET /posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postRepo.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(posts)
}

// LikePost handles POST /posts/:id/like. Likes are repeatable without limit.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if likeErr := s.postRepo.Like(c.Context(), postID); likeErr != nil {
		return respondAppError(c, likeErr)
	}

	post, err := s.postRepo.GetByID(c.Context(), postID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(post)
}

// MeowPost handles POST /posts/:id/meow. A meow bumps the post's counter and
// the author's meowPoints together.
func (s *Server) MeowPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if meowErr := s.postRepo.Meow(c.Context(), postID); meowErr != nil {
		return respondAppError(c, meowErr)
	}

	post, err := s.postRepo.GetByID(c.Context(), postID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(post)
}
