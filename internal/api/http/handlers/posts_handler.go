package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/board-service/internal/api/dto"
	"github.com/spec-kit/board-service/internal/auth"
	"github.com/spec-kit/board-service/internal/service"
	apperrors "github.com/spec-kit/board-service/pkg/util"
)

// PostsHandler exposes post CRUD endpoints.
type PostsHandler struct {
	posts *service.PostService
}

// NewPostsHandler constructs handler.
func NewPostsHandler(postService *service.PostService) *PostsHandler {
	return &PostsHandler{posts: postService}
}

// Create handles POST /posts.
func (h *PostsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	post, err := h.posts.Create(c.UserContext(), principal.User.ID, service.PostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewPostResponse(post)})
}

// Get handles GET /posts/:postId.
func (h *PostsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "postId")
	if err != nil {
		return err
	}

	post, err := h.posts.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPostResponse(post)})
}

// List handles GET /posts.
func (h *PostsHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	posts, err := h.posts.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPostListResponse(posts)})
}

// Search handles GET /posts/search?keyword=.
func (h *PostsHandler) Search(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	if keyword == "" {
		return apperrors.NewValidationError("keyword is required", nil)
	}

	posts, err := h.posts.Search(c.UserContext(), keyword, c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPostListResponse(posts)})
}

// ListByUser handles GET /users/:userId/posts.
func (h *PostsHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	posts, err := h.posts.ListByUser(c.UserContext(), userID, c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPostListResponse(posts)})
}

// Update handles PUT /posts/:postId.
func (h *PostsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	id, err := parseID(c, "postId")
	if err != nil {
		return err
	}

	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	post, err := h.posts.Update(c.UserContext(), id, principal.User.ID, service.PostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPostResponse(post)})
}

// Delete handles DELETE /posts/:postId.
func (h *PostsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	id, err := parseID(c, "postId")
	if err != nil {
		return err
	}

	if err := h.posts.Delete(c.UserContext(), id, principal.User.ID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.MessageResponse{Message: "post deleted"}})
}

func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid "+param, nil)
	}
	return id, nil
}
