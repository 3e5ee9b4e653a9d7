package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/board-service/internal/api/dto"
	"github.com/spec-kit/board-service/internal/auth"
	"github.com/spec-kit/board-service/internal/service"
	apperrors "github.com/spec-kit/board-service/pkg/util"
)

// CommentsHandler exposes comment CRUD endpoints.
type CommentsHandler struct {
	comments *service.CommentService
}

// NewCommentsHandler constructs handler.
func NewCommentsHandler(commentService *service.CommentService) *CommentsHandler {
	return &CommentsHandler{comments: commentService}
}

// Create handles POST /posts/:postId/comments.
func (h *CommentsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	postID, err := parseID(c, "postId")
	if err != nil {
		return err
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	comment, err := h.comments.Create(c.UserContext(), postID, principal.User.ID, req.Content)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCommentResponse(comment)})
}

// ListByPost handles GET /posts/:postId/comments.
func (h *CommentsHandler) ListByPost(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return err
	}

	comments, err := h.comments.ListByPost(c.UserContext(), postID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCommentListResponse(comments)})
}

// Get handles GET /comments/:commentId.
func (h *CommentsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "commentId")
	if err != nil {
		return err
	}

	comment, err := h.comments.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCommentResponse(comment)})
}

// Update handles PUT /comments/:commentId.
func (h *CommentsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	id, err := parseID(c, "commentId")
	if err != nil {
		return err
	}

	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	comment, err := h.comments.Update(c.UserContext(), id, principal.User.ID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCommentResponse(comment)})
}

// Delete handles DELETE /comments/:commentId.
func (h *CommentsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	id, err := parseID(c, "commentId")
	if err != nil {
		return err
	}

	if err := h.comments.Delete(c.UserContext(), id, principal.User.ID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.MessageResponse{Message: "comment deleted"}})
}
