package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"linkmark/internal/auth"
	"linkmark/internal/domain"
	"linkmark/internal/service"
)

const userIDKey = "userID"

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth      service.AuthService
	users     service.UserService
	bookmarks service.BookmarkService
	issuer    *auth.TokenIssuer
	logger    *logrus.Logger
}

func NewHandler(
	authSvc service.AuthService,
	users service.UserService,
	bookmarks service.BookmarkService,
	issuer *auth.TokenIssuer,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		auth:      authSvc,
		users:     users,
		bookmarks: bookmarks,
		issuer:    issuer,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(requestLogger(h.logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", h.signUp)
		authGroup.POST("/signin", h.signIn)
	}

	protected := router.Group("/")
	protected.Use(h.requireAuth())
	{
		protected.GET("/user/me", h.getMe)
		protected.PATCH("/user/edit", h.editUser)

		protected.POST("/bookmarks", h.createBookmark)
		protected.GET("/bookmarks", h.listBookmarks)
		protected.GET("/bookmarks/:id", h.getBookmark)
		protected.PATCH("/bookmarks/:id", h.updateBookmark)
		protected.DELETE("/bookmarks/:id", h.deleteBookmark)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start),
		}).Info("request")
	}
}

// requireAuth extracts and verifies the bearer token and stores the resolved
// user id in the request context. Requests without a valid token never reach
// the handlers behind it.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		userID, _, err := h.issuer.Verify(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

type signUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type editUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

type createBookmarkRequest struct {
	Title       string `json:"title" binding:"required"`
	Link        string `json:"link" binding:"required"`
	Description string `json:"description"`
}

type editBookmarkRequest struct {
	Title       *string `json:"title"`
	Link        *string `json:"link"`
	Description *string `json:"description"`
}

func (h *Handler) signUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"createdAt": user.CreatedAt.Format(time.RFC3339),
	})
}

func (h *Handler) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

func (h *Handler) getMe(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) editUser(c *gin.Context) {
	var req editUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.EditUser(c.Request.Context(), currentUserID(c), domain.UserPatch{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) createBookmark(c *gin.Context) {
	var req createBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookmark, err := h.bookmarks.Create(
		c.Request.Context(),
		currentUserID(c),
		req.Title,
		req.Link,
		req.Description,
	)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bookmarkToResponse(*bookmark))
}

func (h *Handler) listBookmarks(c *gin.Context) {
	bookmarks, err := h.bookmarks.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]BookmarkResponse, len(bookmarks))
	for i := range bookmarks {
		resp[i] = bookmarkToResponse(bookmarks[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getBookmark(c *gin.Context) {
	id, ok := bookmarkID(c)
	if !ok {
		return
	}

	bookmark, err := h.bookmarks.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookmarkToResponse(*bookmark))
}

func (h *Handler) updateBookmark(c *gin.Context) {
	id, ok := bookmarkID(c)
	if !ok {
		return
	}

	var req editBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookmark, err := h.bookmarks.Update(c.Request.Context(), currentUserID(c), id, domain.BookmarkPatch{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookmarkToResponse(*bookmark))
}

func (h *Handler) deleteBookmark(c *gin.Context) {
	id, ok := bookmarkID(c)
	if !ok {
		return
	}

	if err := h.bookmarks.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bookmarkID parses the :id route parameter. An id that cannot name any
// record reports not found, the same as a missing one.
func bookmarkID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "bookmark not found"})
		return 0, false
	}
	return id, true
}

// writeError maps domain errors to status codes. Sign-in failures collapse to
// one generic message so callers cannot probe which accounts exist.
func (h *Handler) writeError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrWrongPassword):
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid credentials"})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "email already taken"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		h.logger.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type BookmarkResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}

func bookmarkToResponse(bookmark domain.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:          bookmark.ID,
		UserID:      bookmark.UserID,
		Title:       bookmark.Title,
		Link:        bookmark.Link,
		Description: bookmark.Description,
		CreatedAt:   bookmark.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   bookmark.UpdatedAt.Format(time.RFC3339),
	}
}
