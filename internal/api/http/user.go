package apiHttp

import (
	"errors"
	"net/http"

	"github.com/digiedu/backend/internal/domain"
	"github.com/digiedu/backend/internal/service"
	"github.com/digiedu/backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) initUsersRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.getUsers)
		users.GET("/:id", h.getUserByID)
		users.POST("/login", h.login)
	}
}

// createUserRequest is the wire shape of a create payload. Fields are not
// required individually; an absent field binds to an empty string and the
// store decides what to reject.
type createUserRequest struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	Position    string `json:"position"`
	Password    string `json:"password"`
	AccessLevel string `json:"access_level"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	Position    string `json:"position"`
	AccessLevel string `json:"access_level"`
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:          user.ID.String(),
		Name:        user.Name,
		Surname:     user.Surname,
		Email:       user.Email,
		Position:    user.Position,
		AccessLevel: user.AccessLevel,
	}
}

// @Summary Create User
// @Tags Users
// @Description Create a new user account
// @ModuleID createUser
// @Accept  json
// @Produce  json
// @Param input body createUserRequest true "account fields"
// @Success 200
// @Failure 400 {object} errorStruct
// @Failure 409
// @Failure 500 {object} errorStruct
// @Router /users [post]
func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBodyResponse(c)
		return
	}

	input := service.CreateUserInput{
		Name:        req.Name,
		Surname:     req.Surname,
		Email:       req.Email,
		Position:    req.Position,
		Password:    req.Password,
		AccessLevel: req.AccessLevel,
	}

	if err := h.services.Users.Create(c.Request.Context(), input); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			c.Status(http.StatusConflict)
			return
		}
		logger.Error("create user failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.Status(http.StatusOK)
}

// @Summary Get Users
// @Tags Users
// @Description Get all users
// @ModuleID getUsers
// @Produce  json
// @Success 200 {array} userResponse
// @Failure 500 {object} errorStruct
// @Router /users [get]
func (h *Handler) getUsers(c *gin.Context) {
	users, err := h.services.Users.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("get users failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	response := make([]userResponse, 0, len(users))
	for i := range users {
		response = append(response, toUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get User
// @Tags Users
// @Description Get one user by id
// @ModuleID getUserByID
// @Produce  json
// @Param id path string true "user id"
// @Success 200 {object} userResponse
// @Failure 404
// @Failure 500 {object} errorStruct
// @Router /users/{id} [get]
func (h *Handler) getUserByID(c *gin.Context) {
	// A non-UUID id cannot match any row.
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	user, err := h.services.Users.GetOneByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		logger.Error("get user by id failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// @Summary Login
// @Tags Users
// @Description Verify account credentials; no session or token is issued
// @ModuleID login
// @Accept  json
// @Produce  json
// @Param input body loginRequest true "credentials"
// @Success 200
// @Failure 400 {object} errorStruct
// @Failure 401
// @Failure 404
// @Failure 500 {object} errorStruct
// @Router /users/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBodyResponse(c)
		return
	}

	if err := h.services.Users.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, service.ErrInvalidPassword):
			c.Status(http.StatusUnauthorized)
		default:
			logger.Error("login failed", zap.Error(err))
			internalErrorResponse(c)
		}
		return
	}

	c.Status(http.StatusOK)
}
