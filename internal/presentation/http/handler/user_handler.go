package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/application/service"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/request"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/response"
)

// UserHandler handles staff management HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles listing staff accounts
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	output, err := h.userService.ListUsers(c.Request.Context(), &service.ListUsersInput{
		Page:    page,
		PerPage: perPage,
		Search:  c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Users retrieved successfully", gin.H{
		"users":       output.Users,
		"total":       output.Total,
		"page":        output.Page,
		"per_page":    output.PerPage,
		"total_pages": output.TotalPages,
	})
}

// Get handles retrieving one staff account
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User retrieved successfully", user)
}

// Create handles an admin creating a staff account
func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &service.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		RoleIDs:   req.RoleIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "User created successfully", user)
}

// UpdateRoles handles replacing a user's roles
func (h *UserHandler) UpdateRoles(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.UpdateUserRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateUserRoles(c.Request.Context(), &service.UpdateUserRolesInput{
		UserID:  id,
		RoleIDs: req.RoleIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User roles updated successfully", user)
}

// SetActive handles enabling or disabling a staff account
func (h *UserHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User updated successfully", user)
}

// Delete handles removing a staff account
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if userID := GetUserID(c); userID != nil && *userID == id {
		response.BadRequest(c, "You cannot remove your own account")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User removed successfully", nil)
}

// ListRoles handles listing available roles
func (h *UserHandler) ListRoles(c *gin.Context) {
	roles, err := h.userService.ListRoles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Roles retrieved successfully", roles)
}

// ListPermissions handles listing available permissions
func (h *UserHandler) ListPermissions(c *gin.Context) {
	permissions, err := h.userService.ListPermissions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Permissions retrieved successfully", permissions)
}
