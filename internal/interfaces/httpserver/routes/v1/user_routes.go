package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-server/services/messaging-api/internal/infrastructure/auth"
	"jan-server/services/messaging-api/internal/interfaces/httpserver/handlers"
	"jan-server/services/messaging-api/internal/interfaces/httpserver/requests"
	"jan-server/services/messaging-api/internal/interfaces/httpserver/responses"
	"jan-server/services/messaging-api/internal/utils/platformerrors"
)

func registerUserRoutes(router gin.IRoutes, handler *handlers.UserHandler, log zerolog.Logger) {
	router.GET("/users", listUsers(handler, log))
	router.GET("/users/me", getMe())
	router.POST("/users/me", updateMe(handler, log))
}

// listUsers godoc
// @Summary      List users
// @Description  Lists registered users that a conversation can be started with.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  responses.ListResponse[responses.UserResponse]
// @Failure      401  {object}  platformerrors.HTTPErrorResponse
// @Failure      500  {object}  platformerrors.HTTPErrorResponse
// @Router       /v1/users [get]
func listUsers(handler *handlers.UserHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := handler.ListUsers(c.Request.Context())
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}
		c.JSON(http.StatusOK, responses.NewUserList(users))
	}
}

// getMe godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  responses.UserResponse
// @Failure      401  {object}  platformerrors.HTTPErrorResponse
// @Router       /v1/users/me [get]
func getMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := currentUser(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, responses.NewUserResponse(current))
	}
}

// updateMe godoc
// @Summary      Update current user profile
// @Description  Overrides the display name or email taken from the identity token.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      requests.UpdateProfileRequest  true  "Profile fields"
// @Success      200      {object}  responses.UserResponse
// @Failure      400      {object}  platformerrors.HTTPErrorResponse
// @Failure      401      {object}  platformerrors.HTTPErrorResponse
// @Router       /v1/users/me [post]
func updateMe(handler *handlers.UserHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := auth.IdentityFrom(c)
		if !ok {
			platformerrors.WriteUnauthorized(c, "unauthenticated request")
			return
		}

		var req requests.UpdateProfileRequest
		if !bindJSON(c, &req) {
			return
		}

		updated, err := handler.UpdateProfile(c.Request.Context(), identity, req.DisplayName, req.Email)
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}
		c.JSON(http.StatusOK, responses.NewUserResponse(updated))
	}
}
