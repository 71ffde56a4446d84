package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-server/services/messaging-api/internal/interfaces/httpserver/handlers"
	"jan-server/services/messaging-api/internal/interfaces/httpserver/requests"
	"jan-server/services/messaging-api/internal/interfaces/httpserver/responses"
	"jan-server/services/messaging-api/internal/utils/platformerrors"
)

func registerConversationRoutes(router gin.IRoutes, handler *handlers.ConversationHandler, messages *handlers.MessageHandler, log zerolog.Logger) {
	router.GET("/conversations", listConversations(handler, log))
	router.POST("/conversations", createConversation(handler, log))
	router.GET("/conversations/:id", getConversation(handler, messages, log))
	router.PATCH("/conversations/:id", updateConversation(handler, log))
	router.PUT("/conversations/:id", updateConversation(handler, log))
	router.DELETE("/conversations/:id", deleteConversation(handler, log))
}

// listConversations godoc
// @Summary      List conversations
// @Description  Lists the caller's conversations, each with the other participant resolved.
// @Tags         conversations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  responses.ListResponse[responses.ConversationResponse]
// @Failure      401  {object}  platformerrors.HTTPErrorResponse
// @Failure      500  {object}  platformerrors.HTTPErrorResponse
// @Router       /v1/conversations [get]
func listConversations(handler *handlers.ConversationHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := currentUser(c)
		if !ok {
			return
		}

		views, err := handler.List(c.Request.Context(), current.ID)
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}
		c.JSON(http.StatusOK, responses.NewConversationList(views))
	}
}

// createConversation godoc
// @Summary      Start a conversation
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      requests.CreateConversationRequest  true  "Recipient"
// @Success      201      {object}  responses.ConversationResponse
// @Failure      400      {object}  platformerrors.HTTPErrorResponse
// @Failure      401      {object}  platformerrors.HTTPErrorResponse
// @Router       /v1/conversations [post]
func createConversation(handler *handlers.ConversationHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := currentUser(c)
		if !ok {
			return
		}

		var req requests.CreateConversationRequest
		if !bindJSON(c, &req) {
			return
		}

		view, err := handler.Create(c.Request.Context(), current.ID, req.RecipientID)
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}
		c.JSON(http.StatusCreated, responses.NewConversationResponse(view))
	}
}

// getConversation godoc
// @Summary      Show a conversation
// @Description  Returns the conversation with its recipient and full message history.
// @Tags         conversations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Conversation ID"
// @Success      200  {object}  responses.ConversationDetailResponse
// @Failure      400  {object}  platformerrors.HTTPErrorResponse
// @Failure      403  {object}  platformerrors.HTTPErrorResponse
// @Failure      404  {object}  platformerrors.HTTPErrorResponse
// @Router       /v1/conversations/{id} [get]
func getConversation(handler *handlers.ConversationHandler, messages *handlers.MessageHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		view, err := handler.Get(c.Request.Context(), id, current.ID)
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}
		msgs, err := messages.List(c.Request.Context(), id, current.ID)
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}
		c.JSON(http.StatusOK, responses.NewConversationDetail(view, msgs))
	}
}

// updateConversation godoc
// @Summary      Change a conversation's recipient
// @Description  Only allowed while the conversation has no messages.
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                                 true  "Conversation ID"
// @Param        request  body      requests.UpdateConversationRequest  true  "New recipient"
// @Success      200      {object}  responses.ConversationResponse
// @Failure      400      {object}  platformerrors.HTTPErrorResponse
// @Failure      403      {object}  platformerrors.HTTPErrorResponse
// @Failure      404      {object}  platformerrors.HTTPErrorResponse
// @Failure      409      {object}  platformerrors.HTTPErrorResponse
// @Router       /v1/conversations/{id} [patch]
// @Router       /v1/conversations/{id} [put]
func updateConversation(handler *handlers.ConversationHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		var req requests.UpdateConversationRequest
		if !bindJSON(c, &req) {
			return
		}

		view, err := handler.Update(c.Request.Context(), id, current.ID, req.RecipientID)
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}
		c.JSON(http.StatusOK, responses.NewConversationResponse(view))
	}
}

// deleteConversation godoc
// @Summary      Delete a conversation
// @Description  Deletes the conversation together with all of its messages.
// @Tags         conversations
// @Security     BearerAuth
// @Param        id   path  int  true  "Conversation ID"
// @Success      204
// @Failure      403  {object}  platformerrors.HTTPErrorResponse
// @Failure      404  {object}  platformerrors.HTTPErrorResponse
// @Router       /v1/conversations/{id} [delete]
func deleteConversation(handler *handlers.ConversationHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		if err := handler.Delete(c.Request.Context(), id, current.ID); err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
