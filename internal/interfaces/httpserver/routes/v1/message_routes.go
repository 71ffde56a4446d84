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

const lastMessageIDParam = "last_message_id"

func registerMessageRoutes(router gin.IRoutes, handler *handlers.MessageHandler, log zerolog.Logger) {
	router.GET("/conversations/:id/refresh_messages", refreshMessages(handler, log))
	router.GET("/conversations/:id/messages", listMessages(handler, log))
	router.POST("/conversations/:id/messages", postMessage(handler, log))
	router.DELETE("/conversations/:id/messages/:message_id", deleteMessage(handler, log))
}

// refreshMessages godoc
// @Summary      Poll for new messages
// @Description  Returns messages created after last_message_id in conversation order.
// @Description  Without last_message_id the result is empty; clients load history from GET /v1/conversations/{id} first.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id               path      int  true   "Conversation ID"
// @Param        last_message_id  query     int  false  "Newest message the client has seen"
// @Success      200              {object}  responses.RefreshMessagesResponse
// @Failure      400              {object}  platformerrors.HTTPErrorResponse
// @Failure      403              {object}  platformerrors.HTTPErrorResponse
// @Failure      404              {object}  platformerrors.HTTPErrorResponse
// @Router       /v1/conversations/{id}/refresh_messages [get]
func refreshMessages(handler *handlers.MessageHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		lastSeen, ok := optionalQueryID(c, lastMessageIDParam)
		if !ok {
			return
		}

		msgs, err := handler.Refresh(c.Request.Context(), id, current.ID, lastSeen)
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}
		c.JSON(http.StatusOK, responses.NewRefreshMessagesResponse(msgs, lastSeen))
	}
}

// listMessages godoc
// @Summary      List messages
// @Description  Returns every message of the conversation ordered by creation time.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Conversation ID"
// @Success      200  {object}  responses.ListResponse[responses.MessageResponse]
// @Failure      403  {object}  platformerrors.HTTPErrorResponse
// @Failure      404  {object}  platformerrors.HTTPErrorResponse
// @Router       /v1/conversations/{id}/messages [get]
func listMessages(handler *handlers.MessageHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		msgs, err := handler.List(c.Request.Context(), id, current.ID)
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}
		c.JSON(http.StatusOK, responses.NewMessageList(msgs))
	}
}

// postMessage godoc
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                          true  "Conversation ID"
// @Param        request  body      requests.PostMessageRequest  true  "Message"
// @Success      201      {object}  responses.MessageResponse
// @Failure      400      {object}  platformerrors.HTTPErrorResponse
// @Failure      403      {object}  platformerrors.HTTPErrorResponse
// @Failure      404      {object}  platformerrors.HTTPErrorResponse
// @Router       /v1/conversations/{id}/messages [post]
func postMessage(handler *handlers.MessageHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		var req requests.PostMessageRequest
		if !bindJSON(c, &req) {
			return
		}

		msg, err := handler.Post(c.Request.Context(), id, current.ID, req.Body)
		if err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}
		c.JSON(http.StatusCreated, responses.NewMessageResponse(msg))
	}
}

// deleteMessage godoc
// @Summary      Delete a message
// @Description  Only the sender may delete a message.
// @Tags         messages
// @Security     BearerAuth
// @Param        id          path  int  true  "Conversation ID"
// @Param        message_id  path  int  true  "Message ID"
// @Success      204
// @Failure      403  {object}  platformerrors.HTTPErrorResponse
// @Failure      404  {object}  platformerrors.HTTPErrorResponse
// @Router       /v1/conversations/{id}/messages/{message_id} [delete]
func deleteMessage(handler *handlers.MessageHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := currentUser(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		messageID, ok := pathID(c, "message_id")
		if !ok {
			return
		}

		if err := handler.Delete(c.Request.Context(), id, messageID, current.ID); err != nil {
			platformerrors.WriteError(c, err, log)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
