package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"shadergen-srv/pkg/discord"
	pkgErrors "shadergen-srv/pkg/errors"
)

// OK writes a 200 response with the given payload under "response".
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{Response: data})
}

// Error writes an error response. *pkgErrors.HTTPError keeps its status code
// and message; anything else becomes a 500. Server-side failures are reported
// to Discord when a webhook client is configured.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		code = httpErr.Code
		message = httpErr.Message
	}

	if code >= http.StatusInternalServerError && discordClient != nil {
		ctx := c.Request.Context()
		_ = discordClient.SendError(ctx,
			"Request failed",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			err,
		)
	}

	c.JSON(code, Resp{Error: message})
}

// PanicError writes a 500 response for a recovered panic and reports it to
// Discord when a webhook client is configured.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	if discordClient != nil {
		ctx := c.Request.Context()
		_ = discordClient.SendError(ctx,
			"Panic recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered),
		)
	}

	c.JSON(http.StatusInternalServerError, Resp{Error: "Internal server error"})
}
