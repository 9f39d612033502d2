package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Calendar(c *ginext.Context)
	SubmitRSVP(c *ginext.Context)
	Auth(c *ginext.Context)
	Data(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(cors.Default())
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.GET("/calendar", h.Calendar)
		api.POST("/rsvp", h.SubmitRSVP)

		// Dashboard
		api.POST("/responses/auth", h.Auth)
		api.POST("/responses/data", h.Data)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
