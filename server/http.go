package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Router registers the HTTP routes with middleware.
func (s *Service) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		v1.GET("/schema", s.getSchema)
		v1.GET("/sample", s.getSample)
		v1.GET("/fields", s.getFields)
		v1.POST("/query", s.postQuery)
	}
	return r
}

func (s *Service) getSchema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"schema": s.Schema()})
}

func (s *Service) getSample(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("n", "5"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_n", "details": "n must be an integer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": s.Sample(n)})
}

func (s *Service) getFields(c *gin.Context) {
	c.JSON(http.StatusOK, s.Fields())
}

type queryRequest struct {
	Pregunta string `json:"pregunta" binding:"required"`
}

func (s *Service) postQuery(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.Query(req.Pregunta))
}
