package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// contentTypeHTML is used for every string response
const contentTypeHTML = "text/html; charset=utf-8"

// UptimeBody is the probe response body
const UptimeBody = "OK"

// AllowedMethods lists the methods every route answers
const AllowedMethods = "GET, HEAD, OPTIONS"

// Greeting renders the index page body for an application name
func Greeting(appName string) string {
	return fmt.Sprintf("<h1>Hello!</h1><p>You are hitting %s", appName)
}

// handleIndex serves the greeting page
func (s *Server) handleIndex(c *gin.Context) {
	writeHTML(c, Greeting(s.appName))
}

// handleUptime answers liveness and readiness probes
func (s *Server) handleUptime(c *gin.Context) {
	writeHTML(c, UptimeBody)
}

// handleOptions advertises the allowed methods with an empty body
func (s *Server) handleOptions(c *gin.Context) {
	c.Header("Allow", AllowedMethods)
	c.Status(http.StatusOK)
}

// handleMethodNotAllowed adds Allow to the router's default 405
func (s *Server) handleMethodNotAllowed(c *gin.Context) {
	c.Header("Allow", AllowedMethods)
}

// writeHTML sends body, or only its headers for HEAD
func writeHTML(c *gin.Context, body string) {
	if c.Request.Method == http.MethodHead {
		c.Header("Content-Type", contentTypeHTML)
		c.Header("Content-Length", strconv.Itoa(len(body)))
		c.Status(http.StatusOK)
		return
	}
	c.Data(http.StatusOK, contentTypeHTML, []byte(body))
}
