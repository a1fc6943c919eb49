package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"cadastral-lookup-api/internal/middleware"
	"cadastral-lookup-api/pkg/lambda"
)

// maxAdaptedBodySize caps how much of a request body is forwarded to a lambda handler
const maxAdaptedBodySize = 1 << 20

var errNoResponse = errors.New("handler returned no response")

// GinAdapter exposes a framework-agnostic handler as a gin handler, so the
// development server and the Lambda runtime share one code path.
func GinAdapter(fn lambda.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := requestFromGin(c)

		resp, err := fn(c.Request.Context(), req)
		if err == nil && resp == nil {
			err = errNoResponse
		}
		if err != nil {
			// Rendered by middleware.ErrorHandler
			_ = c.Error(err)
			c.Abort()
			return
		}

		for key, value := range resp.Headers {
			c.Header(key, value)
		}
		contentType := resp.Headers["Content-Type"]
		if len(resp.Body) == 0 {
			c.Status(resp.StatusCode)
			return
		}
		c.Data(resp.StatusCode, contentType, resp.Body)
	}
}

func requestFromGin(c *gin.Context) *lambda.Request {
	headers := make(map[string]string, len(c.Request.Header))
	for key := range c.Request.Header {
		headers[key] = c.Request.Header.Get(key)
	}

	query := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}

	params := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		params[p.Key] = p.Value
	}

	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(io.LimitReader(c.Request.Body, maxAdaptedBodySize))
	}

	return &lambda.Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Headers:     headers,
		QueryParams: query,
		Body:        body,
		PathParams:  params,
		RequestID:   c.GetString(middleware.RequestIDKey),
	}
}
