package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"cadastral-lookup-api/pkg/lambda"
)

// CORS header values shared by every response
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, OPTIONS"
	corsAllowHeaders = "Content-Type"
	corsMaxAge       = "86400"
)

// preflightResponse answers an OPTIONS request
func preflightResponse() *lambda.Response {
	return &lambda.Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  corsAllowOrigin,
			"Access-Control-Allow-Methods": corsAllowMethods,
			"Access-Control-Allow-Headers": corsAllowHeaders,
			"Access-Control-Max-Age":       corsMaxAge,
		},
		Body: []byte{},
	}
}

// jsonResponse encodes body as UTF-8 JSON without escaping non-ASCII or HTML characters
func jsonResponse(statusCode int, body interface{}) *lambda.Response {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(body); err != nil {
		statusCode = http.StatusInternalServerError
		buf.Reset()
		buf.WriteString(`{"error":"Internal server error"}`)
	}

	return &lambda.Response{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json; charset=utf-8",
			"Access-Control-Allow-Origin": corsAllowOrigin,
		},
		Body: bytes.TrimRight(buf.Bytes(), "\n"),
	}
}
