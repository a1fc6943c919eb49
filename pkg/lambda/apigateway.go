package lambda

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

// FromAPIGateway converts an API Gateway proxy event to a generic request
func FromAPIGateway(event events.APIGatewayProxyRequest) *Request {
	requestID := event.RequestContext.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: firstValues(event.QueryStringParameters, event.MultiValueQueryStringParameters),
		Body:        []byte(event.Body),
		PathParams:  event.PathParameters,
		RequestID:   requestID,
	}
}

// ToAPIGateway converts a generic response to an API Gateway proxy response
func ToAPIGateway(resp *Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode:      resp.StatusCode,
		Headers:         resp.Headers,
		Body:            string(resp.Body),
		IsBase64Encoded: false,
	}
}

// firstValues merges single and multi-value query parameters. Single values
// win; multi-value entries contribute their first element.
func firstValues(single map[string]string, multi map[string][]string) map[string]string {
	params := make(map[string]string, len(single)+len(multi))
	for k, values := range multi {
		if len(values) > 0 {
			params[k] = values[0]
		}
	}
	for k, v := range single {
		params[k] = v
	}
	return params
}
