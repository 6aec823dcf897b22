package lambda

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// DecodeEvent converts a raw API Gateway payload into a Request. Both the
// HTTP API (payload v2) and REST API (payload v1) shapes are accepted: the
// method comes from requestContext.http.method, falling back to httpMethod,
// and the path from rawPath, falling back to path and then "/".
func DecodeEvent(payload json.RawMessage) (*Request, error) {
	var v2 events.APIGatewayV2HTTPRequest
	v2Err := json.Unmarshal(payload, &v2)

	var v1 events.APIGatewayProxyRequest
	v1Err := json.Unmarshal(payload, &v1)

	if v2Err != nil && v1Err != nil {
		return nil, fmt.Errorf("failed to decode gateway event: %w", errors.Join(v2Err, v1Err))
	}

	req := &Request{Path: "/"}

	if v2Err == nil {
		req.Method = v2.RequestContext.HTTP.Method
		req.RequestID = v2.RequestContext.RequestID
		if v2.RawPath != "" {
			req.Path = v2.RawPath
		}
		req.Headers = v2.Headers
		req.QueryParams = v2.QueryStringParameters
		req.Body = []byte(v2.Body)
		req.IsBase64Encoded = v2.IsBase64Encoded
	}

	if v1Err == nil {
		if req.Method == "" {
			req.Method = v1.HTTPMethod
		}
		if req.RequestID == "" {
			req.RequestID = v1.RequestContext.RequestID
		}
		if req.Path == "/" && v1.Path != "" {
			req.Path = v1.Path
		}
		if req.Headers == nil {
			req.Headers = v1.Headers
		}
		if req.QueryParams == nil {
			req.QueryParams = v1.QueryStringParameters
		}
		if len(req.Body) == 0 {
			req.Body = []byte(v1.Body)
			req.IsBase64Encoded = v1.IsBase64Encoded
		}
	}

	if len(req.Body) == 0 {
		req.Body = nil
	}

	return req, nil
}

// ToGatewayResponse converts a Response into the proxy integration shape
// both gateway payload versions understand
func ToGatewayResponse(resp *Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}
}
