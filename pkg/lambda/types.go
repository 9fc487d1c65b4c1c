package lambda

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string              `json:"method"`
	Path        string              `json:"path"`
	Headers     map[string]string   `json:"headers"`
	QueryParams map[string][]string `json:"query_params"`
	Body        []byte              `json:"body"`
	SourceIP    string              `json:"source_ip"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// FromAPIGateway converts an API Gateway proxy event into a Request.
func FromAPIGateway(event events.APIGatewayProxyRequest) (*Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode request body: %w", err)
		}
		body = decoded
	}

	query := make(map[string][]string, len(event.QueryStringParameters))
	for key, value := range event.QueryStringParameters {
		query[key] = []string{value}
	}
	for key, values := range event.MultiValueQueryStringParameters {
		query[key] = values
	}

	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: query,
		Body:        body,
		SourceIP:    event.RequestContext.Identity.SourceIP,
	}, nil
}

// HTTPRequest builds the net/http request the router serves.
func (r *Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	target := r.Path
	if len(r.QueryParams) > 0 {
		target += "?" + url.Values(r.QueryParams).Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, bytes.NewReader(r.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	for key, value := range r.Headers {
		req.Header.Set(key, value)
	}
	if r.SourceIP != "" {
		req.RemoteAddr = r.SourceIP + ":0"
	}

	return req, nil
}

// Serve runs the request through handler and captures the response.
func Serve(ctx context.Context, handler http.Handler, r *Request) (*Response, error) {
	req, err := r.HTTPRequest(ctx)
	if err != nil {
		return nil, err
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	headers := make(map[string]string, len(recorder.Header()))
	for key, values := range recorder.Header() {
		headers[key] = strings.Join(values, ", ")
	}

	return &Response{
		StatusCode: recorder.Code,
		Headers:    headers,
		Body:       recorder.Body.Bytes(),
	}, nil
}

// ToAPIGateway converts a Response into an API Gateway proxy response.
func (r *Response) ToAPIGateway() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}
