package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

type requestSpec struct {
	purpose  string
	method   string
	segments []string
	query    url.Values
	body     any
}

func (g *Gateway) execute(ctx context.Context, spec requestSpec) ([]byte, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, transportError("rate limiter wait failed", err)
		}
	}

	request, err := g.newRequest(ctx, spec)
	if err != nil {
		return nil, err
	}

	response, err := g.doRequest(ctx, spec.purpose, request)
	if err != nil {
		return nil, transportError("remote request failed", err)
	}
	defer response.Body.Close()

	body, err := g.readBody(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= http.StatusBadRequest {
		return nil, classifyStatusError(response.StatusCode, body)
	}

	return body, nil
}

// readBody reads one byte past the cap so an oversized body is reported
// instead of being decoded truncated.
func (g *Gateway) readBody(reader io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(reader, g.maxResponse+1))
	if err != nil {
		return nil, transportError("failed to read remote response body", err)
	}
	if int64(len(body)) > g.maxResponse {
		return nil, transportError(fmt.Sprintf("remote response exceeds %d bytes", g.maxResponse), nil)
	}
	return body, nil
}

func (g *Gateway) newRequest(ctx context.Context, spec requestSpec) (*http.Request, error) {
	var bodyReader io.Reader
	if spec.body != nil {
		encoded, err := json.Marshal(spec.body)
		if err != nil {
			return nil, validationError("failed to encode JSON request body", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, spec.method, g.resolveRequestURL(spec.segments, spec.query), bodyReader)
	if err != nil {
		return nil, internalError("failed to create remote request", err)
	}

	request.Header.Set("Accept", defaultMediaType)
	if bodyReader != nil {
		request.Header.Set("Content-Type", defaultMediaType)
	}

	if len(g.defaultHeaders) > 0 {
		keys := make([]string, 0, len(g.defaultHeaders))
		for key := range g.defaultHeaders {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			request.Header.Set(key, g.defaultHeaders[key])
		}
	}

	if err := g.applyAuth(request); err != nil {
		return nil, err
	}

	return request, nil
}

func (g *Gateway) resolveRequestURL(segments []string, query url.Values) string {
	cleaned := make([]string, 0, len(segments))
	for _, segment := range segments {
		if trimmed := strings.Trim(strings.TrimSpace(segment), "/"); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	target := g.baseURL.JoinPath(cleaned...)
	values := target.Query()
	for key, items := range query {
		for _, item := range items {
			values.Add(key, item)
		}
	}
	target.RawQuery = values.Encode()

	return target.String()
}
