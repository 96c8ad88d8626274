package model

import (
	"fmt"
	"strings"
)

// Method is the HTTP method a generated handler answers to
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// SupportedMethods lists the methods the scaffolder can generate, in display order
var SupportedMethods = []Method{MethodGet, MethodPost}

// ParseMethod normalizes a user-supplied method name (case-insensitive)
func ParseMethod(raw string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(raw)))
	switch m {
	case MethodGet, MethodPost:
		return m, nil
	}
	return "", &InvalidMethodError{Method: raw}
}

// String returns the uppercase method name
func (m Method) String() string {
	return string(m)
}

// EndpointSpec describes one endpoint to scaffold.
// It is validated once by NewEndpointSpec and never mutated afterwards.
type EndpointSpec struct {
	Path      []string
	Method    Method
	Protected bool
}

// NewEndpointSpec builds a validated EndpointSpec from raw CLI input
func NewEndpointSpec(rawPath, rawMethod string, protected bool) (EndpointSpec, error) {
	segments, err := SplitPath(rawPath)
	if err != nil {
		return EndpointSpec{}, err
	}

	method, err := ParseMethod(rawMethod)
	if err != nil {
		return EndpointSpec{}, err
	}

	return EndpointSpec{
		Path:      segments,
		Method:    method,
		Protected: protected,
	}, nil
}

// RawPath returns the segments joined with "/" (no leading slash)
func (s EndpointSpec) RawPath() string {
	return strings.Join(s.Path, "/")
}

// SplitPath splits an endpoint path into its segments.
// Surrounding slashes are ignored; empty, "." and ".." segments are rejected.
func SplitPath(rawPath string) ([]string, error) {
	trimmed := strings.Trim(strings.TrimSpace(rawPath), "/")
	if trimmed == "" {
		return nil, &UsageError{Reason: "endpoint path must contain at least one segment"}
	}

	segments := strings.Split(trimmed, "/")
	for _, seg := range segments {
		switch seg {
		case "":
			return nil, &UsageError{Reason: fmt.Sprintf("endpoint path %q contains an empty segment", rawPath)}
		case ".", "..":
			return nil, &UsageError{Reason: fmt.Sprintf("endpoint path %q contains a relative segment %q", rawPath, seg)}
		}
		if strings.ContainsRune(seg, '\\') {
			return nil, &UsageError{Reason: fmt.Sprintf("endpoint path segment %q contains a backslash", seg)}
		}
	}

	return segments, nil
}
