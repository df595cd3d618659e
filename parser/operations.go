package parser

import "net/http"

// HTTP method keys as they appear in a path item.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// Methods lists the path item method keys in document order.
var Methods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodOptions, MethodHead, MethodPatch, MethodTrace,
}

// GetOperations extracts a map of all operations from a PathItem.
// Returns a map with keys for HTTP methods and values pointing to the
// corresponding Operation (or nil if not defined).
func GetOperations(pathItem *PathItem) map[string]*Operation {
	if pathItem == nil {
		return nil
	}
	return map[string]*Operation{
		MethodGet:     pathItem.Get,
		MethodPut:     pathItem.Put,
		MethodPost:    pathItem.Post,
		MethodDelete:  pathItem.Delete,
		MethodOptions: pathItem.Options,
		MethodHead:    pathItem.Head,
		MethodPatch:   pathItem.Patch,
		MethodTrace:   pathItem.Trace,
	}
}

// Operation returns the operation for a method key (case-insensitive HTTP
// method names such as http.MethodGet are accepted too), or nil.
func (p *PathItem) Operation(method string) *Operation {
	if p == nil {
		return nil
	}
	switch method {
	case MethodGet, http.MethodGet:
		return p.Get
	case MethodPut, http.MethodPut:
		return p.Put
	case MethodPost, http.MethodPost:
		return p.Post
	case MethodDelete, http.MethodDelete:
		return p.Delete
	case MethodOptions, http.MethodOptions:
		return p.Options
	case MethodHead, http.MethodHead:
		return p.Head
	case MethodPatch, http.MethodPatch:
		return p.Patch
	case MethodTrace, http.MethodTrace:
		return p.Trace
	default:
		return nil
	}
}
