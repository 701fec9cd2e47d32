package swaggerkit

import (
	"encoding/json"
	"net/http"
	"sync"
)

// SpecMutator lets modules tweak the OpenAPI doc before it is served
type SpecMutator func(map[string]any)

// Documented is implemented by modules that describe their own endpoints
type Documented interface {
	Document(spec map[string]any)
}

// Doc is an in process OpenAPI 3 document assembled from module mutators
type Doc struct {
	title   string
	version string

	mu       sync.RWMutex
	mutators []SpecMutator
}

// New returns an empty doc with the given title and version
func New(title, version string) *Doc {
	return &Doc{title: title, version: version}
}

// Register adds a spec mutator, nil is ignored
func (d *Doc) Register(m SpecMutator) {
	if m == nil {
		return
	}
	d.mu.Lock()
	d.mutators = append(d.mutators, m)
	d.mu.Unlock()
}

// Build renders a fresh spec map; every call starts from the skeleton
func (d *Doc) Build() map[string]any {
	spec := map[string]any{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": d.title, "version": d.version},
		"servers": []any{map[string]any{"url": "/"}},
		"paths":   map[string]any{},
	}

	d.mu.RLock()
	for _, m := range d.mutators {
		m(spec)
	}
	d.mu.RUnlock()

	ensureErrorResponseDefinition(spec)
	addDefaultError(spec)
	return spec
}

func (d *Doc) serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(d.Build())
	}
}

// AddOperation sets paths[path][method] = op, creating the path node when missing
func AddOperation(spec map[string]any, method, path string, op map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		paths = map[string]any{}
		spec["paths"] = paths
	}
	node, ok := paths[path].(map[string]any)
	if !ok {
		node = map[string]any{}
		paths[path] = node
	}
	node[method] = op
}

// AddBadRequest injects the 400 error response on one operation
func AddBadRequest(spec map[string]any, method, path string) {
	op := operation(spec, method, path)
	if op == nil {
		return
	}
	responses(op)["400"] = errorResponse("Bad Request", map[string]any{
		"status_code": 400,
		"status":      "Bad Request",
		"code":        8,
		"error":       "name is a required field",
		"field":       "name",
		"request_id":  "579f33bf50b1/abc-000001",
	})
}

// ensureErrorResponseDefinition creates the error envelope model if missing
// kept minimal so it does not drift from the runtime wire
func ensureErrorResponseDefinition(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultError injects a 500 response on every operation that lacks one
func addDefaultError(spec map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	errResp := errorResponse("Internal Server Error", map[string]any{
		"status_code": 500,
		"status":      "Internal Server Error",
		"code":        1,
		"error":       "panic recovered",
		"request_id":  "579f33bf50b1/abc-000001",
	})
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps := responses(op)
			if _, exists := resps["500"]; !exists {
				resps["500"] = errResp
			}
		}
	}
}

func operation(spec map[string]any, method, path string) map[string]any {
	paths, _ := spec["paths"].(map[string]any)
	node, _ := paths[path].(map[string]any)
	op, _ := node[method].(map[string]any)
	return op
}

func responses(op map[string]any) map[string]any {
	resps, ok := op["responses"].(map[string]any)
	if !ok {
		resps = map[string]any{}
		op["responses"] = resps
	}
	return resps
}

func errorResponse(desc string, example map[string]any) map[string]any {
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
}
