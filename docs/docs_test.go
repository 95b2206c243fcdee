package docs

import (
	"encoding/json"
	"testing"
)

func TestSwaggerInfo_DocumentsRoutes(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("invalid swagger json: %v", err)
	}

	for path, method := range map[string]string{
		"/v1/ping":                     "get",
		"/v1/payments/by-id/{id}":      "get",
		"/v1/payments/{proposal_id}":   "post",
		"/v1/proposals/{id}/revisions": "post",
	} {
		if _, ok := doc.Paths[path][method]; !ok {
			t.Fatalf("expected %s %s to be documented", method, path)
		}
	}
}
