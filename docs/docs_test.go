package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var parsed struct {
		Info  map[string]any            `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}
	if parsed.Info["title"] != SwaggerInfo.Title {
		t.Errorf("title = %v, want %q", parsed.Info["title"], SwaggerInfo.Title)
	}

	found := false
	for path, ops := range parsed.Paths {
		if strings.Contains(path, "/cache/contacts/") && strings.Contains(path, "sessions") {
			if _, ok := ops["delete"]; ok {
				found = true
			}
		}
	}
	if !found {
		t.Error("session contact cache route missing from doc")
	}
}
