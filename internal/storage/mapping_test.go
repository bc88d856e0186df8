package storage

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestReviewMappingJSON(t *testing.T) {
	body, err := NewReviewMapping().GetJSON()
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		t.Fatalf("mapping is not valid JSON: %v", err)
	}

	for _, field := range []string{"product_id", "status", "suggested_tags", "indexed_at"} {
		if !strings.Contains(body, `"`+field+`"`) {
			t.Errorf("mapping missing field %q", field)
		}
	}
	if !strings.Contains(body, `"number_of_shards":1`) {
		t.Errorf("mapping missing settings: %s", body)
	}
}
