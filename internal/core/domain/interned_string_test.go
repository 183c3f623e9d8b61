package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/catsync/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("ui/icons.atlas")
	is2 := domain.NewInternedString("ui/icons.atlas")

	if is1.Value() != is2.Value() {
		t.Errorf("Expected handles to be equal for identical keys, got %v and %v", is1.Value(), is2.Value())
	}

	if is1.String() != "ui/icons.atlas" {
		t.Errorf("Expected String() to return %q, got %q", "ui/icons.atlas", is1.String())
	}

	var zero domain.InternedString
	if zero.String() != "" {
		t.Errorf("Expected zero value to render empty, got %q", zero.String())
	}
}

func TestInternedStringJSON(t *testing.T) {
	type location struct {
		Key domain.InternedString `json:"key"`
	}

	original := location{Key: domain.NewInternedString("icon_a")}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Failed to marshal struct: %v", err)
	}
	if string(data) != `{"key":"icon_a"}` {
		t.Errorf("Unexpected JSON %q", string(data))
	}

	var decoded location
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal struct: %v", err)
	}
	if decoded.Key != original.Key {
		t.Errorf("Expected decoded key %q, got %q", original.Key, decoded.Key)
	}
}

func TestNewInternedStrings(t *testing.T) {
	keys := []string{"ui/icons.atlas", "icon_a", "ui/icons.atlas"}

	interned := domain.NewInternedStrings(keys)

	if len(interned) != len(keys) {
		t.Fatalf("Expected %d interned keys, got %d", len(keys), len(interned))
	}
	for i, want := range keys {
		if interned[i].String() != want {
			t.Errorf("Expected key at index %d to be %q, got %q", i, want, interned[i].String())
		}
	}
	if interned[0].Value() != interned[2].Value() {
		t.Errorf("Expected duplicate keys to share a handle")
	}
}
