package jsonchange

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestClone_DeepEqual(t *testing.T) {
	var doc any
	json.Unmarshal([]byte(`{"a":{"b":[1,{"c":null}]},"d":true,"e":"s"}`), &doc)

	out := Clone(doc)
	if !reflect.DeepEqual(out, doc) {
		t.Fatalf("clone is not deep-equal to input\n\tgot: %#v\n\twant: %#v", out, doc)
	}
}

func TestClone_NoSharedContainers(t *testing.T) {
	inner := []any{1.0, 2.0}
	mid := map[string]any{"list": inner}
	doc := map[string]any{"mid": mid, "top": []any{mid}}

	out := Clone(doc).(map[string]any)

	sameRef := func(a, b any) bool {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	if sameRef(out, doc) {
		t.Error("root map shared")
	}
	if sameRef(out["mid"], mid) {
		t.Error("nested map shared")
	}
	if sameRef(out["mid"].(map[string]any)["list"], inner) {
		t.Error("nested slice shared")
	}
	if sameRef(out["top"], doc["top"]) {
		t.Error("slice of maps shared")
	}
	if sameRef(out["top"].([]any)[0], mid) {
		t.Error("map inside slice shared")
	}
}

func TestClone_MutationDoesNotLeak(t *testing.T) {
	var doc any
	json.Unmarshal([]byte(`{"a":{"b":[1,2,3]}}`), &doc)
	snapshot, _ := json.Marshal(doc)

	out := Clone(doc)
	out.(map[string]any)["a"].(map[string]any)["b"].([]any)[1] = "changed"
	out.(map[string]any)["new"] = true

	after, _ := json.Marshal(doc)
	if string(snapshot) != string(after) {
		t.Fatalf("input mutated through clone\n\tbefore: %s\n\tafter: %s", snapshot, after)
	}
}

func TestClone_Primitives(t *testing.T) {
	for _, v := range []any{nil, true, 3.14, "s"} {
		if out := Clone(v); !reflect.DeepEqual(out, v) {
			t.Errorf("Clone(%#v) = %#v", v, out)
		}
	}
}
