package v13

import (
	"encoding/json"
	"testing"
)

func TestModuleJSONKeepsAbsentVsEmpty(t *testing.T) {
	src := Metadata{
		Modules: []Module{
			{
				// Present but empty call enum; no events at all.
				Name:      "Utility",
				Calls:     []Function{},
				Constants: []Constant{},
				Errors:    []ErrorMetadata{},
				Index:     4,
			},
		},
		Extrinsic: Extrinsic{Version: 4},
	}
	data, err := json.Marshal(src)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Metadata
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	mod := back.Modules[0]
	if mod.Calls == nil {
		t.Errorf("empty call list collapsed to absent")
	}
	if len(mod.Calls) != 0 {
		t.Errorf("unexpected calls: %v", mod.Calls)
	}
	if mod.Event != nil {
		t.Errorf("absent events became present: %v", mod.Event)
	}
}
