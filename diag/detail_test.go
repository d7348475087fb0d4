package diag

import "testing"

func TestDetailKeyConstants(t *testing.T) {
	// Verify all standard detail keys are non-empty and follow naming conventions
	keys := []struct {
		name  string
		value string
	}{
		{"DetailKeyExpected", DetailKeyExpected},
		{"DetailKeyGot", DetailKeyGot},
		{"DetailKeyTypeName", DetailKeyTypeName},
		{"DetailKeyPropertyName", DetailKeyPropertyName},
		{"DetailKeySlotName", DetailKeySlotName},
		{"DetailKeyCapabilityName", DetailKeyCapabilityName},
		{"DetailKeyTemplateName", DetailKeyTemplateName},
		{"DetailKeyInputName", DetailKeyInputName},
		{"DetailKeyOperator", DetailKeyOperator},
		{"DetailKeyReason", DetailKeyReason},
		{"DetailKeyField", DetailKeyField},
		{"DetailKeyDetail", DetailKeyDetail},
		{"DetailKeyFormat", DetailKeyFormat},
		{"DetailKeyCycle", DetailKeyCycle},
		{"DetailKeyName", DetailKeyName},
		{"DetailKeyContext", DetailKeyContext},
		{"DetailKeyId", DetailKeyId},
		{"DetailKeyDepth", DetailKeyDepth},
	}

	for _, k := range keys {
		t.Run(k.name, func(t *testing.T) {
			if k.value == "" {
				t.Errorf("%s is empty", k.name)
			}
			// Verify lower_snake_case (no uppercase letters)
			for _, r := range k.value {
				if r >= 'A' && r <= 'Z' {
					t.Errorf("%s contains uppercase: %q", k.name, k.value)
					break
				}
			}
		})
	}
}

func TestDetailKeyConstants_Uniqueness(t *testing.T) {
	keys := []string{
		DetailKeyExpected,
		DetailKeyGot,
		DetailKeyTypeName,
		DetailKeyPropertyName,
		DetailKeySlotName,
		DetailKeyCapabilityName,
		DetailKeyTemplateName,
		DetailKeyInputName,
		DetailKeyOperator,
		DetailKeyReason,
		DetailKeyField,
		DetailKeyDetail,
		DetailKeyFormat,
		DetailKeyCycle,
		DetailKeyName,
		DetailKeyContext,
		DetailKeyId,
		DetailKeyDepth,
	}

	seen := make(map[string]bool)
	for _, k := range keys {
		if seen[k] {
			t.Errorf("duplicate key: %q", k)
		}
		seen[k] = true
	}
}

func TestExpectedGot(t *testing.T) {
	details := ExpectedGot("string", "int")

	if len(details) != 2 {
		t.Fatalf("ExpectedGot returned %d details; want 2", len(details))
	}

	if details[0].Key != DetailKeyExpected {
		t.Errorf("first detail key = %q; want %q", details[0].Key, DetailKeyExpected)
	}
	if details[0].Value != "string" {
		t.Errorf("first detail value = %q; want %q", details[0].Value, "string")
	}

	if details[1].Key != DetailKeyGot {
		t.Errorf("second detail key = %q; want %q", details[1].Key, DetailKeyGot)
	}
	if details[1].Value != "int" {
		t.Errorf("second detail value = %q; want %q", details[1].Value, "int")
	}
}

func TestTypeProp(t *testing.T) {
	details := TypeProp("tosca.nodes.WebServer", "http_port")

	if len(details) != 2 {
		t.Fatalf("TypeProp returned %d details; want 2", len(details))
	}

	if details[0].Key != DetailKeyTypeName {
		t.Errorf("first detail key = %q; want %q", details[0].Key, DetailKeyTypeName)
	}
	if details[0].Value != "tosca.nodes.WebServer" {
		t.Errorf("first detail value = %q; want %q", details[0].Value, "tosca.nodes.WebServer")
	}

	if details[1].Key != DetailKeyPropertyName {
		t.Errorf("second detail key = %q; want %q", details[1].Key, DetailKeyPropertyName)
	}
	if details[1].Value != "http_port" {
		t.Errorf("second detail value = %q; want %q", details[1].Value, "http_port")
	}
}

func TestTemplateSlot(t *testing.T) {
	details := TemplateSlot("wordpress", "host")

	if len(details) != 2 {
		t.Fatalf("TemplateSlot returned %d details; want 2", len(details))
	}

	if details[0].Key != DetailKeyTemplateName {
		t.Errorf("first detail key = %q; want %q", details[0].Key, DetailKeyTemplateName)
	}
	if details[0].Value != "wordpress" {
		t.Errorf("first detail value = %q; want %q", details[0].Value, "wordpress")
	}

	if details[1].Key != DetailKeySlotName {
		t.Errorf("second detail key = %q; want %q", details[1].Key, DetailKeySlotName)
	}
	if details[1].Value != "host" {
		t.Errorf("second detail value = %q; want %q", details[1].Value, "host")
	}
}

func TestSlotCapabilityProp(t *testing.T) {
	details := SlotCapabilityProp("database_endpoint", "database_endpoint", "port")

	if len(details) != 3 {
		t.Fatalf("SlotCapabilityProp returned %d details; want 3", len(details))
	}

	if details[0].Key != DetailKeySlotName || details[0].Value != "database_endpoint" {
		t.Errorf("first detail = %+v; want slot=database_endpoint", details[0])
	}
	if details[1].Key != DetailKeyCapabilityName || details[1].Value != "database_endpoint" {
		t.Errorf("second detail = %+v; want capability=database_endpoint", details[1])
	}
	if details[2].Key != DetailKeyPropertyName || details[2].Value != "port" {
		t.Errorf("third detail = %+v; want property=port", details[2])
	}
}

func TestDetail_ZeroValue(t *testing.T) {
	var d Detail
	if d.Key != "" {
		t.Errorf("zero Detail.Key = %q; want empty", d.Key)
	}
	if d.Value != "" {
		t.Errorf("zero Detail.Value = %q; want empty", d.Value)
	}
}
