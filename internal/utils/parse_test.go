package utils

import "testing"

func TestParseStringAsPrimitives(t *testing.T) {
	if got, err := ParseStringAs[string]("hello"); err != nil || got != "hello" {
		t.Errorf("string: got %q, %v", got, err)
	}
	if got, err := ParseStringAs[int]("42"); err != nil || got != 42 {
		t.Errorf("int: got %d, %v", got, err)
	}
	if got, err := ParseStringAs[bool]("true"); err != nil || !got {
		t.Errorf("bool: got %v, %v", got, err)
	}
	if got, err := ParseStringAs[float64]("3.14"); err != nil || got != 3.14 {
		t.Errorf("float64: got %v, %v", got, err)
	}
	if _, err := ParseStringAs[int]("not a number"); err == nil {
		t.Error("expected error for non-numeric int input")
	}
}

func TestParseStringAsStruct(t *testing.T) {
	type city struct {
		Name       string `json:"name"`
		Population int    `json:"population"`
	}

	got, err := ParseStringAs[city](`{"name":"Rome","population":2873000}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Rome" || got.Population != 2873000 {
		t.Errorf("got %+v", got)
	}
}

// Almost-JSON model output (single quotes, trailing commas) is repaired.
func TestParseStringAsRepairsJSON(t *testing.T) {
	type city struct {
		Name string `json:"name"`
	}

	got, err := ParseStringAs[city](`{'name': 'Rome',}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Rome" {
		t.Errorf("got %+v", got)
	}
}
