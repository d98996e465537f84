package catalog

import (
	"testing"

	"github.com/Lucas345987/Python-Master/internal/course"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("embedded catalog is empty")
	}

	// Load is cached.
	c2, err := Load()
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if c2 != c {
		t.Error("expected the same cached catalog")
	}
}

func TestByID(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	first := c.All()[0]
	got, ok := c.ByID(first.ID)
	if !ok {
		t.Fatalf("lesson %q not found", first.ID)
	}
	if got.Title != first.Title {
		t.Errorf("got title %q, want %q", got.Title, first.Title)
	}

	if _, ok := c.ByID("nope"); ok {
		t.Error("expected miss for unknown ID")
	}
}

func TestByLevel(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	basico := c.ByLevel(course.Basico)
	if len(basico) == 0 {
		t.Fatal("expected at least one basic lesson")
	}
	for _, l := range basico {
		if l.Level != course.Basico {
			t.Errorf("lesson %q has level %q", l.ID, l.Level)
		}
	}
}

func TestOutputPayloadsDecode(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	for _, l := range c.All() {
		switch l.OutputType {
		case OutputTable:
			td, err := l.TableOutput()
			if err != nil {
				t.Errorf("lesson %q: %v", l.ID, err)
				continue
			}
			if len(td.Columns) == 0 || len(td.Rows) == 0 {
				t.Errorf("lesson %q: empty table", l.ID)
			}
			for _, row := range td.Rows {
				if len(row) != len(td.Columns) {
					t.Errorf("lesson %q: row width %d != %d columns", l.ID, len(row), len(td.Columns))
				}
			}
		default:
			text, err := l.TextOutput()
			if err != nil {
				t.Errorf("lesson %q: %v", l.ID, err)
				continue
			}
			if text == "" {
				t.Errorf("lesson %q: empty output", l.ID)
			}
		}
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	data := []byte(`[
		{"id": "a", "title": "T", "category": "Geral", "level": "Básico", "description": "d", "sourceCode": "x = 1", "outputType": "text", "outputData": "1", "explanation": "e"},
		{"id": "a", "title": "T2", "category": "Geral", "level": "Básico", "description": "d", "sourceCode": "x = 2", "outputType": "text", "outputData": "2", "explanation": "e"}
	]`)
	if _, err := parse(data); err == nil {
		t.Error("expected duplicate ID rejection")
	}
}

func TestParseRejectsUnknownLevel(t *testing.T) {
	data := []byte(`[
		{"id": "a", "title": "T", "category": "Geral", "level": "Expert", "description": "d", "sourceCode": "x = 1", "outputType": "text", "outputData": "1", "explanation": "e"}
	]`)
	if _, err := parse(data); err == nil {
		t.Error("expected unknown level rejection")
	}
}

func TestParseRejectsUnknownOutputType(t *testing.T) {
	data := []byte(`[
		{"id": "a", "title": "T", "category": "Geral", "level": "Básico", "description": "d", "sourceCode": "x = 1", "outputType": "video", "outputData": "1", "explanation": "e"}
	]`)
	if _, err := parse(data); err == nil {
		t.Error("expected unknown output type rejection")
	}
}

func TestParseRejectsMismatchedPayload(t *testing.T) {
	data := []byte(`[
		{"id": "a", "title": "T", "category": "Geral", "level": "Básico", "description": "d", "sourceCode": "x = 1", "outputType": "table", "outputData": "not a table", "explanation": "e"}
	]`)
	if _, err := parse(data); err == nil {
		t.Error("expected payload decode rejection")
	}
}
