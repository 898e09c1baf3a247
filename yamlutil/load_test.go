package yamlutil

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/crmarques/nfvctl/faults"
)

func writeTestFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func assertTypedCategory(t *testing.T, err error, category faults.ErrorCategory) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s error, got nil", category)
	}
	if !faults.IsCategory(err, category) {
		t.Fatalf("expected %s error, got %v", category, err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("mapping", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, dir, "vim.yaml", "auth_url: http://1.2.3.4:5000\nusername: xyz\nproject_name: abc\n")
		document, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile returned error: %v", err)
		}
		if document["auth_url"] != "http://1.2.3.4:5000" {
			t.Fatalf("unexpected auth_url %#v", document["auth_url"])
		}
		if document["project_name"] != "abc" {
			t.Fatalf("unexpected project_name %#v", document["project_name"])
		}
	})

	t.Run("empty_document", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, dir, "empty.yaml", "")
		document, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile returned error: %v", err)
		}
		if document == nil || len(document) != 0 {
			t.Fatalf("expected empty non-nil document, got %#v", document)
		}
	})

	t.Run("missing_file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
		assertTypedCategory(t, err, faults.NotFoundError)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, dir, "broken.yaml", "key: [unclosed\n")
		_, err := LoadFile(path)
		assertTypedCategory(t, err, faults.ParseError)
	})

	t.Run("not_a_mapping", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, dir, "list.yaml", "- a\n- b\n")
		_, err := LoadFile(path)
		assertTypedCategory(t, err, faults.ParseError)
	})
}

func TestLoadStringNormalizesNestedKeys(t *testing.T) {
	t.Parallel()

	document, err := LoadString("vdus:\n  vdu1:\n    1: one\n")
	if err != nil {
		t.Fatalf("LoadString returned error: %v", err)
	}

	vdus, ok := document["vdus"].(map[string]any)
	if !ok {
		t.Fatalf("expected string keyed map, got %T", document["vdus"])
	}
	vdu1, ok := vdus["vdu1"].(map[string]any)
	if !ok {
		t.Fatalf("expected string keyed map, got %T", vdus["vdu1"])
	}
	if vdu1["1"] != "one" {
		t.Fatalf("unexpected nested value %#v", vdu1["1"])
	}
}

func TestLoadStringRejectsScalar(t *testing.T) {
	t.Parallel()

	_, err := LoadString("just-a-string")
	assertTypedCategory(t, err, faults.ParseError)
}

func TestLoadValueAcceptsAnyDocument(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected any
	}{
		{name: "scalar", input: "just-a-string", expected: "just-a-string"},
		{name: "list", input: "- a\n- b\n", expected: []any{"a", "b"}},
		{name: "mapping", input: "vdus:\n  1: one\n", expected: map[string]any{"vdus": map[string]any{"1": "one"}}},
		{name: "empty", input: "", expected: nil},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, err := LoadStringValue(testCase.input)
			if err != nil {
				t.Fatalf("LoadStringValue returned error: %v", err)
			}
			if !reflect.DeepEqual(testCase.expected, value) {
				t.Fatalf("expected %#v, got %#v", testCase.expected, value)
			}
		})
	}

	_, err := LoadStringValue("key: [unclosed")
	assertTypedCategory(t, err, faults.ParseError)

	path := writeTestFile(t, t.TempDir(), "config.yaml", "- vdu1\n")
	value, err := LoadFileValue(path)
	if err != nil {
		t.Fatalf("LoadFileValue returned error: %v", err)
	}
	if !reflect.DeepEqual([]any{"vdu1"}, value) {
		t.Fatalf("unexpected file value %#v", value)
	}

	_, err = LoadFileValue(filepath.Join(t.TempDir(), "missing.yaml"))
	assertTypedCategory(t, err, faults.NotFoundError)
}

func TestLoadPrefersPath(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, t.TempDir(), "config.yaml", "from: file\n")

	document, err := Load(Source{Path: path, Literal: "from: literal"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if document["from"] != "file" {
		t.Fatalf("expected path to win, got %#v", document["from"])
	}

	document, err = Load(Source{Literal: "from: literal"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if document["from"] != "literal" {
		t.Fatalf("expected literal value, got %#v", document["from"])
	}

	if !(Source{}).IsZero() {
		t.Fatal("expected empty source to be zero")
	}
}

func TestDecodeEscapes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no_escapes", input: "vdus: {}", expected: "vdus: {}"},
		{name: "newline_and_tab", input: `a: 1\nb:\t2`, expected: "a: 1\nb:\t2"},
		{name: "quotes", input: `name: \'x\' \"y\"`, expected: `name: 'x' "y"`},
		{name: "hex_and_unicode", input: `\x41\u00e9`, expected: "Aé"},
		{name: "octal", input: `\101\0`, expected: "A\x00"},
		{name: "escaped_backslash", input: `a\\nb`, expected: `a\nb`},
		{name: "unknown_kept", input: `a\qb`, expected: `a\qb`},
		{name: "trailing_backslash", input: `a\`, expected: `a\`},
		{name: "line_continuation", input: "a\\\nb", expected: "ab"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := DecodeEscapes(testCase.input); got != testCase.expected {
				t.Fatalf("DecodeEscapes(%q) = %q, want %q", testCase.input, got, testCase.expected)
			}
		})
	}
}
