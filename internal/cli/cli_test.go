package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestClassify_Text(t *testing.T) {
	out, err := run(t, "classify", "I", "know", "Java")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.HasPrefix(out, "Enterprise Java Developer (java_spring, matched \"java\")") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "  5. Study design patterns and clean code") {
		t.Fatalf("expected numbered next steps:\n%s", out)
	}
}

func TestClassify_JSONFallback(t *testing.T) {
	out, err := run(t, "classify", "--output", "json", "nothing relevant")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var res classifyResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if res.CareerID != "react_nodejs" || !res.Fallback || res.Keyword != "" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCareers_YAML(t *testing.T) {
	out, err := run(t, "careers", "-o", "yaml")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var res struct {
		Careers []careerItem `yaml:"careers"`
	}
	if err := yaml.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(res.Careers) != 6 || res.Careers[0].ID != "python_sql" || res.Careers[5].ID != "mobile_dev" {
		t.Fatalf("unexpected careers: %+v", res.Careers)
	}
}

func TestCareers_Text(t *testing.T) {
	out, err := run(t, "careers")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header + 6 rows, got %d:\n%s", len(lines), out)
	}
}

func TestOutputFormat_Invalid(t *testing.T) {
	_, err := run(t, "careers", "--output", "xml")
	if err == nil || !strings.Contains(err.Error(), "unsupported output format") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestClassify_RequiresArgs(t *testing.T) {
	if _, err := run(t, "classify"); err == nil {
		t.Fatalf("expected error without skills")
	}
	if _, err := run(t, "classify", "   "); err == nil {
		t.Fatalf("expected error for blank skills")
	}
}
