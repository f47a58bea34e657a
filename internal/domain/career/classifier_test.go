package career

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		skills string
		expect CategoryID
	}{
		{name: "data keywords", skills: "pandas and numpy", expect: CategoryDataAnalytics},
		{name: "python beats c#", skills: "python and C# experience", expect: CategoryDataAnalytics},
		{name: "erp", skills: "ERPNext customization", expect: CategoryEnterpriseERP},
		{name: "c# alone", skills: "C#", expect: CategoryEnterpriseERP},
		{name: "react and node", skills: "React, Node", expect: CategoryFullStackWeb},
		{name: "html css", skills: "HTML and CSS", expect: CategoryFrontendWeb},
		{name: "java spring", skills: "I know Java and Spring Boot", expect: CategoryEnterprise},
		{name: "flutter", skills: "Flutter", expect: CategoryMobile},
		{name: "react native hits react first", skills: "react native", expect: CategoryFullStackWeb},
		{name: "javascript beats java", skills: "javascript", expect: CategoryFullStackWeb},
		{name: "ui substring inside word", skills: "guitar", expect: CategoryFrontendWeb},
		{name: "no match falls back", skills: "nothing relevant", expect: DefaultCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.skills); got != tt.expect {
				t.Fatalf("Classify(%q): expected %s, got %s", tt.skills, tt.expect, got)
			}
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"PYTHON", "python", "PyThOn"} {
		if got := Classify(s); got != CategoryDataAnalytics {
			t.Fatalf("Classify(%q): expected %s, got %s", s, CategoryDataAnalytics, got)
		}
	}
	if Classify("SPRING") != Classify("spring") {
		t.Fatalf("expected case to be ignored")
	}
}

func TestClassify_AlwaysValid(t *testing.T) {
	t.Parallel()

	inputs := []string{"x", "   ", "🚀", "c", "COBOL mainframe", "Kotlin", "iOS", "SQL", "a b c d e"}
	for _, s := range inputs {
		if id := Classify(s); !id.Valid() {
			t.Fatalf("Classify(%q) returned unmapped category %q", s, id)
		}
	}
}

func TestMatchSkills(t *testing.T) {
	t.Parallel()

	m := MatchSkills("Go and Kubernetes")
	if !m.Fallback || m.Category != DefaultCategory || m.Keyword != "" {
		t.Fatalf("expected fallback match, got %+v", m)
	}

	m = MatchSkills("Android developer")
	if m.Fallback || m.Category != CategoryMobile || m.Keyword != "android" {
		t.Fatalf("unexpected match: %+v", m)
	}
}
