package catalog

import (
	"strings"
	"testing"
)

func TestNormalizeFillsSentinel(t *testing.T) {
	record := &Record{
		Title:        "ML Intern",
		Organization: "Acme",
		Source:       "internshala",
	}
	record.Normalize()

	if record.Location != NotSpecified {
		t.Fatalf("expected sentinel location, got %q", record.Location)
	}
	if record.Stipend != NotSpecified {
		t.Fatalf("expected sentinel stipend, got %q", record.Stipend)
	}
	if record.Mode != ModeUnknown {
		t.Fatalf("expected unknown mode, got %q", record.Mode)
	}
	if record.Title != "ML Intern" {
		t.Fatalf("title must be preserved, got %q", record.Title)
	}
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		input    string
		expected Mode
	}{
		{"Remote", ModeRemote},
		{"remote", ModeRemote},
		{"ONSITE", ModeOnsite},
		{"in office", ModeOnsite},
		{"Hybrid", ModeHybrid},
		{"", ModeUnknown},
		{"Not specified", ModeUnknown},
	}

	for _, tc := range cases {
		if got := ParseMode(tc.input); got != tc.expected {
			t.Fatalf("ParseMode(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestAddDeduplicates(t *testing.T) {
	c := New()

	first := &Record{Title: "Backend Intern", Organization: "Acme", Source: "internshala"}
	duplicate := &Record{Title: "backend intern", Organization: "ACME", Source: "Internshala"}
	other := &Record{Title: "Backend Intern", Organization: "Acme", Source: "jobspy"}

	if !c.Add(first) {
		t.Fatalf("expected first record to be added")
	}
	if c.Add(duplicate) {
		t.Fatalf("expected case-insensitive duplicate to be rejected")
	}
	if !c.Add(other) {
		t.Fatalf("expected record from another source to be added")
	}

	if c.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", c.Len())
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	c := New()
	titles := []string{"A", "B", "C"}
	for _, title := range titles {
		c.Add(&Record{Title: title, Organization: "Org", Source: title})
	}

	for i, record := range c.Records() {
		if record.Title != titles[i] {
			t.Fatalf("expected %q at position %d, got %q", titles[i], i, record.Title)
		}
	}
}

func TestFindByKey(t *testing.T) {
	c := New()
	c.Add(&Record{Title: "Backend Intern", Organization: "Acme", Source: "internshala"})

	if got := c.FindByKey("backend intern", "ACME", "Internshala"); got == nil {
		t.Fatalf("expected case-insensitive key lookup to find the record")
	}
	if got := c.FindByKey("Backend Intern", "Acme", "jobspy"); got != nil {
		t.Fatalf("expected miss for a different source, got %q", got.Title)
	}
}

func TestByOrganizationIndex(t *testing.T) {
	c := New()
	c.Add(&Record{Title: "A", Organization: "Google", Source: "s1"})
	c.Add(&Record{Title: "B", Organization: "Acme", Source: "s1"})
	c.Add(&Record{Title: "C", Organization: "google", Source: "s2"})

	got := c.ByOrganization("GOOGLE")
	if len(got) != 2 {
		t.Fatalf("expected 2 google records, got %d", len(got))
	}
}

func TestPaid(t *testing.T) {
	cases := []struct {
		stipend string
		paid    bool
	}{
		{"10000 INR/month", true},
		{"Unpaid", false},
		{"unpaid", false},
		{NotSpecified, false},
		{"0", false},
		{"Competitive", true},
	}

	for _, tc := range cases {
		r := &Record{Stipend: tc.stipend}
		if got := r.Paid(); got != tc.paid {
			t.Fatalf("Paid() for stipend %q = %v, expected %v", tc.stipend, got, tc.paid)
		}
	}
}

func TestLoadCSV(t *testing.T) {
	data := "title,organization,location,mode,stipend,skills_required,target_audience,source\n" +
		"AI Intern,Acme,Bangalore,Remote,5000 INR,\"python, machine learning\",UG,internshala\n" +
		"Web Intern,Globex,,,Unpaid,react,PG,internshala\n"

	c, err := LoadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", c.Len())
	}

	first := c.Records()[0]
	if first.Mode != ModeRemote {
		t.Fatalf("expected remote mode, got %q", first.Mode)
	}
	if len(first.SkillsRequired) != 2 || first.SkillsRequired[1] != "machine learning" {
		t.Fatalf("unexpected skills: %v", first.SkillsRequired)
	}

	second := c.Records()[1]
	if second.Location != NotSpecified {
		t.Fatalf("expected sentinel location, got %q", second.Location)
	}
	if second.Paid() {
		t.Fatalf("unpaid record must not report a stipend")
	}
}

func TestLoadJSON(t *testing.T) {
	data := `[
		{"title": "Data Intern", "organization": "Acme", "source": "jobspy",
		 "mode": "hybrid", "skills_required": ["SQL", "Python"]},
		{"title": "Data Intern", "organization": "Acme", "source": "jobspy"}
	]`

	c, err := LoadJSON(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Len() != 1 {
		t.Fatalf("expected duplicate to be dropped, got %d records", c.Len())
	}

	record := c.Records()[0]
	if record.Mode != ModeHybrid {
		t.Fatalf("expected hybrid mode, got %q", record.Mode)
	}

	skills := record.NormalizedSkills()
	if len(skills) != 2 || skills[0] != "sql" || skills[1] != "python" {
		t.Fatalf("unexpected normalized skills: %v", skills)
	}
}
