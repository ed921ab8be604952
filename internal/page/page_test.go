package page

import "testing"

func TestQueryImageByAltSelectsMatch(t *testing.T) {
	logo := NewImage("Logo")
	live := NewImage("Live Feed")
	doc := NewDocument("viewer", logo, live)

	s := doc.QueryImageByAlt("Live Feed")
	if s == nil {
		t.Fatal("expected a surface")
	}
	s.SetSrc("data:image/jpeg;base64,abcd1234")

	if got := live.Src(); got != "data:image/jpeg;base64,abcd1234" {
		t.Errorf("live src = %q", got)
	}
	if got := logo.Src(); got != "" {
		t.Errorf("logo src = %q, want empty", got)
	}
}

func TestQueryImageByAltMissingIsNil(t *testing.T) {
	doc := NewDocument("empty", NewImage("Logo"))
	if s := doc.QueryImageByAlt("Live Feed"); s != nil {
		t.Errorf("got %T, want nil", s)
	}
}

func TestFindIsExactMatch(t *testing.T) {
	doc := NewDocument("viewer", NewImage("live feed"), NewImage("Live Feed "))
	if img := doc.Find("Live Feed"); img != nil {
		t.Errorf("matched %q", img.Alt)
	}
}
