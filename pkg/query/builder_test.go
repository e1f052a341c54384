package query_test

import (
	"reflect"
	"testing"

	"github.com/talentsift/sift/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "candidates", "c").
		Project("id", "ID").
		Project("status", "Status").
		Project("created_at", "CreatedAt")
}

func TestBuild(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).Build()

	want := "SELECT c.id, c.status, c.created_at FROM public.candidates c"
	if sql != want {
		t.Errorf("sql: got %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args: got %v, want none", args)
	}
}

func TestBuildWithConditions(t *testing.T) {
	status := "FINALIZED"
	sql, args := query.
		NewBuilder(testProjection()).
		WhereEquals("Status", &status).
		Build()

	want := "SELECT c.id, c.status, c.created_at FROM public.candidates c WHERE c.status = $1"
	if sql != want {
		t.Errorf("sql: got %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != &status {
		t.Errorf("args: got %v", args)
	}
}

func TestBuildSkipsNilConditions(t *testing.T) {
	sql, args := query.
		NewBuilder(testProjection()).
		WhereEquals("Status", (*string)(nil)).
		WhereContains("Status", nil).
		Build()

	want := "SELECT c.id, c.status, c.created_at FROM public.candidates c"
	if sql != want {
		t.Errorf("sql: got %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args: got %v, want none", args)
	}
}

func TestBuildWithSearch(t *testing.T) {
	search := "engineer"
	sql, args := query.
		NewBuilder(testProjection()).
		WhereSearch(&search, "Status", "ID").
		Build()

	want := "SELECT c.id, c.status, c.created_at FROM public.candidates c" +
		" WHERE (c.status ILIKE $1 OR c.id ILIKE $2)"
	if sql != want {
		t.Errorf("sql: got %q, want %q", sql, want)
	}
	if len(args) != 2 || args[0] != "%engineer%" || args[1] != "%engineer%" {
		t.Errorf("args: got %v", args)
	}
}

func TestBuildCount(t *testing.T) {
	status := "NEEDS_HUMAN_REVIEW"
	sql, args := query.
		NewBuilder(testProjection()).
		WhereEquals("Status", &status).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.candidates c WHERE c.status = $1"
	if sql != want {
		t.Errorf("sql: got %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("args: got %v", args)
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.
		NewBuilder(testProjection(), query.SortField{Field: "CreatedAt", Descending: true}).
		BuildPage(2, 25)

	want := "SELECT c.id, c.status, c.created_at FROM public.candidates c" +
		" ORDER BY c.created_at DESC LIMIT 25 OFFSET 25"
	if sql != want {
		t.Errorf("sql: got %q, want %q", sql, want)
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("ID", "abc")

	want := "SELECT c.id, c.status, c.created_at FROM public.candidates c WHERE c.id = $1"
	if sql != want {
		t.Errorf("sql: got %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("args: got %v", args)
	}
}

func TestOrderByFieldsOverridesDefault(t *testing.T) {
	sql, _ := query.
		NewBuilder(testProjection(), query.SortField{Field: "CreatedAt", Descending: true}).
		OrderByFields([]query.SortField{{Field: "Status"}}).
		Build()

	want := "SELECT c.id, c.status, c.created_at FROM public.candidates c ORDER BY c.status ASC"
	if sql != want {
		t.Errorf("sql: got %q, want %q", sql, want)
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []query.SortField
	}{
		{
			name:  "single ascending",
			input: "Status",
			want:  []query.SortField{{Field: "Status"}},
		},
		{
			name:  "descending prefix",
			input: "-CreatedAt",
			want:  []query.SortField{{Field: "CreatedAt", Descending: true}},
		},
		{
			name:  "mixed with whitespace",
			input: "Status, -CreatedAt",
			want: []query.SortField{
				{Field: "Status"},
				{Field: "CreatedAt", Descending: true},
			},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSortFields(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
