package redis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/redis/rueidis/mock"
	"go.uber.org/mock/gomock"

	"github.com/openvocab/cuisearch/internal/db"
)

// --- client.go tests ---

func TestPing_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.Result(mock.RedisString("PONG")))

	s := NewStoreForTest(c)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPing_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	s := NewStoreForTest(c)
	if err := s.Ping(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestContainsIgnoreCase(t *testing.T) {
	tests := []struct {
		s, sub string
		want   bool
	}{
		{"No Such Index", "no such index", true},
		{"UNKNOWN INDEX NAME", "unknown index name", true},
		{"hello world", "world", true},
		{"short", "longer than input", false},
		{"exact", "exact", true},
		{"", "", true},
	}
	for _, tc := range tests {
		got := containsIgnoreCase(tc.s, tc.sub)
		if got != tc.want {
			t.Errorf("containsIgnoreCase(%q, %q) = %v, want %v", tc.s, tc.sub, got, tc.want)
		}
	}
}

// --- query building tests ---

func TestBuildTagMatch_EscapesValue(t *testing.T) {
	got := buildTagMatch("name_exact", "heart attack")
	want := `@name_exact:{heart\ attack}`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestBuildClause_Phrase(t *testing.T) {
	got, err := buildClause(db.Clause{
		Field:  "text_literal",
		Terms:  []string{"heart", "attack"},
		Phrase: true,
		Weight: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `(@text_literal:"heart attack") => { $weight: 10 }`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestBuildClause_And(t *testing.T) {
	got, err := buildClause(db.Clause{
		Field:  "definitions",
		Terms:  []string{"heart", "attack"},
		Weight: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `(@definitions:(heart attack)) => { $weight: 2 }`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestBuildClause_FuzzyWrapsLongTermsOnly(t *testing.T) {
	got, err := buildClause(db.Clause{
		Field:       "text_literal",
		Terms:       []string{"of", "myocardial"},
		Fuzzy:       true,
		FuzzyMinLen: 4,
		Weight:      1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `(@text_literal:(of %myocardial%)) => { $weight: 1 }`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestBuildClause_EscapesReservedCharacters(t *testing.T) {
	got, err := buildClause(db.Clause{
		Field: "text_literal",
		Terms: []string{"covid-19"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `covid\-19`) {
		t.Errorf("expected escaped hyphen in %q", got)
	}
}

func TestBuildClause_Invalid(t *testing.T) {
	if _, err := buildClause(db.Clause{Terms: []string{"x"}}); err == nil {
		t.Error("expected error for missing field")
	}
	if _, err := buildClause(db.Clause{Field: "f"}); err == nil {
		t.Error("expected error for missing terms")
	}
}

// --- search.go tests ---

func TestSearchTag_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "FT.SEARCH" && cmd[1] == "umls-cui" &&
				cmd[2] == "@name_exact:{heart\\ attack}"
		})).
		Return(mock.Result(mock.RedisArray(
			mock.RedisInt64(1),
			mock.RedisString("cui:C0027051"),
			mock.RedisArray(
				mock.RedisString("doc"),
				mock.RedisString(`{"CUI":"C0027051"}`),
			),
		)))

	s := NewStoreForTest(c)
	result, err := s.SearchTag(context.Background(), &db.TagQuery{
		IndexName:    "umls-cui",
		Field:        "name_exact",
		Value:        "heart attack",
		Limit:        100,
		ReturnFields: []string{"doc"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 {
		t.Fatalf("expected total 1, got %d", result.Total)
	}
	if result.Entries[0].Key != "cui:C0027051" {
		t.Errorf("unexpected key %q", result.Entries[0].Key)
	}
	if result.Entries[0].Fields["doc"] != `{"CUI":"C0027051"}` {
		t.Errorf("unexpected doc field %q", result.Entries[0].Fields["doc"])
	}
}

func TestSearchTag_EmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "FT.SEARCH"
		})).
		Return(mock.Result(mock.RedisArray(mock.RedisInt64(0))))

	s := NewStoreForTest(c)
	result, err := s.SearchTag(context.Background(), &db.TagQuery{
		IndexName: "umls-cui",
		Field:     "cui",
		Value:     "nothing",
		Limit:     100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 0 || len(result.Entries) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestSearchTag_AllocationBoundedByReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	// The reported total counts all matching documents in the index;
	// the reply itself is LIMIT-bounded. Allocation must follow the
	// reply, not the total.
	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "FT.SEARCH"
		})).
		Return(mock.Result(mock.RedisArray(
			mock.RedisInt64(5_000_000),
			mock.RedisString("cui:C0027051"),
			mock.RedisArray(
				mock.RedisString("doc"),
				mock.RedisString(`{"CUI":"C0027051"}`),
			),
		)))

	s := NewStoreForTest(c)
	result, err := s.SearchTag(context.Background(), &db.TagQuery{
		IndexName: "umls-cui",
		Field:     "cui",
		Value:     "broad",
		Limit:     100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 5_000_000 {
		t.Fatalf("expected total 5000000, got %d", result.Total)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(result.Entries))
	}
	if cap(result.Entries) > 1 {
		t.Errorf("entries capacity %d exceeds reply size", cap(result.Entries))
	}
}

func TestSearchTag_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)
	s := NewStoreForTest(c)

	if _, err := s.SearchTag(context.Background(), &db.TagQuery{Field: "f", Value: "v", Limit: 1}); err == nil {
		t.Error("expected error for missing index name")
	}
	if _, err := s.SearchTag(context.Background(), &db.TagQuery{IndexName: "i", Value: "v", Limit: 1}); err == nil {
		t.Error("expected error for missing field")
	}
	if _, err := s.SearchTag(context.Background(), &db.TagQuery{IndexName: "i", Field: "f", Value: "v"}); err == nil {
		t.Error("expected error for non-positive limit")
	}
}

func TestSearchRanked_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			if cmd[0] != "FT.SEARCH" || cmd[1] != "umls-cui" {
				return false
			}
			// disjunction of weighted clauses, scores requested
			return strings.Contains(cmd[2], " | ") &&
				strings.Contains(strings.Join(cmd, " "), "WITHSCORES")
		})).
		Return(mock.Result(mock.RedisArray(
			mock.RedisInt64(2),
			mock.RedisString("cui:C0027051"),
			mock.RedisString("7.5"),
			mock.RedisArray(
				mock.RedisString("doc"),
				mock.RedisString(`{"CUI":"C0027051"}`),
			),
			mock.RedisString("cui:C0004096"),
			mock.RedisString("2.25"),
			mock.RedisArray(
				mock.RedisString("doc"),
				mock.RedisString(`{"CUI":"C0004096"}`),
			),
		)))

	s := NewStoreForTest(c)
	result, err := s.SearchRanked(context.Background(), &db.RankedQuery{
		IndexName: "umls-cui",
		Clauses: []db.Clause{
			{Field: "text_literal", Terms: []string{"heart", "attack"}, Phrase: true, Weight: 10},
			{Field: "text_literal", Terms: []string{"heart", "attack"}, Weight: 5},
		},
		Limit:        1000,
		ReturnFields: []string{"doc"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("expected total 2, got %d", result.Total)
	}
	if result.Entries[0].Score != 7.5 {
		t.Errorf("expected score 7.5, got %f", result.Entries[0].Score)
	}
	if result.Entries[1].Key != "cui:C0004096" {
		t.Errorf("unexpected key %q", result.Entries[1].Key)
	}
}

func TestSearchRanked_AllocationBoundedByReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "FT.SEARCH"
		})).
		Return(mock.Result(mock.RedisArray(
			mock.RedisInt64(5_000_000),
			mock.RedisString("cui:C0027051"),
			mock.RedisString("7.5"),
			mock.RedisArray(
				mock.RedisString("doc"),
				mock.RedisString(`{"CUI":"C0027051"}`),
			),
		)))

	s := NewStoreForTest(c)
	result, err := s.SearchRanked(context.Background(), &db.RankedQuery{
		IndexName: "umls-cui",
		Clauses:   []db.Clause{{Field: "text_literal", Terms: []string{"a"}}},
		Limit:     1000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(result.Entries))
	}
	if cap(result.Entries) > 1 {
		t.Errorf("entries capacity %d exceeds reply size", cap(result.Entries))
	}
}

func TestSearchRanked_IndexMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "FT.SEARCH"
		})).
		Return(mock.Result(mock.RedisError("no such index")))

	s := NewStoreForTest(c)
	_, err := s.SearchRanked(context.Background(), &db.RankedQuery{
		IndexName: "missing",
		Clauses:   []db.Clause{{Field: "text_literal", Terms: []string{"x"}}},
		Limit:     10,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var dbErr *db.Error
	if !errors.As(err, &dbErr) {
		t.Fatalf("expected *db.Error, got %T", err)
	}
	if dbErr.Op != db.OpSearch {
		t.Errorf("expected op %q, got %q", db.OpSearch, dbErr.Op)
	}
	if !errors.Is(err, db.ErrIndexNotFound) {
		t.Errorf("expected ErrIndexNotFound, got %v", err)
	}
}
