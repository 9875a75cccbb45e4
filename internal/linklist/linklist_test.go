package linklist

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/linkform/internal/model"
)

func seqTokens() TokenSource {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}
}

func defaults() []model.Link {
	return []model.Link{
		{Title: "google", URL: "https://google.com"},
		{Title: "youtube", URL: "https://youtube.com"},
		{Title: "facebook", URL: "https://facebook.com"},
		{Title: "twitter", URL: "https://twitter.com"},
	}
}

func ids(items []model.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func titles(items []model.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func TestNew_AssignsDistinctTokens(t *testing.T) {
	l := New(defaults(), WithTokens(seqTokens()))
	assert.Equal(t, []string{"t1", "t2", "t3", "t4"}, ids(l.List()))
}

func TestNew_DefaultTokensAreUUIDs(t *testing.T) {
	l := New(defaults())
	seen := map[string]bool{}
	for _, it := range l.List() {
		require.Len(t, it.ID, 36)
		require.False(t, seen[it.ID], "duplicate token %q", it.ID)
		seen[it.ID] = true
	}
}

func TestAppendPrepend(t *testing.T) {
	l := New(defaults()[:2], WithTokens(seqTokens()))

	id := l.Append(model.Link{Title: "last"})
	assert.Equal(t, "t3", id)
	require.Equal(t, 3, l.Len())
	assert.Equal(t, "last", l.List()[2].Title)

	id = l.Prepend(model.Link{Title: "first"})
	assert.Equal(t, "t4", id)
	got := l.List()
	require.Len(t, got, 4)
	assert.Equal(t, []string{"first", "google", "youtube", "last"}, titles(got))
	assert.Equal(t, []string{"t4", "t1", "t2", "t3"}, ids(got))
}

func TestInsert_ClampsPosition(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		want []string
	}{
		{"middle", 2, []string{"google", "youtube", "new", "facebook", "twitter"}},
		{"start", 0, []string{"new", "google", "youtube", "facebook", "twitter"}},
		{"end", 4, []string{"google", "youtube", "facebook", "twitter", "new"}},
		{"negative clamps to start", -3, []string{"new", "google", "youtube", "facebook", "twitter"}},
		{"past end clamps to end", 99, []string{"google", "youtube", "facebook", "twitter", "new"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(defaults(), WithTokens(seqTokens()))
			id := l.Insert(tt.pos, model.Link{Title: "new"})
			assert.Equal(t, "t5", id)
			if diff := cmp.Diff(tt.want, titles(l.List())); diff != "" {
				t.Fatalf("titles mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	l := New(defaults(), WithTokens(seqTokens()))

	assert.True(t, l.Remove(1))
	assert.Equal(t, []string{"t1", "t3", "t4"}, ids(l.List()))

	for _, pos := range []int{-1, 3, 5} {
		assert.False(t, l.Remove(pos), "pos %d", pos)
		assert.Equal(t, 3, l.Len())
	}
}

func TestRemove_TokenIsNeverReused(t *testing.T) {
	// A source that keeps returning a retired token before moving on.
	calls := 0
	src := func() string {
		calls++
		switch calls {
		case 1:
			return "a"
		case 2:
			return "a"
		default:
			return fmt.Sprintf("b%d", calls)
		}
	}
	l := New([]model.Link{{Title: "x"}}, WithTokens(src))
	require.True(t, l.Remove(0))

	id := l.Append(model.Link{Title: "y"})
	assert.NotEqual(t, "a", id)
	assert.Equal(t, "b3", id)
}

func TestSwap(t *testing.T) {
	l := New(defaults(), WithTokens(seqTokens()))

	require.True(t, l.Swap(0, 3))
	got := l.List()
	assert.Equal(t, []string{"twitter", "youtube", "facebook", "google"}, titles(got))
	assert.Equal(t, []string{"t4", "t2", "t3", "t1"}, ids(got))

	before := l.List()
	assert.False(t, l.Swap(1, 1))
	assert.False(t, l.Swap(-1, 2))
	assert.False(t, l.Swap(0, 4))
	assert.Equal(t, before, l.List())
}

func TestMove(t *testing.T) {
	l := New(defaults(), WithTokens(seqTokens()))

	require.True(t, l.Move(0, 3))
	got := l.List()
	assert.Equal(t, []string{"youtube", "facebook", "twitter", "google"}, titles(got))
	assert.Equal(t, []string{"t2", "t3", "t4", "t1"}, ids(got))

	require.True(t, l.Move(3, 1))
	assert.Equal(t, []string{"youtube", "google", "facebook", "twitter"}, titles(l.List()))

	before := l.List()
	assert.False(t, l.Move(0, 4))
	assert.False(t, l.Move(-1, 0))
	assert.False(t, l.Move(2, 2))
	assert.Equal(t, before, l.List())
}

func TestUpdate_KeepsToken(t *testing.T) {
	l := New(defaults(), WithTokens(seqTokens()))

	require.True(t, l.Update(3, model.Link{Title: "x(ex-twitter)", URL: "http://www.twitter.com"}))
	got := l.List()
	assert.Equal(t, "t4", got[3].ID)
	assert.Equal(t, model.Link{Title: "x(ex-twitter)", URL: "http://www.twitter.com"}, got[3].Link)
	assert.Equal(t, 4, l.Len())

	assert.False(t, l.Update(4, model.Link{Title: "nope"}))
}

func TestReplace(t *testing.T) {
	l := New(defaults(), WithTokens(seqTokens()))

	got := l.Replace([]model.Link{{Title: "a"}, {Title: "b"}})
	assert.Equal(t, []string{"t5", "t6"}, got)
	assert.Equal(t, []string{"a", "b"}, titles(l.List()))

	assert.Empty(t, l.Replace(nil))
	assert.Equal(t, 0, l.Len())
}

func TestSnapshotIsolation(t *testing.T) {
	l := New(defaults(), WithTokens(seqTokens()))
	snap := l.List()
	snap[0].Title = "mutated"
	assert.Equal(t, "google", l.List()[0].Title)

	l.Update(1, model.Link{Title: "changed"})
	assert.Equal(t, "youtube", snap[1].Title)
}

func TestIndex(t *testing.T) {
	l := New(defaults(), WithTokens(seqTokens()))
	l.Move(0, 2)
	assert.Equal(t, 2, l.Index("t1"))
	assert.Equal(t, -1, l.Index("missing"))
}

func TestScenario_SwapUpdateRemoveReplace(t *testing.T) {
	l := New(defaults()[:2], WithTokens(seqTokens()))

	l.Swap(0, 1)
	got := l.List()
	want := []model.Item{
		{ID: "t2", Link: model.Link{Title: "youtube", URL: "https://youtube.com"}},
		{ID: "t1", Link: model.Link{Title: "google", URL: "https://google.com"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("after swap (-want +got):\n%s", diff)
	}

	l.Update(1, model.Link{Title: "x", URL: "http://x.com"})
	want[1].Link = model.Link{Title: "x", URL: "http://x.com"}
	if diff := cmp.Diff(want, l.List()); diff != "" {
		t.Fatalf("after update (-want +got):\n%s", diff)
	}

	assert.False(t, l.Remove(5))
	if diff := cmp.Diff(want, l.List()); diff != "" {
		t.Fatalf("after remove(5) (-want +got):\n%s", diff)
	}

	l.Replace([]model.Link{})
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Links())
}
