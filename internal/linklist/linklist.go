// Package linklist holds the ordered list of links behind the form.
//
// Every mutation builds a fresh slice and swaps it in only once complete,
// so readers always see either the old or the new list. Items keep their
// identity token across reorders and content updates; new tokens are only
// minted when an item is created.
//
// Out-of-range positions never fail:
//   - Insert clamps the position into [0, Len()].
//   - Remove, Swap, Move and Update ignore the call and report false.
package linklist

import (
	"github.com/google/uuid"

	"github.com/idilsaglam/linkform/internal/model"
)

// TokenSource mints identity tokens.
type TokenSource func() string

// UUIDTokens is the default TokenSource.
func UUIDTokens() string { return uuid.NewString() }

// List owns the ordered items of a form session.
type List struct {
	items  []model.Item
	next   TokenSource
	issued map[string]struct{}
}

// Option configures a List.
type Option func(*List)

// WithTokens overrides the token source (tests use a deterministic one).
func WithTokens(src TokenSource) Option {
	return func(l *List) {
		if src != nil {
			l.next = src
		}
	}
}

// New returns a list seeded with links, each given a fresh token.
func New(links []model.Link, opts ...Option) *List {
	l := &List{
		next:   UUIDTokens,
		issued: make(map[string]struct{}),
	}
	for _, o := range opts {
		o(l)
	}
	l.items = l.build(links)
	return l
}

// token returns a token never handed out before by this list.
func (l *List) token() string {
	for {
		id := l.next()
		if _, dup := l.issued[id]; dup {
			continue
		}
		l.issued[id] = struct{}{}
		return id
	}
}

func (l *List) build(links []model.Link) []model.Item {
	out := make([]model.Item, 0, len(links))
	for _, ln := range links {
		out = append(out, model.Item{ID: l.token(), Link: ln})
	}
	return out
}

// List returns a snapshot of the current items.
func (l *List) List() []model.Item {
	out := make([]model.Item, len(l.items))
	copy(out, l.items)
	return out
}

// Links returns the current content without identity tokens.
func (l *List) Links() []model.Link { return model.Links(l.items) }

func (l *List) Len() int { return len(l.items) }

// Index returns the position of the item with the given token, or -1.
func (l *List) Index(id string) int {
	for i, it := range l.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (l *List) inRange(i int) bool { return i >= 0 && i < len(l.items) }

// Append adds link at the end and returns its token.
func (l *List) Append(link model.Link) string {
	return l.Insert(len(l.items), link)
}

// Prepend adds link at the front and returns its token.
func (l *List) Prepend(link model.Link) string {
	return l.Insert(0, link)
}

// Insert places link so that it ends up at pos (clamped) and returns its token.
func (l *List) Insert(pos int, link model.Link) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(l.items) {
		pos = len(l.items)
	}
	it := model.Item{ID: l.token(), Link: link}
	out := make([]model.Item, 0, len(l.items)+1)
	out = append(out, l.items[:pos]...)
	out = append(out, it)
	out = append(out, l.items[pos:]...)
	l.items = out
	return it.ID
}

// Remove drops the item at pos. Its token is retired for good.
func (l *List) Remove(pos int) bool {
	if !l.inRange(pos) {
		return false
	}
	out := make([]model.Item, 0, len(l.items)-1)
	out = append(out, l.items[:pos]...)
	out = append(out, l.items[pos+1:]...)
	l.items = out
	return true
}

// Swap exchanges the items at i and j.
func (l *List) Swap(i, j int) bool {
	if !l.inRange(i) || !l.inRange(j) || i == j {
		return false
	}
	out := l.List()
	out[i], out[j] = out[j], out[i]
	l.items = out
	return true
}

// Move relocates the item at from to position to, shifting the items in
// between by one.
func (l *List) Move(from, to int) bool {
	if !l.inRange(from) || !l.inRange(to) || from == to {
		return false
	}
	it := l.items[from]
	rest := make([]model.Item, 0, len(l.items))
	rest = append(rest, l.items[:from]...)
	rest = append(rest, l.items[from+1:]...)
	out := make([]model.Item, 0, len(l.items))
	out = append(out, rest[:to]...)
	out = append(out, it)
	out = append(out, rest[to:]...)
	l.items = out
	return true
}

// Update replaces the content at pos, keeping its token.
func (l *List) Update(pos int, link model.Link) bool {
	if !l.inRange(pos) {
		return false
	}
	out := l.List()
	out[pos].Link = link
	l.items = out
	return true
}

// Replace discards every item and rebuilds the list from links with
// fresh tokens. It returns the new tokens in order.
func (l *List) Replace(links []model.Link) []string {
	items := l.build(links)
	l.items = items
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
