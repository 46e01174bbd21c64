package radio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestWithoutHandlerReturnsNil(t *testing.T) {
	r := NewRequests()

	assert.NotPanics(t, func() {
		assert.Nil(t, r.Request("neverRegistered"))
	})
}

func TestRequestReturnsHandlerResult(t *testing.T) {
	r := NewRequests()
	s := newSpy("myResponse")

	assert.Same(t, r, r.Reply("myRequest", s.cb, nil))
	assert.Equal(t, "myResponse", r.Request("myRequest", "argOne", "argTwo"))
	assert.Equal(t, [][]any{{"argOne", "argTwo"}}, s.calls)
	assert.Same(t, r, s.this[0])
}

func TestRequestHandlerContext(t *testing.T) {
	ctx := &struct{}{}
	r := &Requests{}
	s := newSpy(nil)

	r.Reply("myRequest", s.cb, ctx)
	r.Request("myRequest")

	assert.Same(t, ctx, s.this[0])
}

func TestRequestDefaultHandlerReceivesName(t *testing.T) {
	r := NewRequests()
	s := newSpy("fallback")

	r.Reply("default", s.cb, nil)

	assert.Equal(t, "fallback", r.Request("missing", "x", "y"))
	assert.Equal(t, [][]any{{"missing", "x", "y"}}, s.calls)
}

func TestRequestPrefersExactHandlerOverDefault(t *testing.T) {
	r := NewRequests()
	exact, fallback := newSpy(nil), newSpy(nil)

	r.Reply("myRequest", exact.cb, nil)
	r.Reply("default", fallback.cb, nil)
	r.Request("myRequest", "argTwo")

	assert.Equal(t, [][]any{{"argTwo"}}, exact.calls)
	assert.Zero(t, fallback.count())
}

func TestReplyOverwrites(t *testing.T) {
	r := NewRequests()
	first, second := newSpy(1), newSpy(2)

	r.Reply("r", first.cb, nil)
	r.Reply("r", second.cb, nil)

	assert.Equal(t, 2, r.Request("r"))
	assert.Zero(t, first.count())
	assert.Equal(t, 1, second.count())
}

func TestReplyFlatValue(t *testing.T) {
	r := NewRequests()

	r.Reply("myRequest", "myResponse", nil)

	assert.Equal(t, "myResponse", r.Request("myRequest"))
}

func TestReplyOnce(t *testing.T) {
	r := NewRequests()
	s := newSpy("myResponse")

	r.ReplyOnce("myRequest", s.cb, nil)

	assert.Equal(t, "myResponse", r.Request("myRequest", "argOne"))
	assert.Nil(t, r.Request("myRequest", "argTwo"))
	assert.Equal(t, [][]any{{"argOne"}}, s.calls)
	assert.False(t, r.HasReply("myRequest"))
}

func TestReplyOnceFallsBackToDefaultAfterwards(t *testing.T) {
	r := NewRequests()
	once, fallback := newSpy(nil), newSpy(nil)

	r.ReplyOnce("myRequest", once.cb, nil)
	r.Reply("default", fallback.cb, nil)
	r.Request("myRequest", "argOne", "argTwo")
	r.Request("myRequest", "argOne")

	assert.Equal(t, 1, once.count())
	assert.Equal(t, [][]any{{"myRequest", "argOne"}}, fallback.calls)
}

func TestReplyOnceFlatValue(t *testing.T) {
	r := NewRequests()

	r.ReplyOnce("myRequest", 42, nil)

	assert.Equal(t, 42, r.Request("myRequest"))
	assert.Nil(t, r.Request("myRequest"))
}

func TestStopReplyingWithoutRegistryDoesNotPanic(t *testing.T) {
	r := &Requests{}

	assert.NotPanics(t, func() { r.StopReplying("myRequest", nil, nil) })
}

func newStopReplyingFixture() (*Requests, *spy, *spy, any, any) {
	r := NewRequests()
	one, two, three := newSpy(nil), newSpy(nil), newSpy(nil)
	ctxOne, ctxTwo := &struct{ n int }{1}, &struct{ n int }{2}

	r.Reply("requestOne", one.cb, nil)
	r.Reply("requestTwo", two.cb, nil)
	r.Reply("requestThree", two.cb, ctxOne)
	r.Reply("requestFour", two.cb, ctxTwo)
	r.Reply("requestFive", three.cb, ctxTwo)
	return r, one, two, ctxOne, ctxTwo
}

func TestStopReplying(t *testing.T) {
	t.Run("by name", func(t *testing.T) {
		r, _, _, _, _ := newStopReplyingFixture()
		r.StopReplying("requestOne", nil, nil)
		assert.Equal(t, []string{"requestFive", "requestFour", "requestThree", "requestTwo"}, r.ReplyNames())
	})

	t.Run("everything", func(t *testing.T) {
		r, _, _, _, _ := newStopReplyingFixture()
		assert.Same(t, r, r.StopReplying(nil, nil, nil))
		assert.Nil(t, r.store.entries)
	})

	t.Run("by callback", func(t *testing.T) {
		r, _, two, _, _ := newStopReplyingFixture()
		r.StopReplying(nil, two.cb, nil)
		assert.Equal(t, []string{"requestFive", "requestOne"}, r.ReplyNames())
	})

	t.Run("by context", func(t *testing.T) {
		r, _, _, _, ctxTwo := newStopReplyingFixture()
		r.StopReplying(nil, nil, ctxTwo)
		assert.Equal(t, []string{"requestOne", "requestThree", "requestTwo"}, r.ReplyNames())
	})

	t.Run("by callback and context", func(t *testing.T) {
		r, _, two, _, ctxTwo := newStopReplyingFixture()
		r.StopReplying(nil, two.cb, ctxTwo)
		assert.Equal(t, []string{"requestFive", "requestOne", "requestThree", "requestTwo"}, r.ReplyNames())
	})

	t.Run("by name, callback and context", func(t *testing.T) {
		r, _, two, ctxOne, _ := newStopReplyingFixture()
		r.StopReplying("requestThree", two.cb, ctxOne)
		assert.Equal(t, []string{"requestFive", "requestFour", "requestOne", "requestTwo"}, r.ReplyNames())
	})

	t.Run("by flat value", func(t *testing.T) {
		r := NewRequests()
		r.Reply("a", "value", nil)
		r.StopReplying(nil, "value", nil)
		assert.Empty(t, r.ReplyNames())
	})
}

func TestDroppedRegistryStillAcceptsReplies(t *testing.T) {
	r := NewRequests()
	r.Reply("a", 1, nil)
	r.StopReplying(nil, nil, nil)

	assert.Nil(t, r.Request("a"))

	r.Reply("a", 2, nil)
	assert.Equal(t, 2, r.Request("a"))
}

func TestRequestWithMap(t *testing.T) {
	r := NewRequests()
	r.Reply("requestOne", "replyOne", nil)
	r.Reply("requestTwo", Func(func(args ...any) any { return args }), nil)

	got := r.Request(map[string]any{"requestOne": "argOne", "requestTwo": "argTwo"}, "extra")

	assert.Equal(t, map[string]any{
		"requestOne": "replyOne",
		"requestTwo": []any{"argTwo", "extra"},
	}, got)
}

func TestRequestWithSpaceSeparatedNames(t *testing.T) {
	r := NewRequests()
	r.Reply("requestOne", "replyOne", nil)
	r.Reply("requestTwo", "replyTwo", nil)

	got := r.Request("requestOne requestTwo", "argOne", "argTwo")

	assert.Equal(t, map[string]any{"requestOne": "replyOne", "requestTwo": "replyTwo"}, got)
}

func TestRequestWithMapOfSpaceSeparatedKeysOverridesDuplicates(t *testing.T) {
	r := NewRequests()
	identity := Func(func(args ...any) any { return args[0] })
	r.Reply("requestOne requestTwo", identity, nil)

	got := r.Request(map[string]any{
		"requestOne requestTwo": "argOne",
		"requestTwo":            "argTwo",
	})

	assert.Equal(t, map[string]any{"requestOne": "argOne", "requestTwo": "argTwo"}, got)
}

func TestReplyWithMap(t *testing.T) {
	ctx := &struct{}{}
	r := NewRequests()
	one, two := newSpy(1), newSpy(2)

	r.Reply(map[string]any{"requestOne": one.cb, "requestTwo": two.cb}, ctx, nil)

	assert.Equal(t, map[string]any{"requestOne": 1, "requestTwo": 2}, r.Request("requestOne requestTwo"))
	assert.Same(t, ctx, one.this[0])
	assert.Same(t, ctx, two.this[0])
}

func TestReplyOnceWithSpaceSeparatedNames(t *testing.T) {
	r := NewRequests()
	s := newSpy("ok")

	r.ReplyOnce("a b", s.cb, nil)
	r.Request("a")
	r.Request("a")

	assert.Equal(t, 1, s.count())
	assert.Equal(t, []string{"b"}, r.ReplyNames())
}

func TestStopReplyingWithMapAndSpaces(t *testing.T) {
	r := NewRequests()
	r.Reply("a b c d", 1, nil)

	r.StopReplying(map[string]any{"a": nil, "b": nil}, nil, nil)
	r.StopReplying("c d", nil, nil)

	assert.Empty(t, r.ReplyNames())
}

func TestRequestHandlerPanicPropagates(t *testing.T) {
	r := NewRequests()
	r.Reply("boom", Func(func(...any) any { panic("boom") }), nil)

	assert.PanicsWithValue(t, "boom", func() { r.Request("boom") })
	require.True(t, r.HasReply("boom"))
}
