package radio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSingleName(t *testing.T) {
	cb := Do(func(...any) {})

	got := resolveNames("change", cb, "ctx", nil)

	assert.Equal(t, []eventArgs{{name: "change", callback: cb, context: "ctx"}}, got)
}

func TestResolveSpaceSeparatedNames(t *testing.T) {
	cb := Do(func(...any) {})
	l := &listening{}

	got := resolveNames("change  blur\tfocus", cb, "ctx", l)

	assert.Equal(t, []eventArgs{
		{name: "change", callback: cb, context: "ctx", listener: l},
		{name: "blur", callback: cb, context: "ctx", listener: l},
		{name: "focus", callback: cb, context: "ctx", listener: l},
	}, got)
}

func TestResolveMapIsSortedAndRecursive(t *testing.T) {
	a, b := Do(func(...any) {}), Do(func(...any) {})

	got := resolveNames(map[string]any{"z": a, "m n": b}, nil, "ctx", nil)

	assert.Equal(t, []eventArgs{
		{name: "m", callback: b, context: "ctx"},
		{name: "n", callback: b, context: "ctx"},
		{name: "z", callback: a, context: "ctx"},
	}, got)
}

func TestResolveMapFallsBackToCallbackAsContext(t *testing.T) {
	a := Do(func(...any) {})

	got := resolveNames(map[string]*Callback{"a": a}, "ctx", nil, nil)

	assert.Equal(t, []eventArgs{{name: "a", callback: a, context: "ctx"}}, got)
}

func TestResolveStringMap(t *testing.T) {
	got := resolveNames(map[string]string{"b": "two", "a": "one"}, nil, nil, nil)

	assert.Equal(t, []eventArgs{
		{name: "a", callback: "one"},
		{name: "b", callback: "two"},
	}, got)
}

func TestResolveEmptyName(t *testing.T) {
	assert.Equal(t, []eventArgs{{name: ""}}, resolveNames(nil, nil, nil, nil))
	assert.Equal(t, []eventArgs{{name: ""}}, resolveNames("", nil, nil, nil))
}

func TestSplitNames(t *testing.T) {
	_, ok := splitNames("single")
	assert.False(t, ok)

	tokens, ok := splitNames("a b")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, tokens)
}
