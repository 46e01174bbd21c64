package radio

import (
	"sort"
	"strings"
)

// eventArgs is one expanded (name, callback, context) triple.
type eventArgs struct {
	name     string
	callback any
	context  any
	listener *listening
}

// resolveNames expands the three accepted name shapes into a flat list:
//
//	"change"                      one record
//	"change blur"                 one record per whitespace separated token
//	map[string]any{"change": fn}  one record per key, the value being its callback
//
// Map keys are visited in sorted order. When a map is given without a
// context, callback becomes the context of every entry, so both
// On(m, nil, ctx) and On(m, ctx, nil) bind ctx.
func resolveNames(name, callback, context any, l *listening) []eventArgs {
	if entries, ok := asNameMap(name); ok {
		if context == nil {
			context = callback
		}
		var out []eventArgs
		for _, key := range sortedKeys(entries) {
			out = append(out, resolveNames(key, entries[key], context, l)...)
		}
		return out
	}

	n, _ := name.(string)
	if tokens, ok := splitNames(n); ok {
		out := make([]eventArgs, 0, len(tokens))
		for _, token := range tokens {
			out = append(out, eventArgs{name: token, callback: callback, context: context, listener: l})
		}
		return out
	}

	return []eventArgs{{name: n, callback: callback, context: context, listener: l}}
}

// splitNames splits a name on runs of whitespace. It reports false when the
// name holds no whitespace and should be used as is.
func splitNames(name string) ([]string, bool) {
	if !strings.ContainsAny(name, " \t\n\r\v\f") {
		return nil, false
	}
	return strings.Fields(name), true
}

// asNameMap normalizes the map shapes accepted as names.
func asNameMap(name any) (map[string]any, bool) {
	switch m := name.(type) {
	case map[string]any:
		return m, true
	case map[string]*Callback:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, true
	}
	return nil, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
