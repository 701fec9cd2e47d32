package component

import (
	"strings"

	perr "stubdemo/internal/platform/errors"
)

// selector is one compound selector: tag, #id, .class and [attr] / [attr="v"] groups
type selector struct {
	tag   string
	attrs []attrMatch
}

type attrMatch struct {
	name   string
	value  string
	exists bool // [attr] without a value
	word   bool // .class matches one word of class
}

// parseSelector accepts `tag`, `#id`, `.class`, `[attr]`, `[attr="v"]`, `[attr='v']`,
// `[attr=v]` and their concatenations, e.g. `input[type="text"][name=name]`
func parseSelector(s string) (selector, error) {
	var sel selector
	in := strings.TrimSpace(s)
	if in == "" {
		return sel, perr.Newf(perr.ErrorCodeInvalidArgument, "empty selector")
	}

	i := 0
	name := func() string {
		start := i
		for i < len(in) && isNameByte(in[i]) {
			i++
		}
		return in[start:i]
	}

	if in[0] == '*' {
		sel.tag = "*"
		i++
	} else {
		sel.tag = strings.ToLower(name())
	}
	for i < len(in) {
		switch in[i] {
		case '#':
			i++
			id := name()
			if id == "" {
				return sel, perr.Newf(perr.ErrorCodeInvalidArgument, "selector %q: empty id", s)
			}
			sel.attrs = append(sel.attrs, attrMatch{name: "id", value: id})
		case '.':
			i++
			cls := name()
			if cls == "" {
				return sel, perr.Newf(perr.ErrorCodeInvalidArgument, "selector %q: empty class", s)
			}
			sel.attrs = append(sel.attrs, attrMatch{name: "class", value: cls, word: true})
		case '[':
			end := strings.IndexByte(in[i:], ']')
			if end < 0 {
				return sel, perr.Newf(perr.ErrorCodeInvalidArgument, "selector %q: unclosed [", s)
			}
			m, err := parseAttr(in[i+1 : i+end])
			if err != nil {
				return sel, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "selector %q", s)
			}
			sel.attrs = append(sel.attrs, m)
			i += end + 1
		default:
			// combinators and lists are not supported
			return sel, perr.Newf(perr.ErrorCodeInvalidArgument, "selector %q: unexpected %q", s, in[i])
		}
	}
	return sel, nil
}

func parseAttr(body string) (attrMatch, error) {
	k, v, hasValue := strings.Cut(body, "=")
	k = strings.TrimSpace(k)
	if k == "" {
		return attrMatch{}, perr.Newf(perr.ErrorCodeInvalidArgument, "empty attribute name")
	}
	if !hasValue {
		return attrMatch{name: k, exists: true}, nil
	}
	v = strings.TrimSpace(v)
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') {
		if v[len(v)-1] != v[0] {
			return attrMatch{}, perr.Newf(perr.ErrorCodeInvalidArgument, "unbalanced quote in [%s]", body)
		}
		v = v[1 : len(v)-1]
	}
	return attrMatch{name: k, value: v}, nil
}

func isNameByte(c byte) bool {
	return c == '-' || c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func (s selector) matches(n *Node) bool {
	if s.tag != "" && s.tag != "*" && s.tag != n.Tag {
		return false
	}
	for _, m := range s.attrs {
		v, ok := n.Attr(m.name)
		switch {
		case !ok:
			return false
		case m.exists:
		case m.word:
			if !containsWord(v, m.value) {
				return false
			}
		case v != m.value:
			return false
		}
	}
	return true
}

func containsWord(list, word string) bool {
	for f := range strings.FieldsSeq(list) {
		if f == word {
			return true
		}
	}
	return false
}
