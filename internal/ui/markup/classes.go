package markup

import "strings"

// Prefix namespaces every class the renderer emits.
const Prefix = "tm-"

// Classes composes a BEM-style class list: the base block followed by
// "base--mod" for every non-empty modifier. Duplicate modifiers are dropped.
//
//	Classes("tm-badge", "success")            // "tm-badge tm-badge--success"
//	Classes("tm-button", When(false, "focus")) // "tm-button"
func Classes(base string, mods ...string) string {
	var b strings.Builder
	b.WriteString(base)

	seen := make(map[string]struct{}, len(mods))
	for _, mod := range mods {
		mod = strings.TrimSpace(mod)
		if mod == "" {
			continue
		}
		if _, dup := seen[mod]; dup {
			continue
		}
		seen[mod] = struct{}{}
		b.WriteString(" ")
		b.WriteString(base)
		b.WriteString("--")
		b.WriteString(mod)
	}
	return b.String()
}

// When returns mod if on is true, otherwise the empty modifier.
func When(on bool, mod string) string {
	if on {
		return mod
	}
	return ""
}

func block(name string) string {
	return Prefix + name
}
