package value

import (
	"slices"
	"strings"
)

type AnnotationMode string

const (
	AnnotateAll       AnnotationMode = "all"
	AnnotateNone      AnnotationMode = "none"
	AnnotateAllowlist AnnotationMode = "allowlist"
)

// AnnotationPolicy определяет, для каких классов рядом с кодом группы
// показываются связанные коды. Текстовая форма: "all", "none" или список
// классов через запятую.
type AnnotationPolicy struct {
	Mode            AnnotationMode
	Classifications map[string]struct{}
}

func AnnotateAllPolicy() AnnotationPolicy {
	return AnnotationPolicy{Mode: AnnotateAll}
}

func AnnotateNonePolicy() AnnotationPolicy {
	return AnnotationPolicy{Mode: AnnotateNone}
}

func AnnotateOnlyPolicy(classifications ...string) AnnotationPolicy {
	allow := make(map[string]struct{}, len(classifications))
	for _, c := range classifications {
		if c = strings.TrimSpace(c); c != "" {
			allow[c] = struct{}{}
		}
	}

	return AnnotationPolicy{Mode: AnnotateAllowlist, Classifications: allow}
}

func ParseAnnotationPolicy(s string) AnnotationPolicy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(AnnotateAll):
		return AnnotateAllPolicy()
	case string(AnnotateNone):
		return AnnotateNonePolicy()
	}

	return AnnotateOnlyPolicy(strings.Split(s, ",")...)
}

// UnmarshalText позволяет читать политику прямо из окружения.
func (p *AnnotationPolicy) UnmarshalText(text []byte) error {
	*p = ParseAnnotationPolicy(string(text))

	return nil
}

func (p AnnotationPolicy) Applies(classification string) bool {
	switch p.Mode {
	case AnnotateAll:
		return true
	case AnnotateAllowlist:
		_, ok := p.Classifications[classification]

		return ok
	default:
		return false
	}
}

func (p AnnotationPolicy) String() string {
	if p.Mode != AnnotateAllowlist {
		return string(p.Mode)
	}

	labels := make([]string, 0, len(p.Classifications))
	for c := range p.Classifications {
		labels = append(labels, c)
	}

	slices.Sort(labels)

	return strings.Join(labels, ",")
}
