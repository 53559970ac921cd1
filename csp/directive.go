package csp

// Directive names the builder composes. The first four are pinned and never
// user-overridable; the rest start from a baseline and accept appends.
const (
	DirectiveDefaultSrc     = "default-src"
	DirectiveBaseURI        = "base-uri"
	DirectiveObjectSrc      = "object-src"
	DirectiveFrameAncestors = "frame-ancestors"

	DirectiveConnectSrc = "connect-src"
	DirectiveScriptSrc  = "script-src"
	DirectiveWorkerSrc  = "worker-src"
	DirectiveImgSrc     = "img-src"
	DirectiveMediaSrc   = "media-src"
	DirectiveFontSrc    = "font-src"
	DirectiveStyleSrc   = "style-src"
)

// overridableDirectives is the serialization order for the open directives.
var overridableDirectives = []string{
	DirectiveConnectSrc,
	DirectiveScriptSrc,
	DirectiveWorkerSrc,
	DirectiveImgSrc,
	DirectiveMediaSrc,
	DirectiveFontSrc,
	DirectiveStyleSrc,
}

// fixedDirectives are pinned to 'none' regardless of configuration or
// override input.
var fixedDirectives = []string{
	DirectiveDefaultSrc,
	DirectiveBaseURI,
	DirectiveObjectSrc,
	DirectiveFrameAncestors,
}

// sourceList is an insertion-ordered, de-duplicating token list. First-seen
// wins: adding a token already present is a no-op, so merge order decides
// final positions and repeated builds are byte-identical.
type sourceList struct {
	tokens []string
	seen   map[string]bool
}

func newSourceList(tokens ...string) *sourceList {
	l := &sourceList{seen: make(map[string]bool, len(tokens))}
	for _, t := range tokens {
		l.add(t)
	}
	return l
}

// add appends token unless it is blank or already present.
func (l *sourceList) add(token string) {
	if token == "" || l.seen[token] {
		return
	}
	l.seen[token] = true
	l.tokens = append(l.tokens, token)
}
