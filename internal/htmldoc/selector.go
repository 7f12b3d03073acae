package htmldoc

import (
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// Selector picks element nodes under a scope.
type Selector interface {
	String() string
	match(scope *goquery.Selection) []*html.Node
}

var cssCache sync.Map // expr -> cascadia.Selector (nil when invalid)

type cssSelector struct {
	expr    string
	matcher cascadia.Selector
}

// CSS returns a selector for a CSS expression such as "div.w.fl" or
// "[id^=partofspeech]". An invalid expression matches nothing.
func CSS(expr string) Selector {
	if cached, ok := cssCache.Load(expr); ok {
		return cssSelector{expr: expr, matcher: cached.(cascadia.Selector)}
	}
	m, err := cascadia.Compile(expr)
	if err != nil {
		m = nil
	}
	cssCache.Store(expr, m)
	return cssSelector{expr: expr, matcher: m}
}

func (s cssSelector) String() string { return s.expr }

func (s cssSelector) match(scope *goquery.Selection) []*html.Node {
	if s.matcher == nil {
		return nil
	}
	return scope.FindMatcher(s.matcher).Nodes
}

type xpathSelector struct {
	expr string
}

// XPath returns a selector for an XPath expression. Relative expressions
// (".//span") are evaluated against the scope element. An invalid expression
// matches nothing.
func XPath(expr string) Selector {
	return xpathSelector{expr: expr}
}

func (s xpathSelector) String() string { return "xpath:" + s.expr }

func (s xpathSelector) match(scope *goquery.Selection) []*html.Node {
	var out []*html.Node
	seen := make(map[*html.Node]bool)
	for _, root := range scope.Nodes {
		nodes, err := htmlquery.QueryAll(root, s.expr)
		if err != nil {
			return nil
		}
		for _, n := range nodes {
			if n.Type != html.ElementNode || n == root || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
