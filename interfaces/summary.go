package interfaces

import (
	"fmt"

	"github.com/marcodamonte/chapters/chapter"
)

// Summary is implemented by anything that can describe itself in one line.
// Types satisfy it implicitly; there is no implements clause.
type Summary interface {
	Summarize() string
}

type NewsArticle struct {
	Headline string
	Location string
	Author   string
	Content  string
}

func (a *NewsArticle) Summarize() string {
	return fmt.Sprintf("%s, by %s (%s)", a.Headline, a.Author, a.Location)
}

type Tweet struct {
	Username string
	Content  string
	Reply    bool
	Retweet  bool
}

func (t *Tweet) Summarize() string {
	return fmt.Sprintf("%s: %s", t.Username, t.Content)
}

// Compile-time checks that both types satisfy Summary.
var (
	_ Summary = (*NewsArticle)(nil)
	_ Summary = (*Tweet)(nil)
)

// Notify accepts any Summary; the call is dispatched at runtime.
func Notify(p *chapter.Printer, item Summary) {
	p.Printf("Breaking news! %s\n", item.Summarize())
}

// Summaries summarizes a heterogeneous list in order.
func Summaries(items ...Summary) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Summarize())
	}
	return out
}
