// Package interfaces is chapter 6: interface dispatch, generic functions and
// iterators.
package interfaces

import "github.com/marcodamonte/chapters/chapter"

// Run prints every chapter 6 demo to p.
func Run(p *chapter.Printer) error {
	article, tweet := examples()

	p.Section("Interfaces — one method, two unrelated types")
	p.Printf("New article available! %s\n", article.Summarize())
	p.Printf("1 new tweet: %s\n", tweet.Summarize())

	p.Section("Interface parameters — accept anything that summarizes")
	Notify(p, article)
	Notify(p, tweet)
	for i, s := range Summaries(article, tweet) {
		p.Printf("  [%d] %s\n", i, s)
	}

	p.Section("Generics — Maximum[T cmp.Ordered]")
	p.Printf("The maximum of 5 and 10 is %d\n", Maximum(5, 10))
	p.Printf("The maximum of 3.14 and 2.71 is %v\n", Maximum(3.14, 2.71))
	p.Printf("  Maximum(\"go\", \"gopher\") = %q\n", Maximum("go", "gopher"))

	p.Section("Iterators — Next() and range-over-func")
	r := NewRange(1, 5)
	for n, ok := r.Next(); ok; n, ok = r.Next() {
		p.Println(n)
	}
	for n := range NewRange(1, 5).All() {
		p.Printf("  range-over-func: %d\n", n)
	}
	return nil
}

func examples() (*NewsArticle, *Tweet) {
	article := &NewsArticle{
		Headline: "Penguins win the Stanley Cup!",
		Location: "Pittsburgh, PA",
		Author:   "Abe Knightly",
		Content:  "The Pittsburgh Penguins won the Stanley Cup last night.",
	}
	tweet := &Tweet{
		Username: "horse_ebooks",
		Content:  "of course, as you probably already know, people",
	}
	return article, tweet
}
