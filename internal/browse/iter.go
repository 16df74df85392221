package browse

import (
	"context"
	"iter"
)

// Videos returns a lazy sequence over every entry of the listing,
// fetching pages on demand. Iteration stops at the first error; the
// error is yielded with a zero Video.
func (p *Pager) Videos(ctx context.Context) iter.Seq2[Video, error] {
	return func(yield func(Video, error) bool) {
		for {
			page, err := p.Next(ctx)
			if err != nil {
				yield(Video{}, err)
				return
			}
			if page == nil {
				return
			}
			for _, v := range page.Videos {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}
