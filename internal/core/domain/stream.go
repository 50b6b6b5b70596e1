package domain

// ResultStream is a lazy, pull-driven, finite sequence of search
// results. Streams are not restartable: once Next reports false the
// stream stays exhausted. A stream is not safe for concurrent use.
type ResultStream struct {
	next func() (SearchResult, bool)
	done bool
}

// NewResultStream wraps a pull function into a stream. The function is
// not called again after it first reports false.
func NewResultStream(next func() (SearchResult, bool)) *ResultStream {
	return &ResultStream{next: next}
}

// EmptyResultStream returns a stream that yields nothing.
func EmptyResultStream() *ResultStream {
	return &ResultStream{done: true}
}

// Next returns the next result, or ok=false once the stream is
// exhausted.
func (s *ResultStream) Next() (SearchResult, bool) {
	if s.done {
		return SearchResult{}, false
	}
	result, ok := s.next()
	if !ok {
		s.done = true
		return SearchResult{}, false
	}
	return result, true
}

// Collect drains the stream into a slice.
func (s *ResultStream) Collect() []SearchResult {
	var results []SearchResult //nolint:prealloc // stream length unknown
	for {
		result, ok := s.Next()
		if !ok {
			return results
		}
		results = append(results, result)
	}
}

// ConcatResultStreams chains streams into one, draining each fully
// before starting the next.
func ConcatResultStreams(streams ...*ResultStream) *ResultStream {
	i := 0
	return NewResultStream(func() (SearchResult, bool) {
		for i < len(streams) {
			if result, ok := streams[i].Next(); ok {
				return result, true
			}
			i++
		}
		return SearchResult{}, false
	})
}
