package browse

import "time"

// start records one more request in flight. The debounce clock starts with
// the first one, and the previous error no longer applies.
func (l *loadState) start(now time.Time) {
	if l.pending == 0 {
		l.loadingSince = now
	}
	l.pending++
	l.err = nil
}

// done records one finished request.
func (l *loadState) done() {
	if l.pending > 0 {
		l.pending--
	}
	if l.pending == 0 {
		l.loadingSince = time.Time{}
	}
}

// stop forgets every request in flight.
func (l *loadState) stop() {
	l.pending = 0
	l.loadingSince = time.Time{}
}

func (l loadState) loading() bool { return l.pending > 0 }

// visible reports whether the indicator should be drawn: loading for longer
// than loadingDelay.
func (l loadState) visible(now time.Time) bool {
	return l.loading() && now.Sub(l.loadingSince) > loadingDelay
}

func (m Model) activeLoad() loadState {
	if m.view.Kind == CommentsView {
		return m.comments.load
	}
	return m.stories.load
}

// ShouldShowLoading reports whether the active screen's loading indicator
// is due.
func (m Model) ShouldShowLoading() bool {
	return m.activeLoad().visible(m.now())
}
