package tui

import "github.com/okatz/marquee/internal/domain"

// Messages for async operations

// popularLoadedMsg carries a fresh catalog page for the browse view
type popularLoadedMsg struct {
	Items []domain.CatalogItem
}

// popularFailedMsg reports a failed catalog fetch; the previous snapshot
// stays on display
type popularFailedMsg struct {
	Err error
}

// searchResultsMsg delivers the one-shot search handoff. Seq ties the
// response to the request generation; a stale Seq is discarded.
type searchResultsMsg struct {
	Query string
	Seq   int
	Items []domain.CatalogItem
}

// searchFailedMsg reports a failed or invalid search
type searchFailedMsg struct {
	Seq int
	Err error
}

// clearNoticeMsg hides the transient notice once its generation matches
type clearNoticeMsg struct {
	Seq int
}

// returnHomeMsg triggers the deferred post-completion return to browse.
// A navigation in the meantime bumps the generation and revokes it.
type returnHomeMsg struct {
	Gen int
}

// sessionChangedMsg reports a session flag write from another execution
// context
type sessionChangedMsg struct {
	SignedIn bool
}
