package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okatz/marquee/internal/domain"
	"github.com/okatz/marquee/internal/service"
)

// Command factories for async operations

// fetchPopularCmd loads the storefront catalog page
func fetchPopularCmd(provider domain.CatalogProvider) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		items, err := provider.Popular(ctx)
		if err != nil {
			return popularFailedMsg{Err: err}
		}
		return popularLoadedMsg{Items: items}
	}
}

// searchCmd runs a provider search tagged with the request generation
func searchCmd(svc *service.SearchService, query string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		items, err := svc.Search(ctx, query)
		if err != nil {
			return searchFailedMsg{Seq: seq, Err: err}
		}
		return searchResultsMsg{Query: query, Seq: seq, Items: items}
	}
}

// clearNoticeCmd hides the notice after the auto-hide delay
func clearNoticeCmd(delay time.Duration, seq int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return clearNoticeMsg{Seq: seq}
	})
}

// returnHomeCmd schedules the deferred return to browse after an order
// completes
func returnHomeCmd(delay time.Duration, gen int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return returnHomeMsg{Gen: gen}
	})
}

// waitForSessionCmd blocks on the session change channel. The handler
// re-arms it after every delivery.
func waitForSessionCmd(ch <-chan bool) tea.Cmd {
	return func() tea.Msg {
		signedIn, ok := <-ch
		if !ok {
			return nil
		}
		return sessionChangedMsg{SignedIn: signedIn}
	}
}
