package tui

import (
	"fmt"
	"strings"

	"github.com/okatz/marquee/internal/domain"
	"github.com/okatz/marquee/internal/tui/styles"
)

// View renders the active screen
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.view {
	case ViewBrowse:
		b.WriteString(m.renderBrowse())
	case ViewSearchResults:
		b.WriteString(m.renderSearchResults())
	case ViewFavorites:
		b.WriteString(m.renderFavorites())
	case ViewOrders:
		b.WriteString(m.renderOrders())
	case ViewSignIn:
		b.WriteString(m.renderForm(m.signInForm))
	case ViewRegister:
		b.WriteString(m.renderForm(m.registerForm))
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(m.renderNotice())
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	title := styles.HeaderStyle.Render("Marquee")

	account := styles.DimStyle.Render("guest")
	if m.signedIn {
		account = styles.SuccessStyle.Render("signed in")
	}

	parts := []string{title}
	if m.searchFocused {
		parts = append(parts, m.searchInput.View())
	}
	if m.filtering || m.filterInput.Value() != "" {
		parts = append(parts, styles.AccentStyle.Render("/")+m.filterInput.View())
	}
	if m.loading || m.searching {
		parts = append(parts, m.spin.View())
	}
	parts = append(parts, account)
	return strings.Join(parts, "  ")
}

func (m Model) renderBrowse() string {
	items := m.visibleItems()
	if m.loading && len(items) == 0 {
		return styles.DimStyle.Render("Fetching movies...")
	}
	if len(items) == 0 {
		return styles.DimStyle.Render(msgNoResults)
	}
	return m.renderItemList(items)
}

func (m Model) renderSearchResults() string {
	var b strings.Builder
	if m.resultsQuery != "" {
		b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Results for %q", m.resultsQuery)))
		b.WriteString("\n\n")
	}
	items := m.visibleItems()
	if len(items) == 0 {
		b.WriteString(styles.DimStyle.Render(msgNoResults))
		return b.String()
	}
	b.WriteString(m.renderItemList(items))
	return b.String()
}

func (m Model) renderFavorites() string {
	items := m.visibleItems()
	if len(items) == 0 {
		return styles.DimStyle.Render("No favorite items.")
	}
	return m.renderItemList(items)
}

func (m Model) renderOrders() string {
	items := m.visibleItems()
	if len(items) == 0 {
		return styles.DimStyle.Render("No orders placed yet.")
	}
	return m.renderItemList(items)
}

// renderItemList renders two lines per item: title with rating and
// price, then the short description
func (m Model) renderItemList(items []domain.CatalogItem) string {
	var b strings.Builder
	for i, item := range items {
		marker := "  "
		titleStyle := styles.TitleStyle
		if i == m.cursor {
			marker = styles.AccentStyle.Render("> ")
			titleStyle = styles.SelectedStyle
		}

		line := marker + titleStyle.Render(item.Title)
		if m.favorites.IsFavorite(item.ID) {
			line += " " + styles.FavoriteMark.String()
		}
		line += "  " + styles.SubtitleStyle.Render("IMDb: "+item.FormattedRating())
		line += "  " + styles.AccentStyle.Render(item.FormattedPrice())
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString("    " + styles.DimStyle.Render(item.ShortOverview()))
		b.WriteString("\n")
		if i == m.cursor && item.PosterPath != "" {
			b.WriteString("    " + styles.DimStyle.Render(item.PosterURL(m.cfg.Provider.ImageBaseURL)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderForm(form accountForm) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(form.title))
	b.WriteString("\n\n")
	for i, label := range form.labels {
		b.WriteString(styles.SubtitleStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(form.inputs[i].View())
		b.WriteString("\n")
	}
	if form.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(form.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderNotice() string {
	switch m.noticeKind {
	case noticeWarning:
		return styles.WarningStyle.Render(m.notice)
	case noticeError:
		return styles.ErrorStyle.Render(m.notice)
	default:
		return styles.SuccessStyle.Render(m.notice)
	}
}

func (m Model) renderFooter() string {
	var hints string
	switch {
	case m.searchFocused:
		hints = "enter search • esc cancel"
	case m.filtering:
		hints = "enter apply • esc clear"
	case m.view == ViewSignIn || m.view == ViewRegister:
		hints = "tab next field • enter submit • esc back"
	case m.view == ViewOrders:
		hints = "c/enter complete • d cancel • s search • / filter • H browse • q quit"
	case m.view == ViewFavorites:
		hints = "b buy • d remove • s search • / filter • H browse • q quit"
	default:
		hints = "b buy • t favorite • s search • / filter • F favorites • O orders • q quit"
	}
	return styles.DimStyle.Render(hints)
}
