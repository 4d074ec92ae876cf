package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okatz/marquee/internal/config"
	"github.com/okatz/marquee/internal/domain"
	"github.com/okatz/marquee/internal/service"
	"github.com/okatz/marquee/internal/tui/styles"
)

// View identifies the active screen
type View int

const (
	ViewBrowse View = iota
	ViewSearchResults
	ViewFavorites
	ViewOrders
	ViewSignIn
	ViewRegister
)

type noticeKind int

const (
	noticeSuccess noticeKind = iota
	noticeWarning
	noticeError
)

const (
	msgBlankQuery    = "Please enter a valid search term."
	msgFetchFailed   = "An error occurred while fetching data."
	msgNoResults     = "No results found."
	msgSignedOut     = "You have been signed out."
	msgSignedIn      = "You are now signed in."
	msgAccountReady  = "Account created. You are now signed in."
	fmtDuplicate     = "%s is already in the orders."
	fmtAddedToOrders = "%s has been added to orders."
	fmtOrderDone     = "Your order for %s has been submitted!"
)

// Model is the root bubbletea model for the storefront
type Model struct {
	cfg    *config.Config
	logger *slog.Logger

	store    domain.Store
	provider domain.CatalogProvider

	catalog   *service.CatalogService
	search    *service.SearchService
	session   *service.SessionService
	account   *service.AccountService
	favorites *service.FavoritesService
	orders    *service.OrderService

	view   View
	cursor int
	width  int
	height int
	ready  bool

	searchInput   textinput.Model
	searchFocused bool
	searching     bool
	searchSeq     int

	// One-shot search handoff. Cleared the moment the results view is
	// left; entering the view without a payload renders the empty state.
	results      []domain.CatalogItem
	resultsQuery string

	filterInput textinput.Model
	filtering   bool

	signInForm   accountForm
	registerForm accountForm

	notice     string
	noticeKind noticeKind
	noticeSeq  int

	signedIn    bool
	sessionCh   chan bool
	cancelWatch func()

	returnGen int

	spin    spinner.Model
	loading bool
	keys    KeyMap
}

// NewModel wires the storefront model over the store and provider
func NewModel(cfg *config.Config, st domain.Store, provider domain.CatalogProvider, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	searchInput := textinput.New()
	searchInput.Placeholder = "Search..."
	searchInput.CharLimit = 100
	searchInput.Width = 30

	filterInput := textinput.New()
	filterInput.Placeholder = "Filter..."
	filterInput.CharLimit = 60
	filterInput.Width = 24

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(styles.MarqueeGold)

	session := service.NewSessionService(st, logger)

	m := Model{
		cfg:         cfg,
		logger:      logger,
		store:       st,
		provider:    provider,
		catalog:     service.NewCatalogService(),
		search:      service.NewSearchService(provider, logger),
		session:     session,
		account:     service.NewAccountService(st, session, logger),
		favorites:   service.NewFavoritesService(st, logger),
		orders:      service.NewOrderService(st, logger),
		view:        ViewBrowse,
		searchInput: searchInput,
		filterInput: filterInput,
		spin:        spin,
		loading:     true,
		signedIn:    session.IsSignedIn(),
		sessionCh:   make(chan bool, 4),
		keys:        DefaultKeyMap(),
	}

	ch := m.sessionCh
	cancel, err := session.OnChange(func(signedIn bool) {
		select {
		case ch <- signedIn:
		default:
		}
	})
	if err != nil {
		logger.Warn("session watch unavailable", "error", err)
	} else {
		m.cancelWatch = cancel
	}

	return m
}

// Init starts the initial catalog fetch and the session watch loop
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		fetchPopularCmd(m.provider),
		waitForSessionCmd(m.sessionCh),
		textinput.Blink,
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case popularLoadedMsg:
		m.loading = false
		m.catalog.Load(msg.Items)
		m.clampCursor()
		return m, nil

	case popularFailedMsg:
		m.loading = false
		m.logger.Error("catalog fetch failed", "error", msg.Err)
		return m, m.setNotice(noticeError, msgFetchFailed)

	case searchResultsMsg:
		if msg.Seq != m.searchSeq {
			return m, nil
		}
		m.searching = false
		cmd := m.enterView(ViewSearchResults)
		m.results = msg.Items
		m.resultsQuery = msg.Query
		return m, cmd

	case searchFailedMsg:
		if msg.Seq != m.searchSeq {
			return m, nil
		}
		m.searching = false
		if errors.Is(msg.Err, domain.ErrEmptyQuery) {
			return m, m.setNotice(noticeWarning, msgBlankQuery)
		}
		m.logger.Warn("search failed", "error", msg.Err)
		return m, m.setNotice(noticeError, msgFetchFailed)

	case clearNoticeMsg:
		if msg.Seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case returnHomeMsg:
		if msg.Gen != m.returnGen {
			return m, nil
		}
		return m, m.enterView(ViewBrowse)

	case sessionChangedMsg:
		m.signedIn = msg.SignedIn
		return m, waitForSessionCmd(m.sessionCh)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, m.quit()
	}

	if m.searchFocused {
		return m.handleSearchKey(msg)
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}
	if m.view == ViewSignIn || m.view == ViewRegister {
		return m.handleFormKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchFocused = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil
	case "enter":
		query := m.searchInput.Value()
		if strings.TrimSpace(query) == "" {
			return m, m.setNotice(noticeWarning, msgBlankQuery)
		}
		m.searchFocused = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.searching = true
		m.searchSeq++
		return m, tea.Batch(m.spin.Tick, searchCmd(m.search, query, m.searchSeq))
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.clampCursor()
		return m, nil
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := &m.signInForm
	if m.view == ViewRegister {
		form = &m.registerForm
	}

	switch msg.String() {
	case "esc":
		return m, m.enterView(ViewBrowse)
	case "enter":
		return m.submitForm(form)
	}
	cmd := form.update(msg)
	return m, cmd
}

func (m Model) submitForm(form *accountForm) (tea.Model, tea.Cmd) {
	vals := form.values()

	var err error
	success := msgSignedIn
	if m.view == ViewRegister {
		err = m.account.Register(vals[0], vals[1], vals[2])
		success = msgAccountReady
	} else {
		err = m.account.SignIn(vals[0], vals[1])
	}
	if err != nil {
		form.errMsg = capitalize(err.Error())
		return m, nil
	}

	m.signedIn = true
	cmd := m.enterView(ViewBrowse)
	return m, tea.Batch(cmd, m.setNotice(noticeSuccess, success))
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(msg, m.keys.Search):
		m.searchFocused = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.SetValue("")
		m.filterInput.Focus()
		m.cursor = 0
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Home), key.Matches(msg, m.keys.Escape):
		if m.view == ViewBrowse && m.filterInput.Value() != "" {
			m.filterInput.SetValue("")
			m.clampCursor()
			return m, nil
		}
		return m, m.enterView(ViewBrowse)

	case key.Matches(msg, m.keys.Favorites):
		return m, m.enterView(ViewFavorites)

	case key.Matches(msg, m.keys.Orders):
		return m, m.enterView(ViewOrders)

	case key.Matches(msg, m.keys.Register):
		return m, m.enterView(ViewRegister)

	case key.Matches(msg, m.keys.SignIn):
		if m.signedIn {
			return m, nil
		}
		return m, m.enterView(ViewSignIn)

	case key.Matches(msg, m.keys.SignOut):
		if !m.signedIn {
			return m, nil
		}
		if err := m.account.SignOut(); err != nil {
			m.logger.Error("sign out failed", "error", err)
			return m, nil
		}
		m.signedIn = false
		cmd := m.enterView(ViewBrowse)
		return m, tea.Batch(cmd, m.setNotice(noticeSuccess, msgSignedOut))

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visibleItems())-1 {
			m.cursor++
		}
		return m, nil
	}

	return m.handleItemAction(msg)
}

func (m Model) handleItemAction(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, ok := m.currentItem()
	if !ok {
		return m, nil
	}

	switch m.view {
	case ViewBrowse, ViewSearchResults:
		switch {
		case key.Matches(msg, m.keys.Favorite):
			m.favorites.Toggle(item)
			return m, nil
		case key.Matches(msg, m.keys.Buy), key.Matches(msg, m.keys.Enter):
			return m, m.buy(item)
		}

	case ViewFavorites:
		switch {
		case key.Matches(msg, m.keys.Remove):
			m.favorites.Remove(item.ID)
			m.clampCursor()
			return m, nil
		case key.Matches(msg, m.keys.Buy), key.Matches(msg, m.keys.Enter):
			return m, m.buy(item)
		}

	case ViewOrders:
		switch {
		case key.Matches(msg, m.keys.Complete), key.Matches(msg, m.keys.Enter):
			completed, err := m.orders.Complete(item.ID)
			if err != nil {
				return m, nil
			}
			m.clampCursor()
			return m, tea.Batch(
				m.setNotice(noticeSuccess, fmt.Sprintf(fmtOrderDone, completed.Title)),
				returnHomeCmd(m.cfg.UI.ReturnDelay, m.returnGen),
			)
		case key.Matches(msg, m.keys.Remove):
			m.orders.Cancel(item.ID)
			m.clampCursor()
			return m, nil
		}
	}

	return m, nil
}

func (m *Model) buy(item domain.CatalogItem) tea.Cmd {
	if err := m.orders.Add(item); err != nil {
		if errors.Is(err, domain.ErrDuplicateOrder) {
			return m.setNotice(noticeWarning, fmt.Sprintf(fmtDuplicate, item.Title))
		}
		m.logger.Error("failed to add order", "error", err)
		return nil
	}
	return m.setNotice(noticeSuccess, fmt.Sprintf(fmtAddedToOrders, item.Title))
}

// enterView switches screens. Navigation revokes any pending deferred
// return and makes in-flight searches stale; the persisted collections
// rehydrate fresh on every mount.
func (m *Model) enterView(v View) tea.Cmd {
	m.returnGen++
	m.searchSeq++
	m.searching = false
	m.filtering = false
	m.filterInput.Blur()
	m.filterInput.SetValue("")
	m.cursor = 0

	if m.view == ViewSearchResults && v != ViewSearchResults {
		m.results = nil
		m.resultsQuery = ""
	}
	m.view = v

	switch v {
	case ViewBrowse:
		m.favorites = service.NewFavoritesService(m.store, m.logger)
		m.orders = service.NewOrderService(m.store, m.logger)
		m.loading = true
		return tea.Batch(m.spin.Tick, fetchPopularCmd(m.provider))
	case ViewSearchResults, ViewFavorites:
		m.favorites = service.NewFavoritesService(m.store, m.logger)
		m.orders = service.NewOrderService(m.store, m.logger)
	case ViewOrders:
		m.orders = service.NewOrderService(m.store, m.logger)
	case ViewSignIn:
		m.signInForm = newSignInForm()
	case ViewRegister:
		m.registerForm = newRegisterForm()
	}
	return nil
}

// visibleItems returns the current view's list after the local filter
func (m *Model) visibleItems() []domain.CatalogItem {
	var items []domain.CatalogItem
	switch m.view {
	case ViewBrowse:
		items = m.catalog.Items()
	case ViewSearchResults:
		items = m.results
	case ViewFavorites:
		items = m.favorites.Items()
	case ViewOrders:
		items = m.orders.Items()
	}
	return filterItems(m.filterInput.Value(), items)
}

func (m *Model) currentItem() (domain.CatalogItem, bool) {
	items := m.visibleItems()
	if len(items) == 0 || m.cursor >= len(items) {
		return domain.CatalogItem{}, false
	}
	return items[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.visibleItems())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

// setNotice shows a transient notice and schedules its auto-hide
func (m *Model) setNotice(kind noticeKind, text string) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	m.noticeKind = kind
	return clearNoticeCmd(m.cfg.UI.NoticeDuration, m.noticeSeq)
}

func (m *Model) quit() tea.Cmd {
	if m.cancelWatch != nil {
		m.cancelWatch()
	}
	return tea.Quit
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
