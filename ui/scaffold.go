package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"switchboard/core"
	"switchboard/platform"
)

const mergedHeaderHeight = 1

// StatusItemUpdateMsg is a goroutine-safe message for updating a status
// bar item. Produce it via Notifier.UpdateStatusItem (or Send it
// directly) from any goroutine; the mutation is applied inside
// Scaffold.Update() on the Bubble Tea goroutine.
type StatusItemUpdateMsg struct {
	Key   string
	Value string
}

// Scaffold manages a tabbed terminal UI with a tab bar, a body (page
// content), and a status bar. It is the tab host: digit chords resolved
// through a core.Selector jump straight to a tab, registered catalog
// actions are dispatched to the active page, and the shortcut overlay
// plus quick-jump prompt act as modals that keep those chords quiet.
type Scaffold struct {
	termReady                          bool
	termSizeNotEnoughToHandleTabs      bool
	termSizeNotEnoughToHandleStatusBar bool

	currentTab int
	width      int
	height     int

	tabBar    *tabBar
	statusBar *statusBar
	KeyMap    *KeyMap
	pages     []tea.Model

	selector *core.Selector
	registry *core.Registry

	// primaryKey is the key-event prefix for ModPrimary ("alt"/"ctrl");
	// primaryGlyph is its display form ("⌥", "Ctrl").
	primaryKey   string
	primaryGlyph string

	// visibleLimit caps the tabs shown in the bar. Zero means all. A
	// non-zero limit below the configured count is the unsupported
	// overflow configuration the selector rejects with a panic.
	visibleLimit int

	overlay   *ShortcutOverlay
	quickJump *QuickJump

	borderColor  string
	pagePosition lipgloss.Position

	notifier *Notifier

	statusBarFocusMode bool
}

// NewScaffold builds a scaffold in two phases: base state first, then the
// caller's setup hook, which runs with the scaffold fully initialized and
// may add pages, colors, and a registry. The hook replaces any notion of
// "subclass notified during construction" — there is exactly one
// construction path and the hook sees its result.
func NewScaffold(setup func(*Scaffold)) *Scaffold {
	s := &Scaffold{
		borderColor:  "39",
		pagePosition: lipgloss.Center,
		width:        80,
		height:       24,
		tabBar:       newTabBar(),
		statusBar:    newStatusBar(),
		KeyMap:       newKeyMap(),
		notifier:     newNotifier(),
		registry:     core.NewRegistry(),
		quickJump:    NewQuickJump(),
		primaryKey:   platform.PrimaryKeyName(),
		primaryGlyph: platform.PrimaryGlyph(),
	}
	s.selector = core.NewSelector(s)
	s.overlay = NewShortcutOverlay(func() ([]core.CommandDescriptor, []core.CommandDescriptor) {
		return core.NewSelector(discoveryHost{s}).Commands(), s.registry.Commands()
	})
	if setup != nil {
		setup(s)
	}
	return s
}

// discoveryHost lets the overlay list tab commands while the overlay is
// itself the active modal.
type discoveryHost struct{ *Scaffold }

func (discoveryHost) IsModalActive() bool { return false }

// GetNotifier returns the scaffold's Notifier, allowing external code to
// send goroutine-safe messages via Send().
func (s *Scaffold) GetNotifier() *Notifier {
	return s.notifier
}

// Registry returns the scaffold's action registry.
func (s *Scaffold) Registry() *core.Registry {
	return s.registry
}

// --- Configuration methods (chainable, setup-only) ---
//
// These methods mutate Scaffold fields directly and are NOT goroutine-safe.
// Call them only during setup, before tea.Program.Run(). For runtime
// updates from goroutines, use Notifier.Send() with typed messages.

// SetPrimaryKeyName sets the key-event prefix used for ModPrimary.
// Setup-only: not safe to call from goroutines after Run().
func (s *Scaffold) SetPrimaryKeyName(name string) *Scaffold {
	s.primaryKey = name
	return s
}

// SetPrimaryGlyph sets the display glyph shown for ModPrimary, used by
// the overlay and the welcome legend alike.
// Setup-only: not safe to call from goroutines after Run().
func (s *Scaffold) SetPrimaryGlyph(glyph string) *Scaffold {
	s.primaryGlyph = glyph
	s.overlay.SetPrimaryGlyph(glyph)
	return s
}

// SetRTLLayout flips arrow glyphs in shortcut displays for right-to-left
// locales. Setup-only: not safe to call from goroutines after Run().
func (s *Scaffold) SetRTLLayout(rtl bool) *Scaffold {
	s.overlay.SetRTLLayout(rtl)
	return s
}

// LimitVisibleTabs caps how many tabs the bar shows. Any cap below the
// configured tab count makes digit shortcuts undefined, and the selector
// will refuse to build commands for it. Setup-only.
func (s *Scaffold) LimitVisibleTabs(n int) *Scaffold {
	s.visibleLimit = n
	s.tabBar.limit = n
	return s
}

// SetBorderColor sets the border color on tab bar, status bar, and body.
// Setup-only: not safe to call from goroutines after Run().
func (s *Scaffold) SetBorderColor(color string) *Scaffold {
	s.tabBar.SetBorderColor(color)
	s.statusBar.SetBorderColor(color)
	s.borderColor = color
	s.notifier.Notify()
	return s
}

// SetPagePosition sets the horizontal alignment of page content.
// Setup-only: not safe to call from goroutines after Run().
func (s *Scaffold) SetPagePosition(position lipgloss.Position) *Scaffold {
	s.pagePosition = position
	s.notifier.Notify()
	return s
}

// SetActiveTabBorderColor sets the border color on the active tab.
// Setup-only: not safe to call from goroutines after Run().
func (s *Scaffold) SetActiveTabBorderColor(color string) *Scaffold {
	s.tabBar.SetActiveTabBorderColor(color)
	s.notifier.Notify()
	return s
}

// SetInactiveTabBorderColor sets the border color on inactive tabs.
// Setup-only: not safe to call from goroutines after Run().
func (s *Scaffold) SetInactiveTabBorderColor(color string) *Scaffold {
	s.tabBar.SetInactiveTabBorderColor(color)
	s.notifier.Notify()
	return s
}

// SetStatusItemBorderColor sets the border color on status bar items.
// Setup-only: not safe to call from goroutines after Run().
func (s *Scaffold) SetStatusItemBorderColor(color string) *Scaffold {
	s.statusBar.SetItemBorderColor(color)
	s.notifier.Notify()
	return s
}

// SetStatusItemLeftPadding sets the left padding inside each status item.
// Setup-only: not safe to call from goroutines after Run().
func (s *Scaffold) SetStatusItemLeftPadding(padding int) *Scaffold {
	s.statusBar.SetLeftPadding(padding)
	s.notifier.Notify()
	return s
}

// SetStatusItemRightPadding sets the right padding inside each status item.
// Setup-only: not safe to call from goroutines after Run().
func (s *Scaffold) SetStatusItemRightPadding(padding int) *Scaffold {
	s.statusBar.SetRightPadding(padding)
	s.notifier.Notify()
	return s
}

// AddPage registers a new tab with the given key, title, and page model.
// Setup-only: not safe to call from goroutines after Run().
func (s *Scaffold) AddPage(key string, title string, page tea.Model) *Scaffold {
	for _, t := range s.tabBar.tabs {
		if t.key == key {
			return s
		}
	}
	s.tabBar.addTab(key, title)
	s.pages = append(s.pages, page)
	return s
}

// AddStatusItem adds a status bar item with the given key and display
// value. Setup-only: not safe to call from goroutines after Run().
func (s *Scaffold) AddStatusItem(key string, value string) *Scaffold {
	s.statusBar.addItem(key, value, false)
	s.notifier.Notify()
	return s
}

// AddActionableStatusItem adds a status bar item that can be drilled down
// (opens the shortcut overlay). Setup-only.
func (s *Scaffold) AddActionableStatusItem(key string, value string) *Scaffold {
	s.statusBar.addItem(key, value, true)
	s.notifier.Notify()
	return s
}

// UpdateStatusItemValue updates an existing status item's displayed
// value, or adds a new one if the key doesn't exist. Setup-only; for
// runtime updates, send a StatusItemUpdateMsg via Notifier.Send().
func (s *Scaffold) UpdateStatusItemValue(key string, value string) *Scaffold {
	for _, item := range s.statusBar.items {
		if item.Key == key {
			item.Value = value
			s.statusBar.recalc()
			s.notifier.Notify()
			return s
		}
	}
	return s.AddStatusItem(key, value)
}

// --- Terminal dimensions ---

// GetTerminalWidth returns the current terminal width.
func (s *Scaffold) GetTerminalWidth() int {
	return s.width
}

// GetTerminalHeight returns the current terminal height.
func (s *Scaffold) GetTerminalHeight() int {
	return s.height
}

// GetCurrentPageKey returns the key of the currently active page.
func (s *Scaffold) GetCurrentPageKey() string {
	if s.currentTab >= 0 && s.currentTab < len(s.tabBar.tabs) {
		return s.tabBar.tabs[s.currentTab].key
	}
	return ""
}

// --- core.TabHost ---

// VisibleTabs returns descriptors for the tabs currently shown, read
// fresh from the tab bar on every call.
func (s *Scaffold) VisibleTabs() []core.TabDescriptor {
	tabs := s.tabBar.tabs
	if s.visibleLimit > 0 && s.visibleLimit < len(tabs) {
		tabs = tabs[:s.visibleLimit]
	}
	out := make([]core.TabDescriptor, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, core.TabDescriptor{Title: t.title})
	}
	return out
}

// ConfiguredTabCount returns the total number of registered tabs.
func (s *Scaffold) ConfiguredTabCount() int {
	return len(s.tabBar.tabs)
}

// IsModalActive reports whether the overlay or quick-jump prompt owns
// input.
func (s *Scaffold) IsModalActive() bool {
	return s.overlay.IsVisible() || s.quickJump.Active()
}

// SelectedTab returns the active tab index.
func (s *Scaffold) SelectedTab() int {
	return s.currentTab
}

// SetSelectedTab activates the tab at index; out-of-range indices are
// ignored (the tab count may have changed under the caller).
func (s *Scaffold) SetSelectedTab(index int) {
	if index < 0 || index >= len(s.pages) {
		return
	}
	s.currentTab = index
	s.tabBar.currentTab = index
}

// --- Bubble Tea interface ---

// Init satisfies tea.Model. Panics if no pages have been added.
func (s *Scaffold) Init() tea.Cmd {
	if len(s.pages) == 0 {
		panic("scaffold: no pages added, please add at least one page")
	}
	return s.notifier.Listen()
}

// Update satisfies tea.Model.
func (s *Scaffold) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !s.termReady && msg.Width > 0 && msg.Height > 0 {
			s.termReady = true
		}
		s.width = msg.Width
		s.height = msg.Height
		cmds := s.updateChildren(msg)
		return s, tea.Batch(cmds...)

	case tea.KeyMsg:
		return s.handleKey(msg)

	case UpdateMsg:
		cmds := s.updateChildren(msg)
		cmds = append(cmds, s.notifier.Listen())
		return s, tea.Batch(cmds...)

	case TabBarSizeMsg:
		s.termSizeNotEnoughToHandleTabs = msg.NotEnoughToHandleTabs
		return s, nil

	case StatusBarSizeMsg:
		s.termSizeNotEnoughToHandleStatusBar = msg.NotEnoughToHandleStatusBar
		return s, nil

	case StatusItemUpdateMsg:
		for _, item := range s.statusBar.items {
			if item.Key == msg.Key {
				item.Value = msg.Value
				cmd := s.statusBar.recalc()
				return s, tea.Batch(cmd, s.notifier.Listen())
			}
		}
		s.statusBar.addItem(msg.Key, msg.Value, false)
		cmd := s.statusBar.recalc()
		return s, tea.Batch(cmd, s.notifier.Listen())

	default:
		cmds := s.updateChildren(msg)
		cmds = append(cmds, s.notifier.Listen())
		return s, tea.Batch(cmds...)
	}
}

// handleKey dispatches a key event in priority order: modal focus traps
// first, then status-bar focus, then digit tab chords, then registered
// catalog actions, then tab cycling, and finally the active page.
func (s *Scaffold) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	prevTab := s.currentTab

	// Priority 1: shortcut overlay (focus trap).
	if s.overlay.IsVisible() {
		switch {
		case key.Matches(msg, s.KeyMap.Quit):
			return s, tea.Quit
		case msg.String() == "esc" || msg.String() == "enter" || key.Matches(msg, s.KeyMap.ToggleOverlay):
			s.overlay.Hide()
			return s, nil
		default:
			// Overlay consumes all other keys.
			return s, nil
		}
	}

	// Priority 2: quick-jump prompt (focus trap).
	if s.quickJump.Active() {
		switch msg.String() {
		case "esc":
			s.quickJump.Deactivate()
			return s, nil
		case "enter":
			if idx, ok := s.quickJump.BestMatch(s.tabTitles()); ok {
				s.SetSelectedTab(idx)
			}
			s.quickJump.Deactivate()
			return s, tea.Batch(s.selectionChanged(prevTab)...)
		default:
			if key.Matches(msg, s.KeyMap.Quit) {
				return s, tea.Quit
			}
			return s, s.quickJump.Update(msg)
		}
	}

	// Priority 3: global bindings.
	switch {
	case key.Matches(msg, s.KeyMap.Quit):
		return s, tea.Quit
	case key.Matches(msg, s.KeyMap.ToggleOverlay):
		s.overlay.Show()
		return s, nil
	case key.Matches(msg, s.KeyMap.QuickJump):
		return s, s.quickJump.Activate()
	}

	// Priority 4: status-bar focus mode. It owns everything below the
	// globals — a registry chord (esc is Cancel's) or digit jump firing
	// here would yank input away from the focused item.
	if s.statusBarFocusMode {
		return s.handleStatusBarKey(msg)
	}

	// Priority 5: digit tab chords. The command list is rederived from
	// the live tab set on every event; nothing is cached.
	for _, cmd := range s.selector.Commands() {
		if key.Matches(msg, commandBinding(cmd, s.primaryKey)) {
			s.selector.Activate(cmd.Chord.Trigger.Rune)
			return s, tea.Batch(s.selectionChanged(prevTab)...)
		}
	}

	// Priority 6: registered catalog actions go to the active page. The
	// event name parses back into a chord, which the registry resolves;
	// keys outside the chord grammar just fall through.
	if chord, err := core.ParseChord(msg.String(), s.primaryKey); err == nil {
		if cmd, ok := s.registry.Lookup(chord); ok {
			if kind, ok := s.registry.Kind(cmd.Handler); ok {
				var pageCmd tea.Cmd
				s.pages[s.currentTab], pageCmd = s.pages[s.currentTab].Update(ActionMsg{
					Kind:    kind,
					Handler: cmd.Handler,
					Label:   cmd.Label,
				})
				return s, pageCmd
			}
		}
	}

	// Priority 7: tab cycling.
	switch {
	case key.Matches(msg, s.KeyMap.SwitchTabLeft):
		if s.currentTab > 0 {
			s.SetSelectedTab(s.currentTab - 1)
		}
	case key.Matches(msg, s.KeyMap.SwitchTabRight):
		// At the last tab, slide focus into the status bar if it has
		// actionable items.
		if s.currentTab == len(s.pages)-1 && s.statusBar.HasActionableItems() {
			s.statusBarFocusMode = true
			s.statusBar.SetFocus(true)
		} else if s.currentTab < len(s.pages)-1 {
			s.SetSelectedTab(s.currentTab + 1)
		}
	}

	cmds = append(cmds, s.updateChildren(msg)...)
	cmds = append(cmds, s.selectionChanged(prevTab)...)
	return s, tea.Batch(cmds...)
}

// handleStatusBarKey navigates actionable status items; enter on one
// opens the shortcut overlay.
func (s *Scaffold) handleStatusBarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, s.KeyMap.SwitchTabRight):
		s.statusBar.SelectNext()
		return s, nil
	case key.Matches(msg, s.KeyMap.SwitchTabLeft):
		if s.statusBar.IsAtFirstActionable() {
			s.statusBarFocusMode = false
			s.statusBar.SetFocus(false)
			s.SetSelectedTab(len(s.pages) - 1)
		} else {
			s.statusBar.SelectPrev()
		}
		return s, nil
	case msg.String() == "enter":
		if item := s.statusBar.GetSelectedItem(); item != nil && item.Key == "keys" {
			s.overlay.Show()
		}
		return s, nil
	case msg.String() == "esc":
		s.statusBarFocusMode = false
		s.statusBar.SetFocus(false)
		return s, nil
	}
	return s, nil
}

// selectionChanged broadcasts TabSelectedMsg when the active tab moved.
func (s *Scaffold) selectionChanged(prevTab int) []tea.Cmd {
	if s.currentTab == prevTab {
		return nil
	}
	title := ""
	if s.currentTab < len(s.tabBar.tabs) {
		title = s.tabBar.tabs[s.currentTab].title
	}
	return s.updateChildren(TabSelectedMsg{Index: s.currentTab, Title: title})
}

func (s *Scaffold) tabTitles() []string {
	titles := make([]string, 0, len(s.tabBar.tabs))
	for _, t := range s.tabBar.tabs {
		titles = append(titles, t.title)
	}
	return titles
}

func (s *Scaffold) updateChildren(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd

	if cmd := s.overlay.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := s.tabBar.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := s.statusBar.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	// Broadcast non-key messages to ALL pages so inactive pages receive
	// WindowSizeMsg, tab-selection notices, etc. Key events only go to
	// the active page (and are blocked entirely when a modal is up).
	_, isKeyMsg := msg.(tea.KeyMsg)
	for i := range s.pages {
		if isKeyMsg {
			if i != s.currentTab || s.IsModalActive() {
				continue
			}
		}
		var pageCmd tea.Cmd
		s.pages[i], pageCmd = s.pages[i].Update(msg)
		if pageCmd != nil {
			cmds = append(cmds, pageCmd)
		}
	}

	return cmds
}

// View satisfies tea.Model.
func (s *Scaffold) View() string {
	if !s.termReady {
		return "setting up terminal..."
	}
	if s.termSizeNotEnoughToHandleTabs {
		return "terminal size is not enough to show tabs"
	}
	if s.termSizeNotEnoughToHandleStatusBar {
		return "terminal size is not enough to show status bar"
	}

	tabSection, tabLen := s.tabBar.renderTabs()
	statusSection, statusLen := s.statusBar.renderItems()
	remaining := s.width - (tabLen + statusLen + 4)
	if remaining < 0 {
		return "terminal size is not enough to show tabs and status bar"
	}

	footerBorder := lipgloss.NewStyle().Foreground(lipgloss.Color(s.borderColor))
	footView := footerBorder.Render("──") + tabSection + footerBorder.Render(strings.Repeat("─", remaining)) + statusSection + footerBorder.Render("──")

	bodyHeight := s.height - mergedHeaderHeight
	if s.quickJump.Active() {
		bodyHeight--
	}
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	padTop := 0
	padBottom := 1
	if bodyHeight <= 2 {
		padTop = 0
		padBottom = 0
	}

	base := lipgloss.NewStyle().
		BorderForeground(lipgloss.Color(s.borderColor)).
		Align(s.pagePosition).
		Border(lipgloss.RoundedBorder()).
		BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false).
		Width(s.width).
		PaddingTop(padTop).PaddingBottom(padBottom).
		MaxHeight(bodyHeight)

	body := s.pages[s.currentTab].View()
	if visibleBodyHeight := bodyHeight - padTop - padBottom; visibleBodyHeight > 0 && lipgloss.Height(body) < visibleBodyHeight {
		body += strings.Repeat("\n", visibleBodyHeight-lipgloss.Height(body))
	}

	sections := []string{base.Render(body)}
	if s.quickJump.Active() {
		sections = append(sections, s.quickJump.View())
	}
	sections = append(sections, footView)
	baseView := lipgloss.JoinVertical(lipgloss.Top, sections...)

	if s.overlay.IsVisible() {
		return s.overlay.View()
	}

	return baseView
}
