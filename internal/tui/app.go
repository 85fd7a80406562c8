package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"modalpicker/internal/config"
	"modalpicker/internal/items"
	"modalpicker/internal/layout"
	"modalpicker/internal/logs"
	"modalpicker/internal/tui/messages"
	"modalpicker/internal/tui/modal"
	"modalpicker/internal/tui/shared"
)

const historySize = 5

// AppModel is the host screen that presents pickers
type AppModel struct {
	cfg       *config.Config
	list      items.List
	kind      modal.Kind
	presenter *Presenter
	once      bool

	last      *messages.PickedMsg
	history   []messages.PickedMsg
	cancelled bool

	showHelp bool
	width    int
	height   int
	ready    bool
}

// NewAppModel creates the root application model. In once mode a picker is
// presented at start-up and the program quits when it is closed.
func NewAppModel(cfg *config.Config, list items.List, once bool) AppModel {
	kind, err := modal.ParseKind(cfg.Kind)
	if err != nil {
		logs.Logger.Printf("Falling back to date picker: %v", err)
		kind = modal.KindDate
	}

	return AppModel{
		cfg:       cfg,
		list:      list,
		kind:      kind,
		presenter: NewPresenter(),
		once:      once,
	}
}

func (m AppModel) Init() tea.Cmd {
	if m.once {
		return messages.OpenPicker()
	}
	return nil
}

// Result returns the confirmed pick, if any.
func (m AppModel) Result() (messages.PickedMsg, bool) {
	if m.last == nil {
		return messages.PickedMsg{}, false
	}
	return *m.last, true
}

// Presenter exposes the host collaborator.
func (m AppModel) Presenter() *Presenter {
	return m.presenter
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.presenter.SetSize(msg.Width, msg.Height)
		return m, nil

	case OpenPickerMsg:
		if !m.presenter.Active() {
			m.openPicker()
		}
		return m, nil

	case PickedMsg:
		m.last = &msg
		m.cancelled = false
		m.history = append([]messages.PickedMsg{msg}, m.history...)
		if len(m.history) > historySize {
			m.history = m.history[:historySize]
		}
		logs.Logger.Printf("Picked %s value %q", msg.Kind, msg.Value)
		if m.once {
			return m, tea.Quit
		}
		return m, nil

	case PickerClosedMsg:
		if !msg.Confirmed {
			m.cancelled = true
			logs.Logger.Println("Picker cancelled")
			if m.once {
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.MouseMsg:
		return m, m.presenter.Update(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// The presented picker gets every other key.
		if m.presenter.Active() {
			return m, m.presenter.Update(msg)
		}

		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "p", "enter":
			return m, messages.OpenPicker()
		case "k":
			if m.kind == modal.KindDate {
				m.kind = modal.KindCustom
			} else {
				m.kind = modal.KindDate
			}
			return m, nil
		case "?":
			m.showHelp = true
			return m, nil
		}
	}

	return m, nil
}

// openPicker builds a picker from the configuration and presents it.
func (m *AppModel) openPicker() {
	picker := modal.New(m.kind, m.header(), m.presenter)
	picker.HeaderBackgroundColor = lipgloss.Color(m.cfg.HeaderBackground)
	picker.HeaderTextColor = lipgloss.Color(m.cfg.HeaderForeground)
	picker.DoneButtonText = m.cfg.DoneText
	picker.CancelButtonText = m.cfg.CancelText
	picker.Metrics = layout.Metrics{
		PointsPerColumn: m.cfg.PointsPerColumn,
		PointsPerRow:    m.cfg.PointsPerRow,
	}

	// Reopen on the last confirmed value of the same kind.
	if lp := picker.ListPicker(); lp != nil {
		lp.SetItems(m.list.Items)
		if m.last != nil && m.last.Kind == m.kind.String() && m.last.Index >= 0 {
			lp.Select(m.last.Index)
		}
	}
	if dp := picker.DatePicker(); dp != nil && m.last != nil && !m.last.Date.IsZero() {
		dp.SetDate(m.last.Date)
	}

	presenter := m.presenter
	picker.OnDismissed = func(*modal.Button) {
		presenter.Emit(pickedFrom(picker))
	}

	picker.Present()
}

// header prefers the item list title for custom pickers.
func (m AppModel) header() string {
	if m.kind == modal.KindCustom && m.list.Title != "" {
		return m.list.Title
	}
	return m.cfg.Header
}

// pickedFrom reads the chosen value off the live content widget.
func pickedFrom(p *modal.ModalPicker) PickedMsg {
	msg := PickedMsg{Kind: p.Kind().String(), Index: -1}
	switch {
	case p.DatePicker() != nil:
		msg.Date = p.DatePicker().Date()
		msg.Value = msg.Date.Format("2006-01-02")
	case p.ListPicker() != nil:
		if i, item, ok := p.ListPicker().Selected(); ok {
			msg.Index = i
			msg.Value = item
		}
	}
	return msg
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp && !m.presenter.Active() {
		return shared.RenderHelpPopup(helpSections(), m.width, m.height)
	}

	statusBar := StatusBarStyle.Width(m.width).Render(
		HelpStyle.Render("p: pick | k: toggle kind | ?: help | q: quit"),
	)
	body := lipgloss.NewStyle().
		Height(max(0, m.height-lipgloss.Height(statusBar))).
		MaxHeight(max(0, m.height-lipgloss.Height(statusBar))).
		Render(m.renderStatus())

	base := lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
	return m.presenter.View(base)
}

func (m AppModel) renderStatus() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("modalpicker") + "\n\n")

	kind := m.kind.String()
	if m.kind == modal.KindCustom {
		kind = fmt.Sprintf("%s (%d items)", kind, len(m.list.Items))
	}
	b.WriteString(LabelStyle.Render("Kind") + ValueStyle.Render(kind) + "\n")
	b.WriteString(LabelStyle.Render("Header") + ValueStyle.Render(m.header()) + "\n")

	switch {
	case m.cancelled:
		b.WriteString(LabelStyle.Render("Last") + CancelledStyle.Render("cancelled") + "\n")
	case m.last != nil:
		b.WriteString(LabelStyle.Render("Last") + ValueStyle.Render(m.last.Value) + "\n")
	default:
		b.WriteString(LabelStyle.Render("Last") + HelpStyle.Render("nothing picked yet") + "\n")
	}

	if len(m.history) > 1 {
		b.WriteString("\n" + HelpStyle.Render("Earlier") + "\n")
		for _, h := range m.history[1:] {
			b.WriteString(HistoryStyle.Render(fmt.Sprintf("  %-6s %s", h.Kind, h.Value)) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func helpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{
			Title: "Host",
			Binds: []shared.HelpBind{
				{Key: "p / enter", Desc: "Open picker"},
				{Key: "k", Desc: "Toggle date / custom"},
				{Key: "?", Desc: "Show this help"},
				{Key: "q", Desc: "Quit"},
				{Key: "ctrl+c", Desc: "Force quit"},
			},
		},
		{
			Title: "Picker",
			Binds: []shared.HelpBind{
				{Key: "esc", Desc: "Cancel"},
				{Key: "enter", Desc: "Tap focused button"},
				{Key: "tab / shift+tab", Desc: "Move focus"},
				{Key: "click", Desc: "Tap Cancel / Done"},
			},
		},
		{
			Title: "Date",
			Binds: []shared.HelpBind{
				{Key: "h j k l", Desc: "Move day / week"},
				{Key: "+ / -", Desc: "Next / previous month"},
				{Key: "t", Desc: "Today"},
				{Key: "i", Desc: "Type a date"},
			},
		},
		{
			Title: "List",
			Binds: []shared.HelpBind{
				{Key: "j / k", Desc: "Move selection"},
				{Key: "g / G", Desc: "First / last"},
				{Key: "/", Desc: "Search"},
			},
		},
	}
}
