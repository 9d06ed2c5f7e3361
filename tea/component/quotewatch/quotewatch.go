package quotewatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/antifuchs/o"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tecskill/rtx-cli/internal/clients/api"
	"github.com/tecskill/rtx-cli/internal/models"
	"github.com/tecskill/rtx-cli/tea/style"
)

// historySize is how many ticks we keep per symbol for the trend column.
const historySize = 12

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	symbolStyle    = lipgloss.NewStyle().Bold(true).Width(8)
	priceStyle     = lipgloss.NewStyle().Width(16).Align(lipgloss.Right)
	footerStyle    = lipgloss.NewStyle().Faint(true)
)

type (
	tickMsg   time.Time
	quotesMsg models.QuoteBoard
)

// history keeps the most recent quotes for one symbol in a fixed-size ring.
type history struct {
	ring o.Ring
	buf  []models.Quote
}

func newHistory() *history {
	return &history{
		ring: o.NewRing(historySize),
		buf:  make([]models.Quote, historySize),
	}
}

func (h *history) push(q models.Quote) {
	h.buf[h.ring.ForcePush()] = q
}

// ticks returns the stored quotes, oldest first.
func (h *history) ticks() []models.Quote {
	out := make([]models.Quote, 0, historySize)
	for s := o.ScanFIFO(h.ring); s.Next(); {
		out = append(out, h.buf[s.Value()])
	}
	return out
}

// Model polls quotes on an interval and renders the latest price per symbol
// with a short trend line built from the tick history.
type Model struct {
	client   api.ClientInterface
	symbols  []string
	interval time.Duration

	histories map[string]*history
	updatedAt time.Time
	quitting  bool
}

func New(client api.ClientInterface, symbols []string, interval time.Duration) Model {
	histories := make(map[string]*history, len(symbols))
	for _, s := range symbols {
		histories[s] = newHistory()
	}
	return Model{
		client:    client,
		symbols:   symbols,
		interval:  interval,
		histories: histories,
	}
}

func (m Model) Init() tea.Cmd {
	return m.fetch
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case tickMsg:
		return m, m.fetch
	case quotesMsg:
		for _, q := range msg.Quotes {
			if h, ok := m.histories[q.Symbol]; ok {
				h.push(q)
			}
		}
		m.updatedAt = time.Now()
		return m, m.tick()
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerRowStyle.Render(fmt.Sprintf("%-8s %16s %8s  %s", "SYMBOL", "PRICE", "CHANGE", "TREND")))
	b.WriteString("\n")

	for _, symbol := range m.symbols {
		h := m.histories[symbol]
		ticks := h.ticks()
		if len(ticks) == 0 {
			b.WriteString(symbolStyle.Render(symbol) + " waiting for first tick...\n")
			continue
		}

		latest := ticks[len(ticks)-1]
		b.WriteString(symbolStyle.Render(symbol))
		b.WriteString(" ")
		b.WriteString(priceStyle.Render(models.FormatBRL(latest.Price)))
		b.WriteString(fmt.Sprintf(" %8s", style.ChangeText(latest.Change)))
		b.WriteString("  ")
		b.WriteString(trend(ticks))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(fmt.Sprintf("updated %s · q to quit", m.updatedAt.Format("15:04:05"))))
	return b.String()
}

func (m Model) fetch() tea.Msg {
	return quotesMsg(m.client.GetRealTimeQuotes(context.Background(), m.symbols))
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// trend renders one glyph per consecutive tick pair: up, down, or flat.
func trend(ticks []models.Quote) string {
	if len(ticks) < 2 {
		return "·"
	}
	var b strings.Builder
	for i := 1; i < len(ticks); i++ {
		switch {
		case ticks[i].Price > ticks[i-1].Price:
			b.WriteString(style.PositiveText.Render("▲"))
		case ticks[i].Price < ticks[i-1].Price:
			b.WriteString(style.NegativeText.Render("▼"))
		default:
			b.WriteString("·")
		}
	}
	return b.String()
}
