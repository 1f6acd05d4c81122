// Package detail provides the single-record view for the TUI.
package detail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driving"
	"github.com/custodia-labs/promptvault/internal/textutil"
)

// CellUnits converts terminal columns into swipe distance units.
const CellUnits = 10

// Action labels reported in the status bar.
const (
	ActionCopyPrompt = "Copied prompt"
	ActionCopyLink   = "Copied link"
	ActionOpenSource = "Opened source"
)

// View shows the open record with its metadata. Arrow keys and horizontal
// mouse drags move through the filtered sequence.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	viewport  viewport.Model
	statusbar *status.Bar

	gallery driving.GalleryController
	actions driving.RecordActionService
	ctx     context.Context
	now     func() time.Time

	entry domain.Entry
	open  bool
	drag  *tea.MouseMsg

	width  int
	height int
	ready  bool
}

// NewView creates a new detail view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	g driving.GalleryController,
	actions driving.RecordActionService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sb := status.NewBar(s, km)
	sb.SetState(status.StateDetail)

	return &View{
		styles:    s,
		keymap:    km,
		viewport:  viewport.New(80, 18),
		statusbar: sb,
		gallery:   g,
		actions:   actions,
		ctx:       context.Background(),
		now:       time.Now,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for record actions.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Refresh reloads the open record from the controller.
func (v *View) Refresh() {
	if v.gallery == nil {
		v.open = false
		return
	}
	entry, ok := v.gallery.OpenEntry()
	if !ok {
		v.open = false
		return
	}
	changed := !v.open || entry.Index != v.entry.Index
	v.entry, v.open = entry, true

	if pos, total, inFilter := v.gallery.Position(); inFilter {
		v.statusbar.SetPosition(pos, total)
	} else {
		v.statusbar.SetPosition(0, 0)
	}

	v.viewport.SetContent(v.renderBody())
	if changed {
		v.viewport.GotoTop()
	}
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case tea.MouseMsg:
		return v.handleMouseMsg(msg)

	case messages.ActionCompleted:
		if msg.Err != nil {
			v.statusbar.SetMessage(fmt.Sprintf("%s: %v", msg.Action, msg.Err))
		} else {
			v.statusbar.SetMessage(msg.Action)
		}
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	v.statusbar.SetMessage("")
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, v.close()
	case keymap.Matches(key, v.keymap.Prev):
		v.dispatch(domain.KeyPressed{Key: domain.KeyLeft})
	case keymap.Matches(key, v.keymap.Next):
		v.dispatch(domain.KeyPressed{Key: domain.KeyRight})
	case keymap.Matches(key, v.keymap.CopyPrompt):
		return v, v.copyPrompt()
	case keymap.Matches(key, v.keymap.CopyLink):
		return v, v.copyLink()
	case keymap.Matches(key, v.keymap.OpenSource):
		return v, v.openSource()
	default:
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}
	return v, nil
}

// handleMouseMsg turns a press-release pair into a swipe and forwards the
// wheel to the viewport.
func (v *View) handleMouseMsg(msg tea.MouseMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // motion events are ignored
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			start := msg
			v.drag = &start
			return v, nil
		}
	case tea.MouseActionRelease:
		if v.drag == nil {
			return v, nil
		}
		swipe := domain.Swipe{
			DX: (msg.X - v.drag.X) * CellUnits,
			DY: (msg.Y - v.drag.Y) * list.LineUnits,
		}
		v.drag = nil
		v.dispatch(domain.Swiped{Swipe: swipe})
		return v, nil
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// close hides the record and returns to the gallery.
func (v *View) close() tea.Cmd {
	v.dispatch(domain.KeyPressed{Key: domain.KeyEscape})
	return func() tea.Msg {
		return messages.ViewChanged{View: messages.ViewGallery}
	}
}

func (v *View) dispatch(e domain.Event) {
	if v.gallery == nil {
		return
	}
	if v.gallery.Dispatch(e) {
		v.Refresh()
	}
}

func (v *View) copyPrompt() tea.Cmd {
	rec := v.entry.Record
	return v.action(ActionCopyPrompt, func(a driving.RecordActionService) error {
		return a.CopyPrompt(v.ctx, &rec)
	})
}

func (v *View) copyLink() tea.Cmd {
	link := v.Link()
	return v.action(ActionCopyLink, func(a driving.RecordActionService) error {
		return a.CopyLink(v.ctx, link)
	})
}

func (v *View) openSource() tea.Cmd {
	rec := v.entry.Record
	return v.action(ActionOpenSource, func(a driving.RecordActionService) error {
		return a.OpenSource(v.ctx, &rec)
	})
}

// action runs fn off the update loop and reports the outcome.
func (v *View) action(label string, fn func(driving.RecordActionService) error) tea.Cmd {
	if !v.open {
		return nil
	}
	actions := v.actions
	return func() tea.Msg {
		if actions == nil {
			return messages.ActionCompleted{Action: label, Err: ErrNoActionService}
		}
		return messages.ActionCompleted{Action: label, Err: fn(actions)}
	}
}

// Link returns the deep link of the open record.
func (v *View) Link() string {
	if v.gallery == nil {
		return ""
	}
	return v.gallery.Snapshot().Location
}

// renderBody renders the record for the viewport.
func (v *View) renderBody() string {
	rec := &v.entry.Record
	width := v.width - 4
	if width < 20 {
		width = 20
	}

	var b strings.Builder

	header := v.styles.Tool(rec.Tool).Render(rec.Tool)
	if rec.Author != "" {
		header += v.styles.Muted.Render(" by ") + v.styles.Normal.Render(rec.Author)
	}
	if rec.IsNew(v.now()) {
		header += " " + v.styles.Badge.Render("NEW")
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	for _, line := range textutil.Wrap(rec.Prompt, width) {
		b.WriteString(v.styles.Normal.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(rec.Tags) > 0 {
		tags := make([]string, 0, len(rec.Tags))
		for _, t := range rec.Tags {
			tags = append(tags, "#"+t)
		}
		v.field(&b, "Tags", v.styles.Tag.Render(strings.Join(tags, " ")))
	}
	if rec.Style != "" {
		v.field(&b, "Style", rec.Style)
	}
	if created, ok := rec.Created(); ok {
		v.field(&b, "Created", created.Format("2 Jan 2006"))
	}
	v.field(&b, "Characters", fmt.Sprintf("%d", rec.CharCount()))
	if img := rec.Image(); img != "" {
		v.field(&b, "Image", textutil.Truncate(img, width-14))
	}
	if rec.HasSource() {
		v.field(&b, "Source", textutil.Truncate(rec.SourceURL, width-14))
	}
	v.field(&b, "Link", v.Link())

	return b.String()
}

func (v *View) field(b *strings.Builder, label, value string) {
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%-12s", label)))
	b.WriteString(value)
	b.WriteString("\n")
}

// View renders the detail view.
func (v *View) View() string {
	if !v.open {
		return v.styles.Muted.Render("No prompt selected") + "\n\n" + v.statusbar.View()
	}

	title := v.styles.Title.Render(fmt.Sprintf("Prompt #%d", v.entry.Index))
	sep := strings.Repeat("─", minInt(v.width-4, 60))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		sep,
		v.viewport.View(),
		"",
		v.statusbar.View(),
	)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.viewport.Width = width
	v.viewport.Height = maxInt(height-6, 3) // title, separator, status
	v.statusbar.SetWidth(width)
	if v.open {
		v.viewport.SetContent(v.renderBody())
	}
}

// SetNow replaces the clock used for the NEW badge.
func (v *View) SetNow(now func() time.Time) {
	v.now = now
}

// Entry returns the record shown, if any.
func (v *View) Entry() (domain.Entry, bool) {
	return v.entry, v.open
}

// Last returns the most recently shown record, even after it was closed.
func (v *View) Last() domain.Entry {
	return v.entry
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
