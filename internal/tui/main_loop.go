package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vparshin/go-note-keeper/internal/service"
	"github.com/vparshin/go-note-keeper/models"
)

type screen int

const (
	screenList screen = iota
	screenCreate
	screenEdit
	screenConfirmDelete
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	screen  screen
	notes   []models.Note
	idx     int
	loading bool
	saving  bool
	status  string
	errMsg  string

	titleInput  textinput.Model
	contentArea textarea.Model
	focusTitle  bool

	editNoteID   string
	deleteNoteID string
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "Название"
	titleInput.CharLimit = 120

	contentArea := textarea.New()
	contentArea.Placeholder = "Текст заметки"

	return mainLoopModel{
		ctx:         ctx,
		services:    services,
		loading:     true,
		titleInput:  titleInput,
		contentArea: contentArea,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadNotes()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.notes = msg.notes
		if m.idx >= len(m.notes) {
			m.idx = len(m.notes) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case createDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка создания: %v", msg.err)
			return m, nil
		}
		m.screen = screenList
		m.status = "Заметка создана"
		m.errMsg = ""
		return m, m.cmdRefreshSnapshot()
	case updateDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка изменения: %v", msg.err)
			return m, nil
		}
		m.screen = screenList
		m.status = "Заметка обновлена"
		m.errMsg = ""
		return m, m.cmdRefreshSnapshot()
	case archiveDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка архивации: %v", msg.err)
			return m, nil
		}
		m.status = "Заметка в архиве"
		m.errMsg = ""
		return m, m.cmdRefreshSnapshot()
	case deleteDoneMsg:
		m.screen = screenList
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка удаления: %v", msg.err)
			return m, nil
		}
		m.status = "Заметка удалена"
		m.errMsg = ""
		return m, m.cmdRefreshSnapshot()
	}

	switch m.screen {
	case screenCreate, screenEdit:
		return m.updateForm(msg)
	case screenConfirmDelete:
		return m.updateConfirmDelete(msg)
	default:
		return m.updateList(msg)
	}
}

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.notes)-1 {
			m.idx++
		}
	case "n":
		m.startForm(screenCreate, "", "", "")
		return m, textinput.Blink
	case "e":
		note, ok := m.current()
		if !ok {
			m.status = "Заметок нет"
			return m, nil
		}
		m.startForm(screenEdit, note.NoteID, note.Title, note.Content)
		return m, textinput.Blink
	case "a":
		note, ok := m.current()
		if !ok {
			m.status = "Заметок нет"
			return m, nil
		}
		return m, m.cmdArchive(note.NoteID)
	case "d":
		note, ok := m.current()
		if !ok {
			m.status = "Заметок нет"
			return m, nil
		}
		m.deleteNoteID = note.NoteID
		m.screen = screenConfirmDelete
		return m, nil
	case "r":
		m.loading = true
		m.status = ""
		return m, m.cmdLoadNotes()
	case "c":
		note, ok := m.current()
		if !ok {
			m.status = "Нечего копировать"
			return m, nil
		}
		if err := clipboard.WriteAll(note.Content); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Скопировано"
	}

	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.screen = screenList
			m.errMsg = ""
			return m, nil
		case "tab", "shift+tab":
			m.focusTitle = !m.focusTitle
			if m.focusTitle {
				m.contentArea.Blur()
				return m, m.titleInput.Focus()
			}
			m.titleInput.Blur()
			return m, m.contentArea.Focus()
		case "ctrl+s", "enter":
			// enter saves only from the single-line title field
			if keyMsg.String() == "enter" && !m.focusTitle {
				break
			}
			if m.saving {
				return m, nil
			}
			m.saving = true
			if m.screen == screenEdit {
				return m, m.cmdUpdate(m.editNoteID, m.titleInput.Value(), m.contentArea.Value())
			}
			return m, m.cmdCreate(m.titleInput.Value(), m.contentArea.Value())
		}
	}

	var cmd tea.Cmd
	if m.focusTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentArea, cmd = m.contentArea.Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "y":
		noteID := m.deleteNoteID
		m.deleteNoteID = ""
		return m, m.cmdDelete(noteID)
	case "n", "esc":
		m.deleteNoteID = ""
		m.screen = screenList
	}

	return m, nil
}

func (m *mainLoopModel) startForm(s screen, noteID, title, content string) {
	m.screen = s
	m.editNoteID = noteID
	m.errMsg = ""
	m.status = ""
	m.saving = false
	m.titleInput.SetValue(title)
	m.contentArea.SetValue(content)
	m.focusTitle = true
	m.contentArea.Blur()
	m.titleInput.Focus()
}

func (m mainLoopModel) current() (models.Note, bool) {
	if m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

// ─────────────────────────────────────────────
// Commands
// ─────────────────────────────────────────────

func (m mainLoopModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotesService

	return func() tea.Msg {
		err := svc.Load(ctx)
		return notesLoadedMsg{notes: svc.Notes(), err: err}
	}
}

// cmdRefreshSnapshot re-reads the synchronizer snapshot without hitting the
// server: mutations already reloaded it.
func (m mainLoopModel) cmdRefreshSnapshot() tea.Cmd {
	svc := m.services.NotesService

	return func() tea.Msg {
		return notesLoadedMsg{notes: svc.Notes()}
	}
}

func (m mainLoopModel) cmdCreate(title, content string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotesService

	return func() tea.Msg {
		return createDoneMsg{err: svc.Create(ctx, title, content)}
	}
}

func (m mainLoopModel) cmdUpdate(noteID, title, content string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotesService

	return func() tea.Msg {
		upd := models.NoteUpdate{Title: &title, Content: &content}
		return updateDoneMsg{err: svc.Update(ctx, noteID, upd)}
	}
}

func (m mainLoopModel) cmdArchive(noteID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotesService

	return func() tea.Msg {
		return archiveDoneMsg{err: svc.Archive(ctx, noteID)}
	}
}

func (m mainLoopModel) cmdDelete(noteID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotesService

	return func() tea.Msg {
		return deleteDoneMsg{err: svc.Delete(ctx, noteID)}
	}
}

// ─────────────────────────────────────────────
// Views
// ─────────────────────────────────────────────

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenCreate:
		return m.viewForm("НОВАЯ ЗАМЕТКА")
	case screenEdit:
		return m.viewForm("ИЗМЕНЕНИЕ ЗАМЕТКИ")
	case screenConfirmDelete:
		return m.viewConfirmDelete()
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) viewList() string {
	if m.loading {
		return renderPage("ЗАМЕТКИ", "Загрузка списка...", "q: выход")
	}

	out := ""
	if m.errMsg != "" {
		out += errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}

	if len(m.notes) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "Заметок нет\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "№    │ Название                 │ Текст\n"
		out += "─────┼──────────────────────────┼────────────────────────\n"
		for i, note := range m.notes {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s %-3d│ %-24s │ %s\n",
				cursor,
				i+1,
				fitText(note.Title, 24),
				fitText(firstLine(note.Content), 24),
			)
		}
	}

	hotKeys := "n: новая │ e: изм. │ a: в архив │ d: уд. │ r: обновить │ c: копир. │ ↑/↓: нав. │ q: выход"
	return renderPage("ЗАМЕТКИ", strings.TrimRight(out, "\n"), hotKeys)
}

func (m mainLoopModel) viewForm(title string) string {
	out := "Поле      │ Значение\n"
	out += "──────────┼──────────────────────────────────────────\n"
	out += "Название  │ [" + m.titleInput.View() + "]\n"
	out += "Текст     │\n"
	out += m.contentArea.View() + "\n"
	if m.saving {
		out += "Действие  │ [Сохранение...]\n"
	} else {
		out += "Действие  │ [Сохранить]\n"
	}
	if m.errMsg != "" {
		out += errorStyle.Render("Ошибка    │ "+m.errMsg) + "\n"
	}
	return renderPage(title, strings.TrimRight(out, "\n"), "esc: назад │ tab: след. поле │ ctrl+s: сохранить")
}

func (m mainLoopModel) viewConfirmDelete() string {
	note := "выбранную заметку"
	for _, n := range m.notes {
		if n.NoteID == m.deleteNoteID && strings.TrimSpace(n.Title) != "" {
			note = fmt.Sprintf("«%s»", fitText(n.Title, 40))
			break
		}
	}

	out := fmt.Sprintf("Удалить %s?", note)
	return renderPage("УДАЛЕНИЕ ЗАМЕТКИ", out, "y: да │ n/esc: нет")
}
