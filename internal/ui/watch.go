package ui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

func (m *Model) startWatching(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	path = filepath.Clean(path)
	if err := m.ensureWatcher(); err != nil {
		m.err = err
		return nil
	}

	// Editors replace files on save, so watch the directory.
	dir := filepath.Dir(path)
	if dir != m.watchDir {
		if m.watchDir != "" {
			_ = m.watcher.Remove(m.watchDir)
		}
		if err := m.watcher.Add(dir); err != nil {
			m.err = err
			return nil
		}
		m.watchDir = dir
	}

	m.watchedFile = path
	return m.waitForFileEvent()
}

func (m *Model) ensureWatcher() error {
	if m.watcher != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.watcher = watcher
	m.watchChan = make(chan tea.Msg, 10)
	m.watchDone = make(chan struct{})

	go m.watchLoop(watcher, m.watchChan, m.watchDone)
	return nil
}

// Close stops the config watcher. It is safe to call more than once.
func (m *Model) Close() error {
	if m.watcher == nil {
		return nil
	}
	close(m.watchDone)
	err := m.watcher.Close()
	m.watcher = nil
	m.watchDir = ""
	m.watchedFile = ""
	return err
}

func (m *Model) watchLoop(watcher *fsnotify.Watcher, out chan<- tea.Msg, done <-chan struct{}) {
	for {
		var msg tea.Msg
		select {
		case <-done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			msg = fileEventMsg{path: event.Name, op: event.Op}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			msg = fileWatchErrMsg{err: err}
		}

		select {
		case out <- msg:
		case <-done:
			return
		}
	}
}

func (m *Model) waitForFileEvent() tea.Cmd {
	if m.watchChan == nil {
		return nil
	}
	events, done := m.watchChan, m.watchDone
	return func() tea.Msg {
		select {
		case msg := <-events:
			return msg
		case <-done:
			return nil
		}
	}
}

func (m *Model) handleFileEvent(msg fileEventMsg) tea.Cmd {
	if m.watchedFile == "" || filepath.Clean(msg.path) != m.watchedFile {
		return m.waitForFileEvent()
	}

	m.reloadConfig()
	return m.waitForFileEvent()
}

func (m *Model) reloadConfig() {
	if m.reload == nil {
		return
	}
	cfg, err := m.reload()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.applyConfig(cfg)
	m.refresh()
}
