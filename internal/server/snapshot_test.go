package server

import (
	"strings"
	"testing"
)

func TestBuildSnapshot_InitKeepsLogHistory(t *testing.T) {
	s := newTestServer(11)

	// Первый UPDATE уносит приветствие...
	upd := s.buildSnapshot("UPDATE")
	found := false
	for _, l := range upd.Logs {
		if strings.Contains(l.Text, "Добро пожаловать") {
			found = true
		}
	}
	if !found {
		t.Fatal("first update must carry the welcome entry")
	}

	// ...но поздний подписчик все равно получает его в INIT.
	init := s.buildSnapshot("INIT")
	found = false
	for _, l := range init.Logs {
		if strings.Contains(l.Text, "Добро пожаловать") {
			found = true
		}
	}
	if !found {
		t.Error("init snapshot must include recent log history")
	}
}

func TestBuildSnapshot_UpdateDrainsOnce(t *testing.T) {
	s := newTestServer(11)

	s.buildSnapshot("UPDATE")
	if logs := s.buildSnapshot("UPDATE").Logs; len(logs) != 0 {
		t.Errorf("second update must not repeat drained entries, got %d", len(logs))
	}
}

func TestBuildSnapshot_InitDoesNotConsumeEntries(t *testing.T) {
	s := newTestServer(11)

	// INIT читает историю, не опустошая очередь для следующего UPDATE.
	s.buildSnapshot("INIT")
	upd := s.buildSnapshot("UPDATE")

	found := false
	for _, l := range upd.Logs {
		if strings.Contains(l.Text, "Добро пожаловать") {
			found = true
		}
	}
	if !found {
		t.Error("init snapshot must not steal entries from the broadcast path")
	}
}
