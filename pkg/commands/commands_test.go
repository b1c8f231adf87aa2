package commands

import (
	"bytes"
	"errors"
	"testing"

	"tableflip.dev/diary/pkg/entry"
)

func TestCommandTree(t *testing.T) {
	root := New()
	for _, path := range [][]string{
		{"edit"}, {"show"}, {"write"}, {"attach"}, {"detach"}, {"list"},
		{"search"}, {"cal"}, {"report"}, {"key"}, {"info"}, {"version"},
		{"todo", "add"}, {"todo", "edit"}, {"todo", "x"}, {"todo", "delete"}, {"todo", "ls"},
	} {
		cmd, _, err := root.Find(path)
		if err != nil || cmd == root {
			t.Errorf("%v: not found (%v)", path, err)
		}
	}
}

func TestWriteArgs(t *testing.T) {
	cmd, _, err := New().Find([]string{"write"})
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.Args(cmd, []string{"music"}); err == nil {
		t.Errorf("expected an error without text")
	}
	if err := cmd.Args(cmd, []string{"weather", "rain"}); err == nil {
		t.Errorf("expected an error for an unknown section")
	}
	if err := cmd.Args(cmd, []string{"thanks", "sunny", "weather"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestJSONFlagOnlyWhereBound(t *testing.T) {
	root := New()
	for path, json := range map[string]bool{
		"show": true, "list": true, "search": true, "report": true,
		"write": false, "attach": false, "detach": false, "key": false,
	} {
		cmd, _, err := root.Find([]string{path})
		if err != nil {
			t.Fatal(err)
		}
		if got := cmd.Flags().Lookup("json") != nil; got != json {
			t.Errorf("%s: --json bound=%v, want %v", path, got, json)
		}
	}
}

func TestWriteReturnsDateError(t *testing.T) {
	root := New()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"write", "--on", "2/30", "diary", "hello"})
	if err := root.Execute(); !errors.Is(err, entry.ErrInvalidDate) {
		t.Fatalf("expected invalid date, got %v", err)
	}
}
