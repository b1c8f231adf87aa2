package show

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/section"
	"tableflip.dev/diary/pkg/store/storetest"
)

func TestShowJSONSynthesizesEmptyEntry(t *testing.T) {
	svc, err := app.New(storetest.NewMemory(), 0)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	s := Show{Service: svc, Date: "2024-03-01", JSON: true, Out: buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	var got entry.Entry
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got.Date != "2024-03-01" || len(got.Sections) != len(section.Keys()) {
		t.Fatalf("expected all six empty sections, got %+v", got)
	}
	if svc.Entries.Has("2024-03-01") {
		t.Fatalf("show must not store anything")
	}
}

func TestShowRejectsBadDate(t *testing.T) {
	svc, err := app.New(storetest.NewMemory(), 0)
	if err != nil {
		t.Fatal(err)
	}
	s := Show{Service: svc, Date: "2024-13-01", Out: &bytes.Buffer{}}
	if err := s.Do(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}
	if err := (&Show{}).Do(context.Background()); err == nil {
		t.Fatalf("expected an error without a journal")
	}
}
