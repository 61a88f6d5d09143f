package chapters

import (
	"errors"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/tube-digest/internal/timestamp"
	"github.com/nguyentantai21042004/tube-digest/internal/transcript"
)

func frags(pairs ...any) []transcript.Fragment {
	var out []transcript.Fragment
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, transcript.Fragment{
			StartSeconds: pairs[i].(int),
			Text:         pairs[i+1].(string),
		})
	}
	return out
}

func TestPartition(t *testing.T) {
	chs := []Chapter{
		{Timestamp: "00:00", Title: "Intro"},
		{Timestamp: "05:30", Title: "Topic A"},
		{Timestamp: "12:30", Title: "Topic B"},
	}
	fs := frags(0, "welcome", 45, "today we cover", 340, "first topic", 400, "in depth", 800, "wrapping up")

	got, err := Partition(fs, chs)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Partition() returned %d chapters, want 3", len(got))
	}

	want := []string{
		"welcome today we cover",
		"first topic in depth",
		"wrapping up",
	}
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("chapter %d text = %q, want %q", i, got[i].Text, w)
		}
	}
	if got[1].StartSeconds != 330 {
		t.Errorf("chapter 1 start = %d, want 330", got[1].StartSeconds)
	}
}

func TestPartitionClampsEarlyFragments(t *testing.T) {
	chs := []Chapter{
		{Timestamp: "00:10", Title: "Late start"},
		{Timestamp: "01:00", Title: "Second"},
	}
	fs := frags(0, "before any chapter", 30, "inside first", 70, "inside second")

	got, err := Partition(fs, chs)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}
	if got[0].Text != "before any chapter inside first" {
		t.Errorf("first chapter text = %q, early fragment was dropped", got[0].Text)
	}
	if got[1].Text != "inside second" {
		t.Errorf("second chapter text = %q", got[1].Text)
	}
}

func TestPartitionEmptyFragments(t *testing.T) {
	chs := []Chapter{
		{Timestamp: "00:00", Title: "A"},
		{Timestamp: "02:00", Title: "B"},
	}

	got, err := Partition(nil, chs)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d chapters, want 2", len(got))
	}
	for i, ct := range got {
		if ct.Text != "" {
			t.Errorf("chapter %d text = %q, want empty", i, ct.Text)
		}
	}
}

func TestPartitionSingleChapter(t *testing.T) {
	fs := frags(0, "a", 100, "b", 5000, "c")

	got, err := Partition(fs, []Chapter{{Timestamp: "00:00", Title: "All"}})
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d chapters, want 1", len(got))
	}
	if got[0].Text != "a b c" {
		t.Errorf("text = %q, want %q", got[0].Text, "a b c")
	}
}

func TestPartitionBoundaryIsHalfOpen(t *testing.T) {
	chs := []Chapter{
		{Timestamp: "00:00", Title: "A"},
		{Timestamp: "01:00", Title: "B"},
	}
	// A fragment starting exactly on a boundary belongs to the later chapter.
	fs := frags(59, "last of A", 60, "first of B")

	got, err := Partition(fs, chs)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}
	if got[0].Text != "last of A" || got[1].Text != "first of B" {
		t.Errorf("boundary split = [%q, %q]", got[0].Text, got[1].Text)
	}
}

// No fragment may be lost or duplicated, whatever the layout.
func TestPartitionConservesFragments(t *testing.T) {
	chs := []Chapter{
		{Timestamp: "00:05", Title: "A"},
		{Timestamp: "00:05", Title: "B"}, // zero-width span
		{Timestamp: "10:00", Title: "C"},
	}
	fs := frags(0, "w0", 5, "w1", 5, "w2", 300, "w3", 600, "w4", 600, "w5")

	got, err := Partition(fs, chs)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	total := 0
	for _, ct := range got {
		if ct.Text == "" {
			continue
		}
		total += len(strings.Fields(ct.Text))
	}
	if total != len(fs) {
		t.Errorf("assigned %d fragments, want %d", total, len(fs))
	}
}

func TestPartitionErrors(t *testing.T) {
	tests := []struct {
		name string
		chs  []Chapter
		want error
	}{
		{"empty chapter list", nil, ErrNoChapters},
		{"malformed timestamp", []Chapter{{Timestamp: "ab:cd", Title: "Bad"}}, timestamp.ErrMalformed},
		{
			"malformed later chapter is fatal",
			[]Chapter{{Timestamp: "00:00", Title: "OK"}, {Timestamp: "", Title: "Bad"}},
			timestamp.ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Partition(frags(0, "x"), tt.chs)
			if !errors.Is(err, tt.want) {
				t.Errorf("Partition() error = %v, want %v", err, tt.want)
			}
		})
	}
}
