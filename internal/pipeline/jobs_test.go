package pipeline

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/dgallion1/outlinefix/internal/doctree"
	"github.com/dgallion1/outlinefix/internal/outline"
)

func TestContentHashHex_Consistency(t *testing.T) {
	data := []byte("hello world")
	h1 := ContentHashHex(data)
	h2 := ContentHashHex(data)
	if h1 != h2 {
		t.Errorf("expected identical hashes, got %q and %q", h1, h2)
	}
	// SHA-256 of "hello world" is well-known.
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if h1 != want {
		t.Errorf("expected hash %q, got %q", want, h1)
	}
}

func TestJob_StateTransitions(t *testing.T) {
	job := &Job{
		ID:        "test-1",
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusParsing, "parsing"},
		{StatusRenumbering, "renumbering"},
		{StatusCompleted, "done"},
	}

	for _, tr := range transitions {
		before := job.UpdatedAt
		// Small sleep to ensure time difference is detectable.
		time.Sleep(time.Millisecond)
		job.SetStatus(tr.status, tr.phase)

		if job.Status != tr.status {
			t.Errorf("expected status %q, got %q", tr.status, job.Status)
		}
		if job.Phase != tr.phase {
			t.Errorf("expected phase %q, got %q", tr.phase, job.Phase)
		}
		if !job.UpdatedAt.After(before) {
			t.Errorf("expected UpdatedAt to advance after SetStatus(%q)", tr.status)
		}
	}
}

func TestJob_AddError(t *testing.T) {
	job := &Job{ID: "err-test", UpdatedAt: time.Now()}
	job.AddError("parse: bad zip")
	job.AddError("renumber: invalid input")

	snap := job.Snapshot()
	if len(snap.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(snap.Errors))
	}
	if snap.Errors[0] != "parse: bad zip" {
		t.Errorf("expected first error %q, got %q", "parse: bad zip", snap.Errors[0])
	}
}

func TestJob_SnapshotSections(t *testing.T) {
	job := &Job{ID: "res-test", UpdatedAt: time.Now()}
	job.SetResult(
		[]doctree.Section{{Number: "2", Title: "A", Line: 1}, {Number: "2.3", Title: "B", Line: 2}},
		[]outline.Change{{Old: "2", New: "1"}, {Old: "2.3", New: "1.1"}},
	)

	snap := job.Snapshot()
	if len(snap.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(snap.Sections))
	}
	if snap.Sections[1].Number != "2.3" || snap.Sections[1].New != "1.1" || snap.Sections[1].Title != "B" {
		t.Errorf("unexpected section %+v", snap.Sections[1])
	}
	if snap.Changed != 2 {
		t.Errorf("expected 2 changed, got %d", snap.Changed)
	}
}

func TestJob_FileData(t *testing.T) {
	job := &Job{ID: "data-test"}
	data := []byte("file content here")
	job.SetFileData(data)
	got := job.FileData()
	if string(got) != string(data) {
		t.Errorf("expected file data %q, got %q", data, got)
	}
	job.releaseFileData()
	if job.FileData() != nil {
		t.Error("expected file data to be released")
	}
}

func TestJob_SnapshotNeverNil(t *testing.T) {
	// Snapshot should always return non-nil slices for JSON.
	job := &Job{ID: "snap-test", UpdatedAt: time.Now()}
	snap := job.Snapshot()
	if snap.Errors == nil {
		t.Error("expected non-nil errors slice in snapshot")
	}
	if snap.Sections == nil {
		t.Error("expected non-nil sections slice in snapshot")
	}
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: "store-1", UpdatedAt: time.Now()}
	store.Put(job)

	got := store.Get("store-1")
	if got == nil {
		t.Fatal("expected to get job back")
	}
	if got.ID != "store-1" {
		t.Errorf("expected ID %q, got %q", "store-1", got.ID)
	}
	if store.Get("nonexistent") != nil {
		t.Error("expected nil for missing job")
	}
}

func TestJobStore_TTLCleanup(t *testing.T) {
	store := NewJobStore(50 * time.Millisecond)

	expired := &Job{ID: "old", UpdatedAt: time.Now()}
	store.Put(expired)

	// Wait for the TTL to pass.
	time.Sleep(100 * time.Millisecond)

	fresh := &Job{ID: "new", UpdatedAt: time.Now()}
	store.Put(fresh)

	store.Cleanup()

	if store.Get("old") != nil {
		t.Error("expected expired job to be cleaned up")
	}
	if store.Get("new") == nil {
		t.Error("expected fresh job to survive cleanup")
	}
}

func TestNewJobID(t *testing.T) {
	seen := map[string]bool{}
	prev := ""
	for i := 0; i < 200; i++ {
		id := NewJobID()
		if len(id) != 26 {
			t.Fatalf("expected 26 chars, got %d (%q)", len(id), id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		if id[:10] < prev[:min(10, len(prev))] {
			t.Fatalf("timestamp prefix went backwards: %q after %q", id, prev)
		}
		prev = id
	}
}

func TestEncodeULID_Zero(t *testing.T) {
	if got := encodeULID([16]byte{}); got != "00000000000000000000000000" {
		t.Errorf("expected all zeros, got %q", got)
	}
	var full [16]byte
	for i := range full {
		full[i] = 0xff
	}
	if got := encodeULID(full); got != "7ZZZZZZZZZZZZZZZZZZZZZZZZZ" {
		t.Errorf("expected max ULID, got %q", got)
	}
}

func TestULIDClock_SequenceOverflowAdvancesTimestamp(t *testing.T) {
	c := ulidClock{lastTS: 100, lastSeq: math.MaxUint16 - 1}

	ts, seq := c.next(100)
	if ts != 100 || seq != math.MaxUint16 {
		t.Fatalf("expected (100, max), got (%d, %d)", ts, seq)
	}
	ts, seq = c.next(100)
	if ts != 101 || seq != 0 {
		t.Fatalf("expected overflow to (101, 0), got (%d, %d)", ts, seq)
	}
	// Wall clock still at 100: stay on the advanced timestamp.
	ts, seq = c.next(100)
	if ts != 101 || seq != 1 {
		t.Fatalf("expected (101, 1), got (%d, %d)", ts, seq)
	}
	ts, seq = c.next(250)
	if ts != 250 || seq != 0 {
		t.Fatalf("expected (250, 0), got (%d, %d)", ts, seq)
	}
}

func TestULIDClock_IDsStayOrderedAcrossOverflow(t *testing.T) {
	c := ulidClock{lastTS: 7, lastSeq: math.MaxUint16}
	var prev string
	for i := range 3 {
		ts, seq := c.next(7)
		var b [16]byte
		binary.BigEndian.PutUint64(b[0:8], ts<<16)
		binary.BigEndian.PutUint16(b[6:8], seq)
		id := encodeULID(b)
		if i > 0 && id <= prev {
			t.Fatalf("id %q does not sort after %q", id, prev)
		}
		prev = id
	}
}
