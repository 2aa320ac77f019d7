package backup

import (
	"errors"
	"io/fs"
	"os"
	"testing"
	"time"
)

// fakeInfo is a minimal os.FileInfo for exercising the pending predicate
// without a real filesystem.
type fakeInfo struct {
	size int64
	mod  time.Time
	mode fs.FileMode
}

func (f fakeInfo) Name() string       { return "clip.mp4" }
func (f fakeInfo) Size() int64        { return f.size }
func (f fakeInfo) Mode() fs.FileMode  { return f.mode }
func (f fakeInfo) ModTime() time.Time { return f.mod }
func (f fakeInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeInfo) Sys() any           { return nil }

func TestIsPending(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		size    int64
		mod     time.Time
		dst     os.FileInfo
		statErr error
		want    bool
	}{
		{
			name:    "destination missing",
			size:    100,
			mod:     now,
			statErr: errors.New("no such file or directory"),
			want:    true,
		},
		{
			name: "identical size and mtime",
			size: 100, mod: now,
			dst:  fakeInfo{size: 100, mod: now},
			want: false,
		},
		{
			name: "size differs",
			size: 100, mod: now,
			dst:  fakeInfo{size: 99, mod: now},
			want: true,
		},
		{
			name: "mtime differs beyond tolerance",
			size: 100, mod: now,
			dst:  fakeInfo{size: 100, mod: now.Add(3 * time.Second)},
			want: true,
		},
		{
			name: "mtime within FAT tolerance",
			size: 100, mod: now,
			dst:  fakeInfo{size: 100, mod: now.Add(time.Second)},
			want: false,
		},
		{
			name: "destination is a directory",
			size: 100, mod: now,
			dst:  fakeInfo{size: 100, mod: now, mode: fs.ModeDir},
			want: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsPending(tc.size, tc.mod, tc.dst, tc.statErr)
			if got != tc.want {
				t.Fatalf("IsPending() = %v, want %v", got, tc.want)
			}
		})
	}
}
