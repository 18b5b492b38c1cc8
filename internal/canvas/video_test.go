package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVideoURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{
			name: "loom share",
			in:   "https://www.loom.com/share/abc123DEF",
			want: "https://www.loom.com/embed/abc123DEF",
			ok:   true,
		},
		{
			name: "youtube watch",
			in:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
			ok:   true,
		},
		{
			name: "youtu.be short link",
			in:   "https://youtu.be/dQw4w9WgXcQ",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
			ok:   true,
		},
		{
			name: "already embed passes through",
			in:   "https://player.vimeo.com/embed/12345",
			want: "https://player.vimeo.com/embed/12345",
			ok:   true,
		},
		{
			name: "loom embed passes through",
			in:   "https://www.loom.com/embed/abc123",
			want: "https://www.loom.com/embed/abc123",
			ok:   true,
		},
		{
			name: "unrecognized provider",
			in:   "https://example.com/video/42",
			want: "",
			ok:   false,
		},
		{
			name: "empty",
			in:   "",
			want: "",
			ok:   false,
		},
		{
			name: "whitespace only",
			in:   "   ",
			want: "",
			ok:   false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeVideoURL(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
