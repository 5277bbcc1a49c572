package s3

import "testing"

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"video.mp4", "video.mp4"},
		{"my holiday video.mp4", "my_holiday_video.mp4"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\clip.mov`, "clip.mov"},
		{"weird$na!me.mp4", "weirdname.mp4"},
		{".hidden", "hidden"},
		{"...", "file"},
		{"", "file"},
		{"UPPER-case_ok.MP4", "UPPER-case_ok.MP4"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
