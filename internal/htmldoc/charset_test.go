package htmldoc

import "testing"

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        []byte
		contentType string
		want        string
	}{
		{
			name: "utf-8 without declaration",
			body: []byte("<div>chạy</div>"),
			want: "<div>chạy</div>",
		},
		{
			name:        "declared utf-8",
			body:        []byte("<div>chạy</div>"),
			contentType: "text/html; charset=UTF-8",
			want:        "<div>chạy</div>",
		},
		{
			name:        "declared latin-1",
			body:        []byte{'<', 'p', '>', 'c', 'a', 'f', 0xE9, '<', '/', 'p', '>'},
			contentType: "text/html; charset=ISO-8859-1",
			want:        "<p>café</p>",
		},
		{
			name: "meta charset without content type",
			body: append([]byte(`<meta charset="ISO-8859-1"><p>caf`), 0xE9, '<', '/', 'p', '>'),
			want: `<meta charset="ISO-8859-1"><p>café</p>`,
		},
		{
			name: "meta http-equiv without content type",
			body: append([]byte(`<meta http-equiv="Content-Type" content="text/html; charset=windows-1258"><p>`), 0xF5, '<', '/', 'p', '>'),
			want: `<meta http-equiv="Content-Type" content="text/html; charset=windows-1258"><p>ơ</p>`,
		},
		{
			name:        "content type wins over meta",
			body:        append([]byte(`<meta charset="windows-1258"><p>`), 0xF5, '<', '/', 'p', '>'),
			contentType: "text/html; charset=ISO-8859-1",
			want:        `<meta charset="windows-1258"><p>õ</p>`,
		},
		{
			name:        "malformed content type ignored",
			body:        []byte("plain"),
			contentType: ";;;",
			want:        "plain",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Decode(tt.body, tt.contentType)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeclaredCharset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body []byte
		want string
	}{
		{name: "none", body: []byte("<p>plain</p>"), want: ""},
		{name: "meta charset", body: []byte(`<head><meta charset=" UTF-8 "></head>`), want: "utf-8"},
		{name: "http-equiv", body: []byte(`<meta http-equiv="content-type" content="text/html; charset=Windows-1258">`), want: "windows-1258"},
		{name: "http-equiv without charset", body: []byte(`<meta http-equiv="Content-Type" content="text/html">`), want: ""},
		{name: "other http-equiv ignored", body: []byte(`<meta http-equiv="refresh" content="0; charset=koi8-r">`), want: ""},
		{name: "utf-8 bom", body: append([]byte{0xEF, 0xBB, 0xBF}, "<p>x</p>"...), want: "utf-8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DeclaredCharset(tt.body); got != tt.want {
				t.Errorf("DeclaredCharset() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode_UnknownCharset(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("x"), "text/html; charset=no-such-charset")
	if err == nil {
		t.Fatal("Decode with unknown charset: want error")
	}
}

func TestDetectCharset_NeverEmpty(t *testing.T) {
	t.Parallel()

	if got := DetectCharset([]byte{0xff, 0xfe, 0x00}); got == "" {
		t.Error("DetectCharset returned empty label")
	}
}
