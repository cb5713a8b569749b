package filemgr

import (
	"bytes"
	"image"
	"testing"
)

// Uploads arrive as webp from modern browsers; the decoder has to be
// registered or every such upload dies inside image.Decode.
func TestWebpDecoderRegistered(t *testing.T) {
	magic := []byte("RIFF\x00\x00\x00\x00WEBPVP8 ")
	if _, format, _ := image.DecodeConfig(bytes.NewReader(magic)); format != "webp" {
		t.Fatalf("webp not registered, sniffed %q", format)
	}
}

func TestStorageExt(t *testing.T) {
	cases := map[string]string{
		".jpg":  ".jpg",
		".jpeg": ".jpeg",
		".png":  ".png",
		".gif":  ".gif",
		".webp": ".jpg", // decode-only format, stored re-encoded
	}
	for in, want := range cases {
		if got := storageExt(in); got != want {
			t.Fatalf("storageExt(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExtensionAllowed(t *testing.T) {
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif", ".webp"} {
		if !extensionAllowed(ext) {
			t.Fatalf("expected %q to be allowed", ext)
		}
	}
	if extensionAllowed(".exe") || extensionAllowed(".svg") {
		t.Fatal("unexpected extension allowed")
	}
}
