package discimg

import "testing"

func TestLoadUnrecognizedExtension(t *testing.T) {
	_, err := Load("image.img")
	if err != ErrUnrecognizedFormat {
		t.Fatalf("Load(.img) = %v, want ErrUnrecognizedFormat", err)
	}
}
