package game

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func TestDebugfGatedByVerbose(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	defer SetVerbose(false)

	SetVerbose(false)
	debugf("quiet %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("verbose off must write nothing, got %q", buf.String())
	}

	SetVerbose(true)
	debugf("loud %d", 2)
	if !strings.Contains(buf.String(), "loud 2") {
		t.Fatalf("verbose on must write, got %q", buf.String())
	}
}
