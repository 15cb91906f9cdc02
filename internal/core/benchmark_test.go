package core

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
)

// ============================================================================
// Reader Benchmarks
// ============================================================================

func buildDeck(rows int) []byte {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&buf, "\"Question %d, with comma\",Answer %d\r\n", i, i)
	}
	return buf.Bytes()
}

// BenchmarkReadDeckText measures BOM skipping, counting and UTF-8 checks.
func BenchmarkReadDeckText(b *testing.B) {
	data := buildDeck(5000)
	b.SetBytes(int64(len(data)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := ReadDeckText(bytes.NewReader(data), int64(len(data))); err != nil {
			b.Fatal(err)
		}
	}
}

// ============================================================================
// Service Benchmarks
// ============================================================================

// BenchmarkLoadDeck measures a full open, read and parse of a deck file.
func BenchmarkLoadDeck(b *testing.B) {
	svc, _ := newBenchService(b)
	if err := svc.decks.Write("bench.csv", buildDeck(5000)); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.LoadDeck(context.Background(), "bench.csv"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSaveUpload measures upload validation, parse and atomic write.
func BenchmarkSaveUpload(b *testing.B) {
	svc, _ := newBenchService(b)
	data := string(buildDeck(1000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.SaveUpload(context.Background(), "bench.csv", strings.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
