package moderation

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
)

func generatedWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("blocked%d", i)
	}
	return words
}

func BenchmarkNewModerator(b *testing.B) {
	words := generatedWords(100_000)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	b.ResetTimer()
	for b.Loop() {
		if _, err := NewModerator(words, '*', log); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkModerator_Censor(b *testing.B) {
	m, err := NewModerator(generatedWords(10_000), '*', logs.GetLoggerFromLevel(slog.LevelError))
	if err != nil {
		b.Fatal(err)
	}
	text := strings.Repeat("see you at the reunion, blocked42 and friends ", 20)
	b.ResetTimer()
	for b.Loop() {
		m.Censor(text)
	}
}
