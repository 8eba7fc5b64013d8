package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for Abacus.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Warm gradient (amber to rose)
	s1 := termenv.String("        _                          ").Foreground(p.Color("#fbbf24"))
	s2 := termenv.String("   __ _| |__   __ _  ___ _   _ ___ ").Foreground(p.Color("#f59e0b"))
	s3 := termenv.String("  / _` | '_ \\ / _` |/ __| | | / __|").Foreground(p.Color("#f97316"))
	s4 := termenv.String(" | (_| | |_) | (_| | (__| |_| \\__ \\").Foreground(p.Color("#fb7185"))
	s5 := termenv.String("  \\__,_|_.__/ \\__,_|\\___|\\__,_|___/").Foreground(p.Color("#f43f5e"))
	ver := termenv.String("  " + version).Foreground(p.Color("#9ca3af"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(ver)
	fmt.Println()
}
