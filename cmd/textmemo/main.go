package main

import (
	"fmt"
	"os"

	. "textmemo/internal/logger"
)

func main() {
	Log.Start()
	err := newRootCmd().Execute()
	Log.Stop()
	if err != nil { fmt.Fprintln(os.Stderr, "textmemo:", err); os.Exit(1) }
}
