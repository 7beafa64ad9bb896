package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/little-yangyang/vendordoc"
)

func main() {
	out := filepath.Join(vendordoc.DefaultTemplateDir, vendordoc.DefaultTemplateFilename)
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		panic(err)
	}
	if err := vendordoc.SampleTemplate().SaveFile(out); err != nil {
		panic(err)
	}
	fmt.Println("Wrote", out)
}
