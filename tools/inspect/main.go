package main

import (
	"fmt"
	"os"

	"github.com/fumiama/go-docx"

	"github.com/little-yangyang/vendordoc"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect <file.docx>")
		os.Exit(2)
	}

	doc, err := vendordoc.OpenFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	fmt.Println("--- Items ---")
	for _, it := range doc.Docx().Document.Body.Items {
		switch item := it.(type) {
		case *docx.Paragraph:
			printP(doc, item)
			fmt.Println()
		case *docx.Table:
			fmt.Println("--- Table ---")
			for _, row := range item.TableRows {
				fmt.Print("| ")
				for _, cell := range row.TableCells {
					for i, p := range cell.Paragraphs {
						if i > 0 {
							fmt.Print(" / ")
						}
						printP(doc, p)
					}
					fmt.Print(" | ")
				}
				fmt.Println()
			}
			fmt.Println("-------------")
		}
	}
}

func printP(doc *vendordoc.Document, p *docx.Paragraph) {
	style := ""
	if p.Properties != nil && p.Properties.Style != nil {
		style = p.Properties.Style.Val
	}
	if style != "" {
		fmt.Printf("[%s] ", style)
	}
	for _, child := range p.Children {
		switch c := child.(type) {
		case *docx.Run:
			fmt.Print(vendordoc.ParagraphText(&docx.Paragraph{Children: []interface{}{c}}))
		case *docx.Hyperlink:
			target, err := doc.Docx().ReferTarget(c.ID)
			if err != nil {
				target = c.ID
			}
			text := vendordoc.ParagraphText(&docx.Paragraph{Children: []interface{}{c}})
			fmt.Printf("[%s](%s)", text, target)
		}
	}
}
