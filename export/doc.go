// Package export renders a served slide deck to PDF with headless Chrome.
//
// Three strategies are available. [StrategyPrint] prints the deck once with
// a stylesheet that puts every slide on its own page. [StrategyScreenshot]
// captures each slide at the viewport size and lays the images out with
// gofpdf, which reproduces the screen exactly at the cost of selectable
// text. [StrategyPrintEach] prints slides one at a time and merges the
// pages with pdfcpu.
//
//	exp, err := export.NewExporter(export.WithNoSandbox())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer exp.Close()
//
//	res, err := exp.Export(ctx, "http://localhost:8000/", &export.Request{
//		Strategy: export.StrategyScreenshot,
//		Slides:   "1-5",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	res.WriteToFile("deck.pdf", 0o644)
package export
