package export_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/porticus-lab/slidedeck/export"
)

func Example() {
	exp, err := export.NewExporter(export.WithNoSandbox())
	if err != nil {
		log.Fatal(err)
	}
	defer exp.Close()

	// Print every slide of a deck served locally, one per Letter page.
	res, err := exp.Export(context.Background(), "http://127.0.0.1:8000/", nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Exported %d pages\n", res.Pages())
}

func Example_screenshots() {
	exp, err := export.NewExporter(
		export.WithTimeout(5*time.Minute),
		export.WithViewport(1920, 1080, 1),
		export.WithSettleDelay(time.Second),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer exp.Close()

	res, err := exp.Export(context.Background(), "http://127.0.0.1:8000/", &export.Request{
		Strategy: export.StrategyScreenshot,
		Page:     &export.PageConfig{Size: export.A4},
		Slides:   "1-3,8",
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := res.WriteToFile("/tmp/slides.pdf", 0o644); err != nil {
		log.Fatal(err)
	}
}

func ExampleParseSlideRange() {
	indices, err := export.ParseSlideRange("1-3,7", 10)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(indices)
	// Output: [0 1 2 6]
}
