package main

import (
	"encoding/json"
	"fmt"
	"os"

	"travelbe/pkg/passport"
)

// extract runs the passport pipeline on a single image and prints the full
// result as JSON. Handy when tuning variants or debugging a bad scan.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: go run ./cmd/extract <image>")
		os.Exit(2)
	}
	res := passport.ExtractFromImage(os.Args[1])
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if res.Data != nil {
		validation := passport.Validate(*res.Data)
		vo, _ := json.MarshalIndent(validation, "", "  ")
		fmt.Println(string(vo))
	}
}
