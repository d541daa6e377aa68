package main

import "travelbe/process/sanitize"

func main() {
	sanitize.Run()
}
