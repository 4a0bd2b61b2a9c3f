// Command loopscroll runs an interactive looping list and traces the scroll
// engine headlessly.
package main

import (
	"log"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
