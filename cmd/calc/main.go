package main

import (
	"log"
	"os"

	"calc"
)

func main() {
	log.SetFlags(0)
	if err := calc.Run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
