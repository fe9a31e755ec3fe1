// Package main is the booking-service entrypoint.
package main

import (
	"log"

	"github.com/UoaWDCC/uabc-web-sub002/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
