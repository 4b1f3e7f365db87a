// unitconv converts values between units of temperature, length, area,
// volume and mass.
package main

import (
	"os"

	"github.com/corey/unitconv/cmd/unitconv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
