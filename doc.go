/*
Package seamster is a content aware image resize library. It shrinks an image
to a requested size by repeatedly finding and removing the connected path of
pixels with the lowest dual-gradient energy, so the parts of the picture that
carry the least visual information are the ones that go.

The package provides a command line interface, supporting various flags for
the different rescaling operations. To check the supported commands type:

	$ seamster --help

The low level carving primitives are exposed through the Carver type:

	package main

	import (
		"fmt"
		"log"

		"github.com/wrsch/seamster"
	)

	func main() {
		c := seamster.NewCarver(img)
		for i := 0; i < 20; i++ {
			seam, err := c.FindVerticalSeam()
			if err != nil {
				log.Fatal(err)
			}
			if err := c.RemoveVerticalSeam(seam); err != nil {
				log.Fatal(err)
			}
		}
		fmt.Println(c.Width(), c.Height())
	}

For the whole decode, carve, encode pipeline use the Processor instead:

	p := &seamster.Processor{
		NewWidth: 1024,
	}

	if err := p.Process(in, out); err != nil {
		fmt.Printf("Error rescaling image: %s", err.Error())
	}
*/
package seamster
