/*
Package assetgen generates the complete InsightWave brand asset set: a vector
logo, a set of UI icons, a multi-resolution app icon and favicon package, a
monochrome pinned-tab silhouette, and the matching web app manifest entries.

The generation pipeline is deterministic and runs in a single pass. A simple
integration looks like this:

	package main

	import (
		"fmt"

		"github.com/insightwave/assetgen"
	)

	func main() {
		g, err := assetgen.NewGenerator(".")
		if err != nil {
			fmt.Printf("Error setting up the generator: %s", err)
			return
		}
		defer g.Close()

		if err := g.Run(); err != nil {
			fmt.Printf("Error generating the assets: %s", err)
		}
	}
*/
package assetgen
