package main

import "github.com/taigrr/wirecube/pkg/cube"

// cubeInvalidate marks *dirty whenever the cube's rotation changes.
func cubeInvalidate(dirty *bool) cube.Option {
	return cube.WithInvalidate(func() {
		*dirty = true
	})
}
