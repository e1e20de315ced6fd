package state

import (
	"strconv"

	"github.com/google/uuid"
)

// circleSpace namespaces circle IDs so they never collide with other
// name-based UUIDs.
var circleSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("canvas-creator/circle"))

// circleID names the n-th circle created under seed.
func circleID(seed, n uint64) string {
	name := strconv.FormatUint(seed, 16) + "/" + strconv.FormatUint(n, 10)
	return uuid.NewSHA1(circleSpace, []byte(name)).String()
}

// tick returns the next value of a monotonically increasing counter.
func tick(c *uint64) uint64 {
	*c++
	return *c
}
