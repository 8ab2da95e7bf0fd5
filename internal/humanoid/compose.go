// internal/humanoid/compose.go
package humanoid

// Compose applies strategy to every offset, in order, producing the path to replay.
func Compose(start Point, offsets OffsetSequence, strategy Strategy) Path {
	path := make(Path, len(offsets))
	for i, v := range offsets {
		path[i] = strategy.Apply(start, v, i)
	}
	return path
}
